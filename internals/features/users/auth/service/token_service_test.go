package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"fitzone_backend/internals/configs"
	userModel "fitzone_backend/internals/features/users/user/model"
)

func TestIssueAccessToken_CarriesPrincipalTriple(t *testing.T) {
	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = "" })

	user := &userModel.UserModel{
		ID:       uuid.New(),
		UserName: "arjun",
		Role:     "manager",
		Region:   "north",
	}

	signed, expiresAt, err := IssueAccessToken(user)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Fatalf("token already expired: %v", expiresAt)
	}

	parsed, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("parse token: %v", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("unexpected claims type")
	}
	if claims["id"] != user.ID.String() {
		t.Fatalf("id claim = %v", claims["id"])
	}
	if claims["role"] != "manager" {
		t.Fatalf("role claim = %v", claims["role"])
	}
	if claims["region"] != "north" {
		t.Fatalf("region claim = %v", claims["region"])
	}
	if claims["user_name"] != "arjun" {
		t.Fatalf("user_name claim = %v", claims["user_name"])
	}
}

func TestIssueAccessToken_MissingSecret(t *testing.T) {
	configs.JWTSecret = ""

	if _, _, err := IssueAccessToken(&userModel.UserModel{ID: uuid.New()}); err == nil {
		t.Fatalf("missing secret must fail")
	}
}
