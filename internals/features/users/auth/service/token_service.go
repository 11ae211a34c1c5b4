// internals/features/users/auth/service/token_service.go
package service

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"fitzone_backend/internals/configs"
	userModel "fitzone_backend/internals/features/users/user/model"
)

/* ==========================
   Const & Types
========================== */

const (
	accessTTLDefault = 24 * time.Hour
)

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}
	return secret, nil
}

// IssueAccessToken signs a JWT carrying the full principal triple
// (id, role, region) so every downstream authorization check can run
// without re-reading the user row.
func IssueAccessToken(user *userModel.UserModel) (string, time.Time, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", time.Time{}, err
	}

	expiresAt := time.Now().UTC().Add(accessTTLDefault)
	claims := jwt.MapClaims{
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"region":    user.Region,
		"exp":       expiresAt.Unix(),
		"iat":       time.Now().UTC().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to sign token")
	}
	return signed, expiresAt, nil
}
