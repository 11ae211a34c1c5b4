package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"fitzone_backend/internals/features/memberships/memberships/model"
)

var SnapClient snap.Client

// InitMidtrans is called once at bootstrap (sandbox by default).
func InitMidtrans(serverKey string, production bool) {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}
	SnapClient.New(serverKey, env)
}

// GenerateSnapToken creates the Snap token + redirect_url for a checkout order.
func GenerateSnapToken(order *model.MembershipOrderModel, planName, customerName, email string) (string, string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  order.MembershipOrderID,
			GrossAmt: int64(order.MembershipOrderAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: customerName,
			Email: email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    order.MembershipOrderPlanCode,
				Name:  "Gym " + planName + " Membership",
				Price: int64(order.MembershipOrderAmount),
				Qty:   1,
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}

	return resp.Token, resp.RedirectURL, nil
}
