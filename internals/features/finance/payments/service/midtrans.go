package service

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"github.com/google/uuid"
)

/* =========================================================
   Midtrans Client
========================================================= */

var SnapClient snap.Client

// InitMidtrans must be called at bootstrap.
// useProduction=true for Production, false for Sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

/* =========================================================
   Input helper for customer data
========================================================= */

type CustomerInput struct {
	FullName string
	Email    string
	Phone    string
}

type CheckoutInput struct {
	OrderID     string
	Amount      int
	Description string
	Customer    CustomerInput
}

/* =========================================================
   Generate Snap Token
========================================================= */

func GenerateSnapToken(in CheckoutInput) (token string, redirectURL string, err error) {
	if in.Amount <= 0 {
		return "", "", errors.New("invalid payment amount")
	}
	if in.OrderID == "" {
		return "", "", errors.New("order id is required")
	}

	first, last := splitName(in.Customer.FullName)
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  in.OrderID,
			GrossAmt: int64(in.Amount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: first,
			LName: last,
			Email: in.Customer.Email,
			Phone: in.Customer.Phone,
		},
		CreditCard: &snap.CreditCardDetails{Secure: true},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       in.OrderID,
				Price:    int64(in.Amount),
				Qty:      1,
				Name:     truncate(defaultString(in.Description, "Term fee payment"), 50),
				Category: "FEES",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

/* =========================================================
   Notification signature
========================================================= */

// VerifySignature checks the sha512(order_id + status_code + gross_amount +
// server_key) signature midtrans sends with every notification.
func VerifySignature(orderID, statusCode, grossAmount, serverKey, signatureKey string) bool {
	h := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(h[:]) == strings.ToLower(signatureKey)
}

/* =========================================================
   Status mapping
========================================================= */

// MappedFields carries the timestamps to set when mapping a gateway status.
type MappedFields struct {
	PaidAt     *time.Time
	CanceledAt *time.Time
	FailedAt   *time.Time
}

// MapGatewayStatus converts a midtrans transaction status into the internal
// payment status. Unknown statuses keep the current one.
func MapGatewayStatus(current, transactionStatus, fraudStatus string, now time.Time) (string, MappedFields) {
	ts := strings.ToLower(transactionStatus)
	fraud := strings.ToLower(fraudStatus)

	switch ts {
	case "capture":
		if fraud == "accept" {
			return "paid", MappedFields{PaidAt: &now}
		}
		if fraud == "challenge" {
			return "pending", MappedFields{}
		}
		return "failed", MappedFields{FailedAt: &now}

	case "settlement":
		return "paid", MappedFields{PaidAt: &now}

	case "pending":
		return "pending", MappedFields{}

	case "deny", "failure":
		return "failed", MappedFields{FailedAt: &now}

	case "cancel":
		return "canceled", MappedFields{CanceledAt: &now}

	case "expire":
		return "expired", MappedFields{}
	}

	return current, MappedFields{}
}

/* =========================================================
   Utils
========================================================= */

// GenOrderID builds an order_id with a prefix (used as the midtrans OrderID).
func GenOrderID(prefix string) string {
	now := time.Now().Format("20060102-150405")
	u := uuid.New().String()
	if len(u) > 8 {
		u = u[:8]
	}
	return prefix + "-" + now + "-" + strings.ToUpper(u)
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}

func defaultString(s string, def string) string {
	if s == "" {
		return def
	}
	return s
}

func splitName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "Student", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
