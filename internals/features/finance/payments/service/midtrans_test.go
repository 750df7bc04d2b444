package service

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"
	"time"
)

func TestMapGatewayStatus(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		current string
		ts      string
		fraud   string
		want    string
	}{
		{name: "settlement is paid", current: "pending", ts: "settlement", want: "paid"},
		{name: "capture accept is paid", current: "pending", ts: "capture", fraud: "accept", want: "paid"},
		{name: "capture challenge stays pending", current: "pending", ts: "capture", fraud: "challenge", want: "pending"},
		{name: "capture denied fraud fails", current: "pending", ts: "capture", fraud: "deny", want: "failed"},
		{name: "deny fails", current: "pending", ts: "deny", want: "failed"},
		{name: "cancel cancels", current: "pending", ts: "cancel", want: "canceled"},
		{name: "expire expires", current: "pending", ts: "expire", want: "expired"},
		{name: "uppercase accepted", current: "pending", ts: "SETTLEMENT", want: "paid"},
		{name: "unknown keeps current", current: "initiated", ts: "weird", want: "initiated"},
		{name: "repeated settlement stays paid", current: "paid", ts: "settlement", want: "paid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, fields := MapGatewayStatus(tt.current, tt.ts, tt.fraud, now)
			if got != tt.want {
				t.Errorf("MapGatewayStatus(%q,%q) = %q, want %q", tt.ts, tt.fraud, got, tt.want)
			}
			if got == "paid" && fields.PaidAt == nil {
				t.Error("paid mapping must set PaidAt")
			}
			if got == "failed" && fields.FailedAt == nil {
				t.Error("failed mapping must set FailedAt")
			}
		})
	}
}

func TestVerifySignature(t *testing.T) {
	orderID, statusCode, gross, serverKey := "FEE-20260301-ABCDEF12", "200", "50000.00", "sk-test"
	h := sha512.Sum512([]byte(orderID + statusCode + gross + serverKey))
	valid := hex.EncodeToString(h[:])

	if !VerifySignature(orderID, statusCode, gross, serverKey, valid) {
		t.Error("valid signature rejected")
	}
	if VerifySignature(orderID, statusCode, gross, serverKey, "deadbeef") {
		t.Error("invalid signature accepted")
	}
	if VerifySignature(orderID, statusCode, "1.00", serverKey, valid) {
		t.Error("signature accepted with tampered amount")
	}
}

func TestGenOrderID(t *testing.T) {
	a := GenOrderID("FEE")
	b := GenOrderID("FEE")
	if a == b {
		t.Error("order ids must be unique")
	}
	if len(a) == 0 || a[:4] != "FEE-" {
		t.Errorf("order id %q should carry the prefix", a)
	}
}
