package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		if _, err := NewMercadoPagoGateway(""); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected missing token error, got %v", err)
		}
	})

	t.Run("mock mode does not need a token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "yes")
		g, err := NewMercadoPagoGateway("")
		if err != nil || !g.mockMode {
			t.Fatalf("expected mock gateway, got %+v err=%v", g, err)
		}
	})

	t.Run("timeout from env", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "1")
		t.Setenv("MERCADOPAGO_TIMEOUT_SECONDS", "3")
		g, err := NewMercadoPagoGatewayFromEnv()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g.timeout != 3*time.Second {
			t.Fatalf("unexpected timeout %v", g.timeout)
		}
	})

	t.Run("invalid timeout keeps default", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "1")
		t.Setenv("MERCADOPAGO_TIMEOUT_SECONDS", "soon")
		g, err := NewMercadoPagoGatewayFromEnv()
		if err != nil || g.timeout != defaultGatewayTimeout {
			t.Fatalf("expected default timeout, got %+v err=%v", g, err)
		}
	})
}

func TestMercadoPagoGateway_CreatePayment(t *testing.T) {
	t.Run("nil gateway is not configured", func(t *testing.T) {
		var g *MercadoPagoGateway
		if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`)); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
			t.Fatalf("expected not configured, got %v", err)
		}
	})

	t.Run("mock echoes payload as approved", func(t *testing.T) {
		g := &MercadoPagoGateway{mockMode: true}
		id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"external_reference":"calc-1","date_created":"2026-01-01T00:00:00Z"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id == "" || status != "approved" {
			t.Fatalf("unexpected id=%q status=%q", id, status)
		}
		var body map[string]any
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["external_reference"] != "calc-1" || body["id"] != id || body["status_detail"] != "accredited" {
			t.Fatalf("unexpected body: %v", body)
		}
		if body["date_created"] != "2026-01-01T00:00:00Z" {
			t.Fatalf("existing date_created must be kept: %v", body["date_created"])
		}
		if _, ok := body["date_approved"]; !ok {
			t.Fatalf("expected date_approved")
		}
	})

	t.Run("mock tolerates non-object payload", func(t *testing.T) {
		g := &MercadoPagoGateway{mockMode: true}
		_, _, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`[1,2]`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var body map[string]any
		if err := json.Unmarshal(raw, &body); err != nil || body["request_payload_raw"] != "[1,2]" {
			t.Fatalf("unexpected body: %s", raw)
		}
	})
}
