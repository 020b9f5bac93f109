package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

const defaultGatewayTimeout = 15 * time.Second

// MercadoPagoGateway charges the monthly supplies subscription through the
// Mercado Pago payments API.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	timeout  time.Duration
}

// NewMercadoPagoGatewayFromEnv reads MERCADOPAGO_ACCESS_TOKEN and
// MERCADOPAGO_TIMEOUT_SECONDS.
func NewMercadoPagoGatewayFromEnv() (*MercadoPagoGateway, error) {
	g, err := NewMercadoPagoGateway(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")))
	if err != nil {
		return nil, err
	}
	if raw := strings.TrimSpace(os.Getenv("MERCADOPAGO_TIMEOUT_SECONDS")); raw != "" {
		if secs, convErr := strconv.Atoi(raw); convErr == nil && secs > 0 {
			g.timeout = time.Duration(secs) * time.Second
		}
	}
	return g, nil
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[subscription][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, timeout: defaultGatewayTimeout}, nil
	}

	if accessToken == "" {
		log.Printf("[subscription][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[subscription][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[subscription][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), timeout: defaultGatewayTimeout}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return mockCreate(requestPayload)
	}

	if g == nil || g.client == nil {
		log.Printf("[subscription][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.Printf("[subscription][gateway] payload unmarshal failed err=%v", err)
		return "", "", nil, err
	}
	log.Printf("[subscription][gateway] create start payload_len=%d", len(requestPayload))

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[subscription][gateway] sdk create failed err=%v", err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[subscription][gateway] response marshal failed err=%v", err)
		return "", "", nil, err
	}
	log.Printf("[subscription][gateway] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

// mockCreate echoes the request back as an approved payment.
func mockCreate(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	log.Printf("[subscription][gateway] mock create start payload_len=%d", len(requestPayload))

	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = now
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = now
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[subscription][gateway] mock response marshal failed err=%v", err)
		return "", "", nil, err
	}

	log.Printf("[subscription][gateway] mock create success provider_payment_id=%s", id)
	return id, "approved", b, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
