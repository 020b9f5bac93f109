package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"insumos_limpeza/internal/domain/entities"
	"insumos_limpeza/internal/usecase/interfaces"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

var (
	ErrSubscriptionPaymentNotFound    = errors.New("subscription payment not found")
	ErrInvalidPaymentCalculationID    = errors.New("invalid calculation_id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrNothingToCharge                = errors.New("calculation has no amount to charge")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// ISubscriptionPaymentUseCase charges the first month of a supplies subscription.
//
// The amount is the discounted monthly cost of the referenced calculation.

type ISubscriptionPaymentUseCase interface {
	CreateCheckout(ctx context.Context, calculationID string, mpPayload json.RawMessage) (entities.SubscriptionPayment, error)
	GetByID(ctx context.Context, id string) (entities.SubscriptionPayment, error)
	ListByCalculationID(ctx context.Context, calculationID string) ([]entities.SubscriptionPayment, error)
}

type SubscriptionPaymentUseCase struct {
	repo            interfaces.ISubscriptionPaymentRepository
	calculationRepo interfaces.ICalculationRepository
	gateway         interfaces.IPaymentGateway
}

var _ ISubscriptionPaymentUseCase = (*SubscriptionPaymentUseCase)(nil)

func NewSubscriptionPaymentUseCase(repo interfaces.ISubscriptionPaymentRepository, calculationRepo interfaces.ICalculationRepository, gateway interfaces.IPaymentGateway) *SubscriptionPaymentUseCase {
	return &SubscriptionPaymentUseCase{repo: repo, calculationRepo: calculationRepo, gateway: gateway}
}

func (u *SubscriptionPaymentUseCase) CreateCheckout(ctx context.Context, calculationID string, mpPayload json.RawMessage) (entities.SubscriptionPayment, error) {
	log.Printf("[payment][usecase] checkout start raw_calculation_id=%q payload_len=%d", calculationID, len(mpPayload))
	mockMode := isPaymentGatewayMockEnabled()
	calculationID = strings.TrimSpace(calculationID)
	if calculationID == "" {
		log.Printf("[payment][usecase] invalid calculation_id (empty)")
		return entities.SubscriptionPayment{}, ErrInvalidPaymentCalculationID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload calculation_id=%s", calculationID)
			return entities.SubscriptionPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured calculation_id=%s", calculationID)
		return entities.SubscriptionPayment{}, errors.New("payment gateway not configured")
	}
	if u.calculationRepo == nil {
		log.Printf("[payment][usecase] calculation repository not configured calculation_id=%s", calculationID)
		return entities.SubscriptionPayment{}, errors.New("calculation repository not configured")
	}

	rec, err := u.calculationRepo.GetByID(ctx, calculationID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading calculation calculation_id=%s err=%v", calculationID, err)
		return entities.SubscriptionPayment{}, err
	}
	if rec.ID == "" {
		log.Printf("[payment][usecase] calculation not found calculation_id=%s", calculationID)
		return entities.SubscriptionPayment{}, ErrCalculationNotFound
	}
	amount := roundCents(rec.Result.CustoComDesconto)
	if amount <= 0 {
		log.Printf("[payment][usecase] nothing to charge calculation_id=%s amount=%.2f", calculationID, amount)
		return entities.SubscriptionPayment{}, ErrNothingToCharge
	}
	log.Printf("[payment][usecase] calculation loaded calculation_id=%s amount=%.2f", calculationID, amount)

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		log.Printf("[payment][usecase] payload is not an object calculation_id=%s err=%v", calculationID, err)
		return entities.SubscriptionPayment{}, ErrInvalidMPPayload
	}
	if !mockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[payment][usecase] missing payment_method_id calculation_id=%s", calculationID)
			return entities.SubscriptionPayment{}, ErrInvalidMPPayload
		}
		ensurePayerDefaults(reqMap, rec.Contato.Email)
		if !hasPayer(reqMap) {
			log.Printf("[payment][usecase] missing/invalid payer calculation_id=%s", calculationID)
			return entities.SubscriptionPayment{}, ErrInvalidMPPayload
		}
	}

	// Mercado Pago uses external_reference to reconcile events.
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = calculationID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Assinatura mensal de insumos de limpeza - cálculo %s", calculationID)
	}
	// The source of truth for amount is the stored calculation.
	reqMap["transaction_amount"] = amount
	mpPayload, err = json.Marshal(reqMap)
	if err != nil {
		return entities.SubscriptionPayment{}, err
	}

	var providerPaymentID, providerStatus string
	var providerResp json.RawMessage
	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping external payment gateway calculation_id=%s", calculationID)
		providerPaymentID, providerStatus, providerResp, err = mockProviderResponse(reqMap)
		if err != nil {
			return entities.SubscriptionPayment{}, err
		}
	} else {
		log.Printf("[payment][usecase] calling payment gateway calculation_id=%s", calculationID)
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed calculation_id=%s err=%v", calculationID, err)
			return entities.SubscriptionPayment{}, classifyGatewayError(err)
		}
	}
	log.Printf("[payment][usecase] payment gateway success calculation_id=%s provider_payment_id=%s provider_status=%s", calculationID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed calculation_id=%s err=%v", calculationID, err)
	}

	p := entities.SubscriptionPayment{
		ID:            providerPaymentID,
		CalculationID: calculationID,
		Amount:        amount,
		Date:          time.Now().UTC(),
		Status:        mapProviderStatus(providerStatus),
		MPPayloadRaw:  providerResp,
		MPPayload:     parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed calculation_id=%s payment_id=%s err=%v", calculationID, p.ID, err)
		return entities.SubscriptionPayment{}, err
	}
	log.Printf("[payment][usecase] checkout success calculation_id=%s payment_id=%s status=%s", calculationID, created.ID, created.Status)
	return created, nil
}

func (u *SubscriptionPaymentUseCase) GetByID(ctx context.Context, id string) (entities.SubscriptionPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SubscriptionPayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.SubscriptionPayment{}, err
	}
	if p.ID == "" {
		return entities.SubscriptionPayment{}, ErrSubscriptionPaymentNotFound
	}
	return p, nil
}

func (u *SubscriptionPaymentUseCase) ListByCalculationID(ctx context.Context, calculationID string) ([]entities.SubscriptionPayment, error) {
	calculationID = strings.TrimSpace(calculationID)
	if calculationID == "" {
		return nil, ErrInvalidPaymentCalculationID
	}
	return u.repo.ListByCalculationID(ctx, calculationID)
}

func mapProviderStatus(s string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "approved", "authorized":
		return entities.PaymentStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusNegado
	default:
		return entities.PaymentStatusPendente
	}
}

func mockProviderResponse(req map[string]any) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp := make(map[string]any, len(req)+5)
	for k, v := range req {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// ensurePayerDefaults fills payer.email when neither id nor email was sent:
// first the lead's contact e-mail, then the sandbox test payer.
func ensurePayerDefaults(m map[string]any, contactEmail string) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}

	switch {
	case strings.TrimSpace(contactEmail) != "":
		payer["email"] = strings.TrimSpace(contactEmail)
	case strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")) != "":
		payer["email"] = strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	case strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-"):
		payer["email"] = "test_user_br@testuser.com"
	}
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
