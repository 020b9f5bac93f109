package handlers

import (
	"encoding/json"
	"errors"
	response "insumos_limpeza/internal/adapter/http/dto/response"
	"insumos_limpeza/internal/usecase"
	"insumos_limpeza/pkg"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// SubscriptionPaymentHandler handles HTTP requests for subscription checkouts.
type SubscriptionPaymentHandler struct {
	usecase usecase.ISubscriptionPaymentUseCase
}

func NewSubscriptionPaymentHandler(uc usecase.ISubscriptionPaymentUseCase) *SubscriptionPaymentHandler {
	return &SubscriptionPaymentHandler{usecase: uc}
}

// CreatePaymentByCalculationID godoc
// @Summary      Subscribe to the monthly supplies plan of a calculation
// @Description  Charges the discounted monthly cost through Mercado Pago. The body is the Mercado Pago payment request, bare or wrapped in mp_payload.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        calculation_id  path      string  true  "Calculation ID"
// @Param        body            body      request.SubscriptionPaymentCreateRequest  false  "Mercado Pago payload"
// @Success      200             {object}  response.SubscriptionPaymentResponse
// @Failure      400             {object}  pkg.HTTPError
// @Failure      404             {object}  pkg.HTTPError
// @Router       /payments/{calculation_id} [post]
func (h *SubscriptionPaymentHandler) CreatePaymentByCalculationID(c *gin.Context) {
	calculationID := c.Param("calculation_id")
	log.Printf("[subscription][handler] create start calculation_id=%s", calculationID)
	mockMode := isPaymentGatewayMockEnabled()
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[subscription][handler] payload invalid in mock mode; fallback to empty payload calculation_id=%s err=%v", calculationID, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[subscription][handler] invalid payload calculation_id=%s err=%v", calculationID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateCheckout(c.Request.Context(), calculationID, mpPayload)
	if err != nil {
		log.Printf("[subscription][handler] create failed calculation_id=%s err=%v", calculationID, err)
		appErr := mapSubscriptionPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[subscription][handler] create success calculation_id=%s payment_id=%s status=%s", calculationID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromSubscriptionPayment(created))
}

// GetPaymentByCalculationID godoc
// @Summary      Latest subscription payment of a calculation
// @Tags         payments
// @Produce      json
// @Param        calculation_id  path      string  true  "Calculation ID"
// @Success      200             {object}  response.SubscriptionPaymentResponse
// @Failure      404             {object}  pkg.HTTPError
// @Router       /payments/{calculation_id} [get]
func (h *SubscriptionPaymentHandler) GetPaymentByCalculationID(c *gin.Context) {
	calculationID := c.Param("calculation_id")
	log.Printf("[subscription][handler] get-by-calculation start calculation_id=%s", calculationID)

	payments, err := h.usecase.ListByCalculationID(c.Request.Context(), calculationID)
	if err != nil {
		log.Printf("[subscription][handler] get-by-calculation failed calculation_id=%s err=%v", calculationID, err)
		appErr := mapSubscriptionPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		log.Printf("[subscription][handler] get-by-calculation not-found calculation_id=%s", calculationID)
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	log.Printf("[subscription][handler] get-by-calculation success calculation_id=%s payment_id=%s status=%s", calculationID, latest.ID, latest.Status)

	c.JSON(http.StatusOK, response.FromSubscriptionPayment(latest))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapSubscriptionPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentCalculationID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrCalculationNotFound):
		return pkg.NewDomainErrorSimple("CALCULATION_NOT_FOUND", "Calculation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNothingToCharge):
		return pkg.NewDomainErrorSimple("NOTHING_TO_CHARGE", "Calculation has no amount to charge", http.StatusConflict)
	case errors.Is(err, usecase.ErrSubscriptionPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
