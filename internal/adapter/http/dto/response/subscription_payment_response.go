package response

import (
	"time"

	"insumos_limpeza/internal/domain/entities"
)

type SubscriptionPaymentResponse struct {
	PaymentID     string    `json:"payment_id"`
	ID            string    `json:"id"`
	CalculationID string    `json:"calculation_id"`
	Amount        float64   `json:"amount"`
	PaymentDate   time.Time `json:"payment_date"`
	Date          time.Time `json:"date"`
	Status        string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromSubscriptionPayment(p entities.SubscriptionPayment) SubscriptionPaymentResponse {
	return SubscriptionPaymentResponse{
		PaymentID:     p.ID,
		ID:            p.ID,
		CalculationID: p.CalculationID,
		Amount:        p.Amount,
		PaymentDate:   p.Date,
		Date:          p.Date,
		Status:        string(p.Status),
		MPPayloadRaw:  string(p.MPPayloadRaw),
		MPPayload:     p.MPPayload,
	}
}
