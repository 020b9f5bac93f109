package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the checkout outcome reported by the provider.
type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// SubscriptionPayment is the first monthly charge of a supplies subscription.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (calculation_id-index): calculation_id
//
// Amount is always the discounted monthly cost of the calculation, never a
// value sent by the client.
type SubscriptionPayment struct {
	ID            string        `json:"id"`
	CalculationID string        `json:"calculation_id"`
	Amount        float64       `json:"amount"`
	Date          time.Time     `json:"date"`
	Status        PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
