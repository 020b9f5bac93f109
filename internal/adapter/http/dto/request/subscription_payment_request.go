package request

import "encoding/json"

// SubscriptionPaymentCreateRequest is the payload for the subscription checkout route.
//
// `mp_payload` is stored as-is (raw JSON) to support varying Mercado Pago schemas.
// The bare Mercado Pago body is accepted as well.
type SubscriptionPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
