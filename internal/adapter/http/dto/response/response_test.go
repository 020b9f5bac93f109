package response

import (
	"encoding/json"
	"testing"
	"time"

	"insumos_limpeza/internal/domain/entities"
)

func TestFromSubscriptionPayment(t *testing.T) {
	now := time.Now().UTC()
	payload := map[string]interface{}{"a": "b"}
	raw := json.RawMessage(`{"id":123}`)

	p := entities.SubscriptionPayment{
		ID:            "pay-1",
		CalculationID: "calc-1",
		Amount:        85.5,
		Date:          now,
		Status:        entities.PaymentStatusAprovado,
		MPPayloadRaw:  raw,
		MPPayload:     payload,
	}

	res := FromSubscriptionPayment(p)
	if res.ID != "pay-1" || res.PaymentID != "pay-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.CalculationID != "calc-1" || res.Status != "aprovado" || res.Amount != 85.5 {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.Date.Equal(now) || !res.PaymentDate.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if res.MPPayloadRaw != string(raw) || res.MPPayload["a"] != "b" {
		t.Fatalf("unexpected payload: %+v", res)
	}
}

func TestFromCalculationRecord(t *testing.T) {
	now := time.Now().UTC()
	rec := entities.CalculationRecord{
		ID:             "calc-1",
		Input:          entities.CalculatorInput{NumeroFuncionarios: 10},
		Result:         entities.CalculationResult{CustoComDesconto: 85},
		Contato:        entities.Contact{Nome: "Ana", Email: "ana@acme.com.br"},
		ReportStatus:   entities.ReportStatusEnviado,
		ReportAttempts: 2,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	res := FromCalculationRecord(rec)
	if res.ID != "calc-1" || res.CalculationID != "calc-1" || res.ReportStatus != "enviado" || res.ReportAttempts != 2 {
		t.Fatalf("unexpected header: %+v", res)
	}
	if res.Input.NumeroFuncionarios != 10 || res.Result.CustoComDesconto != 85 || res.Contato.Email != "ana@acme.com.br" {
		t.Fatalf("unexpected body: %+v", res)
	}

	delivery := FromReportDelivery(rec)
	if delivery.CalculationID != "calc-1" || delivery.Email != "ana@acme.com.br" || delivery.ReportStatus != "enviado" || !delivery.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected delivery: %+v", delivery)
	}
}
