package response

import (
	"time"

	"insumos_limpeza/internal/domain/entities"
)

type CalculationResponse struct {
	ID             string                     `json:"id"`
	CalculationID  string                     `json:"calculation_id"`
	Input          entities.CalculatorInput   `json:"input"`
	Result         entities.CalculationResult `json:"result"`
	Contato        entities.Contact           `json:"contato"`
	ReportStatus   string                     `json:"report_status"`
	ReportAttempts int                        `json:"report_attempts"`
	CreatedAt      time.Time                  `json:"created_at"`
	UpdatedAt      time.Time                  `json:"updated_at"`
}

func FromCalculationRecord(r entities.CalculationRecord) CalculationResponse {
	return CalculationResponse{
		ID:             r.ID,
		CalculationID:  r.ID,
		Input:          r.Input,
		Result:         r.Result,
		Contato:        r.Contato,
		ReportStatus:   string(r.ReportStatus),
		ReportAttempts: r.ReportAttempts,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// ReportDeliveryResponse is returned by the report delivery route.
type ReportDeliveryResponse struct {
	CalculationID  string    `json:"calculation_id"`
	ReportStatus   string    `json:"report_status"`
	ReportAttempts int       `json:"report_attempts"`
	Email          string    `json:"email"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromReportDelivery(r entities.CalculationRecord) ReportDeliveryResponse {
	return ReportDeliveryResponse{
		CalculationID:  r.ID,
		ReportStatus:   string(r.ReportStatus),
		ReportAttempts: r.ReportAttempts,
		Email:          r.Contato.Email,
		UpdatedAt:      r.UpdatedAt,
	}
}
