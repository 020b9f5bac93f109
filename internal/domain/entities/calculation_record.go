package entities

import "time"

// ReportStatus tracks delivery of the calculation report to the lead.
//
// Delivery is at-most-once: only pendente and falhou records may be claimed.
type ReportStatus string

const (
	ReportStatusPendente ReportStatus = "pendente"
	ReportStatusEnviando ReportStatus = "enviando"
	ReportStatusEnviado  ReportStatus = "enviado"
	ReportStatusFalhou   ReportStatus = "falhou"
)

// Claimable reports whether a delivery attempt may start from this status.
func (s ReportStatus) Claimable() bool {
	return s == ReportStatusPendente || s == ReportStatusFalhou
}

// Contact holds the lead's contact details captured with the calculation.
type Contact struct {
	Nome     string `json:"nome"`
	Empresa  string `json:"empresa,omitempty"`
	Email    string `json:"email"`
	Telefone string `json:"telefone,omitempty"`
}

// CalculationRecord is a calculation persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Input and Result are stored as JSON documents so numeric fields survive the
// round trip without rounding.
type CalculationRecord struct {
	ID             string            `json:"id"`
	Input          CalculatorInput   `json:"input"`
	Result         CalculationResult `json:"result"`
	Contato        Contact           `json:"contato"`
	ReportStatus   ReportStatus      `json:"reportStatus"`
	ReportAttempts int               `json:"reportAttempts"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// ReportAttachment is one rendered document attached to the report e-mail.
type ReportAttachment struct {
	FileName    string
	ContentType string
	Content     []byte
}
