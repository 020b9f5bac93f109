package interfaces

import (
	"context"
	"insumos_limpeza/internal/domain/entities"
)

// IReportRenderer turns a stored calculation into downloadable documents.
type IReportRenderer interface {
	PDF(r entities.CalculationRecord) ([]byte, error)
	XLSX(r entities.CalculationRecord) ([]byte, error)
}

// IReportSender delivers the rendered report to the lead's e-mail.
//
// Implementations make a single attempt; retries are driven by the caller.
type IReportSender interface {
	Send(ctx context.Context, r entities.CalculationRecord, attachments []entities.ReportAttachment) error
}
