package interfaces

import (
	"context"
	"insumos_limpeza/internal/domain/entities"
)

// ICalculationRepository abstracts DynamoDB persistence for CalculationRecord.
//
// The service must be able to:
//   - store a calculation together with the lead's contact
//   - load it back for reports and checkout
//   - claim report delivery atomically (pendente|falhou -> enviando)
//   - record the delivery outcome
//
// Not-found lookups and lost claims return a zero-value record and no error.

type ICalculationRepository interface {
	Create(ctx context.Context, r entities.CalculationRecord) (entities.CalculationRecord, error)
	GetByID(ctx context.Context, id string) (entities.CalculationRecord, error)
	ClaimReportDelivery(ctx context.Context, id string) (entities.CalculationRecord, error)
	UpdateReportStatus(ctx context.Context, id string, status entities.ReportStatus) (entities.CalculationRecord, error)
}
