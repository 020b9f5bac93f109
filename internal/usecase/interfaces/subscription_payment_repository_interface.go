package interfaces

import (
	"context"
	"insumos_limpeza/internal/domain/entities"
)

// ISubscriptionPaymentRepository abstracts DynamoDB persistence for SubscriptionPayment.

type ISubscriptionPaymentRepository interface {
	Create(ctx context.Context, p entities.SubscriptionPayment) (entities.SubscriptionPayment, error)
	GetByID(ctx context.Context, id string) (entities.SubscriptionPayment, error)
	ListByCalculationID(ctx context.Context, calculationID string) ([]entities.SubscriptionPayment, error)
}
