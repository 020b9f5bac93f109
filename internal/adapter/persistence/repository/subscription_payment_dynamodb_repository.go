package repository

import (
	"context"
	"strconv"
	"time"

	"insumos_limpeza/internal/domain/entities"
	"insumos_limpeza/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName   = "subscription_payments"
	paymentsCalculationIDIndex = "calculation_id-index"
)

type subscriptionPaymentItem struct {
	ID            string                 `dynamodbav:"id"`
	CalculationID string                 `dynamodbav:"calculation_id"`
	Amount        string                 `dynamodbav:"amount"`
	Date          string                 `dynamodbav:"date"`
	Status        string                 `dynamodbav:"status"`
	MPPayload     map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw  string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// SubscriptionPaymentDynamoRepository persists SubscriptionPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: calculation_id-index (PK: calculation_id)

type SubscriptionPaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISubscriptionPaymentRepository = (*SubscriptionPaymentDynamoRepository)(nil)

func NewSubscriptionPaymentDynamoRepository(ddb DynamoAPI) *SubscriptionPaymentDynamoRepository {
	return &SubscriptionPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *SubscriptionPaymentDynamoRepository) Create(ctx context.Context, p entities.SubscriptionPayment) (entities.SubscriptionPayment, error) {
	it := toSubscriptionPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.SubscriptionPayment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.SubscriptionPayment{}, err
	}
	return p, nil
}

func (r *SubscriptionPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.SubscriptionPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SubscriptionPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.SubscriptionPayment{}, nil
	}

	var it subscriptionPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SubscriptionPayment{}, err
	}
	return fromSubscriptionPaymentItem(it), nil
}

func (r *SubscriptionPaymentDynamoRepository) ListByCalculationID(ctx context.Context, calculationID string) ([]entities.SubscriptionPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsCalculationIDIndex),
		KeyConditionExpression: aws.String("calculation_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: calculationID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.SubscriptionPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it subscriptionPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromSubscriptionPaymentItem(it))
	}
	return items, nil
}

func toSubscriptionPaymentItem(p entities.SubscriptionPayment) subscriptionPaymentItem {
	return subscriptionPaymentItem{
		ID:            p.ID,
		CalculationID: p.CalculationID,
		Amount:        floatToString(p.Amount),
		Date:          p.Date.UTC().Format(time.RFC3339Nano),
		Status:        string(p.Status),
		MPPayload:     p.MPPayload,
		MPPayloadRaw:  string(p.MPPayloadRaw),
	}
}

func fromSubscriptionPaymentItem(it subscriptionPaymentItem) entities.SubscriptionPayment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.SubscriptionPayment{
		ID:            it.ID,
		CalculationID: it.CalculationID,
		Amount:        amount,
		Date:          dt,
		Status:        entities.PaymentStatus(it.Status),
		MPPayload:     it.MPPayload,
		MPPayloadRaw:  []byte(it.MPPayloadRaw),
	}
}
