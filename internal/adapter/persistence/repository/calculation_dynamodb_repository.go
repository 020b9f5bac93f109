package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"insumos_limpeza/internal/domain/entities"
	"insumos_limpeza/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCalculationsTableName = "calculations"

// calculationItem keeps input and result as JSON documents; DynamoDB numbers
// would otherwise need string round trips for every nested float.
type calculationItem struct {
	ID               string `dynamodbav:"id"`
	Input            string `dynamodbav:"input"`
	Result           string `dynamodbav:"result"`
	CustoMensalTotal string `dynamodbav:"custo_mensal_total"`
	CustoComDesconto string `dynamodbav:"custo_com_desconto"`
	ContactName      string `dynamodbav:"contact_name,omitempty"`
	ContactCompany   string `dynamodbav:"contact_company,omitempty"`
	ContactEmail     string `dynamodbav:"contact_email,omitempty"`
	ContactPhone     string `dynamodbav:"contact_phone,omitempty"`
	ReportStatus     string `dynamodbav:"report_status"`
	ReportAttempts   int    `dynamodbav:"report_attempts"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// CalculationDynamoRepository persists CalculationRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type CalculationDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICalculationRepository = (*CalculationDynamoRepository)(nil)

func NewCalculationDynamoRepository(ddb DynamoAPI) *CalculationDynamoRepository {
	return &CalculationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CALCULATIONS_TABLE", defaultCalculationsTableName),
	}
}

func (r *CalculationDynamoRepository) Create(ctx context.Context, rec entities.CalculationRecord) (entities.CalculationRecord, error) {
	it, err := toCalculationItem(rec)
	if err != nil {
		return entities.CalculationRecord{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.CalculationRecord{}, err
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
		return entities.CalculationRecord{}, err
	}
	return rec, nil
}

func (r *CalculationDynamoRepository) GetByID(ctx context.Context, id string) (entities.CalculationRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CalculationRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.CalculationRecord{}, nil
	}

	var it calculationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CalculationRecord{}, err
	}
	return fromCalculationItem(it)
}

// ClaimReportDelivery moves report_status from pendente or falhou to enviando
// and counts the attempt. A record in any other state is left untouched and a
// zero value is returned.
func (r *CalculationDynamoRepository) ClaimReportDelivery(ctx context.Context, id string) (entities.CalculationRecord, error) {
	return r.update(ctx, id, "(#report_status = :pendente OR #report_status = :falhou)", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #report_status = :enviando, #updated_at = :updated_at ADD #report_attempts :one"
		vals := map[string]types.AttributeValue{
			":enviando":   &types.AttributeValueMemberS{Value: string(entities.ReportStatusEnviando)},
			":pendente":   &types.AttributeValueMemberS{Value: string(entities.ReportStatusPendente)},
			":falhou":     &types.AttributeValueMemberS{Value: string(entities.ReportStatusFalhou)},
			":one":        &types.AttributeValueMemberN{Value: "1"},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#report_status":   "report_status",
			"#report_attempts": "report_attempts",
			"#updated_at":      "updated_at",
		}
		return expr, vals, names
	})
}

func (r *CalculationDynamoRepository) UpdateReportStatus(ctx context.Context, id string, status entities.ReportStatus) (entities.CalculationRecord, error) {
	return r.update(ctx, id, "", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #report_status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#report_status": "report_status",
			"#updated_at":    "updated_at",
		}
		return expr, vals, names
	})
}

func (r *CalculationDynamoRepository) update(
	ctx context.Context,
	id string,
	extraCondition string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.CalculationRecord, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	condition := "attribute_exists(#id)"
	if extraCondition != "" {
		condition += " AND " + extraCondition
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.CalculationRecord{}, nil
		}
		return entities.CalculationRecord{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.CalculationRecord{}, nil
	}
	var it calculationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.CalculationRecord{}, err
	}
	return fromCalculationItem(it)
}

func toCalculationItem(rec entities.CalculationRecord) (calculationItem, error) {
	input, err := json.Marshal(rec.Input)
	if err != nil {
		return calculationItem{}, fmt.Errorf("marshal input: %w", err)
	}
	result, err := json.Marshal(rec.Result)
	if err != nil {
		return calculationItem{}, fmt.Errorf("marshal result: %w", err)
	}
	return calculationItem{
		ID:               rec.ID,
		Input:            string(input),
		Result:           string(result),
		CustoMensalTotal: floatToString(rec.Result.CustoMensalTotal),
		CustoComDesconto: floatToString(rec.Result.CustoComDesconto),
		ContactName:      rec.Contato.Nome,
		ContactCompany:   rec.Contato.Empresa,
		ContactEmail:     rec.Contato.Email,
		ContactPhone:     rec.Contato.Telefone,
		ReportStatus:     string(rec.ReportStatus),
		ReportAttempts:   rec.ReportAttempts,
		CreatedAt:        rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        rec.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromCalculationItem(it calculationItem) (entities.CalculationRecord, error) {
	var input entities.CalculatorInput
	if err := json.Unmarshal([]byte(it.Input), &input); err != nil {
		return entities.CalculationRecord{}, fmt.Errorf("unmarshal input id=%s: %w", it.ID, err)
	}
	var result entities.CalculationResult
	if err := json.Unmarshal([]byte(it.Result), &result); err != nil {
		return entities.CalculationRecord{}, fmt.Errorf("unmarshal result id=%s: %w", it.ID, err)
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.CalculationRecord{
		ID:     it.ID,
		Input:  input,
		Result: result,
		Contato: entities.Contact{
			Nome:     it.ContactName,
			Empresa:  it.ContactCompany,
			Email:    it.ContactEmail,
			Telefone: it.ContactPhone,
		},
		ReportStatus:   entities.ReportStatus(it.ReportStatus),
		ReportAttempts: it.ReportAttempts,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}, nil
}
