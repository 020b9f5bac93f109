package repository

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"insumos_limpeza/internal/domain/calculator"
	"insumos_limpeza/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo keeps items by id and records the last update/query request.
type fakeDynamo struct {
	items      map[string]map[string]types.AttributeValue
	lastUpdate *dynamodb.UpdateItemInput
	lastQuery  *dynamodb.QueryInput
	updateErr  error
	updateOut  map[string]types.AttributeValue
	queryOut   []map[string]types.AttributeValue
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	id := in.Item["id"].(*types.AttributeValueMemberS).Value
	if _, exists := f.items[id]; exists && strings.Contains(aws.ToString(in.ConditionExpression), "attribute_not_exists") {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	id := in.Key["id"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[id]}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.lastUpdate = in
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &dynamodb.UpdateItemOutput{Attributes: f.updateOut}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.lastQuery = in
	return &dynamodb.QueryOutput{Items: f.queryOut}, nil
}

func sampleRecord() entities.CalculationRecord {
	in := entities.CalculatorInput{
		NumeroFuncionarios:                42,
		FrequenciaLimpezaManutencaoDiaria: entities.FrequenciaSemanal,
		NivelSujidadeGeral:                entities.NivelAlto,
		Ambientes: []entities.Environment{
			{ID: "amb-1", Tipo: entities.EnvironmentEscritorio, AreaM2: 120.5},
			{ID: "amb-2", Tipo: entities.EnvironmentBanheiroVestiario, AreaM2: 18.25, NumeroBoxes: 3, NumeroPias: 2},
		},
		UtilizaEPIs: true,
	}
	at := time.Date(2026, 3, 10, 12, 30, 0, 123, time.UTC)
	return entities.CalculationRecord{
		ID:           "calc-1",
		Input:        in,
		Result:       calculator.Calculate(in),
		Contato:      entities.Contact{Nome: "Ana", Empresa: "ACME", Email: "ana@acme.com.br", Telefone: "+55 11 99999-0000"},
		ReportStatus: entities.ReportStatusPendente,
		CreatedAt:    at,
		UpdatedAt:    at,
	}
}

func assertSameRecord(t *testing.T, got, want entities.CalculationRecord) {
	t.Helper()
	if got.ID != want.ID || got.Contato != want.Contato || got.ReportStatus != want.ReportStatus || got.ReportAttempts != want.ReportAttempts {
		t.Fatalf("unexpected record header: %+v", got)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) || !got.UpdatedAt.Equal(want.UpdatedAt) {
		t.Fatalf("timestamps differ: %v/%v", got.CreatedAt, got.UpdatedAt)
	}
	if !reflect.DeepEqual(got.Input, want.Input) {
		t.Fatalf("input differs:\n got %+v\nwant %+v", got.Input, want.Input)
	}
	if !reflect.DeepEqual(got.Result, want.Result) {
		t.Fatalf("result differs:\n got %+v\nwant %+v", got.Result, want.Result)
	}
}

func TestCalculationDynamoRepository_CreateAndGet(t *testing.T) {
	t.Setenv("CALCULATIONS_TABLE", "calc-test")
	ddb := newFakeDynamo()
	repo := NewCalculationDynamoRepository(ddb)
	rec := sampleRecord()

	if _, err := repo.Create(context.Background(), rec); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, ok := ddb.items["calc-1"]["custo_com_desconto"]; !ok {
		t.Fatalf("expected denormalized cost attribute")
	}

	got, err := repo.GetByID(context.Background(), "calc-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	assertSameRecord(t, got, rec)

	t.Run("duplicate id is rejected", func(t *testing.T) {
		_, err := repo.Create(context.Background(), rec)
		var cfe *types.ConditionalCheckFailedException
		if !errors.As(err, &cfe) {
			t.Fatalf("expected conditional failure, got %v", err)
		}
	})

	t.Run("missing id returns zero value", func(t *testing.T) {
		got, err := repo.GetByID(context.Background(), "nope")
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero record, got %+v err=%v", got, err)
		}
	})

	t.Run("corrupted json is reported", func(t *testing.T) {
		ddb.items["bad"] = map[string]types.AttributeValue{
			"id":     &types.AttributeValueMemberS{Value: "bad"},
			"input":  &types.AttributeValueMemberS{Value: "{"},
			"result": &types.AttributeValueMemberS{Value: "{}"},
		}
		if _, err := repo.GetByID(context.Background(), "bad"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestCalculationDynamoRepository_ClaimReportDelivery(t *testing.T) {
	t.Run("claim succeeds", func(t *testing.T) {
		ddb := newFakeDynamo()
		repo := NewCalculationDynamoRepository(ddb)

		claimed := sampleRecord()
		claimed.ReportStatus = entities.ReportStatusEnviando
		claimed.ReportAttempts = 1
		it, err := toCalculationItem(claimed)
		if err != nil {
			t.Fatalf("item: %v", err)
		}
		ddb.updateOut, err = attributevalue.MarshalMap(it)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}

		got, err := repo.ClaimReportDelivery(context.Background(), "calc-1")
		if err != nil {
			t.Fatalf("claim: %v", err)
		}
		assertSameRecord(t, got, claimed)

		cond := aws.ToString(ddb.lastUpdate.ConditionExpression)
		if !strings.Contains(cond, "attribute_exists(#id)") || !strings.Contains(cond, ":pendente") || !strings.Contains(cond, ":falhou") {
			t.Fatalf("unexpected condition: %s", cond)
		}
		if !strings.Contains(aws.ToString(ddb.lastUpdate.UpdateExpression), "ADD #report_attempts :one") {
			t.Fatalf("attempt must be counted: %s", aws.ToString(ddb.lastUpdate.UpdateExpression))
		}
		if v := ddb.lastUpdate.ExpressionAttributeValues[":enviando"].(*types.AttributeValueMemberS).Value; v != "enviando" {
			t.Fatalf("unexpected target status %s", v)
		}
		if ddb.lastUpdate.ExpressionAttributeNames["#id"] != "id" {
			t.Fatalf("expected #id name")
		}
	})

	t.Run("claim lost returns zero value", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.updateErr = &types.ConditionalCheckFailedException{Message: aws.String("status")}
		repo := NewCalculationDynamoRepository(ddb)

		got, err := repo.ClaimReportDelivery(context.Background(), "calc-1")
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero record, got %+v err=%v", got, err)
		}
	})

	t.Run("other errors propagate", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.updateErr = errors.New("throttled")
		repo := NewCalculationDynamoRepository(ddb)

		if _, err := repo.ClaimReportDelivery(context.Background(), "calc-1"); err == nil || err.Error() != "throttled" {
			t.Fatalf("expected throttled, got %v", err)
		}
	})
}

func TestCalculationDynamoRepository_UpdateReportStatus(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewCalculationDynamoRepository(ddb)

	_, err := repo.UpdateReportStatus(context.Background(), "calc-1", entities.ReportStatusEnviado)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cond := aws.ToString(ddb.lastUpdate.ConditionExpression); cond != "attribute_exists(#id)" {
		t.Fatalf("unexpected condition: %s", cond)
	}
	if v := ddb.lastUpdate.ExpressionAttributeValues[":status"].(*types.AttributeValueMemberS).Value; v != "enviado" {
		t.Fatalf("unexpected status %s", v)
	}
}

func TestSubscriptionPaymentDynamoRepository(t *testing.T) {
	t.Setenv("PAYMENTS_TABLE", "")
	ddb := newFakeDynamo()
	repo := NewSubscriptionPaymentDynamoRepository(ddb)
	if repo.tableName != defaultPaymentsTableName {
		t.Fatalf("expected default table, got %s", repo.tableName)
	}

	at := time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC)
	p := entities.SubscriptionPayment{
		ID:            "pay-1",
		CalculationID: "calc-1",
		Amount:        1863.2,
		Date:          at,
		Status:        entities.PaymentStatusAprovado,
		MPPayloadRaw:  json.RawMessage(`{"id":123}`),
		MPPayload:     map[string]interface{}{"status": "approved"},
	}
	if _, err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(context.Background(), "pay-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != "pay-1" || got.CalculationID != "calc-1" || got.Amount != 1863.2 || !got.Date.Equal(at) || got.Status != entities.PaymentStatusAprovado {
		t.Fatalf("unexpected payment: %+v", got)
	}
	if string(got.MPPayloadRaw) != `{"id":123}` || got.MPPayload["status"] != "approved" {
		t.Fatalf("unexpected payload: %+v", got)
	}

	ddb.queryOut = []map[string]types.AttributeValue{ddb.items["pay-1"]}
	list, err := repo.ListByCalculationID(context.Background(), "calc-1")
	if err != nil || len(list) != 1 || list[0].ID != "pay-1" {
		t.Fatalf("unexpected list err=%v list=%+v", err, list)
	}
	if aws.ToString(ddb.lastQuery.IndexName) != paymentsCalculationIDIndex {
		t.Fatalf("expected GSI query, got %s", aws.ToString(ddb.lastQuery.IndexName))
	}
}
