package database

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeTables struct {
	existing map[string]bool
	created  []string
	failWith error
}

func (f *fakeTables) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if f.existing[aws.ToString(in.TableName)] {
		return &dynamodb.DescribeTableOutput{}, nil
	}
	return nil, &types.ResourceNotFoundException{Message: aws.String("missing")}
}

func (f *fakeTables) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.created = append(f.created, aws.ToString(in.TableName))
	return &dynamodb.CreateTableOutput{}, nil
}

func TestEnsureTables(t *testing.T) {
	t.Setenv("CALCULATIONS_TABLE", "")
	t.Setenv("PAYMENTS_TABLE", "")

	t.Run("creates only missing tables", func(t *testing.T) {
		f := &fakeTables{existing: map[string]bool{"calculations": true}}
		if err := EnsureTables(context.Background(), f); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(f.created) != 1 || f.created[0] != "subscription_payments" {
			t.Fatalf("unexpected created tables: %v", f.created)
		}
	})

	t.Run("describe errors propagate", func(t *testing.T) {
		f := &fakeTables{failWith: errors.New("denied")}
		if err := EnsureTables(context.Background(), f); err == nil || err.Error() != "denied" {
			t.Fatalf("expected denied, got %v", err)
		}
	})
}

func TestTables_UseEnvNames(t *testing.T) {
	t.Setenv("CALCULATIONS_TABLE", "calc-dev")
	t.Setenv("PAYMENTS_TABLE", "pay-dev")
	defs := Tables()
	if aws.ToString(defs[0].TableName) != "calc-dev" || aws.ToString(defs[1].TableName) != "pay-dev" {
		t.Fatalf("unexpected names: %s %s", aws.ToString(defs[0].TableName), aws.ToString(defs[1].TableName))
	}
	if aws.ToString(defs[1].GlobalSecondaryIndexes[0].IndexName) != "calculation_id-index" {
		t.Fatalf("payments table must carry the calculation index")
	}
}

func TestClientOptionsFromEnv(t *testing.T) {
	t.Setenv("DYNAMODB_ENDPOINT", "")
	if opts := ClientOptionsFromEnv(); len(opts) != 0 {
		t.Fatalf("expected no options")
	}

	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")
	opts := ClientOptionsFromEnv()
	if len(opts) != 1 {
		t.Fatalf("expected endpoint option")
	}
	var o dynamodb.Options
	opts[0](&o)
	if aws.ToString(o.BaseEndpoint) != "http://localhost:8000" {
		t.Fatalf("unexpected endpoint %s", aws.ToString(o.BaseEndpoint))
	}
}
