package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"orcasys/internal/adapter/persistence/repository"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const tableWaitTimeout = 2 * time.Minute

// EnsureTables creates every missing table with on-demand billing and waits
// until it is active. Existing tables are left untouched.
func EnsureTables(ctx context.Context, ddb *dynamodb.Client, schemas []repository.TableSchema, log *zap.Logger) error {
	for _, s := range schemas {
		_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(s.Name)})
		if err == nil {
			continue
		}
		var notFound *types.ResourceNotFoundException
		if !errors.As(err, &notFound) {
			return fmt.Errorf("describe table %s: %w", s.Name, err)
		}

		if _, err := ddb.CreateTable(ctx, createTableInput(s)); err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				continue
			}
			return fmt.Errorf("create table %s: %w", s.Name, err)
		}

		waiter := dynamodb.NewTableExistsWaiter(ddb)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(s.Name)}, tableWaitTimeout); err != nil {
			return fmt.Errorf("wait for table %s: %w", s.Name, err)
		}
		log.Info("dynamodb.table_created", zap.String("table", s.Name), zap.Int("indexes", len(s.Indexes)))
	}
	return nil
}

func createTableInput(s repository.TableSchema) *dynamodb.CreateTableInput {
	attrs := []types.AttributeDefinition{
		{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
	}
	defined := map[string]bool{"id": true}

	var gsis []types.GlobalSecondaryIndex
	for _, idx := range s.Indexes {
		if !defined[idx.Key] {
			attrs = append(attrs, types.AttributeDefinition{AttributeName: aws.String(idx.Key), AttributeType: types.ScalarAttributeTypeS})
			defined[idx.Key] = true
		}
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName: aws.String(idx.Name),
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(idx.Key), KeyType: types.KeyTypeHash},
			},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	return &dynamodb.CreateTableInput{
		TableName:              aws.String(s.Name),
		AttributeDefinitions:   attrs,
		KeySchema:              []types.KeySchemaElement{{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash}},
		BillingMode:            types.BillingModePayPerRequest,
		GlobalSecondaryIndexes: gsis,
	}
}
