package database

import (
	"testing"

	"orcasys/internal/adapter/persistence/repository"
	"orcasys/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTableInput(t *testing.T) {
	in := createTableInput(repository.TableSchema{
		Name: "clients",
		Indexes: []repository.Index{
			{Name: "name-index", Key: "name"},
			{Name: "phone-index", Key: "phone"},
		},
	})

	assert.Equal(t, "clients", aws.ToString(in.TableName))
	assert.Equal(t, types.BillingModePayPerRequest, in.BillingMode)
	require.Len(t, in.AttributeDefinitions, 3)
	require.Len(t, in.GlobalSecondaryIndexes, 2)
	assert.Equal(t, "phone-index", aws.ToString(in.GlobalSecondaryIndexes[1].IndexName))
	assert.Equal(t, "phone", aws.ToString(in.GlobalSecondaryIndexes[1].KeySchema[0].AttributeName))
}

func TestCreateTableInput_NoIndexes(t *testing.T) {
	in := createTableInput(repository.TableSchema{Name: "sellers"})
	assert.Len(t, in.AttributeDefinitions, 1)
	assert.Nil(t, in.GlobalSecondaryIndexes)
}

func TestSchemas_UsePrefixedNames(t *testing.T) {
	t.Setenv("DYNAMODB_TABLE_PREFIX", "dev_")
	schemas := repository.Schemas(config.Load().Tables)
	require.Len(t, schemas, 8)
	for _, s := range schemas {
		assert.Contains(t, s.Name, "dev_")
	}
}
