package repository

import (
	"context"
	"encoding/json"

	"orcasys/internal/domain/entities"
	"orcasys/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type auditLogItem struct {
	ID           string         `dynamodbav:"id"`
	Actor        string         `dynamodbav:"actor"`
	Action       string         `dynamodbav:"action"`
	ResourceType string         `dynamodbav:"resource_type"`
	ResourceIDs  []string       `dynamodbav:"resource_ids"`
	Details      map[string]any `dynamodbav:"details,omitempty"`
	CreatedAt    string         `dynamodbav:"created_at"`
}

// AuditLogDynamoRepository stores audit entries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type AuditLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuditLogRepository = (*AuditLogDynamoRepository)(nil)

func NewAuditLogDynamoRepository(ddb *dynamodb.Client, tableName string) *AuditLogDynamoRepository {
	return &AuditLogDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *AuditLogDynamoRepository) Append(ctx context.Context, l entities.AuditLog) error {
	details, err := normalizeDetails(l.Details)
	if err != nil {
		return err
	}
	return putNew(ctx, r.ddb, r.tableName, auditLogItem{
		ID:           l.ID,
		Actor:        l.Actor,
		Action:       l.Action,
		ResourceType: l.ResourceType,
		ResourceIDs:  l.ResourceIDs,
		Details:      details,
		CreatedAt:    formatTime(l.CreatedAt),
	})
}

func (r *AuditLogDynamoRepository) List(ctx context.Context, action string) ([]entities.AuditLog, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if action != "" {
		in.FilterExpression = aws.String("#action = :action")
		in.ExpressionAttributeNames = map[string]string{"#action": "action"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":action": &types.AttributeValueMemberS{Value: action},
		}
	}
	items, err := scanAll[auditLogItem](ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	out := make([]entities.AuditLog, 0, len(items))
	for _, it := range items {
		out = append(out, entities.AuditLog{
			ID:           it.ID,
			Actor:        it.Actor,
			Action:       it.Action,
			ResourceType: it.ResourceType,
			ResourceIDs:  it.ResourceIDs,
			Details:      it.Details,
			CreatedAt:    parseTime(it.CreatedAt),
		})
	}
	return out, nil
}

// normalizeDetails turns structured values into plain maps keyed by their
// JSON names, so entries read back the way the API renders them.
func normalizeDetails(details map[string]any) (map[string]any, error) {
	if len(details) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(details)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
