package repository

import (
	"context"

	"orcasys/internal/domain/entities"
	"orcasys/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type budgetHistoryItem struct {
	ID          string `dynamodbav:"id"`
	BudgetID    string `dynamodbav:"budget_id"`
	Action      string `dynamodbav:"action"`
	Description string `dynamodbav:"description"`
	Version     int    `dynamodbav:"version"`
	ChangedBy   string `dynamodbav:"changed_by"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// BudgetHistoryDynamoRepository stores the change log of budgets.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: budget_id-index (PK: budget_id)
type BudgetHistoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBudgetHistoryRepository = (*BudgetHistoryDynamoRepository)(nil)

func NewBudgetHistoryDynamoRepository(ddb *dynamodb.Client, tableName string) *BudgetHistoryDynamoRepository {
	return &BudgetHistoryDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *BudgetHistoryDynamoRepository) Append(ctx context.Context, h entities.BudgetHistory) error {
	return putNew(ctx, r.ddb, r.tableName, budgetHistoryItem{
		ID:          h.ID,
		BudgetID:    h.BudgetID,
		Action:      string(h.Action),
		Description: h.Description,
		Version:     h.Version,
		ChangedBy:   h.ChangedBy,
		CreatedAt:   formatTime(h.CreatedAt),
	})
}

func (r *BudgetHistoryDynamoRepository) ListByBudgetID(ctx context.Context, budgetID string) ([]entities.BudgetHistory, error) {
	items, err := queryIndex[budgetHistoryItem](ctx, r.ddb, r.tableName, historyBudgetIndex, "budget_id", budgetID, false)
	if err != nil {
		return nil, err
	}
	out := make([]entities.BudgetHistory, 0, len(items))
	for _, it := range items {
		out = append(out, entities.BudgetHistory{
			ID:          it.ID,
			BudgetID:    it.BudgetID,
			Action:      entities.HistoryAction(it.Action),
			Description: it.Description,
			Version:     it.Version,
			ChangedBy:   it.ChangedBy,
			CreatedAt:   parseTime(it.CreatedAt),
		})
	}
	return out, nil
}

func (r *BudgetHistoryDynamoRepository) DeleteByBudgetID(ctx context.Context, budgetID string) (int, error) {
	items, err := queryIndex[budgetHistoryItem](ctx, r.ddb, r.tableName, historyBudgetIndex, "budget_id", budgetID, false)
	if err != nil {
		return 0, err
	}
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	if err := batchDelete(ctx, r.ddb, r.tableName, ids); err != nil {
		return 0, err
	}
	return len(ids), nil
}
