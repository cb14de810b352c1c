package repository

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"orcasys/internal/domain/entities"
	"orcasys/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type commissionItem struct {
	ID                   string  `dynamodbav:"id"`
	BudgetID             string  `dynamodbav:"budget_id"`
	SellerID             string  `dynamodbav:"seller_id"`
	SellerName           string  `dynamodbav:"seller_name"`
	ClientName           string  `dynamodbav:"client_name"`
	BudgetTotal          float64 `dynamodbav:"budget_total"`
	CommissionPercentage float64 `dynamodbav:"commission_percentage"`
	CommissionAmount     float64 `dynamodbav:"commission_amount"`
	Status               string  `dynamodbav:"status"`
	PaidAt               string  `dynamodbav:"paid_at,omitempty"`
	CreatedAt            string  `dynamodbav:"created_at"`
	UpdatedAt            string  `dynamodbav:"updated_at"`
}

// CommissionDynamoRepository persists Commission entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: budget_id-index (PK: budget_id)
type CommissionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICommissionRepository = (*CommissionDynamoRepository)(nil)

func NewCommissionDynamoRepository(ddb *dynamodb.Client, tableName string) *CommissionDynamoRepository {
	return &CommissionDynamoRepository{ddb: ddb, tableName: tableName}
}

// Create relies on the conditional put of putNew. Commission ids are derived
// from the budget id, so a lost race surfaces as a failed condition and the
// winner is read back consistently.
func (r *CommissionDynamoRepository) Create(ctx context.Context, c entities.Commission) (entities.Commission, bool, error) {
	err := putNew(ctx, r.ddb, r.tableName, toCommissionItem(c))
	if err == nil {
		return c, true, nil
	}
	if !isConditionFailed(err) {
		return entities.Commission{}, false, err
	}
	existing, err := r.GetByID(ctx, c.ID)
	if err != nil {
		return entities.Commission{}, false, err
	}
	if existing.ID == "" {
		return entities.Commission{}, false, fmt.Errorf("commission %s: conditional put failed but item is missing", c.ID)
	}
	return existing, false, nil
}

func (r *CommissionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Commission, error) {
	var it commissionItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Commission{}, err
	}
	return fromCommissionItem(it), nil
}

// List scans with seller and status pushed down to DynamoDB. Date bounds
// are applied here since created_at is stored as text.
func (r *CommissionDynamoRepository) List(ctx context.Context, filter interfaces.CommissionFilter) ([]entities.Commission, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	var conds []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	if filter.SellerID != "" {
		conds = append(conds, "#seller_id = :seller_id")
		names["#seller_id"] = "seller_id"
		values[":seller_id"] = &types.AttributeValueMemberS{Value: filter.SellerID}
	}
	if filter.Status != "" {
		conds = append(conds, "#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
	}
	if len(conds) > 0 {
		in.FilterExpression = aws.String(strings.Join(conds, " AND "))
		in.ExpressionAttributeNames = names
		in.ExpressionAttributeValues = values
	}

	items, err := scanAll[commissionItem](ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Commission, 0, len(items))
	for _, it := range items {
		c := fromCommissionItem(it)
		if filter.StartDate != nil && c.CreatedAt.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && c.CreatedAt.After(*filter.EndDate) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *CommissionDynamoRepository) MarkPaid(ctx context.Context, id string, paidAt time.Time) (entities.Commission, error) {
	attrs, err := update(ctx, r.ddb, r.tableName, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #paid_at = :paid_at, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(entities.CommissionStatusPaid)},
			":paid_at":    &types.AttributeValueMemberS{Value: formatTime(paidAt)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#paid_at":    "paid_at",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
	if err != nil || attrs == nil {
		return entities.Commission{}, err
	}
	var it commissionItem
	if err := attributevalue.UnmarshalMap(attrs, &it); err != nil {
		return entities.Commission{}, err
	}
	return fromCommissionItem(it), nil
}

func (r *CommissionDynamoRepository) DeleteByBudgetID(ctx context.Context, budgetID string) (int, error) {
	items, err := queryIndex[commissionItem](ctx, r.ddb, r.tableName, commissionsBudgetIndex, "budget_id", budgetID, false)
	if err != nil {
		return 0, err
	}
	ids := make([]string, 0, len(items)+1)
	for _, it := range items {
		ids = append(ids, it.ID)
	}

	// The index may lag a fresh insert. The derived id is read directly.
	derived := entities.CommissionIDForBudget(budgetID)
	if !slices.Contains(ids, derived) {
		var it commissionItem
		found, err := getByID(ctx, r.ddb, r.tableName, derived, &it)
		if err != nil {
			return 0, err
		}
		if found {
			ids = append(ids, derived)
		}
	}
	if err := batchDelete(ctx, r.ddb, r.tableName, ids); err != nil {
		return 0, err
	}
	return len(ids), nil
}

func toCommissionItem(c entities.Commission) commissionItem {
	it := commissionItem{
		ID:                   c.ID,
		BudgetID:             c.BudgetID,
		SellerID:             c.SellerID,
		SellerName:           c.SellerName,
		ClientName:           c.ClientName,
		BudgetTotal:          c.BudgetTotal,
		CommissionPercentage: c.CommissionPercentage,
		CommissionAmount:     c.CommissionAmount,
		Status:               string(c.Status),
		CreatedAt:            formatTime(c.CreatedAt),
		UpdatedAt:            formatTime(c.UpdatedAt),
	}
	if c.PaidAt != nil {
		it.PaidAt = formatTime(*c.PaidAt)
	}
	return it
}

func fromCommissionItem(it commissionItem) entities.Commission {
	c := entities.Commission{
		ID:                   it.ID,
		BudgetID:             it.BudgetID,
		SellerID:             it.SellerID,
		SellerName:           it.SellerName,
		ClientName:           it.ClientName,
		BudgetTotal:          it.BudgetTotal,
		CommissionPercentage: it.CommissionPercentage,
		CommissionAmount:     it.CommissionAmount,
		Status:               entities.CommissionStatus(it.Status),
		CreatedAt:            parseTime(it.CreatedAt),
		UpdatedAt:            parseTime(it.UpdatedAt),
	}
	if it.PaidAt != "" {
		paid := parseTime(it.PaidAt)
		c.PaidAt = &paid
	}
	return c
}
