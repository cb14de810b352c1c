package repository

import (
	"context"
	"strings"

	"orcasys/internal/domain/entities"
	"orcasys/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type budgetLineItem struct {
	ItemID                 string   `dynamodbav:"item_id"`
	ItemName               string   `dynamodbav:"item_name"`
	Quantity               float64  `dynamodbav:"quantity"`
	UnitPrice              float64  `dynamodbav:"unit_price"`
	Length                 *float64 `dynamodbav:"length,omitempty"`
	Height                 *float64 `dynamodbav:"height,omitempty"`
	Width                  *float64 `dynamodbav:"width,omitempty"`
	AreaM2                 *float64 `dynamodbav:"area_m2,omitempty"`
	CanvasColor            string   `dynamodbav:"canvas_color,omitempty"`
	PrintPercentage        *float64 `dynamodbav:"print_percentage,omitempty"`
	ItemDiscountPercentage *float64 `dynamodbav:"item_discount_percentage,omitempty"`
	Subtotal               float64  `dynamodbav:"subtotal"`
	FinalPrice             *float64 `dynamodbav:"final_price,omitempty"`
}

type budgetItem struct {
	ID                   string           `dynamodbav:"id"`
	ClientID             string           `dynamodbav:"client_id"`
	ClientName           string           `dynamodbav:"client_name"`
	SellerID             string           `dynamodbav:"seller_id,omitempty"`
	SellerName           string           `dynamodbav:"seller_name,omitempty"`
	BudgetType           string           `dynamodbav:"budget_type"`
	Items                []budgetLineItem `dynamodbav:"items"`
	InstallationLocation string           `dynamodbav:"installation_location,omitempty"`
	TravelDistanceKm     *float64         `dynamodbav:"travel_distance_km,omitempty"`
	Observations         string           `dynamodbav:"observations,omitempty"`
	Subtotal             float64          `dynamodbav:"subtotal"`
	DiscountType         string           `dynamodbav:"discount_type"`
	DiscountValue        float64          `dynamodbav:"discount_value"`
	DiscountAmount       float64          `dynamodbav:"discount_amount"`
	Total                float64          `dynamodbav:"total"`
	ValidityDays         int              `dynamodbav:"validity_days"`
	Status               string           `dynamodbav:"status"`
	Version              int              `dynamodbav:"version"`
	OriginalBudgetID     string           `dynamodbav:"original_budget_id,omitempty"`
	CreatedBy            string           `dynamodbav:"created_by"`
	CreatedAt            string           `dynamodbav:"created_at"`
	UpdatedAt            string           `dynamodbav:"updated_at"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB. Line items
// are embedded in the budget document.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)
type BudgetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client, tableName string) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toBudgetItem(b)); err != nil {
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	var it budgetItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

// List queries the client index when a client is given and scans otherwise.
// The remaining filter fields become a filter expression.
func (r *BudgetDynamoRepository) List(ctx context.Context, filter interfaces.BudgetFilter) ([]entities.Budget, error) {
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

	var (
		items []budgetItem
		err   error
	)
	if filter.ClientID != "" {
		names["#client_id"] = "client_id"
		values[":client_id"] = &types.AttributeValueMemberS{Value: filter.ClientID}
		in := &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			IndexName:                 aws.String(budgetsClientIDIndex),
			KeyConditionExpression:    aws.String("#client_id = :client_id"),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
		}
		if len(conds) > 0 {
			in.FilterExpression = aws.String(strings.Join(conds, " AND "))
		}
		items, err = queryAll[budgetItem](ctx, r.ddb, in)
	} else {
		in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
		if len(conds) > 0 {
			in.FilterExpression = aws.String(strings.Join(conds, " AND "))
			in.ExpressionAttributeNames = names
			in.ExpressionAttributeValues = values
		}
		items, err = scanAll[budgetItem](ctx, r.ddb, in)
	}
	if err != nil {
		return nil, err
	}
	return fromBudgetItems(items), nil
}

func (r *BudgetDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Budget, error) {
	items, err := queryIndex[budgetItem](ctx, r.ddb, r.tableName, budgetsClientIDIndex, "client_id", clientID, false)
	if err != nil {
		return nil, err
	}
	return fromBudgetItems(items), nil
}

func (r *BudgetDynamoRepository) Update(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	ok, err := replaceExisting(ctx, r.ddb, r.tableName, toBudgetItem(b))
	if err != nil || !ok {
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func toBudgetItem(b entities.Budget) budgetItem {
	lines := make([]budgetLineItem, 0, len(b.Items))
	for _, i := range b.Items {
		lines = append(lines, budgetLineItem{
			ItemID:                 i.ItemID,
			ItemName:               i.ItemName,
			Quantity:               i.Quantity,
			UnitPrice:              i.UnitPrice,
			Length:                 i.Length,
			Height:                 i.Height,
			Width:                  i.Width,
			AreaM2:                 i.AreaM2,
			CanvasColor:            i.CanvasColor,
			PrintPercentage:        i.PrintPercentage,
			ItemDiscountPercentage: i.ItemDiscountPercentage,
			Subtotal:               i.Subtotal,
			FinalPrice:             i.FinalPrice,
		})
	}
	return budgetItem{
		ID:                   b.ID,
		ClientID:             b.ClientID,
		ClientName:           b.ClientName,
		SellerID:             b.SellerID,
		SellerName:           b.SellerName,
		BudgetType:           string(b.BudgetType),
		Items:                lines,
		InstallationLocation: b.InstallationLocation,
		TravelDistanceKm:     b.TravelDistanceKm,
		Observations:         b.Observations,
		Subtotal:             b.Subtotal,
		DiscountType:         string(b.Discount.Kind),
		DiscountValue:        b.Discount.Value,
		DiscountAmount:       b.DiscountAmount,
		Total:                b.Total,
		ValidityDays:         b.ValidityDays,
		Status:               string(b.Status),
		Version:              b.Version,
		OriginalBudgetID:     b.OriginalBudgetID,
		CreatedBy:            b.CreatedBy,
		CreatedAt:            formatTime(b.CreatedAt),
		UpdatedAt:            formatTime(b.UpdatedAt),
	}
}

func fromBudgetItem(it budgetItem) entities.Budget {
	items := make([]entities.BudgetItem, 0, len(it.Items))
	for _, l := range it.Items {
		items = append(items, entities.BudgetItem{
			ItemID:                 l.ItemID,
			ItemName:               l.ItemName,
			Quantity:               l.Quantity,
			UnitPrice:              l.UnitPrice,
			Length:                 l.Length,
			Height:                 l.Height,
			Width:                  l.Width,
			AreaM2:                 l.AreaM2,
			CanvasColor:            l.CanvasColor,
			PrintPercentage:        l.PrintPercentage,
			ItemDiscountPercentage: l.ItemDiscountPercentage,
			Subtotal:               l.Subtotal,
			FinalPrice:             l.FinalPrice,
		})
	}
	kind := entities.DiscountKind(it.DiscountType)
	if kind == "" {
		kind = entities.DiscountPercentage
	}
	return entities.Budget{
		ID:                   it.ID,
		ClientID:             it.ClientID,
		ClientName:           it.ClientName,
		SellerID:             it.SellerID,
		SellerName:           it.SellerName,
		BudgetType:           entities.BudgetType(it.BudgetType),
		Items:                items,
		InstallationLocation: it.InstallationLocation,
		TravelDistanceKm:     it.TravelDistanceKm,
		Observations:         it.Observations,
		Subtotal:             it.Subtotal,
		Discount:             entities.Discount{Kind: kind, Value: it.DiscountValue},
		DiscountAmount:       it.DiscountAmount,
		Total:                it.Total,
		ValidityDays:         it.ValidityDays,
		Status:               entities.BudgetStatus(it.Status),
		Version:              it.Version,
		OriginalBudgetID:     it.OriginalBudgetID,
		CreatedBy:            it.CreatedBy,
		CreatedAt:            parseTime(it.CreatedAt),
		UpdatedAt:            parseTime(it.UpdatedAt),
	}
}

func fromBudgetItems(items []budgetItem) []entities.Budget {
	out := make([]entities.Budget, 0, len(items))
	for _, it := range items {
		out = append(out, fromBudgetItem(it))
	}
	return out
}
