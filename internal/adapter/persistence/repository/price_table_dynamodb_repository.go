package repository

import (
	"context"

	"orcasys/internal/domain/entities"
	"orcasys/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type priceTableItem struct {
	ID        string  `dynamodbav:"id"`
	Code      string  `dynamodbav:"code"`
	Name      string  `dynamodbav:"name"`
	Unit      string  `dynamodbav:"unit"`
	UnitPrice float64 `dynamodbav:"unit_price"`
	Category  string  `dynamodbav:"category"`
	Active    bool    `dynamodbav:"active"`
	CreatedAt string  `dynamodbav:"created_at"`
	UpdatedAt string  `dynamodbav:"updated_at"`
}

// PriceTableDynamoRepository persists the price catalog in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: code-index (PK: code)
type PriceTableDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPriceTableRepository = (*PriceTableDynamoRepository)(nil)

func NewPriceTableDynamoRepository(ddb *dynamodb.Client, tableName string) *PriceTableDynamoRepository {
	return &PriceTableDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PriceTableDynamoRepository) Create(ctx context.Context, p entities.PriceTableItem) (entities.PriceTableItem, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toPriceTableItem(p)); err != nil {
		return entities.PriceTableItem{}, err
	}
	return p, nil
}

func (r *PriceTableDynamoRepository) GetByID(ctx context.Context, id string) (entities.PriceTableItem, error) {
	var it priceTableItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.PriceTableItem{}, err
	}
	return fromPriceTableItem(it), nil
}

func (r *PriceTableDynamoRepository) ListActive(ctx context.Context) ([]entities.PriceTableItem, error) {
	items, err := scanActive[priceTableItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.PriceTableItem, 0, len(items))
	for _, it := range items {
		out = append(out, fromPriceTableItem(it))
	}
	return out, nil
}

func (r *PriceTableDynamoRepository) Update(ctx context.Context, p entities.PriceTableItem) (entities.PriceTableItem, error) {
	ok, err := replaceExisting(ctx, r.ddb, r.tableName, toPriceTableItem(p))
	if err != nil || !ok {
		return entities.PriceTableItem{}, err
	}
	return p, nil
}

func (r *PriceTableDynamoRepository) Deactivate(ctx context.Context, id string) (entities.PriceTableItem, error) {
	attrs, err := deactivate(ctx, r.ddb, r.tableName, id)
	if err != nil || attrs == nil {
		return entities.PriceTableItem{}, err
	}
	var it priceTableItem
	if err := attributevalue.UnmarshalMap(attrs, &it); err != nil {
		return entities.PriceTableItem{}, err
	}
	return fromPriceTableItem(it), nil
}

func (r *PriceTableDynamoRepository) FindActiveByCode(ctx context.Context, code string) (entities.PriceTableItem, error) {
	items, err := queryIndex[priceTableItem](ctx, r.ddb, r.tableName, priceTableCodeIndex, "code", code, true)
	if err != nil || len(items) == 0 {
		return entities.PriceTableItem{}, err
	}
	return fromPriceTableItem(items[0]), nil
}

func toPriceTableItem(p entities.PriceTableItem) priceTableItem {
	return priceTableItem{
		ID:        p.ID,
		Code:      p.Code,
		Name:      p.Name,
		Unit:      p.Unit,
		UnitPrice: p.UnitPrice,
		Category:  p.Category,
		Active:    p.Active,
		CreatedAt: formatTime(p.CreatedAt),
		UpdatedAt: formatTime(p.UpdatedAt),
	}
}

func fromPriceTableItem(it priceTableItem) entities.PriceTableItem {
	return entities.PriceTableItem{
		ID:        it.ID,
		Code:      it.Code,
		Name:      it.Name,
		Unit:      it.Unit,
		UnitPrice: it.UnitPrice,
		Category:  it.Category,
		Active:    it.Active,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
