package repository

import (
	"context"

	"orcasys/internal/domain/entities"
	"orcasys/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type canvasColorItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	HexCode   string `dynamodbav:"hex_code"`
	Active    bool   `dynamodbav:"active"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// CanvasColorDynamoRepository persists CanvasColor entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: name-index (PK: name)
type CanvasColorDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICanvasColorRepository = (*CanvasColorDynamoRepository)(nil)

func NewCanvasColorDynamoRepository(ddb *dynamodb.Client, tableName string) *CanvasColorDynamoRepository {
	return &CanvasColorDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CanvasColorDynamoRepository) Create(ctx context.Context, c entities.CanvasColor) (entities.CanvasColor, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toCanvasColorItem(c)); err != nil {
		return entities.CanvasColor{}, err
	}
	return c, nil
}

func (r *CanvasColorDynamoRepository) GetByID(ctx context.Context, id string) (entities.CanvasColor, error) {
	var it canvasColorItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.CanvasColor{}, err
	}
	return fromCanvasColorItem(it), nil
}

func (r *CanvasColorDynamoRepository) ListActive(ctx context.Context) ([]entities.CanvasColor, error) {
	items, err := scanActive[canvasColorItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.CanvasColor, 0, len(items))
	for _, it := range items {
		out = append(out, fromCanvasColorItem(it))
	}
	return out, nil
}

func (r *CanvasColorDynamoRepository) Update(ctx context.Context, c entities.CanvasColor) (entities.CanvasColor, error) {
	ok, err := replaceExisting(ctx, r.ddb, r.tableName, toCanvasColorItem(c))
	if err != nil || !ok {
		return entities.CanvasColor{}, err
	}
	return c, nil
}

func (r *CanvasColorDynamoRepository) Deactivate(ctx context.Context, id string) (entities.CanvasColor, error) {
	attrs, err := deactivate(ctx, r.ddb, r.tableName, id)
	if err != nil || attrs == nil {
		return entities.CanvasColor{}, err
	}
	var it canvasColorItem
	if err := attributevalue.UnmarshalMap(attrs, &it); err != nil {
		return entities.CanvasColor{}, err
	}
	return fromCanvasColorItem(it), nil
}

func (r *CanvasColorDynamoRepository) FindActiveByName(ctx context.Context, name string) (entities.CanvasColor, error) {
	items, err := queryIndex[canvasColorItem](ctx, r.ddb, r.tableName, canvasColorsNameIndex, "name", name, true)
	if err != nil || len(items) == 0 {
		return entities.CanvasColor{}, err
	}
	return fromCanvasColorItem(items[0]), nil
}

func toCanvasColorItem(c entities.CanvasColor) canvasColorItem {
	return canvasColorItem{
		ID:        c.ID,
		Name:      c.Name,
		HexCode:   c.HexCode,
		Active:    c.Active,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}

func fromCanvasColorItem(it canvasColorItem) entities.CanvasColor {
	return entities.CanvasColor{
		ID:        it.ID,
		Name:      it.Name,
		HexCode:   it.HexCode,
		Active:    it.Active,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
