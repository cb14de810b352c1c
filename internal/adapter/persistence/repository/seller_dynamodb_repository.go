package repository

import (
	"context"

	"orcasys/internal/domain/entities"
	"orcasys/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type sellerItem struct {
	ID                   string  `dynamodbav:"id"`
	Name                 string  `dynamodbav:"name"`
	Email                string  `dynamodbav:"email,omitempty"`
	Phone                string  `dynamodbav:"phone,omitempty"`
	CommissionPercentage float64 `dynamodbav:"commission_percentage"`
	RegistrationNumber   string  `dynamodbav:"registration_number,omitempty"`
	Active               bool    `dynamodbav:"active"`
	CreatedAt            string  `dynamodbav:"created_at"`
	UpdatedAt            string  `dynamodbav:"updated_at"`
}

// SellerDynamoRepository persists Seller entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type SellerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISellerRepository = (*SellerDynamoRepository)(nil)

func NewSellerDynamoRepository(ddb *dynamodb.Client, tableName string) *SellerDynamoRepository {
	return &SellerDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SellerDynamoRepository) Create(ctx context.Context, s entities.Seller) (entities.Seller, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toSellerItem(s)); err != nil {
		return entities.Seller{}, err
	}
	return s, nil
}

func (r *SellerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Seller, error) {
	var it sellerItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Seller{}, err
	}
	return fromSellerItem(it), nil
}

func (r *SellerDynamoRepository) ListActive(ctx context.Context) ([]entities.Seller, error) {
	items, err := scanActive[sellerItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Seller, 0, len(items))
	for _, it := range items {
		out = append(out, fromSellerItem(it))
	}
	return out, nil
}

func (r *SellerDynamoRepository) Update(ctx context.Context, s entities.Seller) (entities.Seller, error) {
	ok, err := replaceExisting(ctx, r.ddb, r.tableName, toSellerItem(s))
	if err != nil || !ok {
		return entities.Seller{}, err
	}
	return s, nil
}

func (r *SellerDynamoRepository) Deactivate(ctx context.Context, id string) (entities.Seller, error) {
	attrs, err := deactivate(ctx, r.ddb, r.tableName, id)
	if err != nil || attrs == nil {
		return entities.Seller{}, err
	}
	var it sellerItem
	if err := attributevalue.UnmarshalMap(attrs, &it); err != nil {
		return entities.Seller{}, err
	}
	return fromSellerItem(it), nil
}

func toSellerItem(s entities.Seller) sellerItem {
	return sellerItem{
		ID:                   s.ID,
		Name:                 s.Name,
		Email:                s.Email,
		Phone:                s.Phone,
		CommissionPercentage: s.CommissionPercentage,
		RegistrationNumber:   s.RegistrationNumber,
		Active:               s.Active,
		CreatedAt:            formatTime(s.CreatedAt),
		UpdatedAt:            formatTime(s.UpdatedAt),
	}
}

func fromSellerItem(it sellerItem) entities.Seller {
	return entities.Seller{
		ID:                   it.ID,
		Name:                 it.Name,
		Email:                it.Email,
		Phone:                it.Phone,
		CommissionPercentage: it.CommissionPercentage,
		RegistrationNumber:   it.RegistrationNumber,
		Active:               it.Active,
		CreatedAt:            parseTime(it.CreatedAt),
		UpdatedAt:            parseTime(it.UpdatedAt),
	}
}
