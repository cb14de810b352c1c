package repository

import (
	"context"

	"orcasys/internal/domain/entities"
	"orcasys/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type clientItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	ContactName  string `dynamodbav:"contact_name"`
	Phone        string `dynamodbav:"phone"`
	Email        string `dynamodbav:"email,omitempty"`
	Address      string `dynamodbav:"address,omitempty"`
	City         string `dynamodbav:"city,omitempty"`
	State        string `dynamodbav:"state,omitempty"`
	ZipCode      string `dynamodbav:"zip_code,omitempty"`
	Observations string `dynamodbav:"observations,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// ClientDynamoRepository persists Client entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: name-index (PK: name), phone-index (PK: phone)
type ClientDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb *dynamodb.Client, tableName string) *ClientDynamoRepository {
	return &ClientDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ClientDynamoRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toClientItem(c)); err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	var it clientItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) List(ctx context.Context) ([]entities.Client, error) {
	items, err := scanAll[clientItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	out := make([]entities.Client, 0, len(items))
	for _, it := range items {
		out = append(out, fromClientItem(it))
	}
	return out, nil
}

func (r *ClientDynamoRepository) Update(ctx context.Context, c entities.Client) (entities.Client, error) {
	ok, err := replaceExisting(ctx, r.ddb, r.tableName, toClientItem(c))
	if err != nil || !ok {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func (r *ClientDynamoRepository) FindByName(ctx context.Context, name string) ([]entities.Client, error) {
	return r.findAll(ctx, clientsNameIndex, "name", name)
}

func (r *ClientDynamoRepository) FindByPhone(ctx context.Context, phone string) ([]entities.Client, error) {
	return r.findAll(ctx, clientsPhoneIndex, "phone", phone)
}

// findAll returns every match so callers can tell a client apart from an
// earlier duplicate of it.
func (r *ClientDynamoRepository) findAll(ctx context.Context, index, attr, value string) ([]entities.Client, error) {
	if value == "" {
		return nil, nil
	}
	items, err := queryIndex[clientItem](ctx, r.ddb, r.tableName, index, attr, value, false)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Client, 0, len(items))
	for _, it := range items {
		out = append(out, fromClientItem(it))
	}
	return out, nil
}

func toClientItem(c entities.Client) clientItem {
	return clientItem{
		ID:           c.ID,
		Name:         c.Name,
		ContactName:  c.ContactName,
		Phone:        c.Phone,
		Email:        c.Email,
		Address:      c.Address,
		City:         c.City,
		State:        c.State,
		ZipCode:      c.ZipCode,
		Observations: c.Observations,
		CreatedAt:    formatTime(c.CreatedAt),
		UpdatedAt:    formatTime(c.UpdatedAt),
	}
}

func fromClientItem(it clientItem) entities.Client {
	return entities.Client{
		ID:           it.ID,
		Name:         it.Name,
		ContactName:  it.ContactName,
		Phone:        it.Phone,
		Email:        it.Email,
		Address:      it.Address,
		City:         it.City,
		State:        it.State,
		ZipCode:      it.ZipCode,
		Observations: it.Observations,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
