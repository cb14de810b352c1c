package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"orcasys/internal/domain/entities"
	"orcasys/internal/infrastructure/logging"
	"orcasys/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var validate = validator.New()

func validEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// ClientInput carries the fields of a new client.
type ClientInput struct {
	Name         string
	ContactName  string
	Phone        string
	Email        string
	Address      string
	City         string
	State        string
	ZipCode      string
	Observations string
}

// ClientPatch carries a partial client update. Nil fields are left as is.
type ClientPatch struct {
	Name         *string
	ContactName  *string
	Phone        *string
	Email        *string
	Address      *string
	City         *string
	State        *string
	ZipCode      *string
	Observations *string
}

type IClientUseCase interface {
	Create(ctx context.Context, in ClientInput) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	Update(ctx context.Context, id string, patch ClientPatch) (entities.Client, error)
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

func (u *ClientUseCase) Create(ctx context.Context, in ClientInput) (entities.Client, error) {
	now := time.Now().UTC()
	c := entities.Client{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		ContactName:  strings.TrimSpace(in.ContactName),
		Phone:        strings.TrimSpace(in.Phone),
		Email:        strings.TrimSpace(in.Email),
		Address:      strings.TrimSpace(in.Address),
		City:         strings.TrimSpace(in.City),
		State:        strings.TrimSpace(in.State),
		ZipCode:      strings.TrimSpace(in.ZipCode),
		Observations: strings.TrimSpace(in.Observations),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if c.ContactName == "" {
		c.ContactName = c.Name
	}
	if err := validateClient(c); err != nil {
		return entities.Client{}, err
	}
	if err := ensureClientUnique(ctx, u.repo, c); err != nil {
		return entities.Client{}, err
	}

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Client{}, err
	}
	logging.FromContext(ctx).Info("client.create", zap.String("client_id", created.ID))
	return created, nil
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	clients, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(clients, func(i, j int) bool {
		return strings.ToLower(clients[i].Name) < strings.ToLower(clients[j].Name)
	})
	return clients, nil
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, invalid("id", "must not be empty")
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) Update(ctx context.Context, id string, patch ClientPatch) (entities.Client, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}

	applyString(&c.Name, patch.Name)
	applyString(&c.ContactName, patch.ContactName)
	applyString(&c.Phone, patch.Phone)
	applyString(&c.Email, patch.Email)
	applyString(&c.Address, patch.Address)
	applyString(&c.City, patch.City)
	applyString(&c.State, patch.State)
	applyString(&c.ZipCode, patch.ZipCode)
	applyString(&c.Observations, patch.Observations)
	c.UpdatedAt = time.Now().UTC()

	if err := validateClient(c); err != nil {
		return entities.Client{}, err
	}
	if patch.Name != nil || patch.Phone != nil {
		if err := ensureClientUnique(ctx, u.repo, c); err != nil {
			return entities.Client{}, err
		}
	}

	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.Client{}, err
	}
	if updated.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return updated, nil
}

func validateClient(c entities.Client) error {
	if c.Name == "" {
		return invalid("name", "must not be empty")
	}
	if c.Phone == "" {
		return invalid("phone", "must not be empty")
	}
	if c.Email != "" && !validEmail(c.Email) {
		return invalid("email", "must be a valid e-mail address")
	}
	return nil
}

// ensureClientUnique rejects c when another client already uses its name or
// phone. The client itself is ignored, so updates keep their own values.
func ensureClientUnique(ctx context.Context, repo interfaces.IClientRepository, c entities.Client) error {
	byName, err := repo.FindByName(ctx, c.Name)
	if err != nil {
		return err
	}
	if hasOtherClient(byName, c.ID) {
		return ErrClientDuplicateName
	}

	byPhone, err := repo.FindByPhone(ctx, c.Phone)
	if err != nil {
		return err
	}
	if hasOtherClient(byPhone, c.ID) {
		return ErrClientDuplicatePhone
	}
	return nil
}

func hasOtherClient(matches []entities.Client, selfID string) bool {
	for _, m := range matches {
		if m.ID != "" && m.ID != selfID {
			return true
		}
	}
	return false
}

func applyString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func applyFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
