package usecase

import (
	"context"
	"strings"
	"time"

	"orcasys/internal/domain/entities"
	"orcasys/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type SellerInput struct {
	Name                 string
	Email                string
	Phone                string
	CommissionPercentage float64
	RegistrationNumber   string
}

type SellerPatch struct {
	Name                 *string
	Email                *string
	Phone                *string
	CommissionPercentage *float64
	RegistrationNumber   *string
	Active               *bool
}

type ISellerUseCase interface {
	Create(ctx context.Context, in SellerInput) (entities.Seller, error)
	List(ctx context.Context) ([]entities.Seller, error)
	GetByID(ctx context.Context, id string) (entities.Seller, error)
	Update(ctx context.Context, id string, patch SellerPatch) (entities.Seller, error)
	Delete(ctx context.Context, id string) error
}

type SellerUseCase struct {
	repo interfaces.ISellerRepository
}

var _ ISellerUseCase = (*SellerUseCase)(nil)

func NewSellerUseCase(repo interfaces.ISellerRepository) *SellerUseCase {
	return &SellerUseCase{repo: repo}
}

func (u *SellerUseCase) Create(ctx context.Context, in SellerInput) (entities.Seller, error) {
	now := time.Now().UTC()
	s := entities.Seller{
		ID:                   uuid.NewString(),
		Name:                 strings.TrimSpace(in.Name),
		Email:                strings.TrimSpace(in.Email),
		Phone:                strings.TrimSpace(in.Phone),
		CommissionPercentage: in.CommissionPercentage,
		RegistrationNumber:   strings.TrimSpace(in.RegistrationNumber),
		Active:               true,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := validateSeller(s); err != nil {
		return entities.Seller{}, err
	}
	return u.repo.Create(ctx, s)
}

func (u *SellerUseCase) List(ctx context.Context) ([]entities.Seller, error) {
	return u.repo.ListActive(ctx)
}

func (u *SellerUseCase) GetByID(ctx context.Context, id string) (entities.Seller, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Seller{}, invalid("seller_id", "must not be empty")
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Seller{}, err
	}
	if s.ID == "" {
		return entities.Seller{}, ErrSellerNotFound
	}
	return s, nil
}

func (u *SellerUseCase) Update(ctx context.Context, id string, patch SellerPatch) (entities.Seller, error) {
	s, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Seller{}, err
	}

	applyString(&s.Name, patch.Name)
	applyString(&s.Email, patch.Email)
	applyString(&s.Phone, patch.Phone)
	applyFloat(&s.CommissionPercentage, patch.CommissionPercentage)
	applyString(&s.RegistrationNumber, patch.RegistrationNumber)
	if patch.Active != nil {
		s.Active = *patch.Active
	}
	s.UpdatedAt = time.Now().UTC()

	if err := validateSeller(s); err != nil {
		return entities.Seller{}, err
	}

	updated, err := u.repo.Update(ctx, s)
	if err != nil {
		return entities.Seller{}, err
	}
	if updated.ID == "" {
		return entities.Seller{}, ErrSellerNotFound
	}
	return updated, nil
}

// Delete deactivates the seller. Budgets and commissions that reference it
// keep their name snapshots.
func (u *SellerUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return invalid("seller_id", "must not be empty")
	}

	s, err := u.repo.Deactivate(ctx, id)
	if err != nil {
		return err
	}
	if s.ID == "" {
		return ErrSellerNotFound
	}
	return nil
}

func validateSeller(s entities.Seller) error {
	if s.Name == "" {
		return invalid("name", "must not be empty")
	}
	if s.CommissionPercentage < 0 || s.CommissionPercentage > 100 {
		return invalid("commission_percentage", "must be between 0 and 100")
	}
	if s.Email != "" && !validEmail(s.Email) {
		return invalid("email", "must be a valid e-mail address")
	}
	return nil
}
