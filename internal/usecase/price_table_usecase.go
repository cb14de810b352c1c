package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"orcasys/internal/domain/entities"
	"orcasys/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type PriceItemInput struct {
	Code      string
	Name      string
	Unit      string
	UnitPrice float64
	Category  string
}

type PriceItemPatch struct {
	Code      *string
	Name      *string
	Unit      *string
	UnitPrice *float64
	Category  *string
}

type IPriceTableUseCase interface {
	Create(ctx context.Context, in PriceItemInput) (entities.PriceTableItem, error)
	List(ctx context.Context, category string) ([]entities.PriceTableItem, error)
	Categories(ctx context.Context) ([]string, error)
	GetByID(ctx context.Context, id string) (entities.PriceTableItem, error)
	Update(ctx context.Context, id string, patch PriceItemPatch) (entities.PriceTableItem, error)
	Delete(ctx context.Context, id string) error
}

type PriceTableUseCase struct {
	repo interfaces.IPriceTableRepository
}

var _ IPriceTableUseCase = (*PriceTableUseCase)(nil)

func NewPriceTableUseCase(repo interfaces.IPriceTableRepository) *PriceTableUseCase {
	return &PriceTableUseCase{repo: repo}
}

func (u *PriceTableUseCase) Create(ctx context.Context, in PriceItemInput) (entities.PriceTableItem, error) {
	now := time.Now().UTC()
	it := entities.PriceTableItem{
		ID:        uuid.NewString(),
		Code:      strings.TrimSpace(in.Code),
		Name:      strings.TrimSpace(in.Name),
		Unit:      strings.TrimSpace(in.Unit),
		UnitPrice: in.UnitPrice,
		Category:  strings.TrimSpace(in.Category),
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := validatePriceItem(it); err != nil {
		return entities.PriceTableItem{}, err
	}
	if err := u.ensureCodeUnique(ctx, it); err != nil {
		return entities.PriceTableItem{}, err
	}
	return u.repo.Create(ctx, it)
}

// List returns the active items, optionally restricted to one category,
// ordered by code.
func (u *PriceTableUseCase) List(ctx context.Context, category string) ([]entities.PriceTableItem, error) {
	items, err := u.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	category = strings.TrimSpace(category)
	out := items[:0]
	for _, it := range items {
		if category == "" || it.Category == category {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (u *PriceTableUseCase) Categories(ctx context.Context) ([]string, error) {
	items, err := u.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(items))
	categories := make([]string, 0, len(items))
	for _, it := range items {
		if it.Category == "" {
			continue
		}
		if _, ok := seen[it.Category]; ok {
			continue
		}
		seen[it.Category] = struct{}{}
		categories = append(categories, it.Category)
	}
	sort.Strings(categories)
	return categories, nil
}

func (u *PriceTableUseCase) GetByID(ctx context.Context, id string) (entities.PriceTableItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PriceTableItem{}, invalid("id", "must not be empty")
	}

	it, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PriceTableItem{}, err
	}
	if it.ID == "" {
		return entities.PriceTableItem{}, ErrPriceItemNotFound
	}
	return it, nil
}

func (u *PriceTableUseCase) Update(ctx context.Context, id string, patch PriceItemPatch) (entities.PriceTableItem, error) {
	it, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.PriceTableItem{}, err
	}

	applyString(&it.Code, patch.Code)
	applyString(&it.Name, patch.Name)
	applyString(&it.Unit, patch.Unit)
	applyFloat(&it.UnitPrice, patch.UnitPrice)
	applyString(&it.Category, patch.Category)
	it.UpdatedAt = time.Now().UTC()

	if err := validatePriceItem(it); err != nil {
		return entities.PriceTableItem{}, err
	}
	if patch.Code != nil {
		if err := u.ensureCodeUnique(ctx, it); err != nil {
			return entities.PriceTableItem{}, err
		}
	}

	updated, err := u.repo.Update(ctx, it)
	if err != nil {
		return entities.PriceTableItem{}, err
	}
	if updated.ID == "" {
		return entities.PriceTableItem{}, ErrPriceItemNotFound
	}
	return updated, nil
}

func (u *PriceTableUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return invalid("id", "must not be empty")
	}

	it, err := u.repo.Deactivate(ctx, id)
	if err != nil {
		return err
	}
	if it.ID == "" {
		return ErrPriceItemNotFound
	}
	return nil
}

func (u *PriceTableUseCase) ensureCodeUnique(ctx context.Context, it entities.PriceTableItem) error {
	existing, err := u.repo.FindActiveByCode(ctx, it.Code)
	if err != nil {
		return err
	}
	if existing.ID != "" && existing.ID != it.ID {
		return ErrPriceItemDuplicate
	}
	return nil
}

func validatePriceItem(it entities.PriceTableItem) error {
	switch {
	case it.Code == "":
		return invalid("code", "must not be empty")
	case it.Name == "":
		return invalid("name", "must not be empty")
	case it.Unit == "":
		return invalid("unit", "must not be empty")
	case it.UnitPrice < 0:
		return invalid("unit_price", "must be >= 0")
	}
	return nil
}
