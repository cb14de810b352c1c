package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"orcasys/internal/domain/entities"
	"orcasys/internal/domain/pricing"
	"orcasys/internal/infrastructure/logging"
	"orcasys/internal/requestctx"
	"orcasys/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BudgetInput carries the fields of a new budget. Zero Status means DRAFT
// and zero ValidityDays means the default validity.
type BudgetInput struct {
	ClientID             string
	SellerID             string
	BudgetType           entities.BudgetType
	Items                []pricing.ItemInput
	InstallationLocation string
	TravelDistanceKm     *float64
	Observations         string
	Discount             entities.Discount
	ValidityDays         int
	Status               entities.BudgetStatus
}

// BudgetPatch carries a partial budget update. Nil fields are left as is;
// a nil Items slice keeps the current items. An empty SellerID removes the
// seller. DiscountKind and DiscountValue may be sent independently.
type BudgetPatch struct {
	ClientID             *string
	SellerID             *string
	BudgetType           *entities.BudgetType
	Items                []pricing.ItemInput
	InstallationLocation *string
	TravelDistanceKm     *float64
	Observations         *string
	DiscountKind         *entities.DiscountKind
	DiscountValue        *float64
	ValidityDays         *int
	Status               *entities.BudgetStatus
}

type IBudgetUseCase interface {
	Create(ctx context.Context, in BudgetInput) (entities.Budget, error)
	List(ctx context.Context, filter interfaces.BudgetFilter) ([]entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	Update(ctx context.Context, id string, patch BudgetPatch) (entities.Budget, error)
	UpdateStatus(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error)
	Duplicate(ctx context.Context, id string) (entities.Budget, error)
	Delete(ctx context.Context, id string) error
	History(ctx context.Context, id string) ([]entities.BudgetHistory, error)
	Types() []entities.BudgetType
}

type BudgetUseCase struct {
	repo        interfaces.IBudgetRepository
	clientRepo  interfaces.IClientRepository
	sellerRepo  interfaces.ISellerRepository
	historyRepo interfaces.IBudgetHistoryRepository
	commissions *CommissionUseCase
	cascade     budgetCascade
	metrics     interfaces.IMetrics
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(
	repo interfaces.IBudgetRepository,
	clientRepo interfaces.IClientRepository,
	sellerRepo interfaces.ISellerRepository,
	historyRepo interfaces.IBudgetHistoryRepository,
	commissionRepo interfaces.ICommissionRepository,
	metrics interfaces.IMetrics,
) *BudgetUseCase {
	metrics = orNopMetrics(metrics)
	return &BudgetUseCase{
		repo:        repo,
		clientRepo:  clientRepo,
		sellerRepo:  sellerRepo,
		historyRepo: historyRepo,
		commissions: NewCommissionUseCase(commissionRepo, sellerRepo, repo, metrics),
		cascade:     budgetCascade{budgets: repo, commissions: commissionRepo, history: historyRepo},
		metrics:     metrics,
	}
}

func (u *BudgetUseCase) Create(ctx context.Context, in BudgetInput) (entities.Budget, error) {
	if !in.BudgetType.Valid() {
		return entities.Budget{}, invalid("budget_type", fmt.Sprintf("unknown budget type %q", in.BudgetType))
	}
	status := in.Status
	if status == "" {
		status = entities.BudgetStatusDraft
	}
	if !status.Valid() {
		return entities.Budget{}, invalid("status", fmt.Sprintf("unknown status %q", status))
	}
	validity := in.ValidityDays
	if validity == 0 {
		validity = entities.DefaultValidityDays
	}
	if validity < 0 {
		return entities.Budget{}, invalid("validity_days", "must be positive")
	}
	if in.Discount.Kind == "" {
		in.Discount.Kind = entities.DiscountPercentage
	}
	if err := pricing.ValidateDiscount(in.Discount); err != nil {
		return entities.Budget{}, fromFieldError(err)
	}
	items, err := normalizeItems(in.Items)
	if err != nil {
		return entities.Budget{}, err
	}

	now := time.Now().UTC()
	b := entities.Budget{
		ID:                   uuid.NewString(),
		BudgetType:           in.BudgetType,
		Items:                items,
		InstallationLocation: strings.TrimSpace(in.InstallationLocation),
		TravelDistanceKm:     in.TravelDistanceKm,
		Observations:         strings.TrimSpace(in.Observations),
		Discount:             in.Discount,
		ValidityDays:         validity,
		Status:               status,
		Version:              1,
		CreatedBy:            requestctx.ActorFromContext(ctx),
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := u.assignClient(ctx, &b, in.ClientID); err != nil {
		return entities.Budget{}, err
	}
	if err := u.assignSeller(ctx, &b, in.SellerID); err != nil {
		return entities.Budget{}, err
	}
	recalculate(&b)

	created, err := u.repo.Create(ctx, b)
	if err != nil {
		return entities.Budget{}, err
	}
	if err := u.appendHistory(ctx, created, entities.HistoryActionCreated, "Orçamento criado"); err != nil {
		return entities.Budget{}, err
	}

	u.metrics.BudgetCreated(string(created.BudgetType))
	u.metrics.BudgetStatusChanged("", string(created.Status))
	logging.FromContext(ctx).Info("budget.create",
		zap.String("budget_id", created.ID),
		zap.String("client_id", created.ClientID),
		zap.Float64("total", created.Total),
	)

	if err := u.applyEffect(ctx, "", created); err != nil {
		return entities.Budget{}, err
	}
	return created, nil
}

func (u *BudgetUseCase) List(ctx context.Context, filter interfaces.BudgetFilter) ([]entities.Budget, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, invalid("status", fmt.Sprintf("unknown status %q", filter.Status))
	}
	filter.ClientID = strings.TrimSpace(filter.ClientID)
	filter.SellerID = strings.TrimSpace(filter.SellerID)

	budgets, err := u.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	sort.Slice(budgets, func(i, j int) bool { return budgets[i].CreatedAt.After(budgets[j].CreatedAt) })
	return budgets, nil
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, invalid("id", "must not be empty")
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

// Update applies a partial change and recomputes every total from the
// resulting items and discount. The version is bumped but not checked.
func (u *BudgetUseCase) Update(ctx context.Context, id string, patch BudgetPatch) (entities.Budget, error) {
	return u.update(ctx, id, patch, entities.HistoryActionUpdated)
}

func (u *BudgetUseCase) UpdateStatus(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error) {
	return u.update(ctx, id, BudgetPatch{Status: &status}, entities.HistoryActionStatusChanged)
}

func (u *BudgetUseCase) update(ctx context.Context, id string, patch BudgetPatch, action entities.HistoryAction) (entities.Budget, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	oldStatus := b.Status

	if patch.BudgetType != nil {
		if !patch.BudgetType.Valid() {
			return entities.Budget{}, invalid("budget_type", fmt.Sprintf("unknown budget type %q", *patch.BudgetType))
		}
		b.BudgetType = *patch.BudgetType
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return entities.Budget{}, invalid("status", fmt.Sprintf("unknown status %q", *patch.Status))
		}
		b.Status = *patch.Status
	}
	if patch.ValidityDays != nil {
		if *patch.ValidityDays <= 0 {
			return entities.Budget{}, invalid("validity_days", "must be positive")
		}
		b.ValidityDays = *patch.ValidityDays
	}
	if patch.DiscountKind != nil {
		b.Discount.Kind = *patch.DiscountKind
	}
	if b.Discount.Kind == "" {
		b.Discount.Kind = entities.DiscountPercentage
	}
	if patch.DiscountValue != nil {
		b.Discount.Value = *patch.DiscountValue
	}
	if err := pricing.ValidateDiscount(b.Discount); err != nil {
		return entities.Budget{}, fromFieldError(err)
	}
	if patch.Items != nil {
		items, err := normalizeItems(patch.Items)
		if err != nil {
			return entities.Budget{}, err
		}
		b.Items = items
	}
	applyString(&b.InstallationLocation, patch.InstallationLocation)
	applyString(&b.Observations, patch.Observations)
	if patch.TravelDistanceKm != nil {
		b.TravelDistanceKm = patch.TravelDistanceKm
	}
	if patch.ClientID != nil {
		if err := u.assignClient(ctx, &b, *patch.ClientID); err != nil {
			return entities.Budget{}, err
		}
	}
	if patch.SellerID != nil {
		if err := u.assignSeller(ctx, &b, *patch.SellerID); err != nil {
			return entities.Budget{}, err
		}
	}

	recalculate(&b)
	b.Version++
	b.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, b)
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}

	description := fmt.Sprintf("Orçamento atualizado (total: R$ %.2f)", updated.Total)
	if oldStatus != updated.Status {
		description = fmt.Sprintf("Status alterado de %s para %s", oldStatus, updated.Status)
		u.metrics.BudgetStatusChanged(string(oldStatus), string(updated.Status))
	}
	if err := u.appendHistory(ctx, updated, action, description); err != nil {
		return entities.Budget{}, err
	}
	logging.FromContext(ctx).Info("budget.update",
		zap.String("budget_id", updated.ID),
		zap.Int("version", updated.Version),
		zap.String("status", string(updated.Status)),
	)

	if err := u.applyEffect(ctx, oldStatus, updated); err != nil {
		return entities.Budget{}, err
	}
	return updated, nil
}

// Duplicate copies a budget into a new DRAFT at version 1 that remembers
// its source.
func (u *BudgetUseCase) Duplicate(ctx context.Context, id string) (entities.Budget, error) {
	src, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}

	now := time.Now().UTC()
	dup := src
	dup.ID = uuid.NewString()
	dup.Items = append([]entities.BudgetItem(nil), src.Items...)
	dup.Status = entities.BudgetStatusDraft
	dup.Version = 1
	dup.OriginalBudgetID = src.ID
	dup.CreatedBy = requestctx.ActorFromContext(ctx)
	dup.CreatedAt = now
	dup.UpdatedAt = now
	recalculate(&dup)

	created, err := u.repo.Create(ctx, dup)
	if err != nil {
		return entities.Budget{}, err
	}
	if err := u.appendHistory(ctx, created, entities.HistoryActionDuplicated, "Duplicado do orçamento "+src.ID); err != nil {
		return entities.Budget{}, err
	}
	u.metrics.BudgetCreated(string(created.BudgetType))
	return created, nil
}

// Delete removes the budget along with its commission and history.
func (u *BudgetUseCase) Delete(ctx context.Context, id string) error {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.cascade.deleteBudget(ctx, b.ID); err != nil {
		return err
	}
	logging.FromContext(ctx).Info("budget.delete", zap.String("budget_id", b.ID))
	return nil
}

func (u *BudgetUseCase) History(ctx context.Context, id string) ([]entities.BudgetHistory, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	entries, err := u.historyRepo.ListByBudgetID(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].CreatedAt.Before(entries[j].CreatedAt) })
	return entries, nil
}

func (u *BudgetUseCase) Types() []entities.BudgetType {
	return entities.BudgetTypes()
}

func (u *BudgetUseCase) assignClient(ctx context.Context, b *entities.Budget, clientID string) error {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return invalid("client_id", "must not be empty")
	}
	c, err := u.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return err
	}
	if c.ID == "" {
		return ErrClientNotFound
	}
	b.ClientID = c.ID
	b.ClientName = c.Name
	return nil
}

func (u *BudgetUseCase) assignSeller(ctx context.Context, b *entities.Budget, sellerID string) error {
	sellerID = strings.TrimSpace(sellerID)
	if sellerID == "" {
		b.SellerID = ""
		b.SellerName = ""
		return nil
	}
	s, err := u.sellerRepo.GetByID(ctx, sellerID)
	if err != nil {
		return err
	}
	if s.ID == "" {
		return ErrSellerNotFound
	}
	if !s.Active {
		return invalid("seller_id", "seller is inactive")
	}
	b.SellerID = s.ID
	b.SellerName = s.Name
	return nil
}

func (u *BudgetUseCase) applyEffect(ctx context.Context, old entities.BudgetStatus, b entities.Budget) error {
	if pricing.ApplyStatusChange(old, b.Status, b.HasSeller()) != pricing.EffectCreateCommission {
		return nil
	}
	if _, err := u.commissions.Derive(ctx, b, nil); err != nil {
		return fmt.Errorf("derive commission for budget %s: %w", b.ID, err)
	}
	return nil
}

func (u *BudgetUseCase) appendHistory(ctx context.Context, b entities.Budget, action entities.HistoryAction, description string) error {
	return u.historyRepo.Append(ctx, entities.BudgetHistory{
		ID:          uuid.NewString(),
		BudgetID:    b.ID,
		Action:      action,
		Description: description,
		Version:     b.Version,
		ChangedBy:   requestctx.ActorFromContext(ctx),
		CreatedAt:   time.Now().UTC(),
	})
}

func normalizeItems(in []pricing.ItemInput) ([]entities.BudgetItem, error) {
	items := make([]entities.BudgetItem, 0, len(in))
	for i, it := range in {
		if err := pricing.ValidateItem(it); err != nil {
			err = fromFieldError(err)
			if v, ok := err.(*ValidationError); ok {
				v.Field = fmt.Sprintf("items[%d].%s", i, v.Field)
			}
			return nil, err
		}
		items = append(items, pricing.NormalizeItem(it))
	}
	return items, nil
}

func recalculate(b *entities.Budget) {
	t := pricing.ComputeBudgetTotals(b.Items, b.Discount)
	b.Subtotal = t.Subtotal
	b.DiscountAmount = t.DiscountAmount
	b.Total = t.Total
}
