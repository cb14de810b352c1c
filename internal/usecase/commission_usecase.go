package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"orcasys/internal/domain/entities"
	"orcasys/internal/domain/pricing"
	"orcasys/internal/infrastructure/logging"
	"orcasys/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// SellerCommissionSummary aggregates the commissions of one seller.
type SellerCommissionSummary struct {
	SellerID        string  `json:"seller_id"`
	SellerName      string  `json:"seller_name"`
	CommissionCount int     `json:"commission_count"`
	TotalCommission float64 `json:"total_commission"`
	TotalSales      float64 `json:"total_sales"`
}

type CommissionSummary struct {
	Sellers               []SellerCommissionSummary `json:"sellers"`
	TotalCommissionAmount float64                   `json:"total_commission_amount"`
	TotalSalesAmount      float64                   `json:"total_sales_amount"`
	TotalCommissionCount  int                       `json:"total_commission_count"`
}

type ICommissionUseCase interface {
	Derive(ctx context.Context, budget entities.Budget, override *float64) (entities.Commission, error)
	CreateForBudget(ctx context.Context, budgetID string, override *float64) (entities.Commission, error)
	List(ctx context.Context, filter interfaces.CommissionFilter) ([]entities.Commission, error)
	Summary(ctx context.Context, filter interfaces.CommissionFilter) (CommissionSummary, error)
	MarkPaid(ctx context.Context, id string) (entities.Commission, error)
}

type CommissionUseCase struct {
	repo       interfaces.ICommissionRepository
	sellerRepo interfaces.ISellerRepository
	budgetRepo interfaces.IBudgetRepository
	metrics    interfaces.IMetrics
}

var _ ICommissionUseCase = (*CommissionUseCase)(nil)

func NewCommissionUseCase(repo interfaces.ICommissionRepository, sellerRepo interfaces.ISellerRepository, budgetRepo interfaces.IBudgetRepository, metrics interfaces.IMetrics) *CommissionUseCase {
	return &CommissionUseCase{repo: repo, sellerRepo: sellerRepo, budgetRepo: budgetRepo, metrics: orNopMetrics(metrics)}
}

// Derive creates the commission owed for an approved budget. It is
// idempotent: when the budget already has a commission, that one is
// returned unchanged. override, when set, replaces the seller's percentage.
func (u *CommissionUseCase) Derive(ctx context.Context, budget entities.Budget, override *float64) (entities.Commission, error) {
	if !budget.HasSeller() {
		return entities.Commission{}, invalid("seller_id", "budget has no seller assigned")
	}
	if budget.Status != entities.BudgetStatusApproved {
		return entities.Commission{}, invalid("status", "budget is not approved")
	}
	if override != nil && (*override < 0 || *override > 100) {
		return entities.Commission{}, invalid("commission_percentage", "must be between 0 and 100")
	}

	id := entities.CommissionIDForBudget(budget.ID)
	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Commission{}, err
	}
	if existing.ID != "" {
		return existing, nil
	}

	seller, err := u.sellerRepo.GetByID(ctx, budget.SellerID)
	if err != nil {
		return entities.Commission{}, err
	}
	if seller.ID == "" {
		return entities.Commission{}, ErrSellerNotFound
	}

	pct := seller.CommissionPercentage
	if override != nil {
		pct = *override
	}

	now := time.Now().UTC()
	c := entities.Commission{
		ID:                   id,
		BudgetID:             budget.ID,
		SellerID:             seller.ID,
		SellerName:           seller.Name,
		ClientName:           budget.ClientName,
		BudgetTotal:          budget.Total,
		CommissionPercentage: pct,
		CommissionAmount:     pricing.CommissionAmount(budget.Total, pct),
		Status:               entities.CommissionStatusCalculated,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	created, inserted, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Commission{}, err
	}
	if !inserted {
		return created, nil
	}

	u.metrics.CommissionCreated()
	logging.FromContext(ctx).Info("commission.create",
		zap.String("commission_id", created.ID),
		zap.String("budget_id", budget.ID),
		zap.String("seller_id", seller.ID),
		zap.Float64("amount", created.CommissionAmount),
	)
	return created, nil
}

func (u *CommissionUseCase) CreateForBudget(ctx context.Context, budgetID string, override *float64) (entities.Commission, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return entities.Commission{}, invalid("budget_id", "must not be empty")
	}
	b, err := u.budgetRepo.GetByID(ctx, budgetID)
	if err != nil {
		return entities.Commission{}, err
	}
	if b.ID == "" {
		return entities.Commission{}, ErrBudgetNotFound
	}
	return u.Derive(ctx, b, override)
}

func (u *CommissionUseCase) List(ctx context.Context, filter interfaces.CommissionFilter) ([]entities.Commission, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, invalid("status", "unknown commission status")
	}
	list, err := u.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (u *CommissionUseCase) Summary(ctx context.Context, filter interfaces.CommissionFilter) (CommissionSummary, error) {
	list, err := u.List(ctx, filter)
	if err != nil {
		return CommissionSummary{}, err
	}

	bySeller := map[string]*SellerCommissionSummary{}
	var order []string
	var summary CommissionSummary
	for _, c := range list {
		s, ok := bySeller[c.SellerID]
		if !ok {
			s = &SellerCommissionSummary{SellerID: c.SellerID, SellerName: c.SellerName}
			bySeller[c.SellerID] = s
			order = append(order, c.SellerID)
		}
		s.CommissionCount++
		s.TotalCommission += c.CommissionAmount
		s.TotalSales += c.BudgetTotal

		summary.TotalCommissionCount++
		summary.TotalCommissionAmount += c.CommissionAmount
		summary.TotalSalesAmount += c.BudgetTotal
	}

	summary.Sellers = make([]SellerCommissionSummary, 0, len(order))
	for _, id := range order {
		summary.Sellers = append(summary.Sellers, *bySeller[id])
	}
	sort.SliceStable(summary.Sellers, func(i, j int) bool {
		return summary.Sellers[i].TotalCommission > summary.Sellers[j].TotalCommission
	})
	return summary, nil
}

func (u *CommissionUseCase) MarkPaid(ctx context.Context, id string) (entities.Commission, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Commission{}, invalid("id", "must not be empty")
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Commission{}, err
	}
	if c.ID == "" {
		return entities.Commission{}, ErrCommissionNotFound
	}
	if c.Status == entities.CommissionStatusPaid {
		return entities.Commission{}, invalid("status", "commission is already paid")
	}

	paid, err := u.repo.MarkPaid(ctx, id, time.Now().UTC())
	if err != nil {
		return entities.Commission{}, err
	}
	if paid.ID == "" {
		return entities.Commission{}, ErrCommissionNotFound
	}
	return paid, nil
}
