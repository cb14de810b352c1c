package usecase

import (
	"context"
	"math"
	"time"

	"orcasys/internal/domain/entities"
	"orcasys/internal/usecase/interfaces"
)

type BudgetStatistics struct {
	TotalBudgets      int       `json:"total_budgets"`
	DraftBudgets      int       `json:"draft_budgets"`
	SentBudgets       int       `json:"sent_budgets"`
	ApprovedBudgets   int       `json:"approved_budgets"`
	RejectedBudgets   int       `json:"rejected_budgets"`
	ApprovalRate      float64   `json:"approval_rate"`
	MonthlyRevenue    float64   `json:"monthly_revenue"`
	ApprovedThisMonth int       `json:"approved_this_month"`
	CurrentMonth      string    `json:"current_month"`
	LastUpdated       time.Time `json:"last_updated"`
}

type IStatisticsUseCase interface {
	Budgets(ctx context.Context) (BudgetStatistics, error)
}

type StatisticsUseCase struct {
	budgets interfaces.IBudgetRepository
	now     func() time.Time
}

var _ IStatisticsUseCase = (*StatisticsUseCase)(nil)

func NewStatisticsUseCase(budgets interfaces.IBudgetRepository) *StatisticsUseCase {
	return &StatisticsUseCase{budgets: budgets, now: func() time.Time { return time.Now().UTC() }}
}

// Budgets counts budgets per status. Revenue covers approved budgets whose
// last update falls in the current UTC month.
func (u *StatisticsUseCase) Budgets(ctx context.Context) (BudgetStatistics, error) {
	list, err := u.budgets.List(ctx, interfaces.BudgetFilter{})
	if err != nil {
		return BudgetStatistics{}, err
	}

	now := u.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	s := BudgetStatistics{
		TotalBudgets: len(list),
		CurrentMonth: now.Format("01/2006"),
		LastUpdated:  now,
	}
	for _, b := range list {
		switch b.Status {
		case entities.BudgetStatusDraft:
			s.DraftBudgets++
		case entities.BudgetStatusSent:
			s.SentBudgets++
		case entities.BudgetStatusApproved:
			s.ApprovedBudgets++
			if !b.UpdatedAt.UTC().Before(monthStart) {
				s.ApprovedThisMonth++
				s.MonthlyRevenue += b.Total
			}
		case entities.BudgetStatusRejected:
			s.RejectedBudgets++
		}
	}
	if s.TotalBudgets > 0 {
		s.ApprovalRate = math.Round(float64(s.ApprovedBudgets)/float64(s.TotalBudgets)*1000) / 10
	}
	return s, nil
}
