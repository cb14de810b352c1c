package usecase

import "orcasys/internal/usecase/interfaces"

type nopMetrics struct{}

func (nopMetrics) BudgetCreated(string) {}
func (nopMetrics) BudgetStatusChanged(string, string) {}
func (nopMetrics) CommissionCreated() {}
func (nopMetrics) ClientDeletion(string) {}
func (nopMetrics) ClientsImported(int) {}

func orNopMetrics(m interfaces.IMetrics) interfaces.IMetrics {
	if m == nil {
		return nopMetrics{}
	}
	return m
}
