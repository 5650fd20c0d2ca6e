package collector

import (
	"context"

	"BalanceSentinel/internal/model"
)

// Source defines the interface for loading a financial snapshot.
type Source interface {
	Load(ctx context.Context) (model.FinancialSnapshot, error)
	Name() string
}

// MockSource returns a fixed snapshot for development and testing.
type MockSource struct {
	Snapshot model.FinancialSnapshot
}

// NewMockSource returns a source serving SampleSnapshot.
func NewMockSource() *MockSource {
	return &MockSource{Snapshot: SampleSnapshot()}
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) Load(ctx context.Context) (model.FinancialSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return model.FinancialSnapshot{}, err
	}
	return m.Snapshot, nil
}

// SampleSnapshot is a household balance sheet used as the demo input.
func SampleSnapshot() model.FinancialSnapshot {
	return model.FinancialSnapshot{
		CashLocal:            315905,
		CashForeign:          588203,
		CashTermDeposit:      1800000,
		StockLocal:           1134698,
		StockForeign:         10463977,
		RealEstate:           16200000 + 30690000,
		OtherAssets:          412082 + 2415364,
		LiabilityShortTerm:   3119392,
		LiabilityLongTerm:    15252853,
		MonthlyLoanRepayment: 65000,
		MonthlyIncome:        180000,
		MonthlyExpense:       80000,
	}
}
