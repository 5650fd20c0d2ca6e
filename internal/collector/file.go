package collector

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"BalanceSentinel/internal/calculator"
	"BalanceSentinel/internal/model"
)

// Amount is a snapshot figure. In a file it may be written as a single number
// or as a list of line items that are summed.
type Amount float64

// UnmarshalYAML accepts a scalar or a sequence of scalars.
func (a *Amount) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var f float64
		if err := value.Decode(&f); err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*a = Amount(f)
		return nil
	case yaml.SequenceNode:
		var items []float64
		if err := value.Decode(&items); err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		for _, it := range items {
			if it < 0 {
				return fmt.Errorf("line %d: negative line item %v", value.Line, it)
			}
		}
		*a = Amount(calculator.SumAmounts(items...).InexactFloat64())
		return nil
	default:
		return fmt.Errorf("line %d: amount must be a number or a list of numbers", value.Line)
	}
}

// snapshotFile is the on-disk shape of a snapshot. Every figure must be present.
type snapshotFile struct {
	ReportDate string `yaml:"report_date" validate:"omitempty,datetime=2006-01-02"`

	CashLocal       *Amount `yaml:"cash_local" validate:"required"`
	CashForeign     *Amount `yaml:"cash_foreign" validate:"required"`
	CashTermDeposit *Amount `yaml:"cash_term_deposit" validate:"required"`
	StockLocal      *Amount `yaml:"stock_local" validate:"required"`
	StockForeign    *Amount `yaml:"stock_foreign" validate:"required"`
	RealEstate      *Amount `yaml:"real_estate" validate:"required"`
	OtherAssets     *Amount `yaml:"other_assets" validate:"required"`

	LiabilityShortTerm *Amount `yaml:"liability_short_term" validate:"required"`
	LiabilityLongTerm  *Amount `yaml:"liability_long_term" validate:"required"`

	MonthlyLoanRepayment *Amount `yaml:"monthly_loan_repayment" validate:"required"`
	MonthlyIncome        *Amount `yaml:"monthly_income" validate:"required"`
	MonthlyExpense       *Amount `yaml:"monthly_expense" validate:"required"`
}

func (f *snapshotFile) toModel() model.FinancialSnapshot {
	s := model.FinancialSnapshot{
		CashLocal:            float64(*f.CashLocal),
		CashForeign:          float64(*f.CashForeign),
		CashTermDeposit:      float64(*f.CashTermDeposit),
		StockLocal:           float64(*f.StockLocal),
		StockForeign:         float64(*f.StockForeign),
		RealEstate:           float64(*f.RealEstate),
		OtherAssets:          float64(*f.OtherAssets),
		LiabilityShortTerm:   float64(*f.LiabilityShortTerm),
		LiabilityLongTerm:    float64(*f.LiabilityLongTerm),
		MonthlyLoanRepayment: float64(*f.MonthlyLoanRepayment),
		MonthlyIncome:        float64(*f.MonthlyIncome),
		MonthlyExpense:       float64(*f.MonthlyExpense),
	}
	if f.ReportDate != "" {
		// format already checked by the datetime tag
		s.ReportDate, _ = time.Parse("2006-01-02", f.ReportDate)
	}
	return s
}

// FileSource reads a snapshot from a YAML (or JSON) file.
type FileSource struct {
	Path string
}

// NewFileSource creates a source for the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (f *FileSource) Name() string { return "file:" + f.Path }

func (f *FileSource) Load(ctx context.Context) (model.FinancialSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return model.FinancialSnapshot{}, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return model.FinancialSnapshot{}, fmt.Errorf("read snapshot: %w", err)
	}
	return ParseSnapshot(data)
}

// ParseSnapshot decodes and checks a snapshot document.
func ParseSnapshot(data []byte) (model.FinancialSnapshot, error) {
	var sf snapshotFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return model.FinancialSnapshot{}, fmt.Errorf("parse snapshot: %w", err)
	}
	if err := validateStruct(&sf); err != nil {
		return model.FinancialSnapshot{}, err
	}
	return sf.toModel(), nil
}
