package collector

import (
	"context"
	"fmt"
	"log"

	"BalanceSentinel/internal/model"
)

// Collector loads a snapshot from its source and checks it before it reaches the core.
type Collector struct {
	Source Source
}

// NewCollector creates a new Collector.
func NewCollector(src Source) *Collector {
	return &Collector{Source: src}
}

// Collect loads and validates the current snapshot.
func (c *Collector) Collect(ctx context.Context) (model.FinancialSnapshot, error) {
	snap, err := c.Source.Load(ctx)
	if err != nil {
		return model.FinancialSnapshot{}, fmt.Errorf("load snapshot from %s: %w", c.Source.Name(), err)
	}
	if err := Validate(snap); err != nil {
		return model.FinancialSnapshot{}, err
	}
	log.Printf("[INFO] snapshot loaded from %s", c.Source.Name())
	return snap, nil
}

// Validate checks that every figure is finite and non-negative.
func Validate(s model.FinancialSnapshot) error {
	return validateStruct(&s)
}
