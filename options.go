package memlock

import (
	"log/slog"

	"github.com/hupe1980/memlock/budget"
)

type options struct {
	logger *slog.Logger
	budget []budget.Option
}

// Option configures the process-wide default budget.
type Option func(*options)

// WithLogger sets the logger of the default budget. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithBudgetOptions passes opts to budget.New when the default budget is
// created.
func WithBudgetOptions(opts ...budget.Option) Option {
	return func(o *options) {
		o.budget = append(o.budget, opts...)
	}
}

func (o options) budgetOptions() []budget.Option {
	opts := []budget.Option{budget.WithLogger(o.logger)}
	return append(opts, o.budget...)
}
