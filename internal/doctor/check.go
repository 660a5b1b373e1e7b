package doctor

import "context"

// Check is one independent diagnostic. Run never fails; problems are
// reported as outcomes.
type Check interface {
	Name() string
	Run(ctx context.Context) []CheckOutcome
}

// CheckFunc adapts a function to the Check interface.
type CheckFunc struct {
	name string
	fn   func(ctx context.Context) []CheckOutcome
}

func NewCheck(name string, fn func(ctx context.Context) []CheckOutcome) CheckFunc {
	return CheckFunc{name: name, fn: fn}
}

func (c CheckFunc) Name() string {
	return c.name
}

func (c CheckFunc) Run(ctx context.Context) []CheckOutcome {
	return c.fn(ctx)
}

// single wraps a check producing exactly one outcome.
func single(fn func(ctx context.Context) CheckOutcome) func(ctx context.Context) []CheckOutcome {
	return func(ctx context.Context) []CheckOutcome {
		return []CheckOutcome{fn(ctx)}
	}
}
