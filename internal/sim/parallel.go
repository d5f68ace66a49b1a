package sim

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/rocketsim/internal/physics"
)

// Factory builds the Simulator for one rocket of an ensemble.
type Factory func(r *physics.Rocket) *Simulator

// Ensemble runs independent rockets concurrently. Each run gets its own
// Simulator from the factory so metrics are never shared between goroutines.
type Ensemble struct {
	factory Factory
}

func NewEnsemble(factory Factory) *Ensemble {
	return &Ensemble{factory: factory}
}

// Run returns one result per rocket, in input order. The first failure
// cancels the remaining runs.
func (e *Ensemble) Run(ctx context.Context, rockets []*physics.Rocket, cfg Config) ([]*Result, error) {
	results := make([]*Result, len(rockets))

	g, ctx := errgroup.WithContext(ctx)
	for i, r := range rockets {
		i, r := i, r
		g.Go(func() error {
			res, err := e.factory(r).Run(ctx, r, cfg)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
