package estimate

import (
	"context"

	"github.com/sourcegraph/conc/pool"

	"github.com/stackquote/stackquote/pkg/models"
)

// DefaultWorkers bounds Batch when no worker count is given.
const DefaultWorkers = 4

// Result is the estimate for one project of a batch.
type Result struct {
	Name       string               `json:"name"`
	Breakdown  models.CostBreakdown `json:"breakdown"`
	Financials models.Financials    `json:"financials"`
	Items      []models.LineItem    `json:"items"`
}

// Estimate prices a single project and derives its financials and line items.
func (e *Engine) Estimate(p models.Project) Result {
	b := e.Calculate(p)
	return Result{
		Name:       p.Name,
		Breakdown:  b,
		Financials: Financials(p, b),
		Items:      e.Itemize(p),
	}
}

// Batch estimates projects concurrently with at most workers goroutines.
// Results are returned in input order. If ctx is cancelled before every
// project is priced, Batch returns ctx.Err().
func (e *Engine) Batch(ctx context.Context, projects []models.Project, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	results := make([]Result, len(projects))

	p := pool.New().WithMaxGoroutines(workers)
	for i := range projects {
		p.Go(func() {
			if ctx.Err() != nil {
				return
			}
			results[i] = e.Estimate(projects[i])
		})
	}
	p.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
