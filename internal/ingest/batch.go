package ingest

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"roster/internal/directory/models"
)

// ParseAll parses every line and keeps only records that both parsed and
// validate. Malformed or invalid lines are dropped silently; callers can only
// observe the gap between input and output counts. Kept records preserve
// input order.
func ParseAll(lines []string) []models.User {
	var kept []models.User
	for _, line := range lines {
		u, err := ParseLine(line)
		if err != nil {
			continue
		}
		if u.Validate() != nil {
			continue
		}
		kept = append(kept, u)
	}
	return kept
}

// ParseAllParallel is ParseAll for large feeds: lines are parsed concurrently
// with shared context cancellation, results land in per-index slots and are
// compacted afterwards, so keep/drop semantics and output order are identical
// to ParseAll. The only error returned is the context's.
func ParseAllParallel(ctx context.Context, lines []string) ([]models.User, error) {
	slots := make([]*models.User, len(lines))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			u, err := ParseLine(line)
			if err != nil {
				return nil
			}
			if u.Validate() != nil {
				return nil
			}
			slots[i] = &u
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var kept []models.User
	for _, slot := range slots {
		if slot != nil {
			kept = append(kept, *slot)
		}
	}
	return kept, nil
}
