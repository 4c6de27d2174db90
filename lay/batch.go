package lay

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// ParseFiles parses independent lay files in parallel, running at most limit
// parses at once (no limit if limit <= 0). Layouts are returned in the order
// of names. The first failure cancels the parses that have not started yet
// and is returned alone.
func ParseFiles(ctx context.Context, names []string, limit int) ([]*Layout, error) {
	out := make([]*Layout, len(names))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			l, err := ParseFile(name)
			if err != nil {
				return errors.Wrapf(err, "parsing %q", name)
			}
			out[i] = l
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
