package prismgraph

import (
	"context"

	"github.com/ukaji3/prismgraph-go/pkg/prismgraph/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BatchItem is the outcome of one input in a batch.
type BatchItem struct {
	// Input is the raw command text.
	Input string
	// Graph is set for successful 2D computations.
	Graph *models.GraphResult
	// Surface is set for successful 3D computations.
	Surface *models.SurfaceResult
	// Err is the per-input failure, if any.
	Err error
}

// PlotBatch computes every input independently and in parallel, bounded by
// Options.Concurrency. Per-input failures are reported in BatchItem.Err;
// the returned error is non-nil only when ctx is cancelled.
func PlotBatch(ctx context.Context, inputs []string, variant Variant, opts Options) ([]BatchItem, error) {
	items := make([]BatchItem, len(inputs))
	log := opts.logger()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.concurrency())

	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			item := BatchItem{Input: input}
			if variant == Variant3D {
				item.Surface, item.Err = Surface(input, opts)
			} else {
				item.Graph, item.Err = Plot(input, opts)
			}
			if item.Err != nil {
				log.Debug("Batch item failed", zap.Int("index", i), zap.Error(item.Err))
			}
			items[i] = item
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}
