package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/markerprune/pkg/adapters/fs"
)

type changeSource struct {
	changes <-chan fs.Change
	out     chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits settled input changes.
// Every event is an fs.Change.
func NewSource(changes <-chan fs.Change) lifecycle.Source {
	return &changeSource{
		changes: changes,
		out:     make(chan lifecycle.Event),
	}
}

func (s *changeSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start forwards changes until ctx is done or the change channel closes,
// then closes Events.
func (s *changeSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case c, ok := <-s.changes:
				if !ok {
					return nil
				}
				select {
				case s.out <- c:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
