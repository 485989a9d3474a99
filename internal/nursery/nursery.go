// Package nursery implements structured concurrency, as described in
// https://vorpus.org/blog/notes-on-structured-concurrency-or-go-statement-considered-harmful/,
// for fanning out short-lived per-particle work and joining before the
// optimizer moves on to its next phase.
package nursery

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Nursery provides a structured way to work with parent and child goroutine
// lifecycles.
type Nursery struct {
	g *errgroup.Group
}

// Block is a function that is executed in the context of a Nursery, which can
// be used to run multiple goroutines that all must exit before returning
// control to the caller of nursery.Run.
type Block func(context.Context, *Nursery)

// Run creates a nursery that runs the given function. Run executes the block,
// running any requested goroutines until they are all completed, using the
// same semantics as an ErrGroup with a Context.
func Run(ctx context.Context, block Block) error {
	g, childCtx := errgroup.WithContext(ctx)
	n := &Nursery{g: g}

	block(childCtx, n)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("run nursery: %w", err)
	}
	return nil
}

// Go spawns a goroutine for the given function, ensuring that it will be
// waited on. The function takes no arguments; it can observe cancellation
// through the context passed to the enclosing Block.
func (n *Nursery) Go(f func() error) {
	n.g.Go(f)
}

// RunIndexed fans f(0), f(1), ..., f(n-1) out across goroutines joined by a
// single nursery and waits for all of them. It is the shape the swarm engine
// needs for "do this to every particle in parallel, then proceed": one
// goroutine per index, no partial results visible until every index has
// returned. A non-nil error from any index cancels ctx for the others and is
// returned, wrapped with the index that produced it.
func RunIndexed(ctx context.Context, n int, f func(ctx context.Context, i int) error) error {
	return Run(ctx, func(ctx context.Context, nu *Nursery) {
		for i := 0; i < n; i++ {
			i := i
			nu.Go(func() error {
				if err := f(ctx, i); err != nil {
					return fmt.Errorf("index %d: %w", i, err)
				}
				return nil
			})
		}
	})
}
