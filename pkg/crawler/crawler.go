package crawler

import (
	"context"
	"time"

	srvErrors "github.com/tupyy/graph-crawler/pkg/errors"

	"github.com/tupyy/graph-crawler/internal/models"
)

// Source is the read side of the graph being crawled. Crawling never
// mutates the graph; handlers that want to write go through the writer.
type Source interface {
	Node(ctx context.Context, id string) (models.Node, error)
	Neighbors(ctx context.Context, id string) ([]models.Node, error)
}

// Handler is called for every node matching the inclusion strategy.
type Handler func(ctx context.Context, node models.Node) error

// Stats summarizes one traversal.
type Stats struct {
	Visited int
	Matched int
}

type Option func(*Crawler)

// WithStrategy sets the inclusion strategy. Default is IncludeAll.
func WithStrategy(s Strategy) Option {
	return func(c *Crawler) {
		if s != nil {
			c.strategy = s
		}
	}
}

// WithThrottle sets the pause between node visits.
func WithThrottle(d time.Duration) Option {
	return func(c *Crawler) {
		if d > 0 {
			c.throttle = d
		}
	}
}

// WithMaxDepth bounds the traversal depth from the seeds. Zero means
// unbounded.
func WithMaxDepth(depth int) Option {
	return func(c *Crawler) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

// Crawler walks a graph breadth-first from seed nodes, handing every node
// matching the inclusion strategy to a handler.
type Crawler struct {
	source   Source
	strategy Strategy
	throttle time.Duration
	maxDepth int
}

func New(source Source, opts ...Option) *Crawler {
	c := &Crawler{
		source:   source,
		strategy: IncludeAll(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Crawl traverses the graph from the seed node ids. Nodes are visited at
// most once per run, relationships are followed in both directions. A
// handler error aborts the run; a missing seed or neighbor is skipped.
func (c *Crawler) Crawl(ctx context.Context, seeds []string, handler Handler) (Stats, error) {
	var stats Stats

	type item struct {
		id    string
		depth int
	}

	visited := make(map[string]struct{})
	queue := make([]item, 0, len(seeds))
	for _, id := range seeds {
		queue = append(queue, item{id: id})
	}

	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		head := queue[0]
		queue = queue[1:]

		if _, ok := visited[head.id]; ok {
			continue
		}
		visited[head.id] = struct{}{}

		node, err := c.source.Node(ctx, head.id)
		if err != nil {
			if srvErrors.IsResourceNotFoundError(err) {
				continue
			}
			return stats, err
		}
		stats.Visited++

		if c.strategy.Include(node) {
			stats.Matched++
			if handler != nil {
				if err := handler(ctx, node); err != nil {
					return stats, err
				}
			}
		}

		if c.maxDepth == 0 || head.depth < c.maxDepth {
			neighbors, err := c.source.Neighbors(ctx, head.id)
			if err != nil {
				return stats, err
			}
			for _, n := range neighbors {
				if _, ok := visited[n.ID]; !ok {
					queue = append(queue, item{id: n.ID, depth: head.depth + 1})
				}
			}
		}

		if c.throttle > 0 {
			select {
			case <-ctx.Done():
				return stats, ctx.Err()
			case <-time.After(c.throttle):
			}
		}
	}

	return stats, nil
}
