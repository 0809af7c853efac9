package crawler

import (
	"github.com/tupyy/graph-crawler/internal/models"
	"github.com/tupyy/graph-crawler/pkg/predicate"
)

// Strategy decides whether a discovered node is interesting enough to hand
// to the inclusion handler.
type Strategy interface {
	Include(node models.Node) bool
}

// IncludeAll matches every node.
func IncludeAll() Strategy {
	return includeAll{}
}

type includeAll struct{}

func (includeAll) Include(models.Node) bool { return true }

// ByLabel matches nodes carrying one of the given labels.
func ByLabel(labels ...string) Strategy {
	set := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		set[l] = struct{}{}
	}
	return byLabel{labels: set}
}

type byLabel struct {
	labels map[string]struct{}
}

func (s byLabel) Include(node models.Node) bool {
	_, ok := s.labels[node.Label]
	return ok
}

// ByProperty matches nodes whose named property satisfies the predicate.
// Nodes without the property are excluded.
func ByProperty(key string, p predicate.Predicate) Strategy {
	return byProperty{key: key, pred: p}
}

type byProperty struct {
	key  string
	pred predicate.Predicate
}

func (s byProperty) Include(node models.Node) bool {
	v := node.Property(s.key)
	if v == nil {
		return false
	}
	return s.pred.Evaluate(v)
}

// And matches nodes included by every given strategy.
func And(strategies ...Strategy) Strategy {
	return and{strategies: strategies}
}

type and struct {
	strategies []Strategy
}

func (s and) Include(node models.Node) bool {
	for _, strategy := range s.strategies {
		if !strategy.Include(node) {
			return false
		}
	}
	return true
}
