package services

import (
	"context"

	"github.com/tupyy/graph-crawler/internal/models"
	"github.com/tupyy/graph-crawler/internal/store"
)

type GraphService struct {
	store *store.Store
}

func NewGraphService(st *store.Store) *GraphService {
	return &GraphService{store: st}
}

type NodeListParams struct {
	Labels        []string
	PropertyKey   string
	PropertyValue string
	Limit         uint64
	Offset        uint64
}

type NodeListResult struct {
	Nodes []models.Node
	Total int
}

func (s *GraphService) List(ctx context.Context, params NodeListParams) (*NodeListResult, error) {
	opts := s.buildListOptions(params)

	nodes, err := s.store.Nodes().List(ctx, opts...)
	if err != nil {
		return nil, err
	}

	// Get total count without pagination
	countOpts := s.buildListOptions(NodeListParams{
		Labels:        params.Labels,
		PropertyKey:   params.PropertyKey,
		PropertyValue: params.PropertyValue,
	})
	total, err := s.store.Nodes().Count(ctx, countOpts...)
	if err != nil {
		return nil, err
	}

	return &NodeListResult{
		Nodes: nodes,
		Total: total,
	}, nil
}

func (s *GraphService) Get(ctx context.Context, id string) (models.Node, error) {
	return s.store.Nodes().Get(ctx, id)
}

func (s *GraphService) GetRelationship(ctx context.Context, id string) (models.Relationship, error) {
	return s.store.Relationships().Get(ctx, id)
}

func (s *GraphService) buildListOptions(params NodeListParams) []store.ListOption {
	var opts []store.ListOption

	if len(params.Labels) > 0 {
		opts = append(opts, store.ByLabels(params.Labels...))
	}
	if params.PropertyKey != "" {
		opts = append(opts, store.ByProperty(params.PropertyKey, params.PropertyValue))
	}
	if params.Limit > 0 {
		opts = append(opts, store.WithLimit(params.Limit))
	}
	if params.Offset > 0 {
		opts = append(opts, store.WithOffset(params.Offset))
	}

	return opts
}
