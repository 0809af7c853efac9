package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/tupyy/graph-crawler/internal/models"
	srvErrors "github.com/tupyy/graph-crawler/pkg/errors"
)

// ListOption narrows or pages a node listing.
type ListOption func(sq.SelectBuilder) sq.SelectBuilder

func ByLabels(labels ...string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.Eq{"label": labels})
	}
}

// ByProperty filters on a JSON property compared as text.
func ByProperty(key, value string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.Expr(`json_extract_string(properties, ?) = ?`, "$."+key, value))
	}
}

func WithLimit(limit uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Limit(limit)
	}
}

func WithOffset(offset uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Offset(offset)
	}
}

// NodeStore handles node storage.
type NodeStore struct {
	db QueryInterceptor
}

func NewNodeStore(db QueryInterceptor) *NodeStore {
	return &NodeStore{db: db}
}

// Get retrieves a node by id.
func (s *NodeStore) Get(ctx context.Context, id string) (models.Node, error) {
	row := s.db.QueryRowContext(ctx, queryGetNode, id)

	node, err := scanNode(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Node{}, srvErrors.NewNodeNotFoundError(id)
	}
	if err != nil {
		return models.Node{}, err
	}
	return node, nil
}

// Save stores or updates a node.
func (s *NodeStore) Save(ctx context.Context, node models.Node) error {
	props, err := marshalProperties(node.Properties)
	if err != nil {
		return fmt.Errorf("failed to marshal properties of node %q: %w", node.ID, err)
	}
	_, err = s.db.ExecContext(ctx, queryUpsertNode, node.ID, node.Label, props)
	return err
}

// SetProperty merges a single property into the node's property document.
func (s *NodeStore) SetProperty(ctx context.Context, id, key string, value any) error {
	patch, err := json.Marshal(map[string]any{key: value})
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, querySetNodeProperty, string(patch), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return srvErrors.NewNodeNotFoundError(id)
	}
	return nil
}

// Delete removes a node by id.
func (s *NodeStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, queryDeleteNode, id)
	return err
}

// List returns the nodes matching the given options, ordered by id.
func (s *NodeStore) List(ctx context.Context, opts ...ListOption) ([]models.Node, error) {
	builder := sq.Select("id", "label", "properties", "created_at", "updated_at").
		From("nodes").
		OrderBy("id")

	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var nodes []models.Node
	for rows.Next() {
		node, err := scanNode(rows.Scan)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, rows.Err()
}

// Count returns the number of nodes matching the given options. Paging
// options must not be passed here.
func (s *NodeStore) Count(ctx context.Context, opts ...ListOption) (int, error) {
	builder := sq.Select("count(*)").From("nodes")
	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanNode(scan func(dest ...any) error) (models.Node, error) {
	var (
		node  models.Node
		props sql.NullString
	)
	if err := scan(&node.ID, &node.Label, &props, &node.CreatedAt, &node.UpdatedAt); err != nil {
		return models.Node{}, err
	}
	if props.Valid && props.String != "" {
		if err := json.Unmarshal([]byte(props.String), &node.Properties); err != nil {
			return models.Node{}, fmt.Errorf("failed to unmarshal properties of node %q: %w", node.ID, err)
		}
	}
	return node, nil
}

func marshalProperties(props map[string]any) (any, error) {
	if len(props) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(props)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}
