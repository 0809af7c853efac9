package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tupyy/graph-crawler/internal/models"
	srvErrors "github.com/tupyy/graph-crawler/pkg/errors"
)

// RelationshipStore handles relationship storage.
type RelationshipStore struct {
	db QueryInterceptor
}

func NewRelationshipStore(db QueryInterceptor) *RelationshipStore {
	return &RelationshipStore{db: db}
}

// Get retrieves a relationship by id.
func (s *RelationshipStore) Get(ctx context.Context, id string) (models.Relationship, error) {
	row := s.db.QueryRowContext(ctx, queryGetRelationship, id)

	rel, err := scanRelationship(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Relationship{}, srvErrors.NewRelationshipNotFoundError(id)
	}
	if err != nil {
		return models.Relationship{}, err
	}
	return rel, nil
}

// Save stores or updates a relationship. Both endpoints must exist.
func (s *RelationshipStore) Save(ctx context.Context, rel models.Relationship) error {
	props, err := marshalProperties(rel.Properties)
	if err != nil {
		return fmt.Errorf("failed to marshal properties of relationship %q: %w", rel.ID, err)
	}
	_, err = s.db.ExecContext(ctx, queryUpsertRelationship, rel.ID, rel.Type, rel.StartID, rel.EndID, props)
	return err
}

// Delete removes a relationship by id.
func (s *RelationshipStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, queryDeleteRelationship, id)
	return err
}

// Neighbors returns the nodes connected to the given node in either
// direction.
func (s *RelationshipStore) Neighbors(ctx context.Context, nodeID string) ([]models.Node, error) {
	rows, err := s.db.QueryContext(ctx, queryNeighbors, nodeID, nodeID)
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

// Count returns the total number of relationships.
func (s *RelationshipStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM relationships`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanRelationship(scan func(dest ...any) error) (models.Relationship, error) {
	var (
		rel   models.Relationship
		props sql.NullString
	)
	if err := scan(&rel.ID, &rel.Type, &rel.StartID, &rel.EndID, &props, &rel.CreatedAt); err != nil {
		return models.Relationship{}, err
	}
	if props.Valid && props.String != "" {
		if err := json.Unmarshal([]byte(props.String), &rel.Properties); err != nil {
			return models.Relationship{}, fmt.Errorf("failed to unmarshal properties of relationship %q: %w", rel.ID, err)
		}
	}
	return rel, nil
}
