package store

import (
	"context"
	"database/sql"

	"github.com/tupyy/graph-crawler/pkg/writer"
)

// QueryInterceptor is the query surface shared by *sql.DB and *sql.Tx.
type QueryInterceptor interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Store provides access to all graph repositories.
type Store struct {
	db            *sql.DB
	nodes         *NodeStore
	relationships *RelationshipStore
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:            db,
		nodes:         NewNodeStore(db),
		relationships: NewRelationshipStore(db),
	}
}

func (s *Store) Nodes() *NodeStore {
	return s.nodes
}

func (s *Store) Relationships() *RelationshipStore {
	return s.relationships
}

func (s *Store) Close() error {
	return s.db.Close()
}

// withTx returns a view of the store whose repositories run against the
// given transaction.
func (s *Store) withTx(tx *sql.Tx) *Store {
	return &Store{
		db:            s.db,
		nodes:         NewNodeStore(tx),
		relationships: NewRelationshipStore(tx),
	}
}

// TxTaskFactory builds writer task envelopes that run each task inside one
// database transaction: committed when the work succeeds, rolled back
// otherwise.
func (s *Store) TxTaskFactory() writer.TaskFactory[*Store] {
	return func(id string, work writer.Work[*Store]) *writer.Task[*Store] {
		return writer.NewTask(id, func(ctx context.Context, st *Store) (any, error) {
			tx, err := st.db.BeginTx(ctx, nil)
			if err != nil {
				return nil, err
			}

			v, err := work(ctx, st.withTx(tx))
			if err != nil {
				tx.Rollback()
				return nil, err
			}
			if err := tx.Commit(); err != nil {
				return nil, err
			}
			return v, nil
		})
	}
}
