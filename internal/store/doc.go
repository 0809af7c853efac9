// Package store implements the data access layer for the graph-crawler.
//
// This package provides persistent storage for the property graph using
// DuckDB. All mutations are expected to flow through the single writer
// (pkg/writer); reads may come from any goroutine.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                         Store (facade)                          │
//	├─────────────────────────────────────────────────────────────────┤
//	│          NodeStore             │      RelationshipStore         │
//	│              ▼                 │             ▼                  │
//	│            nodes               │        relationships           │
//	└────────────────────────────────┴────────────────────────────────┘
//
// # Tables
//
// Created by migrations (internal/store/migrations):
//
//	┌────────────────────┬─────────────────────────────────────────────┐
//	│  Table             │  Purpose                                    │
//	├────────────────────┼─────────────────────────────────────────────┤
//	│  nodes             │  Graph nodes (label + JSON properties)      │
//	│  relationships     │  Directed, typed edges between nodes        │
//	│  schema_migrations │  Migration version tracking                 │
//	└────────────────────┴─────────────────────────────────────────────┘
//
// # Store Components
//
// # NodeStore
//
// Persists nodes. Properties are stored as a JSON document and filtered
// with json_extract_string in List queries.
//
// Methods:
//   - Get(ctx, id) → models.Node
//   - Save(ctx, node) → error (uses UPSERT)
//   - SetProperty(ctx, id, key, value) → error (JSON merge patch)
//   - Delete(ctx, id) → error
//   - List(ctx, opts...) → []models.Node (ByLabels, ByProperty, WithLimit, WithOffset)
//   - Count(ctx, opts...) → int
//
// # RelationshipStore
//
// Persists relationships and answers the adjacency queries the crawler
// traverses with.
//
// Methods:
//   - Get(ctx, id) → models.Relationship
//   - Save(ctx, rel) → error (uses UPSERT)
//   - Delete(ctx, id) → error
//   - Neighbors(ctx, nodeID) → []models.Node (both directions)
//   - Count(ctx) → int
//
// # Transactions
//
// Both sub-stores run their queries through a QueryInterceptor, satisfied
// by *sql.DB and *sql.Tx alike. Store.TxTaskFactory returns a writer task
// factory that opens a transaction per task, hands the work a tx-backed
// view of the store, and commits or rolls back on the work's result:
//
//	st := store.NewStore(db)
//	w := writer.NewWithFactory(st, st.TxTaskFactory())
//
// # Initialization Flow
//
//	db, _  := store.NewDB(path)     // retried open + ping
//	_       = migrations.Run(ctx, db)
//	st     := store.NewStore(db)
package store
