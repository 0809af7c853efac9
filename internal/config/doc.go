// Package config defines the configuration structure for the graph-crawler.
//
// Configuration is organized into logical sections (Server, Database,
// Writer, Crawler) and is loaded from an optional YAML file layered over
// environment variables and struct-tag defaults.
//
// # Configuration Structure
//
//	Configuration
//	├── Server         - HTTP server settings
//	├── Database       - DuckDB location
//	├── Writer         - Write-queue tuning
//	├── Crawler        - Traversal behavior
//	├── LogFormat      - Logging format ("console" or "json")
//	└── LogLevel       - Logging verbosity
//
// # Server Configuration
//
//	┌───────┬─────────┬────────────────────────────────────────┐
//	│ Field │ Default │ Description                            │
//	├───────┼─────────┼────────────────────────────────────────┤
//	│ Mode  │ "dev"   │ Server mode: "prod" or "dev"           │
//	│ Port  │ 8000    │ HTTP server listen port                │
//	└───────┴─────────┴────────────────────────────────────────┘
//
// # Database Configuration
//
//	┌───────┬────────────┬─────────────────────────────────────┐
//	│ Field │ Default    │ Description                         │
//	├───────┼────────────┼─────────────────────────────────────┤
//	│ Path  │ "graph.db" │ DuckDB file, ":memory:" for memory  │
//	└───────┴────────────┴─────────────────────────────────────┘
//
// # Writer Configuration
//
//	┌───────────────┬─────────┬─────────────────────────────────┐
//	│ Field         │ Default │ Description                     │
//	├───────────────┼─────────┼─────────────────────────────────┤
//	│ QueueCapacity │ 10000   │ Pending task limit              │
//	│ PollInterval  │ 5ms     │ Idle worker poll interval       │
//	└───────────────┴─────────┴─────────────────────────────────┘
//
// # Crawler Configuration
//
//	┌────────────┬─────────┬────────────────────────────────────┐
//	│ Field      │ Default │ Description                        │
//	├────────────┼─────────┼────────────────────────────────────┤
//	│ NumWorkers │ 3       │ Scheduler pool size                │
//	│ Throttle   │ 0s      │ Pause between node visits          │
//	│ MaxDepth   │ 0       │ Traversal depth limit, 0=unbounded │
//	│ Labels     │ []      │ Labels included by the strategy    │
//	└────────────┴─────────┴────────────────────────────────────┘
//
// # Loading
//
// Values resolve in order: defaults, then environment variables with the
// GRAPH_CRAWLER_ prefix (GRAPH_CRAWLER_SERVER_PORT=9000), then the file
// passed to Load.
//
//	cfg, err := config.Load("/etc/graph-crawler/config.yaml")
package config
