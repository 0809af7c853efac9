// Package server provides the HTTP server for the graph-crawler.
//
// The server uses the Gin web framework. In "prod" mode Gin runs in
// release mode; "dev" keeps the debug output.
//
// # Architecture Overview
//
//	┌───────────────────────────────────────────────────────────────┐
//	│                         HTTP Server                           │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Middleware Stack                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  Logger (request/response logging)                      │  │
//	│  │  Recovery (panic recovery with zap logging)             │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Router (/api/v1)                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  Handlers (registered via callback)                     │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	└───────────────────────────────────────────────────────────────┘
//
// # Server Lifecycle
//
// Creation:
//
//	srv := server.NewServer(cfg, func(router *gin.RouterGroup) {
//	    v1.RegisterHandlers(router, handler)
//	})
//
// The callback receives a RouterGroup prefixed with /api/v1.
//
// Starting blocks until error or shutdown:
//
//	err := srv.Start(ctx)
//
// Stopping performs a graceful shutdown, waiting for in-flight requests:
//
//	srv.Stop(ctx)
//
// # Middleware
//
// Logger Middleware (middlewares.Logger):
//   - Logs method, path, query, IP, user-agent, status code and latency
//   - Errors logged separately if present
//   - Uses zap structured logging with the "http" logger name
//
// Recovery Middleware (ginzap.RecoveryWithZap):
//   - Recovers from panics in handlers
//   - Logs panic details with stack trace
//   - Returns 500 Internal Server Error
package server
