package errors

import (
	"errors"
	"fmt"
)

// WriterNotRunningError is returned when work is submitted to a writer whose
// lifecycle state no longer accepts tasks.
type WriterNotRunningError struct {
	State string
}

func NewWriterNotRunningError(state string) *WriterNotRunningError {
	return &WriterNotRunningError{State: state}
}

func (e *WriterNotRunningError) Error() string {
	return fmt.Sprintf("database writer is not running (state %q)", e.State)
}

func IsWriterNotRunningError(err error) bool {
	var e *WriterNotRunningError
	return errors.As(err, &e)
}

// TaskExecutionError wraps a failure produced by a submitted task. The
// original failure is preserved as the cause.
type TaskExecutionError struct {
	ID    string
	Cause error
}

func NewTaskExecutionError(id string, cause error) *TaskExecutionError {
	return &TaskExecutionError{ID: id, Cause: cause}
}

func (e *TaskExecutionError) Error() string {
	return fmt.Sprintf("execution of task %q failed: %v", e.ID, e.Cause)
}

func (e *TaskExecutionError) Unwrap() error {
	return e.Cause
}

func IsTaskExecutionError(err error) bool {
	var e *TaskExecutionError
	return errors.As(err, &e)
}

// StartupError is returned when the writer could not reach the running state.
type StartupError struct {
	Cause error
}

func NewStartupError(cause error) *StartupError {
	return &StartupError{Cause: cause}
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("failed to start database writer: %v", e.Cause)
}

func (e *StartupError) Unwrap() error {
	return e.Cause
}

func IsStartupError(err error) bool {
	var e *StartupError
	return errors.As(err, &e)
}

// ShutdownError is returned when the writer could not reach the terminated
// state within the caller's deadline.
type ShutdownError struct {
	Cause error
}

func NewShutdownError(cause error) *ShutdownError {
	return &ShutdownError{Cause: cause}
}

func (e *ShutdownError) Error() string {
	return fmt.Sprintf("failed to stop database writer: %v", e.Cause)
}

func (e *ShutdownError) Unwrap() error {
	return e.Cause
}

func IsShutdownError(err error) bool {
	var e *ShutdownError
	return errors.As(err, &e)
}

// ResourceNotFoundError is returned by the store when a graph element does
// not exist.
type ResourceNotFoundError struct {
	Kind string
	ID   string
}

func NewNodeNotFoundError(id string) *ResourceNotFoundError {
	return &ResourceNotFoundError{Kind: "node", ID: id}
}

func NewRelationshipNotFoundError(id string) *ResourceNotFoundError {
	return &ResourceNotFoundError{Kind: "relationship", ID: id}
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func IsResourceNotFoundError(err error) bool {
	var e *ResourceNotFoundError
	return errors.As(err, &e)
}

// CrawlInProgressError is returned when a crawl is requested while another
// one is still running.
type CrawlInProgressError struct {
	RunID string
}

func NewCrawlInProgressError(runID string) *CrawlInProgressError {
	return &CrawlInProgressError{RunID: runID}
}

func (e *CrawlInProgressError) Error() string {
	return fmt.Sprintf("crawl %q is already in progress", e.RunID)
}

func IsCrawlInProgressError(err error) bool {
	var e *CrawlInProgressError
	return errors.As(err, &e)
}

// ImportError wraps a failure while loading a graph from a workbook.
type ImportError struct {
	Sheet string
	Row   int
	Cause error
}

func NewImportError(sheet string, row int, cause error) *ImportError {
	return &ImportError{Sheet: sheet, Row: row, Cause: cause}
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import failed at sheet %q row %d: %v", e.Sheet, e.Row, e.Cause)
}

func (e *ImportError) Unwrap() error {
	return e.Cause
}

func IsImportError(err error) bool {
	var e *ImportError
	return errors.As(err, &e)
}
