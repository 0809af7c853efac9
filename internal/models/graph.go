package models

import "time"

// Node is a labeled graph vertex with free-form properties.
type Node struct {
	ID         string
	Label      string
	Properties map[string]any
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Property returns the named property value, or nil when absent.
func (n Node) Property(key string) any {
	if n.Properties == nil {
		return nil
	}
	return n.Properties[key]
}

// Relationship is a directed, typed edge between two nodes.
type Relationship struct {
	ID         string
	Type       string
	StartID    string
	EndID      string
	Properties map[string]any
	CreatedAt  time.Time
}
