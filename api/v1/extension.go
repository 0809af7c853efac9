package v1

import (
	"github.com/tupyy/graph-crawler/internal/models"
)

// NewNodeFromModel converts a models.Node to an API Node.
func NewNodeFromModel(node models.Node) Node {
	return Node{
		Id:         node.ID,
		Label:      node.Label,
		Properties: node.Properties,
		CreatedAt:  node.CreatedAt,
		UpdatedAt:  node.UpdatedAt,
	}
}

// NewRelationshipFromModel converts a models.Relationship to an API
// Relationship.
func NewRelationshipFromModel(rel models.Relationship) Relationship {
	return Relationship{
		Id:         rel.ID,
		Type:       rel.Type,
		StartId:    rel.StartID,
		EndId:      rel.EndID,
		Properties: rel.Properties,
		CreatedAt:  rel.CreatedAt,
	}
}

// NewCrawlStatus converts a models.CrawlStatus to its API form.
func NewCrawlStatus(status models.CrawlStatus) CrawlStatus {
	c := CrawlStatus{
		RunId:   status.RunID,
		State:   string(status.State),
		Visited: status.Visited,
		Matched: status.Matched,
	}
	if !status.StartedAt.IsZero() {
		t := status.StartedAt
		c.StartedAt = &t
	}
	if status.Error != nil {
		msg := status.Error.Error()
		c.Error = &msg
	}
	return c
}

// NewImportResponse converts a models.ImportSummary to its API form.
func NewImportResponse(summary models.ImportSummary) ImportResponse {
	return ImportResponse{
		Nodes:         summary.Nodes,
		Relationships: summary.Relationships,
		Dropped:       summary.Dropped,
	}
}
