package store

// Node queries
const (
	queryGetNode = `
		SELECT id, label, properties, created_at, updated_at
		FROM nodes WHERE id = ?`

	queryUpsertNode = `
		INSERT INTO nodes (id, label, properties, updated_at)
		VALUES (?, ?, ?, now())
		ON CONFLICT (id) DO UPDATE SET
			label = EXCLUDED.label,
			properties = EXCLUDED.properties,
			updated_at = now()`

	queryDeleteNode = `DELETE FROM nodes WHERE id = ?`

	querySetNodeProperty = `
		UPDATE nodes
		SET properties = json_merge_patch(COALESCE(properties, '{}'), ?),
			updated_at = now()
		WHERE id = ?`
)

// Relationship queries
const (
	queryGetRelationship = `
		SELECT id, type, start_id, end_id, properties, created_at
		FROM relationships WHERE id = ?`

	queryUpsertRelationship = `
		INSERT INTO relationships (id, type, start_id, end_id, properties)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			type = EXCLUDED.type,
			start_id = EXCLUDED.start_id,
			end_id = EXCLUDED.end_id,
			properties = EXCLUDED.properties`

	queryDeleteRelationship = `DELETE FROM relationships WHERE id = ?`

	queryNeighbors = `
		SELECT DISTINCT n.id, n.label, n.properties, n.created_at, n.updated_at
		FROM nodes n
		JOIN relationships r
			ON (r.start_id = ? AND n.id = r.end_id)
			OR (r.end_id = ? AND n.id = r.start_id)`
)
