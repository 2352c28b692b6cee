package system

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"starforge-server/internal/shared/errors"
)

type Repository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewRepository(db *sql.DB, logger *slog.Logger) *Repository {
	logger.Debug("Initializing system repository")

	return &Repository{
		db:     db,
		logger: logger,
	}
}

// SaveSnapshot upserts an exported system. Re-exporting the same path
// replaces the stored record.
func (r *Repository) SaveSnapshot(ctx context.Context, record *SnapshotRecord) error {
	config, err := json.Marshal(record.Config)
	if err != nil {
		return fmt.Errorf("failed to marshal system config: %w", err)
	}

	query := `
		INSERT INTO system_snapshots (universe_id, galaxy_index, system_index, tables_version, config)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (universe_id, galaxy_index, system_index)
		DO UPDATE SET tables_version = EXCLUDED.tables_version, config = EXCLUDED.config, created_at = NOW()
		RETURNING id, created_at`

	err = r.db.QueryRowContext(
		ctx,
		query,
		record.UniverseID,
		record.GalaxyIndex,
		record.SystemIndex,
		record.TablesVersion,
		config,
	).Scan(&record.ID, &record.CreatedAt)

	if err != nil {
		r.logger.Error("Failed to save system snapshot", "error", err,
			"universe_id", record.UniverseID,
			"galaxy_index", record.GalaxyIndex,
			"system_index", record.SystemIndex)
		return fmt.Errorf("failed to save system snapshot: %w", err)
	}

	return nil
}

// GetSnapshot reads back an exported system with identical field values.
func (r *Repository) GetSnapshot(ctx context.Context, universeID, galaxyIndex, systemIndex int) (*SnapshotRecord, error) {
	query := `
		SELECT id, universe_id, galaxy_index, system_index, tables_version, config, created_at
		FROM system_snapshots
		WHERE universe_id = $1 AND galaxy_index = $2 AND system_index = $3`

	record := &SnapshotRecord{}
	var config []byte
	err := r.db.QueryRowContext(ctx, query, universeID, galaxyIndex, systemIndex).Scan(
		&record.ID,
		&record.UniverseID,
		&record.GalaxyIndex,
		&record.SystemIndex,
		&record.TablesVersion,
		&config,
		&record.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("no snapshot for universe %d galaxy %d system %d", universeID, galaxyIndex, systemIndex)
		}
		r.logger.Error("Failed to get system snapshot", "error", err)
		return nil, fmt.Errorf("failed to get system snapshot: %w", err)
	}

	if err := json.Unmarshal(config, &record.Config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stored system config: %w", err)
	}

	return record, nil
}
