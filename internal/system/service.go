package system

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"starforge-server/internal/procgen"
	"starforge-server/internal/shared/config"
	"starforge-server/internal/shared/errors"
	sharedredis "starforge-server/internal/shared/redis"
	"starforge-server/internal/tables"
	"starforge-server/internal/universe"
)

type Service struct {
	repo      *Repository
	cache     *sharedredis.Client
	tables    *tables.Store
	universes *universe.Service
	logger    *slog.Logger
}

func NewService(repo *Repository, cache *sharedredis.Client, tablesStore *tables.Store, universes *universe.Service, logger *slog.Logger) *Service {
	logger.Debug("Initializing system service")

	return &Service{
		repo:      repo,
		cache:     cache,
		tables:    tablesStore,
		universes: universes,
		logger:    logger,
	}
}

// GetSystem returns the generated configuration for one system. Generation
// is a pure function of (master seed, path, tables snapshot), so the Redis
// cache is only a shortcut: any node missing the cache recomputes an
// identical value. The cache key carries the tables version because two
// snapshots legitimately produce different systems for the same path.
func (s *Service) GetSystem(ctx context.Context, universeID, galaxyIndex, systemIndex int) (*procgen.SystemConfig, error) {
	cfg, _, err := s.getSystem(ctx, universeID, galaxyIndex, systemIndex)
	return cfg, err
}

// getSystem also reports the tables version the returned config was
// generated (or cached) under, so export records the version that actually
// produced the value.
func (s *Service) getSystem(ctx context.Context, universeID, galaxyIndex, systemIndex int) (*procgen.SystemConfig, int, error) {
	if galaxyIndex < 0 || systemIndex < 0 {
		return nil, 0, errors.Validationf("galaxy and system indices must be non-negative, got %d/%d", galaxyIndex, systemIndex)
	}

	u, err := s.universes.GetUniverse(universeID)
	if err != nil {
		return nil, 0, err
	}

	snapshot := s.tables.Current()
	key := fmt.Sprintf("system:%d:v%d:%d:%d", universeID, snapshot.Version, galaxyIndex, systemIndex)
	logger := s.logger.With("component", "system_service", "operation", "get_system",
		"universe_id", universeID, "galaxy_index", galaxyIndex, "system_index", systemIndex,
		"tables_version", snapshot.Version)

	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key).Bytes(); err == nil {
			cached := &procgen.SystemConfig{}
			if err := json.Unmarshal(raw, cached); err == nil {
				logger.Debug("System served from cache")
				return cached, snapshot.Version, nil
			}
			logger.Warn("Discarding undecodable cached system", "error", err)
		}
	}

	cfg := procgen.GenerateSystem(u.MasterSeed, galaxyIndex, systemIndex, snapshot.Tables)
	logger.Debug("System generated", "bodies", len(cfg.Bodies), "star", cfg.Star.Type)

	if s.cache != nil {
		if raw, err := json.Marshal(&cfg); err == nil {
			ttl := config.GlobalConfig.Redis.SystemTTL
			if err := s.cache.Set(ctx, key, raw, ttl).Err(); err != nil {
				logger.Warn("Failed to cache generated system", "error", err)
			}
		}
	}

	return &cfg, snapshot.Version, nil
}

// GetBody returns one body of a generated system. The body is taken from the
// validated system, not resynthesized, so its orbital radius reflects
// spacing repair.
func (s *Service) GetBody(ctx context.Context, universeID, galaxyIndex, systemIndex, bodyIndex int) (*procgen.BodyParams, error) {
	if bodyIndex < 0 {
		return nil, errors.Validationf("body index must be non-negative, got %d", bodyIndex)
	}

	cfg, err := s.GetSystem(ctx, universeID, galaxyIndex, systemIndex)
	if err != nil {
		return nil, err
	}

	for i := range cfg.Bodies {
		if cfg.Bodies[i].BodyIndex == bodyIndex {
			return &cfg.Bodies[i], nil
		}
	}

	return nil, errors.NotFoundf("system %d/%d has no body %d", galaxyIndex, systemIndex, bodyIndex)
}

// ExportSystem generates a system and persists it for the round-trip
// consumers. The stored record is authoritative for readers of the export,
// even after table edits change what generation would produce.
func (s *Service) ExportSystem(ctx context.Context, universeID, galaxyIndex, systemIndex int) (*SnapshotRecord, error) {
	cfg, version, err := s.getSystem(ctx, universeID, galaxyIndex, systemIndex)
	if err != nil {
		return nil, err
	}

	record := &SnapshotRecord{
		UniverseID:    universeID,
		GalaxyIndex:   galaxyIndex,
		SystemIndex:   systemIndex,
		TablesVersion: version,
		Config:        *cfg,
	}
	if err := s.repo.SaveSnapshot(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("System exported",
		"universe_id", universeID,
		"galaxy_index", galaxyIndex,
		"system_index", systemIndex,
		"tables_version", record.TablesVersion)
	return record, nil
}

// GetExportedSystem reads back a previously exported system.
func (s *Service) GetExportedSystem(ctx context.Context, universeID, galaxyIndex, systemIndex int) (*SnapshotRecord, error) {
	return s.repo.GetSnapshot(ctx, universeID, galaxyIndex, systemIndex)
}
