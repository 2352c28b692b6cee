package universe

import (
	"fmt"
	"log/slog"
	"math/rand"

	"starforge-server/internal/shared/errors"
)

type Service struct {
	repo   *Repository
	logger *slog.Logger
}

func NewService(repo *Repository, logger *slog.Logger) *Service {
	logger.Debug("Initializing universe service")

	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateUniverse registers a new universe. Only the name and master seed are
// stored; all celestial content is derived lazily from the seed, so creation
// does not generate anything.
func (s *Service) CreateUniverse(req CreateRequest) (*Universe, error) {
	logger := s.logger.With("component", "universe_service", "operation", "create_universe", "name", req.Name)

	if req.Name == "" {
		return nil, errors.Validation("universe name is required")
	}

	masterSeed := rand.Int31()
	if req.MasterSeed != nil {
		if *req.MasterSeed < 0 {
			return nil, errors.Validationf("master seed must be non-negative, got %d", *req.MasterSeed)
		}
		masterSeed = *req.MasterSeed
	}

	universe := &Universe{
		Name:       req.Name,
		MasterSeed: masterSeed,
	}

	if err := s.repo.CreateUniverse(universe); err != nil {
		return nil, fmt.Errorf("failed to create universe: %w", err)
	}

	logger.Info("Universe created", "universe_id", universe.ID, "master_seed", universe.MasterSeed)
	return universe, nil
}

// GetUniverse retrieves a universe by ID
func (s *Service) GetUniverse(id int) (*Universe, error) {
	return s.repo.GetUniverse(id)
}

// ListUniverses retrieves all universes
func (s *Service) ListUniverses() ([]*Universe, error) {
	return s.repo.ListUniverses()
}

// DeleteUniverse deletes a universe and all its data
func (s *Service) DeleteUniverse(id int) error {
	s.logger.Info("Deleting universe", "universe_id", id)
	return s.repo.DeleteUniverse(id)
}
