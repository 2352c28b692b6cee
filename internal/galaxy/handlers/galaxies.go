package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"starforge-server/internal/galaxy"
	"starforge-server/internal/shared/errors"
	"starforge-server/internal/shared/response"
	"starforge-server/internal/universe"
)

type GalaxyHandler struct {
	service   *galaxy.Service
	universes *universe.Service
	logger    *slog.Logger
}

func NewGalaxyHandler(service *galaxy.Service, universes *universe.Service, logger *slog.Logger) *GalaxyHandler {
	return &GalaxyHandler{
		service:   service,
		universes: universes,
		logger:    logger,
	}
}

// GetGalaxy handles GET /api/universes/{id}/galaxies/{galaxy}
func (h *GalaxyHandler) GetGalaxy(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("handler", "get_galaxy")

	universeID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		response.Error(w, r, logger, errors.Validation("invalid universe ID"))
		return
	}
	galaxyIndex, err := strconv.Atoi(r.PathValue("galaxy"))
	if err != nil || galaxyIndex < 0 {
		response.Error(w, r, logger, errors.Validation("invalid galaxy index"))
		return
	}

	logger = logger.With("universe_id", universeID, "galaxy_index", galaxyIndex)
	logger.Debug("Getting galaxy")

	u, err := h.universes.GetUniverse(universeID)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, h.service.GenerateGalaxy(u.ID, u.MasterSeed, galaxyIndex))
}
