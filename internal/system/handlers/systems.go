package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"starforge-server/internal/shared/errors"
	"starforge-server/internal/shared/response"
	"starforge-server/internal/system"
)

type SystemHandler struct {
	service *system.Service
	logger  *slog.Logger
}

func NewSystemHandler(service *system.Service, logger *slog.Logger) *SystemHandler {
	return &SystemHandler{
		service: service,
		logger:  logger,
	}
}

func pathInt(r *http.Request, name string) (int, error) {
	value, err := strconv.Atoi(r.PathValue(name))
	if err != nil {
		return 0, errors.Validationf("invalid %s", name)
	}
	return value, nil
}

// GetSystem handles GET /api/universes/{id}/galaxies/{galaxy}/systems/{system}
func (h *SystemHandler) GetSystem(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("handler", "get_system")

	universeID, err := pathInt(r, "id")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	galaxyIndex, err := pathInt(r, "galaxy")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	systemIndex, err := pathInt(r, "system")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	logger = logger.With("universe_id", universeID, "galaxy_index", galaxyIndex, "system_index", systemIndex)
	logger.Debug("Getting system")

	cfg, err := h.service.GetSystem(r.Context(), universeID, galaxyIndex, systemIndex)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, cfg)
}

// GetBody handles GET /api/universes/{id}/galaxies/{galaxy}/systems/{system}/bodies/{body}
func (h *SystemHandler) GetBody(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("handler", "get_body")

	universeID, err := pathInt(r, "id")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	galaxyIndex, err := pathInt(r, "galaxy")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	systemIndex, err := pathInt(r, "system")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	bodyIndex, err := pathInt(r, "body")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	logger = logger.With("universe_id", universeID, "galaxy_index", galaxyIndex,
		"system_index", systemIndex, "body_index", bodyIndex)
	logger.Debug("Getting body")

	body, err := h.service.GetBody(r.Context(), universeID, galaxyIndex, systemIndex, bodyIndex)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, body)
}

// ExportSystem handles POST /api/universes/{id}/galaxies/{galaxy}/systems/{system}/export - Admin only
func (h *SystemHandler) ExportSystem(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("handler", "export_system")

	universeID, err := pathInt(r, "id")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	galaxyIndex, err := pathInt(r, "galaxy")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	systemIndex, err := pathInt(r, "system")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	logger = logger.With("universe_id", universeID, "galaxy_index", galaxyIndex, "system_index", systemIndex)
	logger.Info("Exporting system")

	record, err := h.service.ExportSystem(r.Context(), universeID, galaxyIndex, systemIndex)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusCreated, record)
}

// GetExportedSystem handles GET /api/universes/{id}/galaxies/{galaxy}/systems/{system}/export
func (h *SystemHandler) GetExportedSystem(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("handler", "get_exported_system")

	universeID, err := pathInt(r, "id")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	galaxyIndex, err := pathInt(r, "galaxy")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	systemIndex, err := pathInt(r, "system")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	record, err := h.service.GetExportedSystem(r.Context(), universeID, galaxyIndex, systemIndex)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, record)
}
