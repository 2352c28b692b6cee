package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"starforge-server/internal/shared/errors"
	"starforge-server/internal/shared/response"
	"starforge-server/internal/universe"
)

type UniverseHandler struct {
	service *universe.Service
	logger  *slog.Logger
}

func NewUniverseHandler(service *universe.Service, logger *slog.Logger) *UniverseHandler {
	return &UniverseHandler{
		service: service,
		logger:  logger,
	}
}

// CreateUniverse handles POST /api/universes - Admin only
func (h *UniverseHandler) CreateUniverse(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("handler", "create_universe")
	logger.Info("Creating new universe")

	var req universe.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid request body", err))
		return
	}

	created, err := h.service.CreateUniverse(req)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusCreated, created)
}

// GetUniverses handles GET /api/universes
func (h *UniverseHandler) GetUniverses(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("handler", "get_universes")
	logger.Debug("Getting all universes")

	universes, err := h.service.ListUniverses()
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if universes == nil {
		universes = []*universe.Universe{}
	}

	response.Success(w, http.StatusOK, universes)
}

// GetUniverse handles GET /api/universes/{id}
func (h *UniverseHandler) GetUniverse(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("handler", "get_universe")

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		response.Error(w, r, logger, errors.Validation("invalid universe ID"))
		return
	}

	logger = logger.With("universe_id", id)
	logger.Debug("Getting universe by ID")

	found, err := h.service.GetUniverse(id)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, found)
}

// DeleteUniverse handles DELETE /api/universes/{id} - Admin only
func (h *UniverseHandler) DeleteUniverse(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("handler", "delete_universe")

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		response.Error(w, r, logger, errors.Validation("invalid universe ID"))
		return
	}

	logger = logger.With("universe_id", id)
	logger.Info("Deleting universe")

	if err := h.service.DeleteUniverse(id); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
