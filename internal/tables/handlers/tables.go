package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"starforge-server/internal/procgen"
	"starforge-server/internal/shared/errors"
	"starforge-server/internal/shared/response"
	"starforge-server/internal/tables"
)

type TablesHandler struct {
	store  *tables.Store
	logger *slog.Logger
}

func NewTablesHandler(store *tables.Store, logger *slog.Logger) *TablesHandler {
	return &TablesHandler{
		store:  store,
		logger: logger,
	}
}

// GetTables handles GET /api/config/tables
func (h *TablesHandler) GetTables(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("handler", "get_tables")
	logger.Debug("Getting current tables snapshot")

	response.Success(w, http.StatusOK, h.store.Current())
}

// ReplaceTables handles PUT /api/config/tables - Admin only
func (h *TablesHandler) ReplaceTables(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("handler", "replace_tables")
	logger.Info("Replacing generation tables")

	var t procgen.Tables
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid request body", err))
		return
	}

	snapshot, err := h.store.Replace(&t)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, snapshot)
}

type weightUpdate struct {
	Type   procgen.BodyType `json:"type"`
	Weight float64          `json:"weight"`
}

// UpdateBodyTypeWeight handles PUT /api/config/tables/body-types - Admin only
func (h *TablesHandler) UpdateBodyTypeWeight(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("handler", "update_body_type_weight")

	var update weightUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid request body", err))
		return
	}

	logger = logger.With("body_type", update.Type, "weight", update.Weight)
	logger.Info("Updating body type weight")

	snapshot, err := h.store.SetBodyTypeWeight(update.Type, update.Weight)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, snapshot)
}
