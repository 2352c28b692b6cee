package server

import (
	"log/slog"
	"net/http"

	"starforge-server/internal/galaxy"
	galaxyHandlers "starforge-server/internal/galaxy/handlers"
	"starforge-server/internal/middleware"
	serverHandlers "starforge-server/internal/server/handlers"
	"starforge-server/internal/shared/database"
	"starforge-server/internal/system"
	systemHandlers "starforge-server/internal/system/handlers"
	"starforge-server/internal/tables"
	tablesHandlers "starforge-server/internal/tables/handlers"
	"starforge-server/internal/universe"
	universeHandlers "starforge-server/internal/universe/handlers"
)

type Routes struct {
	db              *database.DB
	universeService *universe.Service
	galaxyService   *galaxy.Service
	systemService   *system.Service
	tablesStore     *tables.Store
	logger          *slog.Logger
}

func NewRoutes(db *database.DB, universeService *universe.Service, galaxyService *galaxy.Service, systemService *system.Service, tablesStore *tables.Store, logger *slog.Logger) *Routes {
	return &Routes{
		db:              db,
		universeService: universeService,
		galaxyService:   galaxyService,
		systemService:   systemService,
		tablesStore:     tablesStore,
		logger:          logger,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := slog.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()

	healthHandler := serverHandlers.NewHealthHandler(r.db)
	universeHandler := universeHandlers.NewUniverseHandler(r.universeService, r.logger)
	galaxyHandler := galaxyHandlers.NewGalaxyHandler(r.galaxyService, r.universeService, r.logger)
	systemHandler := systemHandlers.NewSystemHandler(r.systemService, r.logger)
	tablesHandler := tablesHandlers.NewTablesHandler(r.tablesStore, r.logger)

	// Public endpoints
	mux.Handle("GET /api/server/health", healthHandler)
	mux.HandleFunc("GET /api/universes", universeHandler.GetUniverses)
	mux.HandleFunc("GET /api/universes/{id}", universeHandler.GetUniverse)
	mux.HandleFunc("GET /api/universes/{id}/galaxies/{galaxy}", galaxyHandler.GetGalaxy)
	mux.HandleFunc("GET /api/universes/{id}/galaxies/{galaxy}/systems/{system}", systemHandler.GetSystem)
	mux.HandleFunc("GET /api/universes/{id}/galaxies/{galaxy}/systems/{system}/bodies/{body}", systemHandler.GetBody)
	mux.HandleFunc("GET /api/universes/{id}/galaxies/{galaxy}/systems/{system}/export", systemHandler.GetExportedSystem)
	mux.HandleFunc("GET /api/config/tables", tablesHandler.GetTables)

	// Admin-only endpoints (authenticated + admin role)
	mux.Handle("POST /api/universes", middleware.RequireAdmin(http.HandlerFunc(universeHandler.CreateUniverse)))
	mux.Handle("DELETE /api/universes/{id}", middleware.RequireAdmin(http.HandlerFunc(universeHandler.DeleteUniverse)))
	mux.Handle("POST /api/universes/{id}/galaxies/{galaxy}/systems/{system}/export", middleware.RequireAdmin(http.HandlerFunc(systemHandler.ExportSystem)))
	mux.Handle("PUT /api/config/tables", middleware.RequireAdmin(http.HandlerFunc(tablesHandler.ReplaceTables)))
	mux.Handle("PUT /api/config/tables/body-types", middleware.RequireAdmin(http.HandlerFunc(tablesHandler.UpdateBodyTypeWeight)))

	logger.Info("Routes configured successfully",
		"public_endpoints", []string{
			"/api/server/health", "/api/universes", "/api/universes/{id}",
			"/api/universes/{id}/galaxies/{galaxy}",
			"/api/universes/{id}/galaxies/{galaxy}/systems/{system}",
			"/api/universes/{id}/galaxies/{galaxy}/systems/{system}/bodies/{body}",
			"/api/config/tables",
		},
		"admin_endpoints", []string{
			"POST /api/universes", "DELETE /api/universes/{id}",
			"POST .../systems/{system}/export",
			"PUT /api/config/tables", "PUT /api/config/tables/body-types",
		},
	)

	return mux
}
