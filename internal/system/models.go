package system

import (
	"time"

	"starforge-server/internal/procgen"
)

// SnapshotRecord is an exported system stored for the persistence
// collaborators. A stored record is read back verbatim on request, never
// regenerated, so it stays valid even after the generation tables move on;
// TablesVersion records which snapshot produced it.
type SnapshotRecord struct {
	ID            int                  `json:"id"`
	UniverseID    int                  `json:"universe_id"`
	GalaxyIndex   int                  `json:"galaxy_index"`
	SystemIndex   int                  `json:"system_index"`
	TablesVersion int                  `json:"tables_version"`
	Config        procgen.SystemConfig `json:"config"`
	CreatedAt     time.Time            `json:"created_at"`
}
