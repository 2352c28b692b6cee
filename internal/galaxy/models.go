package galaxy

// Galaxy is the deterministic metadata for one galaxy of a universe. It is
// recomputed from (master seed, galaxy index) on demand and never stored.
type Galaxy struct {
	UniverseID  int    `json:"universe_id"`
	GalaxyIndex int    `json:"galaxy_index"`
	Seed        int32  `json:"seed"`
	Name        string `json:"name"`
}
