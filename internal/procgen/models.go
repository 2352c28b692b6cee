package procgen

// BodyType classifies a celestial body. The set is closed: every synthesis
// step switches exhaustively over it, so adding a type is a single-point
// change here plus the matching branches.
type BodyType string

const (
	BodyTypeTerrestrial BodyType = "terrestrial"
	BodyTypeGasGiant    BodyType = "gas_giant"
	BodyTypeRingworld   BodyType = "ringworld"
	BodyTypeIce         BodyType = "ice"
	BodyTypeVolcanic    BodyType = "volcanic"
	BodyTypeBarren      BodyType = "barren"
)

// BodySize holds a body's generated dimensions. Spherical bodies use Radius;
// ringworlds use MajorRadius/MinorRadius and leave Radius at zero. The body
// type is the tag that says which fields apply.
type BodySize struct {
	Radius      float64 `json:"radius,omitempty"`
	MajorRadius float64 `json:"major_radius,omitempty"`
	MinorRadius float64 `json:"minor_radius,omitempty"`
}

// OrbitalParameters describe a body's orbit around the system center.
// Period is derived from Radius via period = (radius/100)^1.5 * 365 rather
// than drawn independently.
type OrbitalParameters struct {
	Radius       float64 `json:"radius"`
	Period       float64 `json:"period"`
	Inclination  float64 `json:"inclination"`
	Eccentricity float64 `json:"eccentricity"`
	Phase        float64 `json:"phase"`
}

// GravityShapeKind tags the variant of a GravityShape.
type GravityShapeKind string

const (
	GravityShapeSphere    GravityShapeKind = "sphere"
	GravityShapeRingworld GravityShapeKind = "ringworld"
)

// GravityShape is the influence-radius model used by spacing validation.
// It is never used for rendering or gameplay gravity.
type GravityShape struct {
	Kind        GravityShapeKind `json:"kind"`
	Radius      float64          `json:"radius,omitempty"`
	MajorRadius float64          `json:"major_radius,omitempty"`
	MinorRadius float64          `json:"minor_radius,omitempty"`
}

// LayerMode controls how much per-voxel detail downstream terrain synthesis
// computes inside a depth band.
type LayerMode string

const (
	LayerModeUniform LayerMode = "uniform"
	LayerModeSimple  LayerMode = "simple"
	LayerModeFull    LayerMode = "full"
)

// Layer is one named depth band of a body. Depths are fractions of the body
// radius; the band covers [MinDepth, MaxDepth).
type Layer struct {
	Name     string    `json:"name" yaml:"name"`
	MinDepth float64   `json:"min_depth" yaml:"min_depth"`
	MaxDepth float64   `json:"max_depth" yaml:"max_depth"`
	Material string    `json:"material" yaml:"material"`
	Mode     LayerMode `json:"mode" yaml:"mode"`
}

// BodyParams is the full generation output for one body. It is a pure value:
// any process holding the same (master seed, path, tables) recomputes an
// identical one. Generated and GeneratedChunks belong to the terrain
// consumer; generation only initializes them to false/0.
type BodyParams struct {
	Seed        int32    `json:"seed"`
	GalaxyIndex int      `json:"galaxy_index"`
	SystemIndex int      `json:"system_index"`
	BodyIndex   int      `json:"body_index"`
	Type        BodyType `json:"type"`

	Size    BodySize          `json:"size"`
	Orbital OrbitalParameters `json:"orbital"`

	Biomes  map[string]float64 `json:"biomes"`
	Layers  []Layer            `json:"layers"`
	Gravity GravityShape       `json:"gravity"`

	TerrainMinHeight float64 `json:"terrain_min_height"`
	TerrainMaxHeight float64 `json:"terrain_max_height"`
	WaterLevel       float64 `json:"water_level"`

	Generated       bool `json:"generated"`
	GeneratedChunks int  `json:"generated_chunks"`
}

// Star describes a system's star.
type Star struct {
	Type        string `json:"type"`
	Temperature int    `json:"temperature"`
}

// Position is a system's spatial offset within its parent galaxy.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SystemConfig is the assembled output for one system: the validated,
// radius-sorted body list plus star, capture radius and placement. It is
// created fresh on every generation call and never mutated in place.
type SystemConfig struct {
	Seed          int32        `json:"seed"`
	GalaxyIndex   int          `json:"galaxy_index"`
	SystemIndex   int          `json:"system_index"`
	Star          Star         `json:"star"`
	CaptureRadius float64      `json:"capture_radius"`
	Bodies        []BodyParams `json:"bodies"`
	Position      Position     `json:"position"`
}
