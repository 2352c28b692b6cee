package procgen

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// weightTolerance is the allowed floating error on probability sums.
const weightTolerance = 1e-9

// BodyTypeWeight is one entry of the ordered body-type probability table.
type BodyTypeWeight struct {
	Type   BodyType `json:"type" yaml:"type"`
	Weight float64  `json:"weight" yaml:"weight"`
}

// SizeRange bounds a generated dimension.
type SizeRange struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// RingSizeRange is the compound range for toroidal bodies.
type RingSizeRange struct {
	Major SizeRange `json:"major" yaml:"major"`
	Minor SizeRange `json:"minor" yaml:"minor"`
}

// Multipliers are the tunable constants of spacing repair and system capture.
type Multipliers struct {
	OrbitalSpacing float64 `json:"orbital_spacing" yaml:"orbital_spacing"`
	GravityRadius  float64 `json:"gravity_radius" yaml:"gravity_radius"`
	SystemCapture  float64 `json:"system_capture" yaml:"system_capture"`
}

// GenerationZones are streaming radii passed through to the runtime layer;
// generation never interprets them.
type GenerationZones struct {
	PreGenerationRadius int `json:"pre_generation_radius" yaml:"pre_generation_radius"`
	ActiveRadius        int `json:"active_radius" yaml:"active_radius"`
	CoreOnlyRadius      int `json:"core_only_radius" yaml:"core_only_radius"`
	UnloadRadius        int `json:"unload_radius" yaml:"unload_radius"`
}

// BodyCountRange bounds the number of bodies drawn per system.
type BodyCountRange struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// OrbitConstants seed the pre-repair orbital radius.
// radius = BaseRadius + bodyIndex*SlotSpacing + (draw-0.5)*VariationWidth.
type OrbitConstants struct {
	BaseRadius     float64 `json:"base_radius" yaml:"base_radius"`
	SlotSpacing    float64 `json:"slot_spacing" yaml:"slot_spacing"`
	VariationWidth float64 `json:"variation_width" yaml:"variation_width"`
}

// TerrainDefaults are the global height bounds and per-type water levels.
type TerrainDefaults struct {
	MinHeight          float64 `json:"min_height" yaml:"min_height"`
	MaxHeight          float64 `json:"max_height" yaml:"max_height"`
	WaterLevel         float64 `json:"water_level" yaml:"water_level"`
	IceWaterLevel      float64 `json:"ice_water_level" yaml:"ice_water_level"`
	VolcanicWaterLevel float64 `json:"volcanic_water_level" yaml:"volcanic_water_level"`
}

// StarEntry is one entry of the star probability table.
type StarEntry struct {
	Type        string  `json:"type" yaml:"type"`
	Weight      float64 `json:"weight" yaml:"weight"`
	Temperature int     `json:"temperature" yaml:"temperature"`
}

// Tables is the full configuration snapshot consumed by generation. A
// snapshot is immutable while in use: edits go through Clone, the mutating
// setters and Validate, and the result is swapped in atomically by the
// tables store. Generation output is keyed on (master seed, path, snapshot),
// so two nodes holding different snapshots legitimately diverge.
type Tables struct {
	BodyTypes      []BodyTypeWeight         `json:"body_types" yaml:"body_types"`
	SizeRanges     map[BodyType]SizeRange   `json:"size_ranges" yaml:"size_ranges"`
	RingworldSize  RingSizeRange            `json:"ringworld_size" yaml:"ringworld_size"`
	LayerTemplates map[BodyType][]Layer     `json:"layer_templates" yaml:"layer_templates"`
	Multipliers    Multipliers              `json:"multipliers" yaml:"multipliers"`
	Zones          GenerationZones          `json:"zones" yaml:"zones"`
	Stars          []StarEntry              `json:"stars" yaml:"stars"`
	BodyCount      BodyCountRange           `json:"body_count" yaml:"body_count"`
	Orbit          OrbitConstants           `json:"orbit" yaml:"orbit"`
	Terrain        TerrainDefaults          `json:"terrain" yaml:"terrain"`
	GalaxyExtent   float64                  `json:"galaxy_extent" yaml:"galaxy_extent"`
}

// DefaultTables returns the compiled-in configuration snapshot.
func DefaultTables() *Tables {
	return &Tables{
		BodyTypes: []BodyTypeWeight{
			{Type: BodyTypeTerrestrial, Weight: 0.45},
			{Type: BodyTypeGasGiant, Weight: 0.15},
			{Type: BodyTypeRingworld, Weight: 0.05},
			{Type: BodyTypeIce, Weight: 0.15},
			{Type: BodyTypeVolcanic, Weight: 0.10},
			{Type: BodyTypeBarren, Weight: 0.10},
		},
		SizeRanges: map[BodyType]SizeRange{
			BodyTypeTerrestrial: {Min: 40, Max: 80},
			BodyTypeGasGiant:    {Min: 90, Max: 160},
			BodyTypeIce:         {Min: 35, Max: 70},
			BodyTypeVolcanic:    {Min: 35, Max: 70},
			BodyTypeBarren:      {Min: 20, Max: 50},
		},
		RingworldSize: RingSizeRange{
			Major: SizeRange{Min: 300, Max: 500},
			Minor: SizeRange{Min: 60, Max: 120},
		},
		LayerTemplates: map[BodyType][]Layer{
			BodyTypeTerrestrial: {
				{Name: "core", MinDepth: 0.0, MaxDepth: 0.3, Material: "iron", Mode: LayerModeUniform},
				{Name: "mantle", MinDepth: 0.3, MaxDepth: 0.7, Material: "rock", Mode: LayerModeSimple},
				{Name: "crust", MinDepth: 0.7, MaxDepth: 0.95, Material: "stone", Mode: LayerModeFull},
				{Name: "surface", MinDepth: 0.95, MaxDepth: 1.0, Material: "soil", Mode: LayerModeFull},
			},
			BodyTypeRingworld: {
				{Name: "hull", MinDepth: 0.0, MaxDepth: 0.4, Material: "alloy", Mode: LayerModeUniform},
				{Name: "substrate", MinDepth: 0.4, MaxDepth: 0.8, Material: "rock", Mode: LayerModeSimple},
				{Name: "surface", MinDepth: 0.8, MaxDepth: 1.0, Material: "soil", Mode: LayerModeFull},
			},
			// Gas giants are impostor-only: no volumetric generation is ever
			// requested for them.
			BodyTypeGasGiant: {},
		},
		Multipliers: Multipliers{
			OrbitalSpacing: 2.5,
			GravityRadius:  0.6,
			SystemCapture:  1.5,
		},
		Zones: GenerationZones{
			PreGenerationRadius: 2000,
			ActiveRadius:        1200,
			CoreOnlyRadius:      600,
			UnloadRadius:        3000,
		},
		Stars: []StarEntry{
			{Type: "yellow", Weight: 0.35, Temperature: 5800},
			{Type: "red", Weight: 0.30, Temperature: 3500},
			{Type: "orange", Weight: 0.15, Temperature: 4800},
			{Type: "white", Weight: 0.12, Temperature: 9500},
			{Type: "blue", Weight: 0.08, Temperature: 25000},
		},
		BodyCount: BodyCountRange{Min: 3, Max: 12},
		Orbit: OrbitConstants{
			BaseRadius:     150,
			SlotSpacing:    100,
			VariationWidth: 60,
		},
		Terrain: TerrainDefaults{
			MinHeight:          -40,
			MaxHeight:          80,
			WaterLevel:         0,
			IceWaterLevel:      12,
			VolcanicWaterLevel: -40,
		},
		GalaxyExtent: 100000,
	}
}

// LoadTables reads a YAML tables file. The file must describe a complete
// snapshot; partial files are a validation failure, not a merge.
func LoadTables(path string) (*Tables, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tables file: %w", err)
	}
	t := &Tables{}
	if err := yaml.Unmarshal(raw, t); err != nil {
		return nil, fmt.Errorf("failed to parse tables file: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tables file %s: %w", path, err)
	}
	return t, nil
}

// Clone deep-copies the snapshot so edits never alias a version in use.
func (t *Tables) Clone() *Tables {
	out := *t
	out.BodyTypes = append([]BodyTypeWeight(nil), t.BodyTypes...)
	out.Stars = append([]StarEntry(nil), t.Stars...)
	out.SizeRanges = make(map[BodyType]SizeRange, len(t.SizeRanges))
	for k, v := range t.SizeRanges {
		out.SizeRanges[k] = v
	}
	out.LayerTemplates = make(map[BodyType][]Layer, len(t.LayerTemplates))
	for k, v := range t.LayerTemplates {
		out.LayerTemplates[k] = append([]Layer(nil), v...)
	}
	return &out
}

// SetBodyTypeWeight assigns a weight to one body type and immediately
// renormalizes the whole table so weights sum to 1.0. The invariant holds on
// return, not lazily.
func (t *Tables) SetBodyTypeWeight(bodyType BodyType, weight float64) error {
	if weight < 0 || weight > 1 {
		return fmt.Errorf("weight for %s must be in [0,1], got %v", bodyType, weight)
	}
	found := false
	for i := range t.BodyTypes {
		if t.BodyTypes[i].Type == bodyType {
			t.BodyTypes[i].Weight = weight
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("unknown body type %q", bodyType)
	}
	return t.normalizeBodyTypes()
}

func (t *Tables) normalizeBodyTypes() error {
	total := 0.0
	for _, e := range t.BodyTypes {
		total += e.Weight
	}
	if total <= 0 {
		return fmt.Errorf("body type weights sum to %v, cannot normalize", total)
	}
	for i := range t.BodyTypes {
		t.BodyTypes[i].Weight /= total
	}
	return nil
}

// BodyTypeTable builds the selection table over body types. Terrestrial is
// the designated fallback when rounding leaves the cumulative sum short.
func (t *Tables) BodyTypeTable() CategoryTable {
	entries := make([]Category, len(t.BodyTypes))
	for i, e := range t.BodyTypes {
		entries[i] = Category{Label: string(e.Type), Weight: e.Weight}
	}
	return CategoryTable{Entries: entries, Fallback: string(BodyTypeTerrestrial)}
}

// StarTable builds the selection table over star types.
func (t *Tables) StarTable() CategoryTable {
	entries := make([]Category, len(t.Stars))
	for i, e := range t.Stars {
		entries[i] = Category{Label: e.Type, Weight: e.Weight}
	}
	fallback := ""
	if len(t.Stars) > 0 {
		fallback = t.Stars[0].Type
	}
	return CategoryTable{Entries: entries, Fallback: fallback}
}

// StarTemperature looks up the temperature constant for a star type.
func (t *Tables) StarTemperature(starType string) int {
	for _, e := range t.Stars {
		if e.Type == starType {
			return e.Temperature
		}
	}
	return 0
}

// LayerTemplate returns the layer sequence for a body type. Types without
// their own template share the terrestrial one; the template is copied so a
// caller can never mutate the snapshot through a returned slice.
func (t *Tables) LayerTemplate(bodyType BodyType) []Layer {
	template, ok := t.LayerTemplates[bodyType]
	if !ok {
		template = t.LayerTemplates[BodyTypeTerrestrial]
	}
	return append([]Layer(nil), template...)
}

// Validate rejects configuration invariant violations. These are caller-side
// programming errors caught at table-edit time; generation itself never
// fails.
func (t *Tables) Validate() error {
	if len(t.BodyTypes) == 0 {
		return fmt.Errorf("body type probability table is empty")
	}
	total := 0.0
	for _, e := range t.BodyTypes {
		if e.Weight < 0 {
			return fmt.Errorf("body type %s has negative weight %v", e.Type, e.Weight)
		}
		total += e.Weight
	}
	if math.Abs(total-1.0) > weightTolerance {
		return fmt.Errorf("body type weights sum to %v, expected 1.0", total)
	}

	for bodyType, r := range t.SizeRanges {
		if r.Min <= 0 || r.Max < r.Min {
			return fmt.Errorf("size range for %s is invalid: min=%v max=%v", bodyType, r.Min, r.Max)
		}
	}
	for _, r := range []SizeRange{t.RingworldSize.Major, t.RingworldSize.Minor} {
		if r.Min <= 0 || r.Max < r.Min {
			return fmt.Errorf("ringworld size range is invalid: min=%v max=%v", r.Min, r.Max)
		}
	}

	for bodyType, layers := range t.LayerTemplates {
		for i, l := range layers {
			if l.MinDepth < 0 || l.MaxDepth > 1 || l.MinDepth >= l.MaxDepth {
				return fmt.Errorf("layer %q of %s has invalid depth band [%v,%v)", l.Name, bodyType, l.MinDepth, l.MaxDepth)
			}
			if i > 0 && layers[i-1].MaxDepth != l.MinDepth {
				return fmt.Errorf("layer %q of %s does not start where %q ends", l.Name, bodyType, layers[i-1].Name)
			}
		}
	}

	if t.Multipliers.OrbitalSpacing <= 0 || t.Multipliers.GravityRadius <= 0 || t.Multipliers.SystemCapture <= 0 {
		return fmt.Errorf("multipliers must be positive: %+v", t.Multipliers)
	}

	if len(t.Stars) == 0 {
		return fmt.Errorf("star probability table is empty")
	}
	starTotal := 0.0
	for _, e := range t.Stars {
		if e.Weight < 0 {
			return fmt.Errorf("star type %s has negative weight %v", e.Type, e.Weight)
		}
		starTotal += e.Weight
	}
	if math.Abs(starTotal-1.0) > weightTolerance {
		return fmt.Errorf("star weights sum to %v, expected 1.0", starTotal)
	}

	if t.BodyCount.Min < 1 || t.BodyCount.Max < t.BodyCount.Min {
		return fmt.Errorf("body count range is invalid: min=%d max=%d", t.BodyCount.Min, t.BodyCount.Max)
	}
	if t.GalaxyExtent <= 0 {
		return fmt.Errorf("galaxy extent must be positive, got %v", t.GalaxyExtent)
	}

	return nil
}
