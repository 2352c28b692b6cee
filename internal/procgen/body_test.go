package procgen

import (
	"math"
	"reflect"
	"testing"
)

func TestSynthesizeBodyIsDeterministic(t *testing.T) {
	tables := DefaultTables()
	for body := 0; body < 8; body++ {
		a := SynthesizeBody(1000, 2, 5, body, tables)
		b := SynthesizeBody(1000, 2, 5, body, tables)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("body %d: independent synthesis calls diverged:\n%+v\n%+v", body, a, b)
		}
	}
}

func TestSynthesizeBodyFieldRanges(t *testing.T) {
	tables := DefaultTables()
	for seed := int32(1); seed <= 50; seed++ {
		for body := 0; body < 6; body++ {
			p := SynthesizeBody(seed, 0, 0, body, tables)

			if p.Orbital.Eccentricity < 0 || p.Orbital.Eccentricity >= 0.1 {
				t.Errorf("eccentricity %v outside [0, 0.1)", p.Orbital.Eccentricity)
			}
			if p.Orbital.Phase < 0 || p.Orbital.Phase >= 2*math.Pi {
				t.Errorf("phase %v outside [0, 2pi)", p.Orbital.Phase)
			}
			if p.Orbital.Inclination < -5 || p.Orbital.Inclination >= 5 {
				t.Errorf("inclination %v outside [-5, 5)", p.Orbital.Inclination)
			}

			wantPeriod := math.Pow(p.Orbital.Radius/100, 1.5) * 365
			if p.Orbital.Period != wantPeriod {
				t.Errorf("period %v not derived from radius %v", p.Orbital.Period, p.Orbital.Radius)
			}

			for biome, weight := range p.Biomes {
				if weight < 0 {
					t.Errorf("biome %q has negative weight %v", biome, weight)
				}
			}

			if p.Generated || p.GeneratedChunks != 0 {
				t.Errorf("consumer-owned fields not zeroed: generated=%v chunks=%d", p.Generated, p.GeneratedChunks)
			}
		}
	}
}

func TestSynthesizeBodyTypeShapes(t *testing.T) {
	tables := DefaultTables()

	// Scan seeds until every body type has been observed once.
	seen := map[BodyType]BodyParams{}
	for seed := int32(1); seed < 5000 && len(seen) < 6; seed++ {
		p := SynthesizeBody(seed, 0, 0, 0, tables)
		if _, ok := seen[p.Type]; !ok {
			seen[p.Type] = p
		}
	}
	if len(seen) < 6 {
		t.Fatalf("only observed %d of 6 body types in 5000 seeds", len(seen))
	}

	for bodyType, p := range seen {
		switch bodyType {
		case BodyTypeRingworld:
			if p.Gravity.Kind != GravityShapeRingworld {
				t.Errorf("ringworld gravity kind = %q", p.Gravity.Kind)
			}
			r := tables.RingworldSize
			if p.Size.MajorRadius < r.Major.Min || p.Size.MajorRadius >= r.Major.Max {
				t.Errorf("ringworld major radius %v outside [%v,%v)", p.Size.MajorRadius, r.Major.Min, r.Major.Max)
			}
			if p.Size.MinorRadius < r.Minor.Min || p.Size.MinorRadius >= r.Minor.Max {
				t.Errorf("ringworld minor radius %v outside [%v,%v)", p.Size.MinorRadius, r.Minor.Min, r.Minor.Max)
			}
			if len(p.Layers) != 3 {
				t.Errorf("ringworld has %d layers, want 3", len(p.Layers))
			}
		case BodyTypeGasGiant:
			if len(p.Layers) != 0 {
				t.Errorf("gas giant has %d layers, want none", len(p.Layers))
			}
			if w := p.Biomes["atmosphere"]; w != 100 {
				t.Errorf("gas giant atmosphere weight = %v, want 100", w)
			}
			if len(p.Biomes) != 1 {
				t.Errorf("gas giant has %d biomes, want only atmosphere", len(p.Biomes))
			}
		default:
			if p.Gravity.Kind != GravityShapeSphere {
				t.Errorf("%s gravity kind = %q, want sphere", bodyType, p.Gravity.Kind)
			}
			r := tables.SizeRanges[bodyType]
			if p.Size.Radius < r.Min || p.Size.Radius >= r.Max {
				t.Errorf("%s radius %v outside [%v,%v)", bodyType, p.Size.Radius, r.Min, r.Max)
			}
		}

		switch bodyType {
		case BodyTypeIce:
			if p.WaterLevel != tables.Terrain.IceWaterLevel {
				t.Errorf("ice water level = %v, want %v", p.WaterLevel, tables.Terrain.IceWaterLevel)
			}
		case BodyTypeVolcanic:
			if p.WaterLevel != tables.Terrain.VolcanicWaterLevel {
				t.Errorf("volcanic water level = %v, want %v", p.WaterLevel, tables.Terrain.VolcanicWaterLevel)
			}
		default:
			if p.WaterLevel != tables.Terrain.WaterLevel {
				t.Errorf("%s water level = %v, want %v", bodyType, p.WaterLevel, tables.Terrain.WaterLevel)
			}
		}
	}
}

// The pre-repair orbital radius is seeded per slot, independent of body size;
// spacing repair does the strict separation work later.
func TestSynthesizeOrbitSlotSeeding(t *testing.T) {
	tables := DefaultTables()
	half := tables.Orbit.VariationWidth / 2
	for body := 0; body < 10; body++ {
		p := SynthesizeBody(99, 0, 0, body, tables)
		base := tables.Orbit.BaseRadius + float64(body)*tables.Orbit.SlotSpacing
		if p.Orbital.Radius < base-half || p.Orbital.Radius >= base+half {
			t.Errorf("body %d radius %v outside slot window [%v,%v)", body, p.Orbital.Radius, base-half, base+half)
		}
	}
}
