package procgen

import "testing"

func sphereBody(index int, radius, orbitRadius float64) BodyParams {
	return BodyParams{
		BodyIndex: index,
		Type:      BodyTypeTerrestrial,
		Size:      BodySize{Radius: radius},
		Orbital:   OrbitalParameters{Radius: orbitRadius},
		Gravity:   GravityShape{Kind: GravityShapeSphere, Radius: radius},
	}
}

func ringBody(index int, major, minor, orbitRadius float64) BodyParams {
	return BodyParams{
		BodyIndex: index,
		Type:      BodyTypeRingworld,
		Size:      BodySize{MajorRadius: major, MinorRadius: minor},
		Orbital:   OrbitalParameters{Radius: orbitRadius},
		Gravity:   GravityShape{Kind: GravityShapeRingworld, MajorRadius: major, MinorRadius: minor},
	}
}

func TestGravityRadiusSphere(t *testing.T) {
	tables := DefaultTables()
	body := sphereBody(0, 50, 200)
	if got := GravityRadius(body, tables); got != 30 {
		t.Fatalf("sphere gravity radius = %v, want 50*0.6 = 30", got)
	}
}

// Ringworld influence radius is the sum of major and minor radius, not a
// product or average.
func TestGravityRadiusRingworld(t *testing.T) {
	tables := DefaultTables()
	body := ringBody(0, 400, 100, 600)
	if got := GravityRadius(body, tables); got != 500 {
		t.Fatalf("ringworld gravity radius = %v, want 500", got)
	}
}

func TestValidateSpacingEstablishesInvariant(t *testing.T) {
	tables := DefaultTables()
	bodies := []BodyParams{
		sphereBody(0, 60, 160),
		sphereBody(1, 70, 210),
		ringBody(2, 400, 100, 340),
		sphereBody(3, 40, 460),
		sphereBody(4, 80, 470),
	}

	out := ValidateSpacing(bodies, tables)

	for i := 1; i < len(out); i++ {
		gap := out[i].Orbital.Radius - out[i-1].Orbital.Radius
		required := MinSpacing(out[i-1], out[i], tables)
		if gap < required {
			t.Errorf("pair (%d,%d): gap %v < required %v", i-1, i, gap, required)
		}
	}
}

func TestValidateSpacingNeverMovesInward(t *testing.T) {
	tables := DefaultTables()
	for seed := int32(1); seed <= 30; seed++ {
		var bodies []BodyParams
		for i := 0; i < 6; i++ {
			bodies = append(bodies, SynthesizeBody(seed, 0, 0, i, tables))
		}
		before := map[int]float64{}
		for _, b := range bodies {
			before[b.BodyIndex] = b.Orbital.Radius
		}

		out := ValidateSpacing(bodies, tables)
		for _, b := range out {
			if b.Orbital.Radius < before[b.BodyIndex] {
				t.Fatalf("seed %d: body %d moved inward from %v to %v", seed, b.BodyIndex, before[b.BodyIndex], b.Orbital.Radius)
			}
		}
	}
}

func TestValidateSpacingLeavesCorrectInputAlone(t *testing.T) {
	tables := DefaultTables()
	// Already sorted and spaced far beyond any minimum.
	bodies := []BodyParams{
		sphereBody(0, 40, 1000),
		sphereBody(1, 40, 5000),
		sphereBody(2, 40, 9000),
	}

	out := ValidateSpacing(bodies, tables)
	for i, b := range out {
		if b.BodyIndex != i {
			t.Errorf("position %d holds body %d, order changed", i, b.BodyIndex)
		}
		if b.Orbital.Radius != bodies[i].Orbital.Radius {
			t.Errorf("body %d radius changed from %v to %v", i, bodies[i].Orbital.Radius, b.Orbital.Radius)
		}
	}
}

func TestValidateSpacingDoesNotMutateInput(t *testing.T) {
	tables := DefaultTables()
	bodies := []BodyParams{
		sphereBody(0, 60, 300),
		sphereBody(1, 60, 150),
	}
	ValidateSpacing(bodies, tables)

	if bodies[0].BodyIndex != 0 || bodies[0].Orbital.Radius != 300 {
		t.Error("input slice was reordered or repaired in place")
	}
	if bodies[1].Orbital.Radius != 150 {
		t.Error("input radius mutated")
	}
}

func TestValidateSpacingStableOnEqualRadii(t *testing.T) {
	tables := DefaultTables()
	bodies := []BodyParams{
		sphereBody(0, 40, 250),
		sphereBody(1, 40, 250),
		sphereBody(2, 40, 250),
	}

	out := ValidateSpacing(bodies, tables)
	for i, b := range out {
		if b.BodyIndex != i {
			t.Fatalf("equal radii broke original order: position %d holds body %d", i, b.BodyIndex)
		}
	}
}
