package procgen

import (
	"math"
	"testing"
)

func weightSum(t *Tables) float64 {
	total := 0.0
	for _, e := range t.BodyTypes {
		total += e.Weight
	}
	return total
}

func TestDefaultTablesAreValid(t *testing.T) {
	if err := DefaultTables().Validate(); err != nil {
		t.Fatalf("default tables failed validation: %v", err)
	}
}

func TestSetBodyTypeWeightRenormalizes(t *testing.T) {
	for _, edit := range []struct {
		bodyType BodyType
		weight   float64
	}{
		{BodyTypeGasGiant, 0.9},
		{BodyTypeRingworld, 0.0},
		{BodyTypeTerrestrial, 0.5},
		{BodyTypeBarren, 1.0},
	} {
		tables := DefaultTables()
		if err := tables.SetBodyTypeWeight(edit.bodyType, edit.weight); err != nil {
			t.Fatalf("SetBodyTypeWeight(%s, %v): %v", edit.bodyType, edit.weight, err)
		}
		if sum := weightSum(tables); math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("after setting %s to %v, weights sum to %v, want 1.0", edit.bodyType, edit.weight, sum)
		}
	}
}

func TestSetBodyTypeWeightRejectsBadInput(t *testing.T) {
	tables := DefaultTables()
	if err := tables.SetBodyTypeWeight(BodyTypeIce, -0.1); err == nil {
		t.Error("negative weight accepted")
	}
	if err := tables.SetBodyTypeWeight(BodyTypeIce, 1.5); err == nil {
		t.Error("weight above 1 accepted")
	}
	if err := tables.SetBodyTypeWeight(BodyType("crystal"), 0.2); err == nil {
		t.Error("unknown body type accepted")
	}
	// The failed edits must not have corrupted the table.
	if err := tables.Validate(); err != nil {
		t.Fatalf("table invalid after rejected edits: %v", err)
	}
}

func TestValidateRejectsBrokenTables(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Tables)
	}{
		{"unnormalized weights", func(t *Tables) { t.BodyTypes[0].Weight += 0.5 }},
		{"negative weight", func(t *Tables) { t.BodyTypes[0].Weight = -0.2 }},
		{"empty body types", func(t *Tables) { t.BodyTypes = nil }},
		{"inverted size range", func(t *Tables) { t.SizeRanges[BodyTypeBarren] = SizeRange{Min: 50, Max: 20} }},
		{"zero size range", func(t *Tables) { t.SizeRanges[BodyTypeIce] = SizeRange{Min: 0, Max: 0} }},
		{"gapped layers", func(t *Tables) {
			layers := t.LayerTemplates[BodyTypeTerrestrial]
			layers[1].MinDepth = 0.5
			t.LayerTemplates[BodyTypeTerrestrial] = layers
		}},
		{"zero multiplier", func(t *Tables) { t.Multipliers.OrbitalSpacing = 0 }},
		{"empty star table", func(t *Tables) { t.Stars = nil }},
		{"inverted body count", func(t *Tables) { t.BodyCount = BodyCountRange{Min: 9, Max: 3} }},
	}

	for _, c := range cases {
		tables := DefaultTables()
		c.mutate(tables)
		if err := tables.Validate(); err == nil {
			t.Errorf("%s: Validate accepted a broken table", c.name)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	original := DefaultTables()
	clone := original.Clone()

	clone.BodyTypes[0].Weight = 0.99
	clone.SizeRanges[BodyTypeBarren] = SizeRange{Min: 1, Max: 2}
	clone.LayerTemplates[BodyTypeTerrestrial][0].Material = "glass"

	if original.BodyTypes[0].Weight == 0.99 {
		t.Error("clone shares body type slice with original")
	}
	if original.SizeRanges[BodyTypeBarren].Min == 1 {
		t.Error("clone shares size range map with original")
	}
	if original.LayerTemplates[BodyTypeTerrestrial][0].Material == "glass" {
		t.Error("clone shares layer template slice with original")
	}
}

func TestLayerTemplateFallsBackToTerrestrial(t *testing.T) {
	tables := DefaultTables()

	unknown := tables.LayerTemplate(BodyType("crystal"))
	terrestrial := tables.LayerTemplate(BodyTypeTerrestrial)
	if len(unknown) != len(terrestrial) {
		t.Fatalf("unknown type got %d layers, want terrestrial's %d", len(unknown), len(terrestrial))
	}

	if layers := tables.LayerTemplate(BodyTypeGasGiant); len(layers) != 0 {
		t.Fatalf("gas giant template has %d layers, want none", len(layers))
	}

	// Returned templates are copies; mutating one must not touch the snapshot.
	terrestrial[0].Material = "glass"
	if tables.LayerTemplates[BodyTypeTerrestrial][0].Material == "glass" {
		t.Error("LayerTemplate returned an aliased slice")
	}
}
