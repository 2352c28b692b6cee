package procgen

import "math"

// SynthesizeBody generates every parameter of one body from its hierarchical
// path. All randomness comes from a single stream seeded by the body's path,
// consumed in a fixed order: body type, size, orbit, biomes. The order is
// part of the contract; reordering any draw changes every downstream value
// for a given seed. The function is total: it never fails, and unknown body
// types fall back to terrestrial defaults.
func SynthesizeBody(masterSeed int32, galaxyIndex, systemIndex, bodyIndex int, tables *Tables) BodyParams {
	seed := DeriveSeed(masterSeed, BodyPath(galaxyIndex, systemIndex, bodyIndex))
	stream := NewStream(seed)

	bodyType := BodyType(tables.BodyTypeTable().Pick(stream.Next()))
	size := synthesizeSize(bodyType, stream, tables)
	orbital := synthesizeOrbit(bodyIndex, stream, tables)
	biomes := synthesizeBiomes(bodyType, stream)

	return BodyParams{
		Seed:             seed,
		GalaxyIndex:      galaxyIndex,
		SystemIndex:      systemIndex,
		BodyIndex:        bodyIndex,
		Type:             bodyType,
		Size:             size,
		Orbital:          orbital,
		Biomes:           biomes,
		Layers:           tables.LayerTemplate(bodyType),
		Gravity:          gravityShape(bodyType, size),
		TerrainMinHeight: tables.Terrain.MinHeight,
		TerrainMaxHeight: tables.Terrain.MaxHeight,
		WaterLevel:       waterLevel(bodyType, tables),
	}
}

// synthesizeSize draws a body's dimensions. Ringworlds consume two draws
// (major then minor radius); every other type consumes one.
func synthesizeSize(bodyType BodyType, stream *Stream, tables *Tables) BodySize {
	if bodyType == BodyTypeRingworld {
		r := tables.RingworldSize
		return BodySize{
			MajorRadius: stream.NextIn(r.Major.Min, r.Major.Max),
			MinorRadius: stream.NextIn(r.Minor.Min, r.Minor.Max),
		}
	}
	r, ok := tables.SizeRanges[bodyType]
	if !ok {
		r = tables.SizeRanges[BodyTypeTerrestrial]
	}
	return BodySize{Radius: stream.NextIn(r.Min, r.Max)}
}

// synthesizeOrbit seeds the orbit from a per-slot base radius with a small
// random variation. The base is independent of body size; spacing repair
// does the strict separation work afterwards, and that two-phase split is
// deliberate. Consumes four draws: radius, inclination, eccentricity, phase.
func synthesizeOrbit(bodyIndex int, stream *Stream, tables *Tables) OrbitalParameters {
	radius := tables.Orbit.BaseRadius + float64(bodyIndex)*tables.Orbit.SlotSpacing +
		(stream.Next()-0.5)*tables.Orbit.VariationWidth
	return OrbitalParameters{
		Radius:       radius,
		Period:       OrbitalPeriod(radius),
		Inclination:  (stream.Next() - 0.5) * 10,
		Eccentricity: stream.Next() * 0.1,
		Phase:        stream.Next() * 2 * math.Pi,
	}
}

// OrbitalPeriod derives a period from an orbital radius via the power-law
// relation period = (radius/100)^1.5 * 365.
func OrbitalPeriod(radius float64) float64 {
	return math.Pow(radius/100, 1.5) * 365
}

// synthesizeBiomes produces the per-type biome weight distribution. Each
// branch assigns weights in a fixed order because every assignment consumes
// a draw. Weights are relative; consumers normalize as needed.
func synthesizeBiomes(bodyType BodyType, stream *Stream) map[string]float64 {
	biomes := make(map[string]float64)
	switch bodyType {
	case BodyTypeGasGiant:
		// Impostor-only: a single pseudo-biome, no draws consumed.
		biomes["atmosphere"] = 100
	case BodyTypeRingworld:
		biomes["plains"] = 25 + stream.Next()*25
		biomes["forest"] = 20 + stream.Next()*25
		biomes["ocean"] = 15 + stream.Next()*20
		biomes["mountains"] = 10 + stream.Next()*15
	case BodyTypeIce:
		biomes["ice"] = 50 + stream.Next()*30
		biomes["tundra"] = 20 + stream.Next()*20
		biomes["frozen_ocean"] = 5 + stream.Next()*15
	case BodyTypeVolcanic:
		biomes["lava"] = 50 + stream.Next()*30
		biomes["obsidian"] = 20 + stream.Next()*25
		biomes["ash"] = 10 + stream.Next()*15
	case BodyTypeBarren:
		biomes["rock"] = 60 + stream.Next()*25
		biomes["dust"] = 15 + stream.Next()*20
	default:
		// Terrestrial, and the fallback for any unrecognized type.
		biomes["plains"] = 20 + stream.Next()*30
		biomes["forest"] = 15 + stream.Next()*25
		biomes["desert"] = 10 + stream.Next()*20
		biomes["mountains"] = 10 + stream.Next()*20
		biomes["ocean"] = 15 + stream.Next()*25
	}
	return biomes
}

// gravityShape builds the influence-radius model from the generated size.
func gravityShape(bodyType BodyType, size BodySize) GravityShape {
	if bodyType == BodyTypeRingworld {
		return GravityShape{
			Kind:        GravityShapeRingworld,
			MajorRadius: size.MajorRadius,
			MinorRadius: size.MinorRadius,
		}
	}
	return GravityShape{Kind: GravityShapeSphere, Radius: size.Radius}
}

// waterLevel applies the type-dependent override: ice worlds sit elevated,
// volcanic worlds keep water at or below the terrain floor.
func waterLevel(bodyType BodyType, tables *Tables) float64 {
	switch bodyType {
	case BodyTypeIce:
		return tables.Terrain.IceWaterLevel
	case BodyTypeVolcanic:
		return tables.Terrain.VolcanicWaterLevel
	default:
		return tables.Terrain.WaterLevel
	}
}
