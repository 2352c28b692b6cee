package procgen

import "math"

// GenerateSystem assembles one complete star system from its path. The
// system-level stream is consumed in a fixed order: body count, then (after
// synthesis and spacing repair) star type, then the X and Y of the spatial
// offset within the parent galaxy. Each body draws from its own stream
// seeded by its own path, so body content is stable even if the system-level
// draws change meaning between table versions.
func GenerateSystem(masterSeed int32, galaxyIndex, systemIndex int, tables *Tables) SystemConfig {
	seed := DeriveSeed(masterSeed, SystemPath(galaxyIndex, systemIndex))
	stream := NewStream(seed)

	count := int(math.Floor(float64(tables.BodyCount.Min) +
		stream.Next()*float64(tables.BodyCount.Max-tables.BodyCount.Min)))

	bodies := make([]BodyParams, 0, count)
	for i := 0; i < count; i++ {
		bodies = append(bodies, SynthesizeBody(masterSeed, galaxyIndex, systemIndex, i, tables))
	}
	bodies = ValidateSpacing(bodies, tables)

	var captureRadius float64
	if len(bodies) > 0 {
		farthest := bodies[len(bodies)-1]
		captureRadius = (farthest.Orbital.Radius + GravityRadius(farthest, tables)) *
			tables.Multipliers.SystemCapture
	}

	starType := tables.StarTable().Pick(stream.Next())
	position := Position{
		X: (stream.Next() - 0.5) * tables.GalaxyExtent,
		Y: (stream.Next() - 0.5) * tables.GalaxyExtent,
	}

	return SystemConfig{
		Seed:          seed,
		GalaxyIndex:   galaxyIndex,
		SystemIndex:   systemIndex,
		Star:          Star{Type: starType, Temperature: tables.StarTemperature(starType)},
		CaptureRadius: captureRadius,
		Bodies:        bodies,
		Position:      position,
	}
}
