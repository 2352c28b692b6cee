package procgen

import "sort"

// GravityRadius computes a body's influence radius for spacing purposes.
// Ringworlds use the sum of major and minor radius; spheres scale their
// radius by the configured multiplier.
func GravityRadius(body BodyParams, tables *Tables) float64 {
	if body.Gravity.Kind == GravityShapeRingworld {
		return body.Gravity.MajorRadius + body.Gravity.MinorRadius
	}
	return body.Gravity.Radius * tables.Multipliers.GravityRadius
}

// MinSpacing is the required orbital separation between two adjacent bodies.
func MinSpacing(a, b BodyParams, tables *Tables) float64 {
	return (GravityRadius(a, tables) + GravityRadius(b, tables)) * tables.Multipliers.OrbitalSpacing
}

// ValidateSpacing repairs orbital spacing so adjacent bodies never overlap.
// It returns a new slice sorted ascending by orbital radius (stable, so
// equal radii keep their original order) and walks adjacent pairs once,
// pushing a body outward whenever its gap to the previous one is under the
// minimum. Pushing a body outward can only widen later gaps, so the single
// forward pass is sufficient. No body ever moves inward and the input slice
// is left untouched.
func ValidateSpacing(bodies []BodyParams, tables *Tables) []BodyParams {
	out := make([]BodyParams, len(bodies))
	copy(out, bodies)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Orbital.Radius < out[j].Orbital.Radius
	})

	for i := 1; i < len(out); i++ {
		required := MinSpacing(out[i-1], out[i], tables)
		if out[i].Orbital.Radius-out[i-1].Orbital.Radius < required {
			out[i].Orbital.Radius = out[i-1].Orbital.Radius + required
		}
	}

	return out
}
