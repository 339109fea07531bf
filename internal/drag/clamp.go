package drag

import "notetab/internal/geom"

// Clamp keeps a surface of the given size inside the viewport. When the
// surface is larger than the viewport on an axis it is pinned to 0.
func Clamp(origin geom.Point, size geom.Size, viewport geom.Size) geom.Point {
	return geom.Point{
		X: clampAxis(origin.X, viewport.W-size.W),
		Y: clampAxis(origin.Y, viewport.H-size.H),
	}
}

func clampAxis(v, hi int) int {
	return max(0, min(hi, v))
}

func Center(size geom.Size, viewport geom.Size) geom.Point {
	return Clamp(geom.Point{
		X: (viewport.W - size.W) / 2,
		Y: (viewport.H - size.H) / 2,
	}, size, viewport)
}
