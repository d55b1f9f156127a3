package gamemath

// SlopeSurfaceY returns the surface height of a square slope cell at worldX.
// risingRight selects a surface that climbs from the cell's bottom-left corner
// to its top-right corner; otherwise it climbs from bottom-right to top-left.
// worldX is clamped to the cell so samples past either edge hold the end height.
func SlopeSurfaceY(cellX, cellY, size, worldX float64, risingRight bool) float64 {
	ratio := ClampFloat((worldX-cellX)/size, 0, 1)
	if risingRight {
		// Surface rises from left (Y+size) to right (Y)
		return cellY + size*(1-ratio)
	}
	// Surface falls from left (Y) to right (Y+size)
	return cellY + size*ratio
}

// SnapToSlopeY returns the Y position to snap an object onto a slope surface.
func SnapToSlopeY(objectH, surfaceY, offset float64) float64 {
	return surfaceY - objectH + offset
}
