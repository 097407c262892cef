package services

// CapacityResolution is the outcome of weighing a requested quantity against
// what is actually free.
type CapacityResolution struct {
	// Available is total minus occupied, clamped at zero. Overbooked data
	// (occupied > total) must never surface as a negative number.
	Available int
	// Satisfiable reports whether the requested quantity fits.
	Satisfiable bool
}

// ResolveCapacity combines the physical unit count with an occupancy figure
// and classifies the requested quantity. A room type with zero units is
// never satisfiable, whatever was requested.
func ResolveCapacity(totalUnits, occupied, requested int) CapacityResolution {
	available := totalUnits - occupied
	if available < 0 {
		available = 0
	}
	if requested < 1 {
		requested = 1
	}
	return CapacityResolution{
		Available:   available,
		Satisfiable: available > 0 && requested <= available,
	}
}
