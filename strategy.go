package surf

import "fmt"

type samplingKind int

const (
	samplingMinimumDistance samplingKind = iota
	samplingPerSqrUnit
)

// SurfelSampling selects how triangles are converted into surfels. The
// strategies differ in statistical properties and performance
// characteristics.
type SurfelSampling struct {
	kind  samplingKind
	value float64
}

// PerSqrUnit samples each triangle with a random point count proportional to
// the given density per square unit of world-space area. It is fast but
// clumps on smaller scales.
//
// The strategy is declared for configuration compatibility but not
// implemented: sampling triangles under it fails with ErrNotImplemented.
func PerSqrUnit(density float64) SurfelSampling {
	return SurfelSampling{kind: samplingPerSqrUnit, value: density}
}

// MinimumDistance generates a Poisson disk set by dart throwing, so that no
// two surfels are closer than minDist. Slower than PerSqrUnit, but surfels
// are evenly spaced.
func MinimumDistance(minDist float64) SurfelSampling {
	return SurfelSampling{kind: samplingMinimumDistance, value: minDist}
}

// String returns a string representation of the strategy.
func (s SurfelSampling) String() string {
	switch s.kind {
	case samplingMinimumDistance:
		return fmt.Sprintf("MinimumDistance(%g)", s.value)
	case samplingPerSqrUnit:
		return fmt.Sprintf("PerSqrUnit(%g)", s.value)
	default:
		return "Unknown"
	}
}
