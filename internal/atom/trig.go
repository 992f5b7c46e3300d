package atom

import "math"

// TrigTable provides precomputed sin/cos values for fast lookup.
// Uses linear interpolation for values between table entries. Orbit angles
// are recomputed for every electron on every frame, so the hot path avoids
// math.Sin in favor of the table.
type TrigTable struct {
	sin []float64
	cos []float64
	n   int
}

// Global default trig table (4096 entries = ~0.0015 rad resolution)
var DefaultTrigTable = NewTrigTable(4096)

// NewTrigTable creates a precomputed trig lookup table
func NewTrigTable(n int) *TrigTable {
	t := &TrigTable{
		sin: make([]float64, n),
		cos: make([]float64, n),
		n:   n,
	}

	for i := 0; i < n; i++ {
		angle := float64(i) * 2 * math.Pi / float64(n)
		t.sin[i] = math.Sin(angle)
		t.cos[i] = math.Cos(angle)
	}

	return t
}

// lookup interpolates one table over x normalized to [0, 2π).
func (t *TrigTable) lookup(values []float64, x float64) float64 {
	x = math.Mod(x, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}

	idx := x * float64(t.n) / (2 * math.Pi)
	i := int(idx)
	frac := idx - float64(i)

	i0 := i % t.n
	i1 := (i + 1) % t.n

	return values[i0]*(1-frac) + values[i1]*frac
}

// Sin returns approximate sin using table lookup with interpolation
func (t *TrigTable) Sin(x float64) float64 {
	return t.lookup(t.sin, x)
}

// Cos returns approximate cos using table lookup with interpolation
func (t *TrigTable) Cos(x float64) float64 {
	return t.lookup(t.cos, x)
}

// SinCos returns both sin and cos
func (t *TrigTable) SinCos(x float64) (sin, cos float64) {
	return t.lookup(t.sin, x), t.lookup(t.cos, x)
}

// FastSin uses the default table for quick sin lookup
func FastSin(x float64) float64 {
	return DefaultTrigTable.Sin(x)
}

// FastCos uses the default table for quick cos lookup
func FastCos(x float64) float64 {
	return DefaultTrigTable.Cos(x)
}

// FastSinCos uses the default table
func FastSinCos(x float64) (float64, float64) {
	return DefaultTrigTable.SinCos(x)
}
