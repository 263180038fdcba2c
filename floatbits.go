package kas

import "math"

func decodeFloat32(bits uint32) float32 { return math.Float32frombits(bits) }
func decodeFloat64(bits uint64) float64 { return math.Float64frombits(bits) }
func encodeFloat32(f float32) uint32    { return math.Float32bits(f) }
func encodeFloat64(f float64) uint64    { return math.Float64bits(f) }
