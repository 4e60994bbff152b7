package sensor

import "time"

// Position is a 3D coordinate shared by several generated telemetry
// layouts. Schema files flatten it into their own structs.
type Position struct {
	X float32
	Y float32
	Z float32
}

// Range is a min/max bound pair.
type Range struct {
	Min float32
	Max float32
}

// Reading is one timestamped measurement.
type Reading struct {
	Value    float64
	TakenAt  time.Time
	SensorID int64
	IsCapped bool
}
