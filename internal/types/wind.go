package types

import "math"

const MphToKph = 1.60934

type Wind struct {
	SpeedInMph float64 `json:"mph"`
	SpeedInKph float64 `json:"kph"`
}

func NewWindFromMph(speedInMph float64) Wind {
	return Wind{
		SpeedInMph: speedInMph,
		SpeedInKph: math.Round(speedInMph*MphToKph*10) / 10,
	}
}
