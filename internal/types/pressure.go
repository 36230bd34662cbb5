package types

import "math"

const InHgToHpa = 33.8639

// Pressure is a barometric reading
type Pressure struct {
	InchesHg    float64 `json:"inHg"`
	Hectopascal float64 `json:"hPa"`
}

func NewPressureFromInchesHg(inchesHg float64) Pressure {
	return Pressure{
		InchesHg:    inchesHg,
		Hectopascal: math.Round(inchesHg*InHgToHpa*10) / 10,
	}
}
