package types

// SnowThresholdF is the temperature at or below which precipitation falls as snow
const SnowThresholdF = 35

type PrecipitationKind string

const (
	Rain PrecipitationKind = "rain"
	Snow PrecipitationKind = "snow"
)

// PrecipitationKindAt classifies precipitation by the current temperature in °F
func PrecipitationKindAt(fahrenheit float64) PrecipitationKind {
	if fahrenheit > SnowThresholdF {
		return Rain
	}
	return Snow
}
