package weather

import "math"

// WindChill returns how many degrees the wind takes off temp (°F), using the
// NWS wind chill formula. Outside temp <= 50°F and wind >= 3 mph there is no
// adjustment.
func WindChill(temp, windSpeed float64) float64 {
	if temp > 50 || windSpeed < 3 {
		return 0
	}
	v := math.Pow(windSpeed, 0.16)
	return temp - math.Floor(35.74+0.6215*temp-35.75*v+0.4275*temp*v)
}

// HeatIndex returns how many degrees humidity adds to temp (°F), using the
// Rothfusz regression. Below 80°F or 40% humidity there is no adjustment.
func HeatIndex(temp, humidity float64) float64 {
	if temp < 80 || humidity < 40 {
		return 0
	}
	t, rh := temp, humidity
	hi := -42.379 +
		2.04901523*t +
		10.14333127*rh -
		0.22475541*t*rh -
		6.83783e-3*t*t -
		5.481717e-2*rh*rh +
		1.22874e-3*t*t*rh +
		8.5282e-4*t*rh*rh -
		1.99e-6*t*t*rh*rh
	return math.Floor(hi) - temp
}
