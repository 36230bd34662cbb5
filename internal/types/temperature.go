package types

import "math"

type Temperature struct {
	Celsius    float64 `json:"celsius"`
	Fahrenheit float64 `json:"fahrenheit"`
}

// NewTemperatureFromFahrenheit converts to Celsius rounded to one decimal
func NewTemperatureFromFahrenheit(fahrenheit float64) Temperature {
	var celsius = (fahrenheit - 32) * 5 / 9
	return Temperature{
		Celsius:    math.Round(celsius*10) / 10,
		Fahrenheit: fahrenheit,
	}
}
