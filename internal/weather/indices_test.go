package weather

import "testing"

func TestWindChill(t *testing.T) {
	tests := []struct {
		name     string
		temp     float64
		wind     float64
		expected float64
	}{
		{name: "too warm", temp: 51, wind: 30, expected: 0},
		{name: "calm", temp: 10, wind: 2, expected: 0},
		{name: "calm and warm", temp: 70, wind: 0, expected: 0},
		{name: "zero degrees at 15 mph", temp: 0, wind: 15, expected: 20},
		{name: "30 degrees at 10 mph", temp: 30, wind: 10, expected: 9},
		{name: "edge of envelope", temp: 50, wind: 3, expected: 1},
		{name: "bitter cold", temp: -20, wind: 30, expected: 34},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WindChill(tt.temp, tt.wind)
			if result != tt.expected {
				t.Errorf("WindChill(%v, %v) = %v, want %v", tt.temp, tt.wind, result, tt.expected)
			}
		})
	}
}

func TestWindChillOutsideEnvelope(t *testing.T) {
	for temp := -60.0; temp <= 130; temp++ {
		for wind := 0.0; wind <= 50; wind++ {
			if temp <= 50 && wind >= 3 {
				continue
			}
			if got := WindChill(temp, wind); got != 0 {
				t.Fatalf("WindChill(%v, %v) = %v, want 0", temp, wind, got)
			}
		}
	}
}

func TestHeatIndex(t *testing.T) {
	tests := []struct {
		name     string
		temp     float64
		humidity float64
		expected float64
	}{
		{name: "too cool", temp: 79, humidity: 90, expected: 0},
		{name: "too dry", temp: 100, humidity: 39, expected: 0},
		{name: "90 degrees at 50 percent", temp: 90, humidity: 50, expected: 4},
		{name: "100 degrees at 60 percent", temp: 100, humidity: 60, expected: 29},
		{name: "regression undershoots at the threshold", temp: 80, humidity: 40, expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := HeatIndex(tt.temp, tt.humidity)
			if result != tt.expected {
				t.Errorf("HeatIndex(%v, %v) = %v, want %v", tt.temp, tt.humidity, result, tt.expected)
			}
		})
	}
}

func TestHeatIndexOutsideEnvelope(t *testing.T) {
	for temp := -60.0; temp <= 130; temp++ {
		for humidity := -20.0; humidity <= 120; humidity++ {
			if temp >= 80 && humidity >= 40 {
				continue
			}
			if got := HeatIndex(temp, humidity); got != 0 {
				t.Fatalf("HeatIndex(%v, %v) = %v, want 0", temp, humidity, got)
			}
		}
	}
}
