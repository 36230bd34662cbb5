package climate

import (
	"errors"
	"testing"
)

func TestClimateFromMenu(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Climate
		wantErr bool
	}{
		{name: "first option", input: "1", want: TropicalRainforest},
		{name: "coastal", input: "3", want: TemperateCoastal},
		{name: "last option", input: "7", want: Tundra},
		{name: "surrounding whitespace", input: " 2\n", want: Desert},
		{name: "zero", input: "0", wantErr: true},
		{name: "out of range", input: "8", wantErr: true},
		{name: "leading zero", input: "01", wantErr: true},
		{name: "non numeric", input: "desert", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClimateFromMenu(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownClimate) {
					t.Fatalf("ClimateFromMenu(%q) error = %v, want ErrUnknownClimate", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ClimateFromMenu(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ClimateFromMenu(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSeasonFromMenu(t *testing.T) {
	tests := []struct {
		input   string
		want    Season
		wantErr bool
	}{
		{input: "1", want: Spring},
		{input: "2", want: Summer},
		{input: "3", want: Fall},
		{input: "4", want: Winter},
		{input: "9", wantErr: true},
		{input: "x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := SeasonFromMenu(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownSeason) {
					t.Fatalf("SeasonFromMenu(%q) error = %v, want ErrUnknownSeason", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("SeasonFromMenu(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseClimate(t *testing.T) {
	for _, c := range All() {
		t.Run(c.Slug(), func(t *testing.T) {
			bySlug, err := ParseClimate(c.Slug())
			if err != nil || bySlug != c {
				t.Errorf("ParseClimate(%q) = %v, %v", c.Slug(), bySlug, err)
			}
			byName, err := ParseClimate(c.String())
			if err != nil || byName != c {
				t.Errorf("ParseClimate(%q) = %v, %v", c.String(), byName, err)
			}
		})
	}

	if _, err := ParseClimate("savanna"); !errors.Is(err, ErrUnknownClimate) {
		t.Errorf("ParseClimate(savanna) error = %v, want ErrUnknownClimate", err)
	}
}

func TestParseSeason(t *testing.T) {
	got, err := ParseSeason("Autumn")
	if err != nil || got != Fall {
		t.Errorf("ParseSeason(Autumn) = %v, %v, want fall", got, err)
	}
	if _, err := ParseSeason("monsoon"); !errors.Is(err, ErrUnknownSeason) {
		t.Errorf("ParseSeason(monsoon) error = %v, want ErrUnknownSeason", err)
	}
}

func TestClimateNames(t *testing.T) {
	if got := TemperateContinental.Slug(); got != "temperate-continental" {
		t.Errorf("Slug() = %q", got)
	}
	if got := TropicalRainforest.String(); got != "Tropical rainforest" {
		t.Errorf("String() = %q", got)
	}
	if Climate(0).Valid() || Climate(8).Valid() {
		t.Error("out of range climates should not be valid")
	}
	if got := Winter.Title(); got != "Winter" {
		t.Errorf("Title() = %q", got)
	}
}

func TestLookup(t *testing.T) {
	for _, c := range All() {
		t.Run(c.Slug(), func(t *testing.T) {
			p, err := Lookup(c)
			if err != nil {
				t.Fatalf("Lookup(%v) error: %v", c, err)
			}
			if p.Climate != c {
				t.Errorf("Climate = %v, want %v", p.Climate, c)
			}
			if p.Windiness < 1 || p.Windiness > 10 {
				t.Errorf("Windiness = %d, want 1..10", p.Windiness)
			}
			if p.CalibrationCity.Name == "" {
				t.Error("CalibrationCity.Name is empty")
			}
			for _, s := range Seasons() {
				profile, err := p.Season(s)
				if err != nil {
					t.Fatalf("Season(%v) error: %v", s, err)
				}
				if profile.PrecipChance < 0 || profile.PrecipChance > 1 {
					t.Errorf("%v PrecipChance = %v, want [0,1]", s, profile.PrecipChance)
				}
			}
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup(Climate(42)); !errors.Is(err, ErrUnknownClimate) {
		t.Errorf("Lookup(42) error = %v, want ErrUnknownClimate", err)
	}
	if _, _, err := Profile(Desert, Season(0)); !errors.Is(err, ErrUnknownSeason) {
		t.Errorf("Profile(desert, 0) error = %v, want ErrUnknownSeason", err)
	}
}

func TestProfileValues(t *testing.T) {
	p, profile, err := Profile(TemperateCoastal, Winter)
	if err != nil {
		t.Fatalf("Profile error: %v", err)
	}
	if p.TemperatureVariability != 11 || p.Windiness != 2 {
		t.Errorf("params = %+v", p)
	}
	want := SeasonProfile{AverageHigh: 47, HighLowSpread: 5, PrecipChance: .59}
	if profile != want {
		t.Errorf("profile = %+v, want %+v", profile, want)
	}
}
