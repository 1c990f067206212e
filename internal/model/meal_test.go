package model

import (
	"errors"
	"testing"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Difficulty
		wantErr bool
	}{
		{name: "uppercase low", raw: "LOW", want: DifficultyLow},
		{name: "lowercase med", raw: "med", want: DifficultyMed},
		{name: "mixed case high", raw: "High", want: DifficultyHigh},
		{name: "surrounding spaces", raw: "  MED  ", want: DifficultyMed},
		{name: "unknown level", raw: "EXTREME", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDifficulty(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDifficulty) {
					t.Fatalf("ParseDifficulty(%q) error = %v, want ErrInvalidDifficulty", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDifficulty(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Fatalf("ParseDifficulty(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDifficultyValid(t *testing.T) {
	for _, d := range []Difficulty{DifficultyLow, DifficultyMed, DifficultyHigh} {
		if !d.Valid() {
			t.Errorf("%q should be valid", d)
		}
	}
	for _, d := range []Difficulty{"", "low", "EXTREME", "MEDIUM"} {
		if d.Valid() {
			t.Errorf("%q should not be valid", d)
		}
	}
}

func TestOutcomeValid(t *testing.T) {
	if !OutcomeWin.Valid() || !OutcomeLoss.Valid() {
		t.Fatal("win and loss must be valid outcomes")
	}
	for _, o := range []Outcome{"", "draw", "WIN"} {
		if o.Valid() {
			t.Errorf("%q should not be a valid outcome", o)
		}
	}
}

func TestMealValidate(t *testing.T) {
	valid := Meal{Name: "Pizza", Cuisine: "Italian", Price: 12.99, Difficulty: DifficultyMed}

	tests := []struct {
		name    string
		mutate  func(*Meal)
		wantErr error
	}{
		{name: "valid meal", mutate: func(*Meal) {}, wantErr: nil},
		{name: "blank name", mutate: func(m *Meal) { m.Name = "   " }, wantErr: ErrEmptyName},
		{name: "zero price", mutate: func(m *Meal) { m.Price = 0 }, wantErr: ErrInvalidPrice},
		{name: "negative price", mutate: func(m *Meal) { m.Price = -3.50 }, wantErr: ErrInvalidPrice},
		{name: "unknown difficulty", mutate: func(m *Meal) { m.Difficulty = "IMPOSSIBLE" }, wantErr: ErrInvalidDifficulty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid
			tt.mutate(&m)
			err := m.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
