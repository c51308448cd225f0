package mathutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		decimals int
		want     float64
	}{
		{"default decimals drops fraction", 10.999, 0, 10},
		{"two decimals", 10.999, 2, 10.99},
		{"very small number", 0.123456789, 3, 0.123},
		{"zero", 0, 0, 0},
		{"negative truncates toward zero", -3.789, 1, -3.7},
		{"negative decimals behave like zero", 42.9, -2, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.decimals)
			if got != tt.want {
				t.Errorf("Truncate(%v, %d) = %v, want %v", tt.input, tt.decimals, got, tt.want)
			}
		})
	}
}

func TestTruncateIsIdempotent(t *testing.T) {
	inputs := []float64{10.999, 0.123456789, 3.14159, 59.999}

	for _, input := range inputs {
		once := Truncate(input, 3)
		for _, decimals := range []int{3, 4, 6} {
			if again := Truncate(once, decimals); again != once {
				t.Errorf("Truncate(Truncate(%v, 3), %d) = %v, want %v", input, decimals, again, once)
			}
		}
	}
}
