package normalize

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "already canonical",
			input: "onion red",
			want:  "onion red",
		},
		{
			name:  "case and word order",
			input: "Red Onion",
			want:  "onion red",
		},
		{
			name:  "punctuation",
			input: "onion, red",
			want:  "onion red",
		},
		{
			name:  "repeated whitespace and shouting",
			input: "RED   ONION!!",
			want:  "onion red",
		},
		{
			name:  "tabs and newlines collapse",
			input: "red\tonion\n",
			want:  "onion red",
		},
		{
			name:  "digits kept",
			input: "2% Milk",
			want:  "2 milk",
		},
		{
			name:  "only punctuation",
			input: "!!!",
			want:  "",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeEquivalence(t *testing.T) {
	variants := []string{"Red Onion", "onion, red", "RED   ONION!!"}
	want := Normalize(variants[0])
	for _, v := range variants[1:] {
		if got := Normalize(v); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", v, got, want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Red Onion", "olive oil (extra virgin)", "", "a b c", "Crème fraîche"}
	for _, input := range inputs {
		once := Normalize(input)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", input, twice, once)
		}
	}
}
