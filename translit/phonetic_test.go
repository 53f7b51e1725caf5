package translit

import "testing"

func TestPhoneticStrategy_LongestMatchFirst(t *testing.T) {
	s := NewPhoneticStrategy(nil)

	tests := []struct {
		input string
		want  string
	}{
		{"sh", "ش"},    // digraph beats s+h
		{"sch", "ش"},   // trigraph beats s+ch
		{"aa", "ا"},    // long vowel, one alif not two
		{"3omri", "عومري"},
		{"kheir", "خير"}, // kh + ei + r

	}

	for _, tt := range tests {
		got, err := s.Convert(tt.input)
		if err != nil {
			t.Fatalf("Convert(%q) failed: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Convert(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPhoneticStrategy_PositionalConsumption(t *testing.T) {
	s := NewPhoneticStrategy(nil)

	// Positional scan consumes each byte exactly once: "ssh" is s + sh,
	// never s + s + h.
	got, _ := s.Convert("ssh")
	if got != "سش" {
		t.Errorf("Convert(%q) = %q, want %q", "ssh", got, "سش")
	}
}

func TestPhoneticStrategy_Passthrough(t *testing.T) {
	s := NewPhoneticStrategy(nil)

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"مرحبا", "مرحبا"},
		{"!؟.", "!؟."},
		{"3omri, 7abibi!", "عومري, حابيبي!"},
	}

	for _, tt := range tests {
		got, _ := s.Convert(tt.input)
		if got != tt.want {
			t.Errorf("Convert(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPhoneticStrategy_CaseInsensitive(t *testing.T) {
	s := NewPhoneticStrategy(nil)

	lower, _ := s.Convert("shukran")
	upper, _ := s.Convert("Shukran")
	if lower != upper {
		t.Errorf("case should not matter: %q vs %q", lower, upper)
	}
}

func TestPhoneticStrategy_CustomRules(t *testing.T) {
	s := NewPhoneticStrategy(map[string]string{"x": "كس"})

	got, _ := s.Convert("axa")
	if got != "aكسa" {
		t.Errorf("Convert(%q) = %q, want %q", "axa", got, "aكسa")
	}
}

func TestPhoneticStrategy_Name(t *testing.T) {
	if NewPhoneticStrategy(nil).Name() != "phonetic" {
		t.Error("unexpected strategy name")
	}
}
