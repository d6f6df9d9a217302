package model

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Case Analysis", "case-analysis"},
		{"PDS Survey", "pds-survey"},
		{"  Leading & Trailing!  ", "leading-trailing"},
		{"Already-Slugged", "already-slugged"},
		{"Q4 2024 Review", "q4-2024-review"},
	}
	for _, c := range cases {
		if got := Slugify(c.name); got != c.want {
			t.Fatalf("Slugify(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestAnswerID(t *testing.T) {
	// Result 7 with three questions owns exactly 7000, 7001, 7002.
	for offset, want := range []uint{7000, 7001, 7002} {
		if got := AnswerID(7, offset); got != want {
			t.Fatalf("AnswerID(7, %d) = %d, want %d", offset, got, want)
		}
	}
}

func TestSurveyExternalURL(t *testing.T) {
	s := Survey{ExternalSurveyURL: "https://example.com/instrument"}
	if got := s.ExternalURL(); got != "https://example.com/instrument" {
		t.Fatalf("ExternalURL = %q", got)
	}
	s.ExternalSurveyURL = "example.com/no-scheme"
	if got := s.ExternalURL(); got != "" {
		t.Fatalf("ExternalURL = %q, want empty for relative URL", got)
	}
}
