package insertion

import "testing"

func TestRender(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		value string
		want  string
	}{
		{"no placeholder", "plain description", "Acme", "plain description"},
		{"single placeholder", "Welcome to %s.", "Acme", "Welcome to Acme."},
		{"repeated placeholder", "%s values. At %s we care.", "Acme", "Acme values. At Acme we care."},
		{"empty value", "Welcome to %s.", "", "Welcome to %s."},
		{"empty text", "", "Acme", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Render(c.text, c.value); got != c.want {
				t.Fatalf("Render(%q, %q) = %q, want %q", c.text, c.value, got, c.want)
			}
		})
	}
}

func TestCount(t *testing.T) {
	if got := Count("a %s b %s"); got != 2 {
		t.Fatalf("Count = %d, want 2", got)
	}
	if got := Count("none"); got != 0 {
		t.Fatalf("Count = %d, want 0", got)
	}
}
