package textnorm

import "testing"

func TestCleanDisplayText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Moran Wins Vote", "Moran Wins Vote"},
		{"keeps allowed punctuation", `Vote: "yes" - (finally), right?!`, `Vote: "yes" - (finally), right?!`},
		{"drops symbols", "Moran™ Wins — Vote €", "Moran Wins  Vote"},
		{"trims", "  Moran Wins Vote  ", "Moran Wins Vote"},
		{"empty", "", ""},
		{"symbols only", "™€†", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanDisplayText(tt.in); got != tt.want {
				t.Errorf("CleanDisplayText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanDisplayTextIdempotent(t *testing.T) {
	inputs := []string{
		"Moran Wins Vote",
		"  spaced  out  ",
		"symbols™ and — dashes",
		`"quoted" (title): done!`,
		"",
	}
	for _, in := range inputs {
		once := CleanDisplayText(in)
		twice := CleanDisplayText(once)
		if once != twice {
			t.Errorf("CleanDisplayText not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}

func TestStripOutletSuffix(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		outlet string
		want   string
	}{
		{"strips suffix", "Moran Wins Vote - KSN-TV", "KSN-TV", "Moran Wins Vote"},
		{"no suffix", "Moran Wins Vote", "KSN-TV", "Moran Wins Vote"},
		{"outlet with regexp metacharacters", "Moran Wins - 9News (Denver)", "9News (Denver)", "Moran Wins"},
		{"suffix in middle untouched", "A - KSN-TV - story continues", "KSN-TV", "A - KSN-TV - story continues"},
		{"different punctuation untouched", "Moran Wins Vote — KSN-TV", "KSN-TV", "Moran Wins Vote — KSN-TV"},
		{"empty outlet", "Moran Wins Vote - ", "", "Moran Wins Vote - "},
		{"empty title", "", "KSN-TV", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripOutletSuffix(tt.title, tt.outlet); got != tt.want {
				t.Errorf("StripOutletSuffix(%q, %q) = %q, want %q", tt.title, tt.outlet, got, tt.want)
			}
		})
	}
}

func TestNormalizeForDedup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Moran Wins Vote", "moran wins vote"},
		{"strips breaking with colon", "Breaking: Moran Wins Vote", "moran wins vote"},
		{"strips breaking without colon", "BREAKING Moran Wins Vote", "moran wins vote"},
		{"strips update", "Update: Moran Wins Vote", "moran wins vote"},
		{"strips exclusive", "Exclusive Moran Wins Vote", "moran wins vote"},
		{"strips marker only once", "Breaking: Update: Moran Wins", "update: moran wins"},
		{"marker not at start untouched", "Moran Breaking: Wins", "moran breaking: wins"},
		{"collapses whitespace", "Moran\t Wins \n  Vote", "moran wins vote"},
		{"marker only normalizes empty", "Breaking:", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeForDedup(tt.in); got != tt.want {
				t.Errorf("NormalizeForDedup(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
