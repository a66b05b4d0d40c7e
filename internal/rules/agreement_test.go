package rules

import "testing"

func TestThirdPersonForm(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"work", "works"},
		{"play", "plays"},
		{"study", "studies"},
		{"carry", "carries"},
		{"watch", "watches"},
		{"wash", "washes"},
		{"fix", "fixes"},
		{"miss", "misses"},
		{"buzz", "buzzes"},
		{"go", "goes"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ThirdPersonForm(tt.base); got != tt.want {
			t.Errorf("ThirdPersonForm(%q) = %q, want %q", tt.base, got, tt.want)
		}
	}
}

func TestPresentSimple(t *testing.T) {
	have := PresentVerb{Base: "have", Third: "has"}
	work := PresentVerb{Base: "work"}

	tests := []struct {
		name          string
		thirdSingular bool
		verb          PresentVerb
		want          string
	}{
		{"plural base", false, work, "work"},
		{"regular third", true, work, "works"},
		{"irregular override", true, have, "has"},
		{"irregular plural", false, have, "have"},
	}

	for _, tt := range tests {
		if got := PresentSimple(tt.thirdSingular, tt.verb); got != tt.want {
			t.Errorf("%s: PresentSimple = %q, want %q", tt.name, got, tt.want)
		}
	}
}
