package viz

import (
	"testing"
)

func TestGetTheme(t *testing.T) {
	tests := []struct {
		name     string
		bg       Background
		expected Background
	}{
		{"space", BackgroundSpace, BackgroundSpace},
		{"dark", BackgroundDark, BackgroundDark},
		{"gradient", BackgroundGradient, BackgroundGradient},
		{"minimal", BackgroundMinimal, BackgroundMinimal},
		{"unknown falls back to space", Background("neon"), BackgroundSpace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetTheme(tt.bg); got.Background != tt.expected {
				t.Errorf("GetTheme(%q) = %q, expected %q", tt.bg, got.Background, tt.expected)
			}
		})
	}
}

func TestBackgroundNext(t *testing.T) {
	order := []Background{BackgroundSpace, BackgroundDark, BackgroundGradient, BackgroundMinimal}
	for i, bg := range order {
		expected := order[(i+1)%len(order)]
		if got := bg.Next(); got != expected {
			t.Errorf("%q.Next() = %q, expected %q", bg, got, expected)
		}
	}

	if got := Background("neon").Next(); got != BackgroundSpace {
		t.Errorf("unknown background should cycle to space, got %q", got)
	}
}

func TestBackgroundValid(t *testing.T) {
	for _, bg := range []Background{BackgroundSpace, BackgroundDark, BackgroundGradient, BackgroundMinimal} {
		if !bg.Valid() {
			t.Errorf("%q should be valid", bg)
		}
	}
	if Background("neon").Valid() {
		t.Error("neon should not be valid")
	}
	if Background("").Valid() {
		t.Error("empty background should not be valid")
	}
}

func TestBackgroundsList(t *testing.T) {
	names := Backgrounds()
	expected := []string{"space", "dark", "gradient", "minimal"}
	if len(names) != len(expected) {
		t.Fatalf("expected %d backgrounds, got %d", len(expected), len(names))
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("position %d: expected %q, got %q", i, name, names[i])
		}
	}
}

func TestOnlySpaceHasStars(t *testing.T) {
	for _, th := range Themes {
		if th.Stars != (th.Background == BackgroundSpace) {
			t.Errorf("background %q: unexpected stars flag %v", th.Background, th.Stars)
		}
	}
}
