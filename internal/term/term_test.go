package term

import (
	"testing"

	"github.com/yi-working/csvconcat/internal/config"
)

func TestConfigure(t *testing.T) {
	Configure(config.ColorAlways)
	if !Enabled() || Colors.Error == "" || Colors.Source == "" {
		t.Error("ColorAlways should install the palette")
	}

	Configure(config.ColorNever)
	if Enabled() || Colors != (Palette{}) {
		t.Errorf("ColorNever should clear every role, got %+v", Colors)
	}
}

func TestConfigure_AutoRespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	Configure(config.ColorAuto)
	if Enabled() {
		t.Error("NO_COLOR should disable colors in auto mode")
	}
}

func TestPaint(t *testing.T) {
	t.Cleanup(func() { Configure(config.ColorNever) })

	Configure(config.ColorNever)
	if got := Paint(Colors.Source, "a"); got != "a" {
		t.Errorf("disabled: Paint = %q, want %q", got, "a")
	}

	Configure(config.ColorAlways)
	want := Colors.Source + "a" + Colors.Reset
	if got := Paint(Colors.Source, "a"); got != want {
		t.Errorf("enabled: Paint = %q, want %q", got, want)
	}
	if got := Paint("", "a"); got != "a" {
		t.Errorf("empty role: Paint = %q, want %q", got, "a")
	}
}

func TestIsTerminal_Nil(t *testing.T) {
	if IsTerminal(nil) {
		t.Error("nil file is not a terminal")
	}
}
