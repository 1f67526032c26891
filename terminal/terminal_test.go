package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestEmergencyResetWritesSequences(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)

	out := buf.Bytes()
	for name, seq := range map[string][]byte{
		"cursor show":     csiCursorShow,
		"alt screen exit": csiAltScreenExit,
		"sgr reset":       csiSGR0,
		"auto wrap":       csiAutoWrapOn,
		"mouse off":       csiMouseClickOff,
		"full reset":      csiRIS,
	} {
		if !bytes.Contains(out, seq) {
			t.Errorf("Expected %s sequence %q in reset output", name, seq)
		}
	}

	// Full reset must come last so it is not undone by later sequences
	if !bytes.HasSuffix(out, csiRIS) {
		t.Errorf("Expected output to end with RIS, got %q", out)
	}
}

func TestColorsDisabled(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"1", true},
		{"yes", true},
	}

	for _, tt := range tests {
		t.Setenv("NO_COLOR", tt.value)
		if got := ColorsDisabled(); got != tt.want {
			t.Errorf("NO_COLOR=%q: expected %v, got %v", tt.value, tt.want, got)
		}
	}
}

func TestRestoreAfterPanicFinalizesScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	SetCrashScreen(screen)

	var out, errOut bytes.Buffer
	restoreAfterPanic("boom", &out, &errOut)

	if out.Len() != 0 {
		t.Errorf("Expected no raw reset when a screen is registered, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "CRASH DETECTED: boom") {
		t.Errorf("Expected crash banner, got %q", errOut.String())
	}
	if !strings.Contains(errOut.String(), "Stack Trace:") {
		t.Error("Expected stack trace in crash output")
	}

	crashMu.Lock()
	registered := crashScreen
	crashMu.Unlock()
	if registered != nil {
		t.Error("Expected crash screen to be cleared after restore")
	}
}

func TestRestoreAfterPanicFallsBackToReset(t *testing.T) {
	SetCrashScreen(nil)

	var out, errOut bytes.Buffer
	restoreAfterPanic("no screen", &out, &errOut)

	if !bytes.Contains(out.Bytes(), csiRIS) {
		t.Errorf("Expected emergency reset output, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "no screen") {
		t.Errorf("Expected panic value in crash output, got %q", errOut.String())
	}
}

func TestCloseNilScreen(t *testing.T) {
	Close(nil)
}

func TestCloseUnregisters(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	SetCrashScreen(screen)
	Close(screen)

	crashMu.Lock()
	defer crashMu.Unlock()
	if crashScreen != nil {
		t.Error("Expected Close to unregister the crash screen")
	}
}
