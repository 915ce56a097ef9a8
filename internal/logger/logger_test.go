package logger

import (
	"bytes"
	"strings"
	"testing"
)

func capture(t *testing.T, lvl string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	t.Cleanup(Redirect(&buf))
	prev := GetLevel()
	t.Cleanup(func() { level.Store(int32(prev)) })
	if !SetLevel(lvl) {
		t.Fatalf("%q should be a known level", lvl)
	}
	return &buf
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t, "warn")
	Infof("hidden %d", 1)
	Warnf("shown %d", 2)
	Errorf("plain error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line leaked at warn level: %q", out)
	}
	if !strings.Contains(out, "[WARN] shown 2") {
		t.Fatalf("missing warn line: %q", out)
	}
	if !strings.Contains(out, "[ERROR] plain error") {
		t.Fatalf("missing error line: %q", out)
	}
}

func TestScopedLogger(t *testing.T) {
	buf := capture(t, "Debug")
	lg := Scoped("prism")
	lg.Debugf("mounted in %q", "bg")
	lg.Errorf("lost surface")

	out := buf.String()
	if !strings.Contains(out, `[DEBUG] prism: mounted in "bg"`) {
		t.Fatalf("missing scoped debug line: %q", out)
	}
	if !strings.Contains(out, "[ERROR] prism: lost surface") {
		t.Fatalf("missing scoped error line: %q", out)
	}
}

func TestSetLevelUnknown(t *testing.T) {
	prev := GetLevel()
	if SetLevel("loud") {
		t.Fatal("unknown level accepted")
	}
	if GetLevel() != prev {
		t.Fatal("unknown level changed the current level")
	}
}

func TestZeroLevelIsInfo(t *testing.T) {
	var l Level
	if l != LevelInfo || l.String() != "INFO" {
		t.Fatalf("zero level is %v", l)
	}
}
