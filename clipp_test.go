package clipp_test

import (
	"testing"

	"go.klb.dev/clipp"
)

// Round-trips against the real host clipboard. Skips when the host has
// no clipboard (headless CI) or the bound tool can't reach a display.
func TestRoundTrip(t *testing.T) {
	if _, err := clipp.Backend(); err != nil {
		t.Skipf("no clipboard on this host: %v", err)
	}

	const text = "wow such clipboard"
	if err := clipp.Copy(text); err != nil {
		t.Skipf("backend present but not usable here: %v", err)
	}

	got, err := clipp.Paste()
	if err != nil {
		t.Fatalf("Paste() error: %v", err)
	}
	if got != text {
		t.Fatalf("Paste() = %q, want %q", got, text)
	}

	// Paste is idempotent without an intervening Copy.
	again, err := clipp.Paste()
	if err != nil {
		t.Fatalf("second Paste() error: %v", err)
	}
	if again != got {
		t.Fatalf("second Paste() = %q, first returned %q", again, got)
	}

	// Empty input is a meaningful call on every backend; on Wayland it
	// runs the explicit clear mode, which must succeed.
	if err := clipp.Copy(""); err != nil {
		t.Fatalf("Copy(\"\") error: %v", err)
	}
}

func TestBackendIsStable(t *testing.T) {
	first, err := clipp.Backend()
	if err != nil {
		t.Skipf("no clipboard on this host: %v", err)
	}
	second, err := clipp.Backend()
	if err != nil {
		t.Fatalf("second Backend() error: %v", err)
	}
	if first != second {
		t.Fatalf("binding changed: %q then %q", first, second)
	}
}
