package theme

import (
	"sync"
	"testing"
)

func TestLookup_EmptyUsesDefault(t *testing.T) {
	p, err := Lookup("")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got := ColorToString(p.DestructiveHover); got != "#e81123" {
		t.Errorf("DestructiveHover = %s, want #e81123", got)
	}
	if ColorToString(p.NeutralHover) == ColorToString(p.DestructiveHover) {
		t.Error("neutral and destructive hover must differ")
	}
}

func TestLookup_KnownTheme(t *testing.T) {
	p, err := Lookup("dracula")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if p == Default {
		t.Error("dracula resolved to the built-in palette")
	}
}

func TestLookup_UnknownTheme(t *testing.T) {
	p, err := Lookup("definitely-not-a-theme")
	if err == nil {
		t.Error("expected error for unknown theme")
	}
	if p != FromTint(Fallback) {
		t.Error("unknown theme did not resolve to the fallback tint")
	}
	if p.Bar == nil || p.DestructiveHover == nil {
		t.Errorf("fallback palette has nil colours: %+v", p)
	}
}

// Sessions resolve their palettes independently; run with -race.
func TestLookup_Concurrent(t *testing.T) {
	names := []string{"", "dracula", "nord", "definitely-not-a-theme"}

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				p, _ := Lookup(names[i%len(names)])
				_ = ColorToString(p.Bar)
			}
		}()
	}
	wg.Wait()
}

func TestColorToString(t *testing.T) {
	if got := ColorToString(nil); got != "" {
		t.Errorf("ColorToString(nil) = %q", got)
	}
	if got := ColorToString(Default.Bar); got != "#1a1a1a" {
		t.Errorf("ColorToString(Bar) = %q, want #1a1a1a", got)
	}
}
