// ABOUTME: Tests for the playlist
// ABOUTME: Tests cursor navigation and bounds
package playlist

import "testing"

func TestEmptyPlaylist(t *testing.T) {
	p := New()

	if _, ok := p.Current(); ok {
		t.Error("expected no current item")
	}
	if _, ok := p.Next(); ok {
		t.Error("expected no next item")
	}
	if _, ok := p.Prev(); ok {
		t.Error("expected no prev item")
	}
	if p.Index() != -1 {
		t.Errorf("expected index -1, got %d", p.Index())
	}
}

func TestFirstAddBecomesCurrent(t *testing.T) {
	p := New()
	p.Add("a.mp3")

	cur, ok := p.Current()
	if !ok || cur != "a.mp3" {
		t.Errorf("expected current a.mp3, got %q (ok=%v)", cur, ok)
	}
}

func TestNavigation(t *testing.T) {
	p := New()
	p.Add("a.mp3")
	p.Add("b.mp3")
	p.Add("c.mp3")

	if next, ok := p.Next(); !ok || next != "b.mp3" {
		t.Errorf("expected b.mp3, got %q (ok=%v)", next, ok)
	}
	if next, ok := p.Next(); !ok || next != "c.mp3" {
		t.Errorf("expected c.mp3, got %q (ok=%v)", next, ok)
	}
	if _, ok := p.Next(); ok {
		t.Error("expected no next past the end")
	}
	if prev, ok := p.Prev(); !ok || prev != "b.mp3" {
		t.Errorf("expected b.mp3, got %q (ok=%v)", prev, ok)
	}
	if prev, ok := p.Prev(); !ok || prev != "a.mp3" {
		t.Errorf("expected a.mp3, got %q (ok=%v)", prev, ok)
	}
	if _, ok := p.Prev(); ok {
		t.Error("expected no prev before the start")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	p := New()
	p.Add("a.mp3")
	p.Add("b.mp3")

	all := p.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 items, got %d", len(all))
	}
	all[0] = "mutated"
	if cur, _ := p.Current(); cur != "a.mp3" {
		t.Error("mutating the returned slice changed the playlist")
	}
}
