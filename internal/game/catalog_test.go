package game

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.png", "a.PNG", "notes.txt", "c.jpg"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	c, err := LoadCatalog(dir)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}

	want := []string{filepath.Join(dir, "a.PNG"), filepath.Join(dir, "b.png")}
	got := c.Paths()
	if c.Len() != len(want) || len(got) != len(want) {
		t.Fatalf("Paths: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Paths[%d]: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLoadCatalog_Empty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "readme.md"), []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := LoadCatalog(dir); !errors.Is(err, ErrNoIngredients) {
		t.Errorf("got %v, want ErrNoIngredients", err)
	}
}

func TestCatalog_Pick(t *testing.T) {
	paths := []string{"img/1.png", "img/2.png", "img/3.png"}
	c := NewCatalog(paths...)

	paths[0] = "changed.png"
	if c.Paths()[0] != "img/1.png" {
		t.Error("NewCatalog should copy its input")
	}

	r1 := rand.New(rand.NewPCG(1, 2))
	r2 := rand.New(rand.NewPCG(1, 2))
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		a, err := c.Pick(r1)
		if err != nil {
			t.Fatalf("Pick failed: %v", err)
		}
		b, _ := c.Pick(r2)
		if a != b {
			t.Fatalf("same seed picked %s and %s", a, b)
		}
		seen[a] = true
	}
	for _, p := range c.Paths() {
		if !seen[p] {
			t.Errorf("%s never picked in 50 draws", p)
		}
	}

	if p, err := c.Pick(nil); err != nil || p == "" {
		t.Errorf("Pick(nil): got %q, %v", p, err)
	}
}

func TestCatalog_PickEmpty(t *testing.T) {
	if _, err := NewCatalog().Pick(nil); !errors.Is(err, ErrNoIngredients) {
		t.Errorf("got %v, want ErrNoIngredients", err)
	}
}
