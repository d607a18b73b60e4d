package game

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"slices"
	"strings"
)

// Catalog is the set of ingredient images a player can receive.
type Catalog struct {
	paths []string
}

// NewCatalog returns a catalog of the given image paths.
func NewCatalog(paths ...string) *Catalog {
	return &Catalog{paths: slices.Clone(paths)}
}

// LoadCatalog lists the PNG files in dir, sorted by name.
func LoadCatalog(dir string) (*Catalog, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"))
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}

	var paths []string
	for _, m := range matches {
		if strings.EqualFold(filepath.Ext(m), ".png") {
			paths = append(paths, m)
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoIngredients)
	}
	slices.Sort(paths)
	return &Catalog{paths: paths}, nil
}

// Len returns the number of ingredients.
func (c *Catalog) Len() int {
	return len(c.paths)
}

// Paths returns the ingredient paths.
func (c *Catalog) Paths() []string {
	return slices.Clone(c.paths)
}

// Pick returns a uniformly random ingredient. A nil r uses the global
// source.
func (c *Catalog) Pick(r *rand.Rand) (string, error) {
	if len(c.paths) == 0 {
		return "", ErrNoIngredients
	}
	var i int
	if r != nil {
		i = r.IntN(len(c.paths))
	} else {
		i = rand.IntN(len(c.paths))
	}
	return c.paths[i], nil
}
