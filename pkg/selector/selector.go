// Package selector picks the candidates for a single wallpaper run: one cached
// image, one remote URL, and whether the cached image is preferred.
package selector

import "math/rand/v2"

// DefaultPreferLocalWeight is the probability of preferring the cached image.
const DefaultPreferLocalWeight = 1.0 / 3.0

// Source is the randomness a Selector draws from. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// Selection is the outcome of one Select call.
type Selection struct {
	Local     string
	HasLocal  bool
	Remote    string
	HasRemote bool

	PreferLocal bool
}

// Selector chooses candidates uniformly at random and flips a weighted coin
// between them. Nothing is remembered between calls.
type Selector struct {
	// Weight is the probability that PreferLocal is true, in [0, 1].
	Weight float64
	// Rand is the random source; nil means the process-wide generator.
	Rand Source
}

// New returns a Selector using the process-wide random generator.
func New(weight float64) *Selector {
	return &Selector{Weight: weight}
}

// Select draws a local entry, a remote URL and the preference flag. Each draw
// is independent of the others.
func (s *Selector) Select(entries, urls []string) Selection {
	src := s.source()

	var sel Selection
	if len(entries) > 0 {
		sel.Local = entries[src.IntN(len(entries))]
		sel.HasLocal = true
	}
	if len(urls) > 0 {
		sel.Remote = urls[src.IntN(len(urls))]
		sel.HasRemote = true
	}
	sel.PreferLocal = src.Float64() < s.Weight
	return sel
}

func (s *Selector) source() Source {
	if s.Rand != nil {
		return s.Rand
	}
	return globalSource{}
}

type globalSource struct{}

func (globalSource) IntN(n int) int    { return rand.IntN(n) }
func (globalSource) Float64() float64 { return rand.Float64() }
