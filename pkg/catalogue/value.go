// Package catalogue defines the closed title catalogues that lists are
// built from.
package catalogue

import "fmt"

// Value is implemented by every catalogue value. Ordinal is the stable
// underlying integer; String is the canonical label.
type Value interface {
	comparable
	Ordinal() int
	String() string
	Valid() bool
}

// Kind names one catalogue.
type Kind string

const (
	KindFilm Kind = "film"
	KindGame Kind = "game"
)

// Kinds lists every catalogue in a fixed order.
func Kinds() []Kind {
	return []Kind{KindFilm, KindGame}
}

// Entry is the display view of a single catalogue value.
type Entry struct {
	Label   string `json:"label" yaml:"label"`
	Ordinal int    `json:"ordinal" yaml:"ordinal"`
}

// Descriptor lists the entries of a catalogue in ordinal order.
type Descriptor struct {
	Kind    Kind    `json:"kind" yaml:"kind"`
	Entries []Entry `json:"entries" yaml:"entries"`
}

// Describe returns the descriptor for kind.
func Describe(kind Kind) (Descriptor, error) {
	switch kind {
	case KindFilm:
		return Descriptor{Kind: kind, Entries: entriesOf(Films())}, nil
	case KindGame:
		return Descriptor{Kind: kind, Entries: entriesOf(Games())}, nil
	default:
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

func entriesOf[T Value](values []T) []Entry {
	entries := make([]Entry, 0, len(values))
	for _, v := range values {
		entries = append(entries, Entry{Label: v.String(), Ordinal: v.Ordinal()})
	}
	return entries
}
