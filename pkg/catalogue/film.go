package catalogue

import "fmt"

type Film int

const (
	HouseOfCards   Film = 0
	AmericanBeauty Film = 1
	Se7en          Film = 7
)

var filmLabels = map[Film]string{
	HouseOfCards:   "house_of_cards",
	AmericanBeauty: "american_beauty",
	Se7en:          "se7en",
}

// Films returns every film in ordinal order.
func Films() []Film {
	return []Film{HouseOfCards, AmericanBeauty, Se7en}
}

// ParseFilm maps a canonical label back to its film.
func ParseFilm(label string) (Film, error) {
	for _, f := range Films() {
		if filmLabels[f] == label {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w for film: %q", ErrUnknownLabel, label)
}

func (f Film) Ordinal() int {
	return int(f)
}

func (f Film) Valid() bool {
	_, ok := filmLabels[f]
	return ok
}

func (f Film) String() string {
	if label, ok := filmLabels[f]; ok {
		return label
	}
	return fmt.Sprintf("film(%d)", int(f))
}
