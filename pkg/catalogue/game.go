package catalogue

import "fmt"

type Game int

const (
	Gothic Game = iota
	HorizonZeroDawn
	Starcraft2
)

var gameLabels = map[Game]string{
	Gothic:          "gothic",
	HorizonZeroDawn: "horizon_zero_dawn",
	Starcraft2:      "starcraft_2",
}

// Games returns every game in ordinal order.
func Games() []Game {
	return []Game{Gothic, HorizonZeroDawn, Starcraft2}
}

// ParseGame maps a canonical label back to its game.
func ParseGame(label string) (Game, error) {
	for _, g := range Games() {
		if gameLabels[g] == label {
			return g, nil
		}
	}
	return 0, fmt.Errorf("%w for game: %q", ErrUnknownLabel, label)
}

func (g Game) Ordinal() int {
	return int(g)
}

func (g Game) Valid() bool {
	_, ok := gameLabels[g]
	return ok
}

func (g Game) String() string {
	if label, ok := gameLabels[g]; ok {
		return label
	}
	return fmt.Sprintf("game(%d)", int(g))
}
