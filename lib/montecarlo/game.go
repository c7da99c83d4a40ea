package montecarlo

import (
	"fmt"
	"strings"

	errors "github.com/aasmall/montecarlo/lib/montecarlo-errors"
)

// Result forms accepted by ShowResults, in any case.
const (
	FormWide   = "wide"
	FormNarrow = "narrow"
)

// Game rolls a set of dice together and keeps the result of the last play.
// The dice are shared with the caller: weight changes show up in later plays.
type Game[T Face] struct {
	dice   []*Die[T]
	result *WideTable[T]
}

// NewGame starts a game with dice. The dice don't need to share faces.
func NewGame[T Face](dice []*Die[T]) *Game[T] {
	g := &Game[T]{dice: make([]*Die[T], len(dice))}
	copy(g.dice, dice)
	return g
}

// Dice returns the game's dice in play order.
func (g *Game[T]) Dice() []*Die[T] {
	dice := make([]*Die[T], len(g.dice))
	copy(dice, g.dice)
	return dice
}

// Play rolls every die rollCount times and replaces the stored result.
// On error the previous result is kept.
func (g *Game[T]) Play(rollCount int) error {
	if rollCount <= 0 {
		return errors.NewValidationError("roll count must be positive, got %d", rollCount)
	}
	columns := make([][]T, len(g.dice))
	for i, d := range g.dice {
		if d == nil {
			return errors.NewValidationError("die %d is nil", i+1)
		}
		col, err := d.RollDie(rollCount)
		if err != nil {
			return fmt.Errorf("die %d: %w", i+1, err)
		}
		columns[i] = col
	}
	rows := make([][]T, rollCount)
	for r := range rows {
		row := make([]T, len(columns))
		for d, col := range columns {
			row[d] = col[r]
		}
		rows[r] = row
	}
	g.result = &WideTable[T]{rows: rows, dice: len(g.dice)}
	return nil
}

// ShowResults returns the last play as a wide table (one row per roll) or a
// narrow table (one row per roll and die).
func (g *Game[T]) ShowResults(form string) (Table, error) {
	var (
		t   Table
		err error
	)
	switch strings.ToLower(form) {
	case FormWide:
		t, err = g.Wide()
	case FormNarrow:
		t, err = g.Narrow()
	default:
		return nil, errors.NewValidationError("invalid form %q: must be either 'wide' or 'narrow'", form)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Wide returns the last play, one row per roll and one column per die.
func (g *Game[T]) Wide() (*WideTable[T], error) {
	if g.result == nil {
		return nil, errors.NewStateError("no results: the game has not been played")
	}
	return g.result, nil
}

// Narrow returns the last play stacked into one row per (roll, die).
func (g *Game[T]) Narrow() (*NarrowTable[T], error) {
	if g.result == nil {
		return nil, errors.NewStateError("no results: the game has not been played")
	}
	return g.result.narrow(), nil
}
