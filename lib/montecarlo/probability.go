package montecarlo

import (
	"fmt"

	errors "github.com/aasmall/montecarlo/lib/montecarlo-errors"
)

// faceProbabilities maps each face of a die to weight/total under its current weights.
func faceProbabilities[T Face](d *Die[T]) (map[T]float64, error) {
	p, err := d.probabilities()
	if err != nil {
		return nil, err
	}
	m := make(map[T]float64, len(p))
	for i, f := range d.faces {
		m[f] = p[i]
	}
	return m, nil
}

// JackpotProbability returns the exact chance that a single roll of the
// game's dice is a jackpot, using the dice's current weights.
func (g *Game[T]) JackpotProbability() (float64, error) {
	if len(g.dice) == 0 {
		return 0, errors.NewValidationError("a game with no dice has no jackpots")
	}
	probs := make([]map[T]float64, len(g.dice))
	for i, d := range g.dice {
		if d == nil {
			return 0, errors.NewValidationError("die %d is nil", i+1)
		}
		m, err := faceProbabilities(d)
		if err != nil {
			return 0, fmt.Errorf("die %d: %w", i+1, err)
		}
		probs[i] = m
	}
	var total float64
	for _, face := range g.dice[0].faces {
		p := probs[0][face]
		for _, m := range probs[1:] {
			p *= m[face]
		}
		total += p
	}
	return total, nil
}
