package montecarlo

import (
	"cmp"
	"math"
	"strings"

	errors "github.com/aasmall/montecarlo/lib/montecarlo-errors"
	"github.com/spf13/cast"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Face is any value a die can show. Faces must be ordered so combos can be sorted.
type Face interface {
	cmp.Ordered
}

// Die is a set of distinct faces with a weight each. Rolling it picks faces
// with probability weight/total.
type Die[T Face] struct {
	faces   []T
	weights []float64
	index   map[T]int
	src     rand.Source
}

type dieOptions struct {
	src rand.Source
}

// DieOption configures a Die.
type DieOption func(*dieOptions)

// WithSource makes the die draw from src instead of the global source.
// Dice may share a source; it must not be used concurrently.
func WithSource(src rand.Source) DieOption {
	return func(o *dieOptions) {
		o.src = src
	}
}

// NewDie sets up a die with faces. Weights default to 1.0.
func NewDie[T Face](faces []T, opts ...DieOption) (*Die[T], error) {
	if len(faces) == 0 {
		return nil, errors.NewValidationError("a die needs at least one face")
	}
	o := &dieOptions{}
	for _, opt := range opts {
		opt(o)
	}
	d := &Die[T]{
		faces:   make([]T, len(faces)),
		weights: make([]float64, len(faces)),
		index:   make(map[T]int, len(faces)),
		src:     o.src,
	}
	for i, f := range faces {
		if f != f {
			return nil, errors.NewValidationError("face %d is NaN", i+1)
		}
		if _, dup := d.index[f]; dup {
			return nil, errors.NewValidationError("all faces must be unique: %v appears more than once", f)
		}
		d.index[f] = i
		d.faces[i] = f
		d.weights[i] = 1.0
	}
	return d, nil
}

// ChangeWeight sets the weight of one face. newWeight may be any Go number or
// a string holding one.
func (d *Die[T]) ChangeWeight(face T, newWeight interface{}) error {
	i, ok := d.index[face]
	if !ok {
		return errors.NewLookupError("%v is not a face on this die", face)
	}
	w, err := parseWeight(newWeight)
	if err != nil {
		return err
	}
	d.weights[i] = w
	return nil
}

func parseWeight(v interface{}) (float64, error) {
	if v == nil {
		return 0, errors.NewTypeError(nil, "weight must be a number, got nil")
	}
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	w, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, errors.NewTypeError(err, "weight must be a number, got %#v", v)
	}
	return w, nil
}

// RollDie rolls the die rollCount times with replacement. Weights are read
// once, at the start of the call.
func (d *Die[T]) RollDie(rollCount int) ([]T, error) {
	if rollCount < 0 {
		return nil, errors.NewValidationError("roll count must not be negative, got %d", rollCount)
	}
	weights := make([]float64, len(d.weights))
	copy(weights, d.weights)
	if err := checkWeights(weights); err != nil {
		return nil, err
	}
	outcomes := make([]T, rollCount)
	if rollCount == 0 {
		return outcomes, nil
	}
	c := distuv.NewCategorical(weights, d.src)
	for i := range outcomes {
		outcomes[i] = d.faces[int(c.Rand())]
	}
	return outcomes, nil
}

// checkWeights rejects weight sets that cannot be sampled from.
func checkWeights(weights []float64) error {
	var total float64
	for _, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return errors.NewValidationError("weights must be finite and non-negative, got %v", w)
		}
		total += w
	}
	if total <= 0 {
		return errors.NewValidationError("at least one face needs a positive weight")
	}
	return nil
}

// probabilities returns each face's share of the total weight.
func (d *Die[T]) probabilities() ([]float64, error) {
	if err := checkWeights(d.weights); err != nil {
		return nil, err
	}
	var total float64
	for _, w := range d.weights {
		total += w
	}
	p := make([]float64, len(d.weights))
	for i, w := range d.weights {
		p[i] = w / total
	}
	return p, nil
}

// ShowState returns the current faces and weights.
func (d *Die[T]) ShowState() DieState[T] {
	state := make(DieState[T], len(d.faces))
	for i, f := range d.faces {
		state[i] = FaceWeight[T]{Face: f, Weight: d.weights[i]}
	}
	return state
}

// Faces returns a copy of the die's faces in construction order.
func (d *Die[T]) Faces() []T {
	faces := make([]T, len(d.faces))
	copy(faces, d.faces)
	return faces
}
