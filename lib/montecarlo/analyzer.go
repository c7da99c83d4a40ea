package montecarlo

import (
	"math"
	"slices"

	errors "github.com/aasmall/montecarlo/lib/montecarlo-errors"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Analyzer computes statistics over a game's most recent play. It reads the
// game on every call, so a new Play is reflected immediately.
type Analyzer[T Face] struct {
	game *Game[T]

	// FaceCount is the table built by the last call to FaceCounts.
	FaceCount *FaceCountTable[T]
}

// NewAnalyzer returns an Analyzer for game.
func NewAnalyzer[T Face](game *Game[T]) (*Analyzer[T], error) {
	if game == nil {
		return nil, errors.NewValidationError("input must be a Game")
	}
	return &Analyzer[T]{game: game}, nil
}

// Jackpot counts the rolls where every die showed the same face.
// It is 0 before the game is played or when the game has no dice.
func (a *Analyzer[T]) Jackpot() int {
	w, err := a.game.Wide()
	if err != nil || w.Dice() == 0 {
		return 0
	}
	jackpots := 0
	for _, row := range w.rows {
		if allEqual(row) {
			jackpots++
		}
	}
	return jackpots
}

func allEqual[T Face](row []T) bool {
	for _, f := range row[1:] {
		if f != row[0] {
			return false
		}
	}
	return true
}

// FaceCounts counts how many dice showed each face on every roll. The
// columns are every face seen anywhere in the play, so a face missing from a
// roll counts 0 there.
func (a *Analyzer[T]) FaceCounts() (*FaceCountTable[T], error) {
	w, err := a.game.Wide()
	if err != nil {
		return nil, err
	}
	seen := make(map[T]struct{})
	for _, row := range w.rows {
		for _, f := range row {
			seen[f] = struct{}{}
		}
	}
	faces := make([]T, 0, len(seen))
	for f := range seen {
		faces = append(faces, f)
	}
	slices.Sort(faces)
	column := make(map[T]int, len(faces))
	for i, f := range faces {
		column[f] = i
	}

	counts := make([][]int, len(w.rows))
	for r, row := range w.rows {
		counts[r] = make([]int, len(faces))
		for _, f := range row {
			counts[r][column[f]]++
		}
	}
	a.FaceCount = &FaceCountTable[T]{faces: faces, counts: counts}
	return a.FaceCount, nil
}

// ComboCounts counts the distinct order-independent combinations of faces
// rolled. Repeated faces are kept, so two 3s make the combo (3, 3).
func (a *Analyzer[T]) ComboCounts() (*CountTable[T], error) {
	w, err := a.game.Wide()
	if err != nil {
		return nil, err
	}
	keys := make([][]T, len(w.rows))
	for i, row := range w.rows {
		key := slices.Clone(row)
		slices.Sort(key)
		keys[i] = key
	}
	return countKeys(Combo, keys), nil
}

// PermutationCounts counts the distinct ordered sequences of faces rolled,
// in die order.
func (a *Analyzer[T]) PermutationCounts() (*CountTable[T], error) {
	w, err := a.game.Wide()
	if err != nil {
		return nil, err
	}
	keys := make([][]T, len(w.rows))
	for i, row := range w.rows {
		keys[i] = slices.Clone(row)
	}
	return countKeys(Permutation, keys), nil
}

// countKeys groups equal keys and orders the groups by count, most frequent
// first, ties broken by key.
func countKeys[T Face](kind CountKind, keys [][]T) *CountTable[T] {
	slices.SortFunc(keys, func(x, y []T) int {
		return slices.Compare(x, y)
	})
	var entries []Count[T]
	for _, k := range keys {
		if n := len(entries); n > 0 && slices.Equal(entries[n-1].Key, k) {
			entries[n-1].Count++
			continue
		}
		entries = append(entries, Count[T]{Key: k, Count: 1})
	}
	slices.SortStableFunc(entries, func(x, y Count[T]) int {
		return y.Count - x.Count
	})
	return &CountTable[T]{Kind: kind, entries: entries}
}

// Fit is a chi-square goodness-of-fit test of one die's rolls against its weights.
type Fit[T Face] struct {
	Die              int
	Faces            []T
	Observed         []float64
	Expected         []float64
	ChiSquare        float64
	DegreesOfFreedom int
	PValue           float64
}

// GoodnessOfFit tests whether the faces die (numbered from 1) showed in the
// last play are consistent with the die's current weights. Faces with zero
// weight are left out of the test; if one was rolled anyway the p-value is 0.
func (a *Analyzer[T]) GoodnessOfFit(die int) (Fit[T], error) {
	w, err := a.game.Wide()
	if err != nil {
		return Fit[T]{}, err
	}
	if die < 1 || die > w.Dice() || die > len(a.game.dice) {
		return Fit[T]{}, errors.NewLookupError("no die %d in a game of %d dice", die, w.Dice())
	}
	d := a.game.dice[die-1]
	probs, err := faceProbabilities(d)
	if err != nil {
		return Fit[T]{}, err
	}
	observed := make(map[T]float64, len(d.faces))
	for _, f := range w.Column(die) {
		observed[f]++
	}

	fit := Fit[T]{Die: die}
	rolls := float64(w.Rolls())
	impossible := false
	for _, f := range d.faces {
		p := probs[f]
		if p == 0 {
			if observed[f] > 0 {
				impossible = true
			}
			continue
		}
		fit.Faces = append(fit.Faces, f)
		fit.Observed = append(fit.Observed, observed[f])
		fit.Expected = append(fit.Expected, p*rolls)
	}
	fit.DegreesOfFreedom = len(fit.Faces) - 1
	switch {
	case impossible:
		fit.ChiSquare = math.Inf(1)
		fit.PValue = 0
	case fit.DegreesOfFreedom == 0:
		fit.PValue = 1
	default:
		fit.ChiSquare = stat.ChiSquare(fit.Observed, fit.Expected)
		fit.PValue = 1 - distuv.ChiSquared{K: float64(fit.DegreesOfFreedom), Src: nil}.CDF(fit.ChiSquare)
	}
	return fit, nil
}
