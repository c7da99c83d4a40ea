package montecarlo

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Table is a result table that can be printed row by row.
type Table interface {
	Header() []string
	Records() [][]string
	Len() int
}

func formatFace[T Face](f T) string {
	s, err := cast.ToStringE(f)
	if err != nil {
		return fmt.Sprint(f)
	}
	return s
}

func formatKey[T Face](key []T) string {
	parts := make([]string, len(key))
	for i, f := range key {
		parts[i] = formatFace(f)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// FaceWeight is one face of a die and its weight.
type FaceWeight[T Face] struct {
	Face   T
	Weight float64
}

// DieState is a snapshot of a die's faces and weights in face order.
type DieState[T Face] []FaceWeight[T]

func (s DieState[T]) Header() []string { return []string{"Faces", "Weights"} }
func (s DieState[T]) Len() int         { return len(s) }

func (s DieState[T]) Records() [][]string {
	records := make([][]string, len(s))
	for i, fw := range s {
		records[i] = []string{formatFace(fw.Face), strconv.FormatFloat(fw.Weight, 'f', -1, 64)}
	}
	return records
}

// Weight returns the weight of face, and whether the face was found.
func (s DieState[T]) Weight(face T) (float64, bool) {
	for _, fw := range s {
		if fw.Face == face {
			return fw.Weight, true
		}
	}
	return 0, false
}

// WideTable holds one row per roll and one column per die.
// Rolls and dice are numbered from 1.
type WideTable[T Face] struct {
	rows [][]T
	dice int
}

func (w *WideTable[T]) Rolls() int { return len(w.rows) }
func (w *WideTable[T]) Dice() int  { return w.dice }
func (w *WideTable[T]) Len() int   { return len(w.rows) }

// Roll returns the faces of roll n in die order.
func (w *WideTable[T]) Roll(n int) []T {
	return slices.Clone(w.rows[n-1])
}

// Face returns what die showed on roll.
func (w *WideTable[T]) Face(roll, die int) T {
	return w.rows[roll-1][die-1]
}

// Column returns every face die showed, in roll order.
func (w *WideTable[T]) Column(die int) []T {
	col := make([]T, len(w.rows))
	for i, row := range w.rows {
		col[i] = row[die-1]
	}
	return col
}

func (w *WideTable[T]) Header() []string {
	header := make([]string, 0, w.dice+1)
	header = append(header, "roll")
	for d := 1; d <= w.dice; d++ {
		header = append(header, "die_"+strconv.Itoa(d))
	}
	return header
}

func (w *WideTable[T]) Records() [][]string {
	records := make([][]string, len(w.rows))
	for i, row := range w.rows {
		rec := make([]string, 0, len(row)+1)
		rec = append(rec, "roll_"+strconv.Itoa(i+1))
		for _, f := range row {
			rec = append(rec, formatFace(f))
		}
		records[i] = rec
	}
	return records
}

// narrow stacks the table: one row per (roll, die), die varying fastest.
func (w *WideTable[T]) narrow() *NarrowTable[T] {
	rows := make([]NarrowRow[T], 0, len(w.rows)*w.dice)
	for r, row := range w.rows {
		for d, f := range row {
			rows = append(rows, NarrowRow[T]{Roll: r + 1, Die: d + 1, Face: f})
		}
	}
	return &NarrowTable[T]{rows: rows}
}

// NarrowRow is what one die showed on one roll.
type NarrowRow[T Face] struct {
	Roll int
	Die  int
	Face T
}

// NarrowTable holds one row per (roll, die) pair, ordered by roll then die.
type NarrowTable[T Face] struct {
	rows []NarrowRow[T]
}

func (n *NarrowTable[T]) Len() int             { return len(n.rows) }
func (n *NarrowTable[T]) Rows() []NarrowRow[T] { return slices.Clone(n.rows) }

func (n *NarrowTable[T]) Header() []string {
	return []string{"Roll Number", "Die Number", "Face Rolled"}
}

func (n *NarrowTable[T]) Records() [][]string {
	records := make([][]string, len(n.rows))
	for i, r := range n.rows {
		records[i] = []string{"roll_" + strconv.Itoa(r.Roll), "die_" + strconv.Itoa(r.Die), formatFace(r.Face)}
	}
	return records
}

// FaceCountTable counts, for every roll, how many dice showed each face.
// Its columns are every face seen anywhere in the game, in ascending order.
type FaceCountTable[T Face] struct {
	faces  []T
	counts [][]int
}

func (t *FaceCountTable[T]) Faces() []T { return slices.Clone(t.faces) }
func (t *FaceCountTable[T]) Rolls() int { return len(t.counts) }
func (t *FaceCountTable[T]) Len() int   { return len(t.counts) }

// Row returns the counts for roll n, one per column of Faces.
func (t *FaceCountTable[T]) Row(n int) []int {
	return slices.Clone(t.counts[n-1])
}

// Count returns how many dice showed face on roll n.
func (t *FaceCountTable[T]) Count(n int, face T) int {
	i, ok := slices.BinarySearch(t.faces, face)
	if !ok {
		return 0
	}
	return t.counts[n-1][i]
}

func (t *FaceCountTable[T]) Header() []string {
	header := make([]string, 0, len(t.faces)+1)
	header = append(header, "Roll")
	for _, f := range t.faces {
		header = append(header, formatFace(f))
	}
	return header
}

func (t *FaceCountTable[T]) Records() [][]string {
	records := make([][]string, len(t.counts))
	for i, row := range t.counts {
		rec := make([]string, 0, len(row)+1)
		rec = append(rec, "roll_"+strconv.Itoa(i+1))
		for _, c := range row {
			rec = append(rec, strconv.Itoa(c))
		}
		records[i] = rec
	}
	return records
}

// CountKind says whether a CountTable is keyed by combos or permutations.
type CountKind string

const (
	Combo       CountKind = "Combo"
	Permutation CountKind = "Permutation"
)

// Count is one distinct key and how many rolls produced it.
type Count[T Face] struct {
	Key   []T
	Count int
}

// CountTable holds distinct roll outcomes and their counts, most frequent first.
type CountTable[T Face] struct {
	Kind    CountKind
	entries []Count[T]
}

func (t *CountTable[T]) Len() int { return len(t.entries) }

func (t *CountTable[T]) Entries() []Count[T] {
	entries := make([]Count[T], len(t.entries))
	for i, e := range t.entries {
		entries[i] = Count[T]{Key: slices.Clone(e.Key), Count: e.Count}
	}
	return entries
}

// Count returns how many rolls produced key. Combo keys may be given in any order.
func (t *CountTable[T]) Count(key ...T) int {
	if t.Kind == Combo {
		key = slices.Clone(key)
		slices.Sort(key)
	}
	for _, e := range t.entries {
		if slices.Equal(e.Key, key) {
			return e.Count
		}
	}
	return 0
}

// Total is the sum of all counts, which is the number of rolls.
func (t *CountTable[T]) Total() int {
	total := 0
	for _, e := range t.entries {
		total += e.Count
	}
	return total
}

func (t *CountTable[T]) Header() []string {
	return []string{string(t.Kind), "Counts"}
}

func (t *CountTable[T]) Records() [][]string {
	records := make([][]string, len(t.entries))
	for i, e := range t.entries {
		records[i] = []string{formatKey(e.Key), strconv.Itoa(e.Count)}
	}
	return records
}
