package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidHand     = errors.New("invalid hand")
)

// Count thresholds for the n-of-a-kind categories. The score is the threshold
// times the highest face showing at least that many times.
var kindThresholds = map[Category]int{
	Pair:      2,
	ThreeKind: 3,
	FourKind:  4,
}

// Face runs that satisfy each straight; any one run is enough.
var straightRuns = map[Category][][]int{
	SmallStraight: {{1, 2, 3, 4}, {2, 3, 4, 5}, {3, 4, 5, 6}},
	LargeStraight: {{1, 2, 3, 4, 5}, {2, 3, 4, 5, 6}},
}

var fixedPoints = map[Category]int{
	FullHouse:     25,
	SmallStraight: 30,
	LargeStraight: 40,
	Yahtzee:       50,
}

// Score returns the points hand h earns in category c. It does not consult or
// change any score sheet.
func Score(c Category, h Hand) (int, error) {
	if !c.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidCategory, int(c))
	}
	if err := h.validate(); err != nil {
		return 0, err
	}

	counts := h.counts()

	switch c {
	case Ones, Twos, Threes, Fours, Fives, Sixes:
		face := int(c-Ones) + 1
		return counts[face] * face, nil
	case Pair, ThreeKind, FourKind:
		n := kindThresholds[c]
		return n * highestFace(counts, n), nil
	case DoublePair:
		first := highestFace(counts, 2)
		if first == 0 {
			return 0, nil
		}
		second := highestFaceBelow(counts, 2, first)
		if second == 0 {
			return 0, nil
		}
		return 2 * (first + second), nil
	case FullHouse:
		if highestFace(counts, 3) > 0 && highestFace(counts, 2) > 0 {
			return fixedPoints[c], nil
		}
		return 0, nil
	case SmallStraight, LargeStraight:
		for _, run := range straightRuns[c] {
			if containsRun(counts, run) {
				return fixedPoints[c], nil
			}
		}
		return 0, nil
	case Yahtzee:
		for face := 1; face <= NumFaces; face++ {
			if counts[face] == NumDice {
				return fixedPoints[c], nil
			}
		}
		return 0, nil
	}

	panic(fmt.Sprintf("no scoring rule for %v", c))
}

// Evaluate scores c unless it has already been used. The returned marked flag
// is the category's used state afterwards: scoring consumes a category even
// when it earns nothing.
func Evaluate(c Category, h Hand, used bool) (score int, marked bool, err error) {
	if !c.Valid() {
		return 0, used, fmt.Errorf("%w: %d", ErrInvalidCategory, int(c))
	}
	if used {
		return 0, true, nil
	}
	score, err = Score(c, h)
	if err != nil {
		return 0, false, err
	}
	return score, true, nil
}

// highestFace returns the highest face showing at least n times, or 0.
func highestFace(counts [NumFaces + 1]int, n int) int {
	return highestFaceBelow(counts, n, NumFaces+1)
}

func highestFaceBelow(counts [NumFaces + 1]int, n, below int) int {
	for face := below - 1; face >= 1; face-- {
		if counts[face] >= n {
			return face
		}
	}
	return 0
}

func containsRun(counts [NumFaces + 1]int, run []int) bool {
	for _, face := range run {
		if counts[face] == 0 {
			return false
		}
	}
	return true
}
