package game

import (
	"fmt"
	"strings"

	"yahtzee/utils"
)

type Category int

const (
	Ones Category = iota
	Twos
	Threes
	Fours
	Fives
	Sixes
	Pair
	ThreeKind
	FourKind
	DoublePair
	FullHouse
	SmallStraight
	LargeStraight
	Yahtzee
)

var categoryNames = []string{
	"ones",
	"twos",
	"threes",
	"fours",
	"fives",
	"sixes",
	"pair",
	"three_of_a_kind",
	"four_of_a_kind",
	"double_pair",
	"full_house",
	"small_straight",
	"large_straight",
	"yahtzee",
}

func (c Category) Valid() bool {
	return c >= Ones && c <= Yahtzee
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory looks a category up by its String name, ignoring case.
func ParseCategory(name string) (Category, error) {
	idx := utils.FindIndex(categoryNames, strings.ToLower(strings.TrimSpace(name)))
	if idx < 0 {
		return 0, fmt.Errorf("%w: unknown name %q", ErrInvalidCategory, name)
	}
	return Category(idx), nil
}

// Categories returns every category in index order.
func Categories() []Category {
	all := make([]Category, NumCategories)
	for i := range all {
		all[i] = Category(i)
	}
	return all
}
