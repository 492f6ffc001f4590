package game

import "yahtzee/utils"

// ScoreSheet records which categories have been scored this game.
type ScoreSheet [NumCategories]bool

func (s ScoreSheet) Used(c Category) bool {
	return s[c]
}

// Full reports whether every category has been scored.
func (s ScoreSheet) Full() bool {
	for _, used := range s {
		if !used {
			return false
		}
	}
	return true
}

// Unused returns the categories still open, in index order.
func (s ScoreSheet) Unused() []Category {
	return utils.Filter(Categories(), func(c Category) bool { return !s[c] })
}
