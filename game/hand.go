package game

import "fmt"

// Hand holds the faces of the dice, each in [1, NumFaces].
type Hand [NumDice]int

// counts returns the number of dice showing each face, indexed by face value.
func (h Hand) counts() [NumFaces + 1]int {
	var c [NumFaces + 1]int
	for _, face := range h {
		c[face]++
	}
	return c
}

func (h Hand) validate() error {
	for i, face := range h {
		if face < 1 || face > NumFaces {
			return fmt.Errorf("%w: die %d shows %d", ErrInvalidHand, i, face)
		}
	}
	return nil
}

func rollDie(r Roller) int {
	return r.Intn(NumFaces) + 1
}

func rollDice(r Roller) Hand {
	var h Hand
	for i := range h {
		h[i] = rollDie(r)
	}
	return h
}
