// Package score holds the session points counter shared by every hazard in
// a world and read by the HUD.
package score

// Score is owned by the world scene and handed to each hazard when it is
// created. All mutation happens on the game loop goroutine.
type Score struct {
	value int
}

func New() *Score {
	return &Score{}
}

// Add increases the score. There is no bounds checking.
func (s *Score) Add(amount int) {
	s.value += amount
}

// Current returns the score for display.
func (s *Score) Current() int {
	return s.value
}
