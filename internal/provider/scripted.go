package provider

import (
	"errors"
	"fmt"

	"tarot/pkg/deck"
	"tarot/pkg/tarot"
)

// ErrScriptExhausted is an error when a scripted provider is asked more questions than it has answers
var ErrScriptExhausted = errors.New("no scripted answer left")

// Scripted replays a fixed list of answers, in the order the questions are asked
type Scripted struct {
	answers []int
	slams   []bool
}

// NewScripted returns a scripted provider. Slam announces are read from slams
// and default to false once they run out.
func NewScripted(answers []int, slams ...bool) *Scripted {
	return &Scripted{
		answers: answers,
		slams:   slams,
	}
}

// Remaining returns the number of answers not used yet
func (s *Scripted) Remaining() int {
	return len(s.answers)
}

func (s *Scripted) next(what string) (int, error) {
	if len(s.answers) == 0 {
		return 0, fmt.Errorf("%s: %w", what, ErrScriptExhausted)
	}

	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

// ChooseContract returns the next answer
func (s *Scripted) ChooseContract(v tarot.View, choices []tarot.Contract) (int, error) {
	return s.next("contract")
}

// AnnounceSlam returns the next slam answer
func (s *Scripted) AnnounceSlam(v tarot.View) (bool, error) {
	if len(s.slams) == 0 {
		return false, nil
	}

	slam := s.slams[0]
	s.slams = s.slams[1:]
	return slam, nil
}

// CallCard returns the next answer
func (s *Scripted) CallCard(v tarot.View, choices deck.Hand) (int, error) {
	return s.next("call")
}

// Discard returns the next answer
func (s *Scripted) Discard(v tarot.View, choices deck.Hand, remaining int) (int, error) {
	return s.next("discard")
}

// DeclareHandle returns the next answer
func (s *Scripted) DeclareHandle(v tarot.View, choices []tarot.Handle) (int, error) {
	return s.next("handle")
}

// HideTrump returns the next answer
func (s *Scripted) HideTrump(v tarot.View, choices deck.Hand, remaining int) (int, error) {
	return s.next("hidden trump")
}

// PlayCard returns the next answer
func (s *Scripted) PlayCard(v tarot.View, choices deck.Hand) (int, error) {
	return s.next("card")
}
