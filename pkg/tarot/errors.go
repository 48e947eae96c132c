package tarot

import (
	"errors"
	"fmt"
)

// ErrPetitSec happens when a hand holds the Petit as its only trump. The deal is void and must be redealt.
var ErrPetitSec = errors.New("a hand contains only one trump: the petit")

// ErrEveryonePassed happens when no player bids. The deal is void and must be redealt.
var ErrEveryonePassed = errors.New("everyone passed")

// ErrNoTaker is an error when the taker is needed before the bidding is over
var ErrNoTaker = errors.New("no taker or bidding not finished")

// ErrNoContract is an error when a trick is played without a contract
var ErrNoContract = errors.New("no contract")

// ErrWrongPhase is an error when a deal operation is called out of order
var ErrWrongPhase = errors.New("operation not allowed in this phase")

// ErrDealNotFinished is an error when scoring is attempted while cards remain in hands
var ErrDealNotFinished = errors.New("deal is not finished")

// ErrTooManyRedeals is an error when every deal attempt is void
var ErrTooManyRedeals = errors.New("too many void deals in a row")

// ErrInvalidCase is an error on a trick state that cannot happen
var ErrInvalidCase = errors.New("invalid case")

// PlayerCountError is an error on the number of players in the game
type PlayerCountError int

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected 3-5 players, got %d", int(p))
}

// InvalidModeError is an error when a mode cannot be parsed
type InvalidModeError string

func (i InvalidModeError) Error() string {
	return fmt.Sprintf("invalid mode: %q", string(i))
}

// InvalidScoresError is an error when the score deltas of a deal do not add up to zero
type InvalidScoresError float64

func (i InvalidScoresError) Error() string {
	return fmt.Sprintf("sum of scores is not zero: %v", float64(i))
}

// NoRoleError is an error when a player has no role when one is required
type NoRoleError string

func (n NoRoleError) Error() string {
	return fmt.Sprintf("no role for player: %s", string(n))
}

// NoTeamError is an error when a player has no team when one is required
type NoTeamError string

func (n NoTeamError) Error() string {
	return fmt.Sprintf("player %s should belong to a team", string(n))
}

// InvalidDeckError is an error when the cards of a deal are not exactly the 78 cards of the deck
type InvalidDeckError struct {
	Count      int
	Duplicates int
	Where      string
}

func (i InvalidDeckError) Error() string {
	return fmt.Sprintf("invalid deck %s: %d cards, %d duplicates", i.Where, i.Count, i.Duplicates)
}

// ImpossibleCallError happens when a taker holds every king, queen, knight and jack and has no card to call
type ImpossibleCallError struct{}

func (ImpossibleCallError) Error() string {
	return "impossible case, taker cannot have all kings, queens, knights and jacks"
}

// IllegalChoiceError is an error when a decision provider returns a value outside the legal set
type IllegalChoiceError struct {
	Player string
	What   string
	Choice int
	Max    int
}

func (i IllegalChoiceError) Error() string {
	return fmt.Sprintf("player %s made an illegal %s choice: %d (expected 0-%d)", i.Player, i.What, i.Choice, i.Max-1)
}

// IsVoidDeal returns true if the error only means the deal must be redealt
func IsVoidDeal(err error) bool {
	return errors.Is(err, ErrPetitSec) || errors.Is(err, ErrEveryonePassed)
}

// IsFatal returns true if the error is a logic error of the engine rather than
// a void deal, a configuration problem or a rare but legal game state.
// Callers should not retry those.
func IsFatal(err error) bool {
	if err == nil || IsVoidDeal(err) {
		return false
	}

	var pce PlayerCountError
	var ime InvalidModeError
	var ice ImpossibleCallError
	return !errors.As(err, &pce) && !errors.As(err, &ime) && !errors.As(err, &ice)
}
