package provider

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"tarot/internal/render"
	"tarot/pkg/deck"
	"tarot/pkg/tarot"
)

// ErrNoInput is an error when the input is closed before a valid answer is read
var ErrNoInput = errors.New("no more input")

// Interactive asks a human through a terminal. Invalid answers are asked again.
type Interactive struct {
	in    *bufio.Reader
	out   io.Writer
	width int
}

// NewInteractive returns an interactive provider reading answers from in.
// width is used to draw the hand, 0 draws it on one line.
func NewInteractive(in io.Reader, out io.Writer, width int) *Interactive {
	return &Interactive{
		in:    bufio.NewReader(in),
		out:   out,
		width: width,
	}
}

func (i *Interactive) show(v tarot.View) {
	pterm.Fprintln(i.out, pterm.LightCyan(v.Player)+" ("+v.Mode.String()+")")
	if i.width > 0 {
		pterm.Fprintln(i.out, render.FullHand(v.Hand, i.width))
	} else {
		pterm.Fprintln(i.out, "Hand: "+render.Hand(v.Hand))
	}

	if len(v.Trick) > 0 {
		pterm.Fprintln(i.out, "Trick: "+render.Trick(v.Trick, v.Names))
	}
}

// ask prints the options and reads lines until a valid index is given
func (i *Interactive) ask(question string, options []string) (int, error) {
	return i.read(func() {
		pterm.Fprintln(i.out, question)
		for n, option := range options {
			pterm.Fprintln(i.out, pterm.Sprintf("  %s %s", pterm.Gray(strconv.Itoa(n)+":"), option))
		}
	}, len(options), nil)
}

// askCard prints the cards on one line. The answer is either an index or a
// card such as 14h or 21t.
func (i *Interactive) askCard(question string, choices deck.Hand) (int, error) {
	return i.read(func() {
		pterm.Fprintln(i.out, question)
		pterm.Fprintln(i.out, "  "+render.Choices(choices))
	}, len(choices), func(answer string) (int, bool) {
		card, err := deck.CardFromString(answer)
		if err != nil {
			return 0, false
		}

		n := choices.IndexOf(card)
		return n, n >= 0
	})
}

// read prompts until the answer is an index below count or is accepted by parse
func (i *Interactive) read(prompt func(), count int, parse func(string) (int, bool)) (int, error) {
	for {
		prompt()

		line, err := i.in.ReadString('\n')
		answer := strings.TrimSpace(line)
		if answer != "" {
			n, convErr := strconv.Atoi(answer)
			if convErr == nil && n >= 0 && n < count {
				return n, nil
			}

			if parse != nil {
				if n, ok := parse(answer); ok {
					return n, nil
				}
			}
		}

		if errors.Is(err, io.EOF) {
			return 0, ErrNoInput
		}

		if err != nil {
			return 0, err
		}

		pterm.Fprintln(i.out, pterm.LightRed(fmt.Sprintf("invalid choice %q, expected a number from 0 to %d", answer, count-1)))
	}
}

// ChooseContract asks for a contract
func (i *Interactive) ChooseContract(v tarot.View, choices []tarot.Contract) (int, error) {
	i.show(v)
	for _, bid := range v.Bids {
		pterm.Fprintln(i.out, pterm.Sprintf("%s: %s", bid.Player, bid.Contract))
	}

	options := make([]string, len(choices))
	for n, c := range choices {
		options[n] = c.String()
	}

	return i.ask("Your bid?", options)
}

// AnnounceSlam asks whether to announce a slam
func (i *Interactive) AnnounceSlam(v tarot.View) (bool, error) {
	n, err := i.ask("Announce a slam?", []string{"no", "yes"})
	return n == 1, err
}

// CallCard asks which card to call
func (i *Interactive) CallCard(v tarot.View, choices deck.Hand) (int, error) {
	i.show(v)
	return i.askCard("Which card do you call?", choices)
}

// Discard asks for a card to put aside
func (i *Interactive) Discard(v tarot.View, choices deck.Hand, remaining int) (int, error) {
	i.show(v)
	return i.askCard(fmt.Sprintf("Discard a card (%d left)", remaining), choices)
}

// DeclareHandle asks for a handle
func (i *Interactive) DeclareHandle(v tarot.View, choices []tarot.Handle) (int, error) {
	i.show(v)
	options := make([]string, len(choices))
	for n, h := range choices {
		options[n] = h.String()
	}

	return i.ask("Declare a handle?", options)
}

// HideTrump asks for a trump to leave out of the handle
func (i *Interactive) HideTrump(v tarot.View, choices deck.Hand, remaining int) (int, error) {
	return i.askCard(fmt.Sprintf("Trump to keep hidden (%d left)", remaining), choices)
}

// PlayCard asks for the card to play
func (i *Interactive) PlayCard(v tarot.View, choices deck.Hand) (int, error) {
	i.show(v)
	if v.Callee != nil {
		pterm.Fprintln(i.out, "Called: "+render.Card(*v.Callee))
	}

	return i.askCard(fmt.Sprintf("Trick %d, your card?", v.TrickNumber), choices)
}
