// Package render draws cards, tricks and scores for a terminal
package render

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"golang.org/x/term"

	"tarot/pkg/deck"
	"tarot/pkg/tarot"
)

// defaultWidth is used when the output is not a terminal
const defaultWidth = 80

// fullCardWidth is the width of a card drawn with FullRepr, separator included
const fullCardWidth = 10

var colors = map[string]pterm.Color{
	"red":    pterm.FgRed,
	"blue":   pterm.FgBlue,
	"yellow": pterm.FgYellow,
	"green":  pterm.FgGreen,
	"cyan":   pterm.FgCyan,
}

func paint(c deck.Card, s string) string {
	color, ok := colors[c.Color()]
	if !ok {
		return s
	}

	return color.Sprint(s)
}

// Card returns the short colored form of a card
func Card(c deck.Card) string {
	return paint(c, c.String())
}

// Hand returns the short colored form of every card
func Hand(h deck.Hand) string {
	cards := make([]string, len(h))
	for i, c := range h {
		cards[i] = Card(c)
	}

	return strings.Join(cards, " ")
}

// FullHand draws the cards side by side, wrapping to the width
func FullHand(h deck.Hand, width int) string {
	perLine := width / fullCardWidth
	if perLine < 1 {
		perLine = 1
	}

	blocks := make([]string, 0, len(h)/perLine+1)
	for start := 0; start < len(h); start += perLine {
		end := start + perLine
		if end > len(h) {
			end = len(h)
		}

		var lines []string
		for _, c := range h[start:end] {
			for i, line := range strings.Split(c.FullRepr(), "\n") {
				if i >= len(lines) {
					lines = append(lines, "")
				}
				lines[i] += paint(c, line) + " "
			}
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	return strings.Join(blocks, "\n")
}

// Choices numbers the cards, the number being the answer expected from the player
func Choices(h deck.Hand) string {
	choices := make([]string, len(h))
	for i, c := range h {
		choices[i] = fmt.Sprintf("%s %s", pterm.Gray(fmt.Sprintf("%d:", i)), Card(c))
	}

	return strings.Join(choices, "  ")
}

// Trick returns the cards of a trick with the name of the players
func Trick(plays []tarot.Play, names []string) string {
	cards := make([]string, len(plays))
	for i, play := range plays {
		name := fmt.Sprintf("seat %d", play.Seat)
		if play.Seat < len(names) {
			name = names[play.Seat]
		}
		cards[i] = fmt.Sprintf("%s %s", pterm.LightCyan(name), Card(play.Card))
	}

	return strings.Join(cards, ", ")
}

// Result returns a box describing the outcome of a deal
func Result(r *tarot.Result, names []string) string {
	outcome := pterm.LightGreen("won")
	if !r.Won() {
		outcome = pterm.LightRed("lost")
	}

	text := pterm.Sprintfln("%s %s a %s", pterm.LightCyan(names[r.Taker]), outcome, r.Contract)
	if r.Ally >= 0 {
		text += pterm.Sprintfln("Ally: %s", pterm.LightCyan(names[r.Ally]))
	}
	text += pterm.Sprintfln("Points: %v for %v needed (%d oudlers)", r.TakerPoints, r.Target, r.Oudlers)
	text += pterm.Sprintfln("Contract: %v, petit au bout: %v, handle: %v, slam: %v", r.ContractPoints, r.PetitAuBout, r.Handle, r.Slam)
	text += pterm.Sprintf("Total: %v x%v", r.Points, r.Ratio)

	return pterm.DefaultBox.WithTitle(pterm.LightYellow("|DEAL|")).WithTitleTopCenter().Sprint(text)
}

// Scores returns the score table of the players
func Scores(players []*tarot.Player) (string, error) {
	data := pterm.TableData{{"Player", "Score"}}
	for _, p := range players {
		data = append(data, []string{p.Name, fmt.Sprintf("%v", p.Score())})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

// Width returns the width of the terminal behind fd
func Width(fd int) int {
	if !term.IsTerminal(fd) {
		return defaultWidth
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultWidth
	}

	return width
}
