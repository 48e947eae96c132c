package tarot

import (
	"time"

	"github.com/google/uuid"

	"tarot/pkg/deck"
)

// DealLog keeps track of everything that happened in a deal
type DealLog struct {
	UUID      string          `json:"uuid"`
	Number    int             `json:"number"`
	Seed      int64           `json:"seed"`
	DeckHash  string          `json:"deckHash"`
	Mode      Mode            `json:"mode"`
	Players   []string        `json:"players"`
	Dog       deck.Hand       `json:"dog"`
	Bids      []Bid           `json:"bids"`
	Contract  Contract        `json:"contract"`
	Taker     int             `json:"taker"`
	Callee    *deck.Card      `json:"callee,omitempty"`
	Tricks    []*DealLogTrick `json:"tricks"`
	Result    *Result         `json:"result,omitempty"`
	StartTime time.Time       `json:"startTime"`
	EndTime   time.Time       `json:"endTime"`
}

// DealLogTrick is an individual trick
type DealLogTrick struct {
	Number int    `json:"number"`
	Plays  []Play `json:"plays"`
	Winner int    `json:"winner"`
}

func newDealLog(d *Deal) *DealLog {
	players := make([]string, len(d.participants))
	for i, p := range d.participants {
		players[i] = p.name
	}

	return &DealLog{
		UUID:      uuid.New().String(),
		Number:    d.number,
		Seed:      d.seed,
		Mode:      d.mode,
		Players:   players,
		Bids:      make([]Bid, 0, len(players)),
		Taker:     -1,
		Tricks:    make([]*DealLogTrick, 0, d.mode.CardsPerPlayer()),
		StartTime: time.Now(),
	}
}

func (l *DealLog) addTrick(t *Trick, winner int) {
	l.Tricks = append(l.Tricks, &DealLogTrick{
		Number: t.Number,
		Plays:  append([]Play(nil), t.Plays...),
		Winner: winner,
	})
}

func (l *DealLog) end(result *Result) {
	l.Result = result
	l.EndTime = time.Now()
}

// Void returns true if the deal was never scored
func (l *DealLog) Void() bool {
	return l.Result == nil
}
