package game

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/zyedidia/generic/mapset"

	"catan-engine/internal/board"
)

// TradeOffer is an exchange with the bank: GiveAmount of Give for one
// Receive.
type TradeOffer struct {
	Give       board.Resource `json:"give"`
	GiveAmount int            `json:"giveAmount"`
	Receive    board.Resource `json:"receive"`
}

func (o TradeOffer) String() string {
	return fmt.Sprintf("%d %s for 1 %s", o.GiveAmount, o.Give, o.Receive)
}

// Trade rates
const (
	RateHarbor  = 2
	RateGeneric = 3
	RateBank    = 4
)

// PossibleTrades returns the bank trades the player can make right now.
// A resource with a matching 2:1 harbor is only ever offered at 2:1, even
// when the player holds too few to use it. Other resources go at 3:1 with a
// generic harbor and 4:1 without.
func (p *Player) PossibleTrades() []TradeOffer {
	offers := mapset.New[TradeOffer]()
	special := mapset.New[board.Resource]()
	generic := false

	p.harbors.Each(func(h board.Harbor) {
		if h.Generic() {
			generic = true
			return
		}
		special.Put(h.Resource)
	})

	special.Each(func(give board.Resource) {
		if p.Hand.Get(give) < RateHarbor {
			return
		}
		addOffers(offers, give, RateHarbor)
	})

	rate := RateBank
	if generic {
		rate = RateGeneric
	}
	for _, give := range board.AllResources() {
		if special.Has(give) || p.Hand.Get(give) < rate {
			continue
		}
		addOffers(offers, give, rate)
	}

	out := make([]TradeOffer, 0, offers.Size())
	offers.Each(func(o TradeOffer) {
		out = append(out, o)
	})
	slices.SortFunc(out, func(a, b TradeOffer) int {
		if n := cmp.Compare(a.Give, b.Give); n != 0 {
			return n
		}
		return cmp.Compare(a.Receive, b.Receive)
	})
	return out
}

func addOffers(offers mapset.Set[TradeOffer], give board.Resource, amount int) {
	for _, receive := range board.AllResources() {
		if receive == give {
			continue
		}
		offers.Put(TradeOffer{Give: give, GiveAmount: amount, Receive: receive})
	}
}

// TradeWithBank executes offer for the current player. The offer must be one
// of the player's PossibleTrades.
func (g *GameState) TradeWithBank(playerID string, offer TradeOffer) error {
	player, err := g.actingPlayer(playerID)
	if err != nil {
		return err
	}

	if !slices.Contains(player.PossibleTrades(), offer) {
		return fmt.Errorf("%w: %s", ErrTradeUnavailable, offer)
	}

	if err := player.RemoveResources(Hand{offer.Give: offer.GiveAmount}); err != nil {
		return err
	}
	player.AddResources(Hand{offer.Receive: 1})

	log.Debug().
		Str("player", player.Name).
		Stringer("offer", offer).
		Msg("bank trade")
	return nil
}
