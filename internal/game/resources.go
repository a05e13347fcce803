package game

import (
	"fmt"
	"math/rand"
	"strings"

	"catan-engine/internal/board"
)

// Hand is a count of resource cards. The same type is used for a player's
// cards, build costs and amounts handed out by the bank.
type Hand map[board.Resource]int

// NewHand creates an empty hand.
func NewHand() Hand {
	return make(Hand)
}

// Get returns the amount of a resource.
func (h Hand) Get(r board.Resource) int {
	return h[r]
}

// Has returns true if the hand holds at least every amount in cost.
func (h Hand) Has(cost Hand) bool {
	for r, n := range cost {
		if h[r] < n {
			return false
		}
	}
	return true
}

// Add adds every amount in other to the hand.
func (h Hand) Add(other Hand) {
	for r, n := range other {
		if n == 0 {
			continue
		}
		h[r] += n
	}
}

// Remove takes cost out of the hand. Nothing is removed if the hand cannot
// cover all of it.
func (h Hand) Remove(cost Hand) error {
	if !h.Has(cost) {
		return fmt.Errorf("%w: need %s, have %s", ErrInsufficientResources, cost, h)
	}
	for r, n := range cost {
		h[r] -= n
		if h[r] == 0 {
			delete(h, r)
		}
	}
	return nil
}

// Total returns the total number of cards.
func (h Hand) Total() int {
	total := 0
	for _, n := range h {
		total += n
	}
	return total
}

// Clone creates a copy of the hand.
func (h Hand) Clone() Hand {
	out := make(Hand, len(h))
	for r, n := range h {
		out[r] = n
	}
	return out
}

// Random draws one card weighted by how many of each resource the hand
// holds. It returns false for an empty hand. The card is not removed.
func (h Hand) Random(rng *rand.Rand) (board.Resource, bool) {
	total := h.Total()
	if total == 0 {
		return board.ResourceNone, false
	}
	pick := rng.Intn(total)
	for _, r := range board.AllResources() {
		if pick < h[r] {
			return r, true
		}
		pick -= h[r]
	}
	return board.ResourceNone, false
}

// String lists the non-zero amounts in resource order.
func (h Hand) String() string {
	var parts []string
	for _, r := range board.AllResources() {
		if h[r] > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", h[r], r))
		}
	}
	if len(parts) == 0 {
		return "nothing"
	}
	return strings.Join(parts, ", ")
}
