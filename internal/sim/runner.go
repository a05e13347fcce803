// Package sim plays whole games with computer players. Every choice is drawn
// from seeded sources, so a seed and a board always replay the same game.
package sim

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"catan-engine/internal/board"
	"catan-engine/internal/game"
)

// ErrNoMove is returned when a player has nowhere legal to place a piece.
var ErrNoMove = errors.New("no legal move")

// maxActionsPerTurn bounds the build and trade loop of one turn.
const maxActionsPerTurn = 30

var playerNames = []string{"Alice", "Bob", "Carol", "Dave", "Erin", "Frank"}

// Options controls a simulated game.
type Options struct {
	Players   int
	MaxRounds int
	Seed      int64
	Settings  game.Settings

	// OnEvent, if set, is called for every notable action.
	OnEvent func(Event)
}

// Event types
const (
	EventSetup      = "setup"
	EventRoundStart = "round_start"
	EventRoll       = "roll"
	EventRobber     = "robber"
	EventCard       = "card"
	EventBuild      = "build"
	EventTrade      = "trade"
	EventGameEnd    = "game_end"
)

// Event describes one action of a run. Player is nil for round and game
// events.
type Event struct {
	Round   int
	Phase   game.Phase
	Player  *game.Player
	Type    string
	Message string
}

// Score is one player's standing at the end of a run.
type Score struct {
	Player *game.Player
	Points int
}

// Result summarises a finished run. Winner is nil when the round limit was
// reached first.
type Result struct {
	Rounds int
	Turns  int
	Winner *game.Player
	Scores []Score
}

// Runner drives a game between computer players.
type Runner struct {
	game      *game.GameState
	rng       *rand.Rand
	maxRounds int
	turns     int
	onEvent   func(Event)
}

// New seats opts.Players computer players at b.
func New(b *board.Board, opts Options) (*Runner, error) {
	if opts.Players < game.MinPlayers || opts.Players > game.MaxPlayers {
		return nil, fmt.Errorf("need %d-%d players, got %d", game.MinPlayers, game.MaxPlayers, opts.Players)
	}
	if opts.MaxRounds <= 0 {
		return nil, fmt.Errorf("max rounds must be positive, got %d", opts.MaxRounds)
	}

	colors := game.AllColors()
	players := make([]*game.Player, opts.Players)
	for i := range players {
		players[i] = game.NewPlayer(playerNames[i], colors[i])
	}

	// Dice and deck draw from one source and player choices from another
	g, err := game.NewGame(b, players, opts.Settings, rand.New(rand.NewSource(opts.Seed)))
	if err != nil {
		return nil, err
	}

	return &Runner{
		game:      g,
		rng:       rand.New(rand.NewSource(opts.Seed + 1)),
		maxRounds: opts.MaxRounds,
		onEvent:   opts.OnEvent,
	}, nil
}

func (r *Runner) emit(p *game.Player, typ, format string, args ...any) {
	if r.onEvent == nil {
		return
	}
	r.onEvent(Event{
		Round:   r.game.Round,
		Phase:   r.game.Phase,
		Player:  p,
		Type:    typ,
		Message: fmt.Sprintf(format, args...),
	})
}

// Game returns the game being played.
func (r *Runner) Game() *game.GameState {
	return r.game
}

// Run plays setup and then whole turns until someone wins, the round limit
// passes or ctx is cancelled. A cancelled run returns the partial result
// along with ctx's error.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	if err := r.setup(); err != nil {
		return nil, fmt.Errorf("setup: %w", err)
	}

	round := 0
	for !r.game.IsGameOver() && r.game.Round <= r.maxRounds {
		if err := ctx.Err(); err != nil {
			return r.result(), err
		}
		if r.game.Round != round {
			round = r.game.Round
			log.Info().
				Int("round", round).
				Msgf("%s round", humanize.Ordinal(round))
			r.emit(nil, EventRoundStart, "%s round", humanize.Ordinal(round))
		}
		if err := r.takeTurn(); err != nil {
			return nil, fmt.Errorf("round %d: %w", r.game.Round, err)
		}
	}

	res := r.result()
	if res.Winner != nil {
		r.emit(res.Winner, EventGameEnd, "%s wins with %d points", res.Winner.Name, r.game.VictoryPoints(res.Winner.ID))
	} else {
		r.emit(nil, EventGameEnd, "no winner after %d rounds", res.Rounds)
	}
	return res, nil
}

func (r *Runner) result() *Result {
	res := &Result{
		Rounds: min(r.game.Round, r.maxRounds),
		Turns:  r.turns,
		Winner: r.game.Winner(),
	}
	for _, id := range r.game.PlayerOrder {
		res.Scores = append(res.Scores, Score{
			Player: r.game.Players[id],
			Points: r.game.VictoryPoints(id),
		})
	}
	return res
}

// setup places every starting settlement on the best open spot and a road
// next to it.
func (r *Runner) setup() error {
	b := r.game.Board
	for _, id := range r.game.SetupOrder() {
		p := r.game.Players[id]
		spot, ok := bestIntersection(b, board.CoordsOf(b.ValidSettlementCoords(id, false)))
		if !ok {
			return fmt.Errorf("%w: settlement for %s", ErrNoMove, id)
		}
		if err := r.game.PlaceStartingSettlement(id, spot); err != nil {
			return err
		}

		roads := board.PathKeysOf(b.ValidRoadCoords(id, true, &spot))
		if len(roads) == 0 {
			return fmt.Errorf("%w: road for %s", ErrNoMove, id)
		}
		road := roads[r.rng.Intn(len(roads))]
		if err := r.game.PlaceStartingRoad(id, road); err != nil {
			return err
		}
		r.emit(p, EventSetup, "settlement at %s, road %s", spot, road)
	}
	return nil
}

// takeTurn plays one player's turn: an optional knight, the roll, cards,
// builds and trades.
func (r *Runner) takeTurn() error {
	p := r.game.GetCurrentPlayer()
	r.turns++

	if r.knightFirst(p) {
		if err := r.play(p, game.CardKnight); err != nil {
			return err
		}
		// Largest army can end the game before the robber moves
		if r.game.IsGameOver() {
			return nil
		}
		if err := r.robber(p); err != nil {
			return err
		}
	}

	roll, err := r.game.RollDice(p.ID)
	if err != nil {
		return err
	}
	r.emit(p, EventRoll, "rolled %d", roll)
	if roll == game.RobberRoll {
		if err := r.robber(p); err != nil {
			return err
		}
	}

	if err := r.playCards(p); err != nil {
		return err
	}
	if err := r.buildAndTrade(p); err != nil {
		return err
	}
	if r.game.IsGameOver() {
		return nil
	}
	return r.game.EndTurn(p.ID)
}

// knightFirst returns true if the robber sits on one of the player's tiles
// and a knight is in hand.
func (r *Runner) knightFirst(p *game.Player) bool {
	if p.Cards[game.CardKnight] == 0 {
		return false
	}
	for _, id := range r.game.Board.PlayersOnTile(r.game.Board.Robber()) {
		if id == p.ID {
			return true
		}
	}
	return false
}

func (r *Runner) robber(p *game.Player) error {
	to, ok := pickRobberTile(r.game.Board, p.ID)
	if !ok {
		return fmt.Errorf("%w: robber tile", ErrNoMove)
	}
	victims, err := r.game.MoveRobber(p.ID, to)
	if err != nil {
		return err
	}
	victim := pickVictim(r.game, victims)
	if victim == "" {
		r.emit(p, EventRobber, "robber to %s", to)
		return nil
	}
	if _, err := r.game.StealResource(p.ID, victim); err != nil {
		return err
	}
	r.emit(p, EventRobber, "robber to %s, robbed %s", to, r.game.Players[victim].Name)
	return nil
}

// playCards plays the action cards in hand after rolling.
func (r *Runner) playCards(p *game.Player) error {
	g := r.game
	if p.Cards[game.CardRoadBuilding] > 0 && g.Board.ValidRoadCoords(p.ID, true, nil).Size() > 0 {
		if err := r.play(p, game.CardRoadBuilding); err != nil {
			return err
		}
	}
	if p.Cards[game.CardYearOfPlenty] > 0 {
		picks := plentyPicks(p, game.GetBuildCost(r.target(p)))
		if err := r.play(p, game.CardYearOfPlenty, picks...); err != nil {
			return err
		}
	}
	if p.Cards[game.CardMonopoly] > 0 {
		if err := r.play(p, game.CardMonopoly, mostHeldResource(g, p.ID)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) play(p *game.Player, card game.DevelopmentCard, picks ...board.Resource) error {
	if err := r.game.PlayDevelopmentCard(p.ID, card, picks...); err != nil {
		return err
	}
	if len(picks) > 0 {
		r.emit(p, EventCard, "played %s for %v", card, picks)
	} else {
		r.emit(p, EventCard, "played %s", card)
	}
	return nil
}

// target returns what the player is saving for.
func (r *Runner) target(p *game.Player) game.BuildType {
	b := r.game.Board
	switch {
	case b.ValidSettlementCoords(p.ID, true).Size() > 0:
		return game.BuildSettlement
	case b.ValidCityCoords(p.ID).Size() > 0:
		return game.BuildCity
	default:
		return game.BuildRoad
	}
}

// buildAndTrade builds whatever the hand pays for, trading toward the target
// when nothing can be built.
func (r *Runner) buildAndTrade(p *game.Player) error {
	for i := 0; i < maxActionsPerTurn && !r.game.IsGameOver(); i++ {
		built, err := r.buildOnce(p)
		if err != nil {
			return err
		}
		if built != "" {
			r.emit(p, EventBuild, "built %s", built)
			continue
		}

		cost := game.GetBuildCost(r.target(p))
		offer, ok := pickTrade(p, cost, missing(p, cost))
		if !ok {
			return nil
		}
		if err := r.game.TradeWithBank(p.ID, offer); err != nil {
			return err
		}
		r.emit(p, EventTrade, "traded %s", offer)
	}
	return nil
}

// buildOnce makes the single most valuable build the player can afford and
// describes it, or returns "" if nothing was built.
func (r *Runner) buildOnce(p *game.Player) (string, error) {
	g := r.game
	b := g.Board

	if p.CanAfford(game.BuildCity) {
		if c, ok := bestIntersection(b, board.CoordsOf(b.ValidCityCoords(p.ID))); ok {
			return fmt.Sprintf("city at %s", c), g.UpgradeToCity(p.ID, c, true)
		}
	}

	spots := board.CoordsOf(b.ValidSettlementCoords(p.ID, true))
	if p.CanAfford(game.BuildSettlement) {
		if c, ok := bestIntersection(b, spots); ok {
			return fmt.Sprintf("settlement at %s", c), g.BuildSettlement(p.ID, c, true, true)
		}
	}

	// Save brick and lumber for a settlement when one is open
	if p.FreeRoads > 0 || (len(spots) == 0 && p.CanAfford(game.BuildRoad)) {
		if k, ok := pickRoad(b, p.ID, board.PathKeysOf(b.ValidRoadCoords(p.ID, true, nil))); ok {
			return fmt.Sprintf("road %s", k), g.BuildRoad(p.ID, k, true, true)
		}
	}

	if p.CanAfford(game.BuildDevelopmentCard) && g.DeckSize() > 0 && r.target(p) != game.BuildCity {
		_, err := g.BuildDevelopmentCard(p.ID)
		return "a development card", err
	}

	return "", nil
}
