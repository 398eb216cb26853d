package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/rubycrawl/internal/combat"
	"github.com/samdwyer/rubycrawl/internal/config"
	"github.com/samdwyer/rubycrawl/internal/dice"
	"github.com/samdwyer/rubycrawl/internal/entity"
	"github.com/samdwyer/rubycrawl/internal/gamedata"
	"github.com/samdwyer/rubycrawl/internal/logger"
	"github.com/samdwyer/rubycrawl/internal/narrative"
	"github.com/samdwyer/rubycrawl/internal/telemetry"
	"github.com/samdwyer/rubycrawl/internal/world"
)

// Game holds the entire session state.
type Game struct {
	cfg       Config
	presenter Presenter
	narrative NarrativeLoader

	rng      *rand.Rand
	resolver *combat.Resolver
	roster   *gamedata.Roster
	items    *gamedata.ItemsFile

	dungeon *world.Dungeon
	player  *entity.Player
	state   State
	turns   int
	ready   bool
}

// New creates a session. The dungeon is built on the first call to Init or Run.
// narrative may be nil, in which case no story text is shown.
func New(cfg Config, presenter Presenter, narrative NarrativeLoader) (*Game, error) {
	if presenter == nil {
		return nil, errors.New("game: presenter is required")
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.SessionID == "" {
		cfg.SessionID = uuid.NewString()
	}
	if cfg.PlayerName == "" {
		cfg.PlayerName = DefaultConfig().PlayerName
	}

	roster := cfg.Roster
	if roster == nil {
		var err error
		if roster, err = gamedata.LoadRoster(); err != nil {
			return nil, fmt.Errorf("failed to load monsters: %w", err)
		}
	}
	items := cfg.Items
	if items == nil {
		var err error
		if items, err = gamedata.LoadItems(); err != nil {
			return nil, fmt.Errorf("failed to load items: %w", err)
		}
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller(rng)
	}

	return &Game{
		cfg:       cfg,
		presenter: presenter,
		narrative: narrative,
		rng:       rng,
		resolver:  combat.NewResolver(roller).WithFallbackWeapon(items.FallbackWeapon.Label()),
		roster:    roster,
		items:     items,
		player:    entity.NewPlayer(cfg.PlayerName),
		state:     StateExposition,
	}, nil
}

// Init builds the dungeon and places the player on the opening. It is safe to
// call more than once.
func (g *Game) Init(ctx context.Context) error {
	if g.ready {
		return nil
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	g.dungeon = g.cfg.Dungeon
	if g.dungeon == nil {
		g.dungeon = world.NewDungeon(g.rng)
		if err := g.dungeon.Generate(ctx); err != nil {
			return fmt.Errorf("failed to generate dungeon: %w", err)
		}
	}

	ox, oy := g.dungeon.Opening()
	if !world.InBounds(ox, oy) {
		return fmt.Errorf("dungeon has no opening: %w", world.ErrOutOfBounds)
	}
	g.player.MoveTo(ox, oy)
	g.ready = true

	span.SetAttributes(
		attribute.String("session.id", g.cfg.SessionID),
		attribute.Int64("seed", g.cfg.Seed),
		attribute.Int("player.start_x", ox),
		attribute.Int("player.start_y", oy),
		attribute.Int("dungeon.monsters", g.dungeon.MonsterCount()),
	)
	logger.Info("Session started",
		"session", g.cfg.SessionID,
		"seed", g.cfg.Seed,
		"player", g.player.Name,
		"start_x", ox,
		"start_y", oy)
	return nil
}

// Run plays the whole session: exposition, dungeon, ending. It returns the
// final state. Presenter errors such as ErrQuit end the session early and are
// returned unchanged.
func (g *Game) Run(ctx context.Context) (State, error) {
	if err := g.Init(ctx); err != nil {
		return g.state, err
	}

	if g.state == StateExposition {
		if err := g.RunExposition(ctx); err != nil {
			return g.state, err
		}
	}
	if g.state == StateDungeon {
		if err := g.RunDungeon(ctx); err != nil {
			return g.state, err
		}
	}
	if err := g.RunEnding(ctx); err != nil {
		return g.state, err
	}
	return g.state, nil
}

// RunExposition shows the introduction, lets the player pick starter items and
// moves to StateDungeon.
func (g *Game) RunExposition(ctx context.Context) error {
	if err := g.Init(ctx); err != nil {
		return err
	}
	g.state = StateExposition

	if g.cfg.AskTextSpeed {
		if err := g.chooseTextSpeed(ctx); err != nil {
			return err
		}
	}

	if err := g.showNarrative(ctx, narrative.Introduction); err != nil {
		return err
	}

	offered := g.items.StarterLabels()
	for i := 0; i < g.cfg.StarterItemPicks && len(offered) > 0; i++ {
		idx, err := g.choose(ctx, starterPrompt(len(offered)), offered, nil)
		if err != nil {
			return err
		}
		g.player.AddItem(offered[idx])
		logger.Debug("Starter item picked", "item", offered[idx])
		offered = slices.Delete(slices.Clone(offered), idx, idx+1)
	}

	if err := g.showNarrative(ctx, narrative.CallToAction); err != nil {
		return err
	}

	g.transition(StateDungeon)
	return nil
}

// chooseTextSpeed lets the player pick how fast text is revealed.
func (g *Game) chooseTextSpeed(ctx context.Context) error {
	idx, err := g.choose(ctx, promptSpeed, speedOptions, nil)
	if err != nil {
		return err
	}
	speed := config.Speeds[idx]
	g.presenter.SetWordDelay(speed.WordDelay())
	logger.Info("Text speed selected", "speed", string(speed))
	return g.say(ctx, speedMessage(idx))
}

// RunDungeon plays turns until a terminal state is reached.
func (g *Game) RunDungeon(ctx context.Context) error {
	if err := g.Init(ctx); err != nil {
		return err
	}
	g.state = StateDungeon

	for g.state == StateDungeon {
		if err := g.Turn(ctx); err != nil {
			return err
		}
	}
	return nil
}

// RunEnding shows the story text for the terminal state.
func (g *Game) RunEnding(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.ending")
	defer span.End()
	span.SetAttributes(
		attribute.String("state", g.state.String()),
		attribute.Int("turns", g.turns),
		attribute.Int("player.health", g.player.Health()),
		attribute.Bool("player.has_treasure", g.player.HasTreasure()),
	)

	var id string
	switch g.state {
	case StateSuccess:
		id = narrative.Success
	case StateSlain:
		id = narrative.Slain
	case StateEscape:
		id = narrative.Escape
	default:
		return fmt.Errorf("no ending for state %s", g.state)
	}
	return g.showNarrative(ctx, id)
}

// State returns the current session state.
func (g *Game) State() State {
	return g.state
}

// Player returns the player character.
func (g *Game) Player() *entity.Player {
	return g.player
}

// Dungeon returns the maze, or nil before Init.
func (g *Game) Dungeon() *world.Dungeon {
	return g.dungeon
}

// SessionID returns the id attached to this session's logs and traces.
func (g *Game) SessionID() string {
	return g.cfg.SessionID
}

// Seed returns the seed the session was built from.
func (g *Game) Seed() int64 {
	return g.cfg.Seed
}

// transition moves to a new state and logs it.
func (g *Game) transition(to State) {
	logger.Info("State change", "from", g.state.String(), "to", to.String(), "turn", g.turns)
	g.state = to
}

// choose asks the presenter until it returns an enabled, in-range index.
func (g *Game) choose(ctx context.Context, prompt string, options []string, disabled []int) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		idx, err := g.presenter.Choose(ctx, prompt, options, disabled)
		if err != nil {
			return 0, err
		}
		if idx >= 0 && idx < len(options) && !slices.Contains(disabled, idx) {
			return idx, nil
		}
		logger.Debug("Rejected menu choice", "index", idx, "options", len(options))
	}
}

// say shows each line as its own text block.
func (g *Game) say(ctx context.Context, lines ...string) error {
	for _, line := range lines {
		if err := g.presenter.ShowText(ctx, line); err != nil {
			return err
		}
	}
	return nil
}

// showNarrative shows a story resource. A missing resource is logged and skipped.
func (g *Game) showNarrative(ctx context.Context, id string) error {
	if g.narrative == nil {
		return nil
	}
	paragraphs, err := g.narrative.Paragraphs(id)
	if err != nil {
		logger.Warning("Narrative unavailable", "id", id, "error", err)
		return nil
	}
	return g.say(ctx, paragraphs...)
}
