package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/rubycrawl/internal/logger"
	"github.com/samdwyer/rubycrawl/internal/telemetry"
)

// Turn plays one dungeon turn: reveal the surroundings, resolve the current
// room's monster, treasure and opening in that order, then move. The opening
// is ignored on the session's first turn.
func (g *Game) Turn(ctx context.Context) error {
	if err := g.Init(ctx); err != nil {
		return err
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.turn")
	defer span.End()

	firstTurn := g.turns == 0
	g.turns++

	x, y := g.player.Position()
	if err := g.dungeon.DiscoverAdjacentRooms(x, y); err != nil {
		return err
	}
	g.presenter.ShowMap(g.dungeon, g.player)

	room, err := g.dungeon.Room(x, y)
	if err != nil {
		return err
	}
	span.SetAttributes(
		attribute.Int("turn", g.turns),
		attribute.Int("player.x", x),
		attribute.Int("player.y", y),
		attribute.Int("player.health", g.player.Health()),
		attribute.Bool("room.monster", room.HasMonster()),
		attribute.Bool("room.treasure", room.HasTreasure()),
		attribute.Bool("room.opening", room.IsOpening()),
	)

	if room.HasMonster() {
		won, err := g.runEncounter(ctx, x, y)
		if err != nil {
			return err
		}
		if !won {
			g.transition(StateSlain)
			return nil
		}
	}

	if room.HasTreasure() {
		if err := g.runTreasure(ctx, x, y); err != nil {
			return err
		}
	}

	if room.IsOpening() && !firstTurn {
		left, err := g.runOpening(ctx)
		if err != nil {
			return err
		}
		if left {
			return nil
		}
	}

	return g.move(ctx)
}

// runTreasure offers the treasure. Taking it does not end the turn.
func (g *Game) runTreasure(ctx context.Context, x, y int) error {
	treasure := g.items.Treasure.Label()
	choice, err := g.choose(ctx, treasurePrompt(treasure), []string{takeOption(treasure), optionLeaveIt}, nil)
	if err != nil {
		return err
	}

	if choice != 0 {
		return g.say(ctx, leaveTreasureMessage(treasure))
	}

	g.player.TakeTreasure(treasure)
	if err := g.dungeon.ClearTreasure(x, y); err != nil {
		return err
	}
	logger.Info("Treasure taken", "x", x, "y", y, "turn", g.turns)
	if err := g.say(ctx, pocketMessage(treasure)); err != nil {
		return err
	}
	g.presenter.ShowMap(g.dungeon, g.player)
	return nil
}

// runOpening offers to leave the dungeon and reports whether the player left.
func (g *Game) runOpening(ctx context.Context) (bool, error) {
	choice, err := g.choose(ctx, promptOpening, []string{optionLeave, optionStay}, nil)
	if err != nil {
		return false, err
	}

	if choice != 0 {
		return false, g.say(ctx, msgStay)
	}

	if g.player.HasTreasure() {
		g.transition(StateSuccess)
		return true, g.say(ctx, successMessage(g.items.Treasure.Label()))
	}
	g.transition(StateEscape)
	return true, g.say(ctx, msgEscape)
}

// move reads directions until one leads to an open room. A room with no way
// out ends the session as if the player were slain.
func (g *Game) move(ctx context.Context) error {
	x, y := g.player.Position()
	if len(g.dungeon.ValidMoves(x, y)) == 0 {
		logger.Warning("Player trapped", "x", x, "y", y)
		g.transition(StateSlain)
		return g.say(ctx, msgTrapped)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		dir, err := g.presenter.AwaitDirection(ctx)
		if err != nil {
			return err
		}
		if nx, ny, ok := g.dungeon.Step(x, y, dir); ok {
			g.player.MoveTo(nx, ny)
			return nil
		}
		logger.Debug("Blocked move", "direction", dir.String(), "x", x, "y", y)
	}
}
