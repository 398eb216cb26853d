package game

import (
	"context"
	"fmt"

	"github.com/samdwyer/rubycrawl/internal/combat"
	"github.com/samdwyer/rubycrawl/internal/logger"
)

// runEncounter spawns a monster for the room at (x, y) and fights it to the
// end. It reports whether the player won. A won fight clears the room.
func (g *Game) runEncounter(ctx context.Context, x, y int) (bool, error) {
	enc, err := g.resolver.Spawn(g.roster)
	if err != nil {
		return false, err
	}
	monster := enc.Monster
	logger.Info("Encounter started",
		"monster", monster.Name,
		"health", monster.Health,
		"attack", monster.Attack,
		"x", x,
		"y", y)

	if err := g.say(ctx, encounterMessage(monster)); err != nil {
		return false, err
	}

	report := func(ctx context.Context, r combat.RoundResult) error {
		return g.say(ctx, roundMessages(g.player, monster, r)...)
	}

	phase, err := g.resolver.Fight(ctx, enc, g.player, g.selectMode, report)
	if err != nil {
		return false, err
	}

	switch phase {
	case combat.PhaseWon:
		if err := g.dungeon.ClearMonster(x, y); err != nil {
			return false, err
		}
		if err := g.say(ctx, victoryMessages(g.player, monster)...); err != nil {
			return false, err
		}
		g.presenter.ShowMap(g.dungeon, g.player)
		return true, nil
	case combat.PhaseLost:
		return false, g.say(ctx, defeatMessages(g.player, monster)...)
	default:
		return false, fmt.Errorf("encounter ended in %s", phase)
	}
}

// selectMode asks the player for this round's attack mode.
func (g *Game) selectMode(ctx context.Context, _ *combat.Encounter) (combat.Mode, error) {
	idx, err := g.choose(ctx, promptAttack, combat.ModeLabels(), nil)
	if err != nil {
		return combat.Calculated, err
	}
	return combat.Modes[idx], nil
}
