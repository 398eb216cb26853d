package combat

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/rubycrawl/internal/dice"
	"github.com/samdwyer/rubycrawl/internal/entity"
	"github.com/samdwyer/rubycrawl/internal/gamedata"
	"github.com/samdwyer/rubycrawl/internal/logger"
	"github.com/samdwyer/rubycrawl/internal/markup"
	"github.com/samdwyer/rubycrawl/internal/telemetry"
)

// Roll tables.
const (
	PlayerHitChance  = 90
	MonsterHitChance = 75

	MinMonsterHealth = 5
	MaxMonsterHealth = 15
	MinMonsterAttack = 1
	MaxMonsterAttack = 6
)

// ModeSelector asks the caller which attack mode to use this round.
type ModeSelector func(ctx context.Context, enc *Encounter) (Mode, error)

// Reporter receives each round's outcome as soon as it is resolved.
type Reporter func(ctx context.Context, result RoundResult) error

// Resolver calculates and applies attacks. All randomness comes from its
// roller, so a scripted roller yields a reproducible fight.
type Resolver struct {
	roller         dice.Roller
	fallbackWeapon string
}

// NewResolver creates a resolver drawing from roller.
func NewResolver(roller dice.Roller) *Resolver {
	return &Resolver{
		roller:         roller,
		fallbackWeapon: markup.Wrap(markup.Yellow, "bare hands"),
	}
}

// WithFallbackWeapon sets the weapon named when the inventory is empty.
func (r *Resolver) WithFallbackWeapon(label string) *Resolver {
	r.fallbackWeapon = label
	return r
}

// Spawn draws a monster from roster with fresh health and attack and returns
// the encounter in PhaseStart.
func (r *Resolver) Spawn(roster *gamedata.Roster) (*Encounter, error) {
	if roster == nil || roster.Count() == 0 {
		return nil, fmt.Errorf("combat: empty monster roster")
	}
	def := roster.At(r.roller.Roll(1, roster.Count()) - 1)
	if def == nil {
		return nil, fmt.Errorf("combat: roster draw out of range")
	}
	health := dice.Between(r.roller, MinMonsterHealth, MaxMonsterHealth)
	attack := dice.Between(r.roller, MinMonsterAttack, MaxMonsterAttack)
	return NewEncounter(entity.NewMonster(def, health, attack)), nil
}

// Damage rolls the damage for a successful player hit in the given mode.
func (r *Resolver) Damage(mode Mode) int {
	if mode == Frenzy {
		return r.roller.Roll(1, 12)
	}
	return r.roller.Roll(2, 4)
}

// PlayerAttack resolves the player's turn. The encounter moves to
// PhaseMonsterTurn, or PhaseWon if the monster's health dropped to zero.
func (r *Resolver) PlayerAttack(enc *Encounter, player *entity.Player, mode Mode) (Strike, error) {
	if enc.Phase != PhasePlayerTurn {
		return Strike{}, fmt.Errorf("player attack in %s: %w", enc.Phase, ErrWrongPhase)
	}
	enc.Rounds++

	strike := Strike{Hit: dice.Check(r.roller, PlayerHitChance)}
	if strike.Hit {
		strike.Damage = r.Damage(mode)
		strike.Weapon = r.weapon(player)
		enc.Monster.TakeDamage(strike.Damage)
	}
	strike.Health = enc.Monster.Health

	if enc.Monster.IsAlive() {
		enc.Phase = PhaseMonsterTurn
	} else {
		enc.Phase = PhaseWon
	}
	return strike, nil
}

// MonsterAttack resolves the monster's turn. The encounter moves back to
// PhasePlayerTurn, or PhaseLost if the player's health dropped to zero.
func (r *Resolver) MonsterAttack(enc *Encounter, player *entity.Player) (Strike, error) {
	if enc.Phase != PhaseMonsterTurn {
		return Strike{}, fmt.Errorf("monster attack in %s: %w", enc.Phase, ErrWrongPhase)
	}

	strike := Strike{Hit: dice.Check(r.roller, MonsterHitChance)}
	if strike.Hit {
		strike.Damage = enc.Monster.Attack
		player.TakeDamage(strike.Damage)
	}
	strike.Health = player.Health()

	if player.IsAlive() {
		enc.Phase = PhasePlayerTurn
	} else {
		enc.Phase = PhaseLost
	}
	return strike, nil
}

// Round runs one player turn followed by the monster's reply if it survived.
func (r *Resolver) Round(enc *Encounter, player *entity.Player, mode Mode) (RoundResult, error) {
	result := RoundResult{Mode: mode}

	strike, err := r.PlayerAttack(enc, player, mode)
	if err != nil {
		return result, err
	}
	result.Player = strike

	if enc.Phase == PhaseMonsterTurn {
		reply, err := r.MonsterAttack(enc, player)
		if err != nil {
			return result, err
		}
		result.Monster = &reply
	}

	result.Phase = enc.Phase
	return result, nil
}

// Fight runs rounds until the encounter is won or lost and returns the final
// phase. selectMode picks the mode each round. report may be nil.
func (r *Resolver) Fight(ctx context.Context, enc *Encounter, player *entity.Player, selectMode ModeSelector, report Reporter) (Phase, error) {
	tracer := telemetry.Tracer("combat")
	ctx, span := tracer.Start(ctx, "encounter")
	defer span.End()
	span.SetAttributes(
		attribute.String("monster", enc.Monster.Name),
		attribute.Int("monster.health", enc.Monster.Health),
		attribute.Int("monster.attack", enc.Monster.Attack),
		attribute.Int("player.health", player.Health()),
	)

	if enc.Phase == PhaseStart {
		if err := enc.Begin(); err != nil {
			return enc.Phase, err
		}
	}

	for !enc.Phase.IsOver() {
		if err := ctx.Err(); err != nil {
			return enc.Phase, err
		}

		mode, err := selectMode(ctx, enc)
		if err != nil {
			return enc.Phase, err
		}

		result, err := r.Round(enc, player, mode)
		if err != nil {
			return enc.Phase, err
		}
		logger.Debug("Combat round",
			"round", enc.Rounds,
			"mode", mode.String(),
			"player_hit", result.Player.Hit,
			"damage", result.Player.Damage,
			"monster_health", enc.Monster.Health,
			"player_health", player.Health())

		if report != nil {
			if err := report(ctx, result); err != nil {
				return enc.Phase, err
			}
		}
	}

	span.SetAttributes(
		attribute.Int("rounds", enc.Rounds),
		attribute.String("outcome", enc.Phase.String()),
	)
	logger.Info("Encounter finished",
		"monster", enc.Monster.Name,
		"outcome", enc.Phase.String(),
		"rounds", enc.Rounds)
	return enc.Phase, nil
}

// weapon names the item swung on a hit, drawn from the inventory.
func (r *Resolver) weapon(player *entity.Player) string {
	items := player.Inventory()
	switch len(items) {
	case 0:
		return r.fallbackWeapon
	case 1:
		return items[0]
	default:
		return items[r.roller.Roll(1, len(items))-1]
	}
}
