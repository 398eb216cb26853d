package game

//go:generate mockgen -destination=mock/mock_collaborators.go -package=mockgame -source=collaborators.go

import (
	"context"
	"errors"
	"time"

	"github.com/samdwyer/rubycrawl/internal/entity"
	"github.com/samdwyer/rubycrawl/internal/world"
)

// ErrQuit is returned by a Presenter when the player aborts the session.
var ErrQuit = errors.New("game: quit")

// Presenter shows the game and collects the player's decisions. Text may
// contain colour markup.
type Presenter interface {
	// Choose shows prompt and options and returns the selected index.
	// Indices listed in disabled are shown but must not be selectable.
	Choose(ctx context.Context, prompt string, options []string, disabled []int) (int, error)

	// AwaitDirection blocks until the player picks a movement direction.
	AwaitDirection(ctx context.Context) (world.Direction, error)

	// ShowText shows one block of text and waits for acknowledgement.
	ShowText(ctx context.Context, text string) error

	// ShowMap draws the discovered part of the dungeon and the player.
	ShowMap(d *world.Dungeon, p *entity.Player)

	// SetWordDelay changes the pause between revealed words. Zero shows text
	// at once.
	SetWordDelay(d time.Duration)
}

// NarrativeLoader provides the story paragraphs for a resource id.
type NarrativeLoader interface {
	Paragraphs(id string) ([]string, error)
}
