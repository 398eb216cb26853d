package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samdwyer/rubycrawl/internal/config"
	mockdice "github.com/samdwyer/rubycrawl/internal/dice/mock"
	mockgame "github.com/samdwyer/rubycrawl/internal/game/mock"
	"github.com/samdwyer/rubycrawl/internal/gamedata"
	"github.com/samdwyer/rubycrawl/internal/markup"
	"github.com/samdwyer/rubycrawl/internal/narrative"
	"github.com/samdwyer/rubycrawl/internal/world"
)

const (
	hitRoll  = 10
	missRoll = 100
)

// layout pads the given top rows with solid wall rows.
func layout(top ...string) []string {
	rows := append([]string{}, top...)
	for len(rows) < world.Size {
		rows = append(rows, "##########")
	}
	return rows
}

type testSession struct {
	game      *Game
	presenter *mockgame.MockPresenter
	roller    *mockdice.ScriptedRoller
	texts     []string
}

// newSession builds an initialised game on a fixed layout with scripted dice.
// ShowMap is always allowed and ShowText calls are recorded in texts.
func newSession(t *testing.T, rows []string, rolls ...int) *testSession {
	t.Helper()
	ctrl := gomock.NewController(t)

	d, err := world.ParseLayout(rows)
	require.NoError(t, err)

	s := &testSession{
		presenter: mockgame.NewMockPresenter(ctrl),
		roller:    mockdice.NewScriptedRoller(rolls...),
	}
	s.presenter.EXPECT().ShowMap(gomock.Any(), gomock.Any()).AnyTimes()
	s.presenter.EXPECT().ShowText(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, text string) error {
			s.texts = append(s.texts, markup.Strip(text))
			return nil
		}).AnyTimes()

	s.game, err = New(Config{
		Seed:       1,
		PlayerName: "Isolde",
		Dungeon:    d,
		Roller:     s.roller,
		Roster: gamedata.NewRoster([]gamedata.MonsterDef{
			{ID: "goblin", Name: "Goblin", Color: "#55ff55"},
		}),
	}, s.presenter, nil)
	require.NoError(t, err)
	require.NoError(t, s.game.Init(context.Background()))
	return s
}

// pastFirstTurn makes the opening event reachable.
func (s *testSession) pastFirstTurn() {
	s.game.turns = 1
	s.game.state = StateDungeon
}

func (s *testSession) expectDirections(dirs ...world.Direction) {
	calls := make([]any, len(dirs))
	for i, dir := range dirs {
		calls[i] = s.presenter.EXPECT().AwaitDirection(gomock.Any()).Return(dir, nil)
	}
	gomock.InOrder(calls...)
}

func (s *testSession) expectChoices(prompt any, choices ...int) {
	calls := make([]any, len(choices))
	for i, c := range choices {
		calls[i] = s.presenter.EXPECT().Choose(gomock.Any(), prompt, gomock.Any(), gomock.Any()).Return(c, nil)
	}
	gomock.InOrder(calls...)
}

func TestNewRequiresPresenter(t *testing.T) {
	_, err := New(DefaultConfig(), nil, nil)
	assert.Error(t, err)
}

func TestNewDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	g, err := New(Config{}, mockgame.NewMockPresenter(ctrl), nil)
	require.NoError(t, err)

	assert.NotZero(t, g.Seed(), "a zero seed is replaced")
	assert.NotEmpty(t, g.SessionID())
	assert.Equal(t, "Isolde", g.Player().Name)
	assert.Equal(t, StateExposition, g.State())
	assert.Nil(t, g.Dungeon(), "the dungeon is built by Init")
}

func TestInitPlacesPlayerOnOpening(t *testing.T) {
	ctrl := gomock.NewController(t)
	g, err := New(Config{Seed: 77}, mockgame.NewMockPresenter(ctrl), nil)
	require.NoError(t, err)
	require.NoError(t, g.Init(context.Background()))
	require.NoError(t, g.Init(context.Background()), "Init is idempotent")

	ox, oy := g.Dungeon().Opening()
	px, py := g.Player().Position()
	assert.Equal(t, ox, px)
	assert.Equal(t, oy, py)
}

func TestInitRejectsUnplacedDungeon(t *testing.T) {
	ctrl := gomock.NewController(t)
	g, err := New(Config{Seed: 1, Dungeon: world.NewDungeon(nil)}, mockgame.NewMockPresenter(ctrl), nil)
	require.NoError(t, err)

	err = g.Init(context.Background())
	assert.ErrorIs(t, err, world.ErrOutOfBounds)
}

func TestSeededSessionsMatch(t *testing.T) {
	build := func() *Game {
		ctrl := gomock.NewController(t)
		g, err := New(Config{Seed: 2024}, mockgame.NewMockPresenter(ctrl), nil)
		require.NoError(t, err)
		require.NoError(t, g.Init(context.Background()))
		return g
	}

	a, b := build(), build()
	assert.Equal(t, a.Dungeon().String(), b.Dungeon().String())
	ax, ay := a.Player().Position()
	bx, by := b.Player().Position()
	assert.Equal(t, ax, bx)
	assert.Equal(t, ay, by)
}

func TestFirstTurnSkipsOpening(t *testing.T) {
	s := newSession(t, layout("O.########"))
	s.expectDirections(world.Right)

	require.NoError(t, s.game.Turn(context.Background()))

	x, y := s.game.Player().Position()
	assert.Equal(t, 1, x)
	assert.Equal(t, 0, y)
	assert.Equal(t, StateExposition, s.game.State(), "Turn alone does not change state")
}

func TestOpeningEvent(t *testing.T) {
	tests := []struct {
		name        string
		hasTreasure bool
		choice      int
		wantState   State
		wantText    string
	}{
		{"leave without treasure", false, 0, StateEscape, msgEscape},
		{"leave with treasure", true, 0, StateSuccess, "You leave the dungeon with the Enchanted Ruby in hand!"},
		{"stay", false, 1, StateDungeon, msgStay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(t, layout("O.########"))
			s.pastFirstTurn()
			if tt.hasTreasure {
				s.game.Player().TakeTreasure(s.game.items.Treasure.Label())
			}
			s.expectChoices(promptOpening, tt.choice)
			if tt.wantState == StateDungeon {
				s.expectDirections(world.Right)
			}

			require.NoError(t, s.game.Turn(context.Background()))
			assert.Equal(t, tt.wantState, s.game.State())
			assert.Equal(t, []string{tt.wantText}, s.texts)
		})
	}
}

func TestTreasureEvent(t *testing.T) {
	tests := []struct {
		name     string
		choice   int
		wantTook bool
		wantText string
	}{
		{"take", 0, true, "You carefully pocket the Enchanted Ruby."},
		{"leave", 1, false, "You decide to leave the Enchanted Ruby where it lies."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(t, layout("OT########"))
			s.game.Player().MoveTo(1, 0)
			s.pastFirstTurn()
			s.presenter.EXPECT().
				Choose(gomock.Any(), gomock.Any(), []string{"Take the [#ff5555]Enchanted Ruby[-]", optionLeaveIt}, gomock.Any()).
				Return(tt.choice, nil)
			s.expectDirections(world.Left)

			require.NoError(t, s.game.Turn(context.Background()))

			player := s.game.Player()
			assert.Equal(t, tt.wantTook, player.HasTreasure())
			room, err := s.game.Dungeon().Room(1, 0)
			require.NoError(t, err)
			assert.Equal(t, !tt.wantTook, room.HasTreasure())
			assert.Equal(t, []string{tt.wantText}, s.texts)
			if tt.wantTook {
				assert.Equal(t, []string{"[#ff5555]Enchanted Ruby[-]"}, player.Inventory())
			}

			x, y := player.Position()
			assert.Equal(t, 0, x, "taking the treasure does not end the turn")
			assert.Equal(t, 0, y)
		})
	}
}

func TestInvalidChoiceIsReprompted(t *testing.T) {
	s := newSession(t, layout("O.########"))
	s.pastFirstTurn()
	s.expectChoices(promptOpening, 5, -1, 2, 1)
	s.expectDirections(world.Right)

	require.NoError(t, s.game.Turn(context.Background()))
	assert.Equal(t, []string{msgStay}, s.texts)
}

func TestDisabledChoiceIsReprompted(t *testing.T) {
	s := newSession(t, layout("O.########"))
	gomock.InOrder(
		s.presenter.EXPECT().Choose(gomock.Any(), "pick", gomock.Any(), []int{0}).Return(0, nil),
		s.presenter.EXPECT().Choose(gomock.Any(), "pick", gomock.Any(), []int{0}).Return(1, nil),
	)

	idx, err := s.game.choose(context.Background(), "pick", []string{"a", "b"}, []int{0})
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestBlockedDirectionIsReprompted(t *testing.T) {
	s := newSession(t, layout("O.########"))
	s.expectDirections(world.Up, world.Left, world.Down, world.Direction(9), world.Right)

	require.NoError(t, s.game.Turn(context.Background()))

	x, y := s.game.Player().Position()
	assert.Equal(t, 1, x)
	assert.Equal(t, 0, y)
}

func TestTrappedIsSlain(t *testing.T) {
	s := newSession(t, layout("O#########"))

	require.NoError(t, s.game.Turn(context.Background()))

	assert.Equal(t, StateSlain, s.game.State())
	assert.Equal(t, []string{msgTrapped}, s.texts)
}

func TestEncounterWon(t *testing.T) {
	// Spawn: goblin, health 5+2-1 = 6, attack 4.
	// Fight: hit for 5, goblin hits for 4, hit for 5.
	s := newSession(t, layout("OM########"), 1, 2, 4, hitRoll, 5, hitRoll, hitRoll, 5)
	s.game.Player().MoveTo(1, 0)
	s.pastFirstTurn()
	s.expectChoices(promptAttack, 0, 0)
	s.expectDirections(world.Left)

	require.NoError(t, s.game.Turn(context.Background()))

	assert.Equal(t, StateDungeon, s.game.State())
	assert.Equal(t, 6, s.game.Player().Health())
	room, err := s.game.Dungeon().Room(1, 0)
	require.NoError(t, err)
	assert.False(t, room.HasMonster())
	assert.Zero(t, s.game.Dungeon().MonsterCount())
	assert.Zero(t, s.roller.Remaining())

	require.NotEmpty(t, s.texts)
	assert.Equal(t, "A Goblin blocks your path. It appears scrawny (6) and lively (4)!", s.texts[0])
	assert.Contains(t, s.texts, "Isolde strikes with the bare hands scoring a solid strike (5)!")
	assert.Contains(t, s.texts, "The Goblin hits Isolde for 4 damage!")
	assert.Contains(t, s.texts, "The Goblin is slain!")
	assert.Equal(t, "Isolde finished the encounter looking weak (6).", s.texts[len(s.texts)-1])
}

func TestEncounterLost(t *testing.T) {
	// Spawn: goblin, health 15, attack 6. Both player swings miss, both goblin swings land.
	s := newSession(t, layout("OM########"), 1, 11, 6, missRoll, hitRoll, missRoll, hitRoll)
	s.game.Player().MoveTo(1, 0)
	s.pastFirstTurn()
	s.expectChoices(promptAttack, 1, 1)

	require.NoError(t, s.game.Turn(context.Background()))

	assert.Equal(t, StateSlain, s.game.State())
	assert.Equal(t, -2, s.game.Player().Health())
	room, err := s.game.Dungeon().Room(1, 0)
	require.NoError(t, err)
	assert.True(t, room.HasMonster(), "the monster keeps its room")
	assert.Equal(t, "The Goblin finished the encounter looking strong (15). It laughs as Isolde falls!", s.texts[len(s.texts)-1])
}

func TestQuitPropagates(t *testing.T) {
	s := newSession(t, layout("O.########"))
	s.presenter.EXPECT().AwaitDirection(gomock.Any()).Return(world.Up, ErrQuit)

	err := s.game.RunDungeon(context.Background())
	assert.ErrorIs(t, err, ErrQuit)
	assert.Equal(t, StateDungeon, s.game.State())
}

func TestTurnHonoursCancellation(t *testing.T) {
	s := newSession(t, layout("O.########"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.game.Turn(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunExposition(t *testing.T) {
	ctrl := gomock.NewController(t)
	presenter := mockgame.NewMockPresenter(ctrl)
	loader := mockgame.NewMockNarrativeLoader(ctrl)

	g, err := New(Config{Seed: 3, PlayerName: "Isolde", StarterItemPicks: 3}, presenter, loader)
	require.NoError(t, err)
	starters := g.items.StarterLabels()
	n := len(starters)

	var shown []string
	presenter.EXPECT().ShowText(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, text string) error {
			shown = append(shown, text)
			return nil
		}).AnyTimes()
	gomock.InOrder(
		loader.EXPECT().Paragraphs(narrative.Introduction).Return([]string{"Once upon a time.", "In a valley."}, nil),
		presenter.EXPECT().Choose(gomock.Any(), starterPrompt(n), starters, gomock.Any()).Return(1, nil),
		presenter.EXPECT().Choose(gomock.Any(), starterPrompt(n-1), gomock.Any(), gomock.Any()).Return(0, nil),
		presenter.EXPECT().Choose(gomock.Any(), starterPrompt(n-2), gomock.Any(), gomock.Any()).Return(0, nil),
		loader.EXPECT().Paragraphs(narrative.CallToAction).Return([]string{"Go."}, nil),
	)

	require.NoError(t, g.RunExposition(context.Background()))

	assert.Equal(t, StateDungeon, g.State())
	assert.Equal(t, []string{starters[1], starters[0], starters[2]}, g.Player().Inventory())
	assert.Equal(t, []string{"Once upon a time.", "In a valley.", "Go."}, shown)
	assert.Len(t, g.items.StarterLabels(), n, "picking does not consume the item table")
}

func TestRunExpositionAsksTextSpeed(t *testing.T) {
	tests := []struct {
		name   string
		choice int
		delay  time.Duration
	}{
		{"slow", 0, config.SpeedSlow.WordDelay()},
		{"normal", 1, config.SpeedNormal.WordDelay()},
		{"fast", 2, config.SpeedFast.WordDelay()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			presenter := mockgame.NewMockPresenter(ctrl)

			g, err := New(Config{Seed: 3, AskTextSpeed: true}, presenter, nil)
			require.NoError(t, err)

			gomock.InOrder(
				presenter.EXPECT().Choose(gomock.Any(), promptSpeed, speedOptions, gomock.Nil()).Return(tt.choice, nil),
				presenter.EXPECT().SetWordDelay(tt.delay),
				presenter.EXPECT().ShowText(gomock.Any(), speedMessage(tt.choice)).Return(nil),
			)

			require.NoError(t, g.RunExposition(context.Background()))
			assert.Equal(t, StateDungeon, g.State())
		})
	}
}

func TestTextSpeedNotAskedByDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	presenter := mockgame.NewMockPresenter(ctrl)
	presenter.EXPECT().SetWordDelay(gomock.Any()).Times(0)

	g, err := New(Config{Seed: 3}, presenter, nil)
	require.NoError(t, err)

	require.NoError(t, g.RunExposition(context.Background()))
	assert.Equal(t, StateDungeon, g.State())
}

func TestMissingNarrativeIsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	presenter := mockgame.NewMockPresenter(ctrl)
	loader := mockgame.NewMockNarrativeLoader(ctrl)
	loader.EXPECT().Paragraphs(gomock.Any()).Return(nil, narrative.ErrNotFound).Times(2)

	g, err := New(Config{Seed: 3, StarterItemPicks: 0}, presenter, loader)
	require.NoError(t, err)

	require.NoError(t, g.RunExposition(context.Background()))
	assert.Equal(t, StateDungeon, g.State())
}

func TestRunEndingRequiresTerminalState(t *testing.T) {
	s := newSession(t, layout("O.########"))
	assert.Error(t, s.game.RunEnding(context.Background()))
}

func TestRunFullSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	presenter := mockgame.NewMockPresenter(ctrl)
	loader := mockgame.NewMockNarrativeLoader(ctrl)

	d, err := world.ParseLayout(layout("O.T#######"))
	require.NoError(t, err)
	g, err := New(Config{Seed: 5, Dungeon: d, StarterItemPicks: 0}, presenter, loader)
	require.NoError(t, err)

	presenter.EXPECT().ShowMap(gomock.Any(), gomock.Any()).AnyTimes()
	presenter.EXPECT().ShowText(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	loader.EXPECT().Paragraphs(narrative.Introduction).Return(nil, nil)
	loader.EXPECT().Paragraphs(narrative.CallToAction).Return(nil, nil)
	loader.EXPECT().Paragraphs(narrative.Success).Return([]string{"The end."}, nil)

	gomock.InOrder(
		presenter.EXPECT().AwaitDirection(gomock.Any()).Return(world.Right, nil),
		presenter.EXPECT().AwaitDirection(gomock.Any()).Return(world.Right, nil),
		presenter.EXPECT().Choose(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil),
		presenter.EXPECT().AwaitDirection(gomock.Any()).Return(world.Left, nil),
		presenter.EXPECT().AwaitDirection(gomock.Any()).Return(world.Left, nil),
		presenter.EXPECT().Choose(gomock.Any(), promptOpening, gomock.Any(), gomock.Any()).Return(0, nil),
	)

	state, err := g.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateSuccess, state)
	assert.True(t, g.Player().HasTreasure())
	assert.Equal(t, 5, g.turns)
}

func TestRunStopsOnPresenterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	presenter := mockgame.NewMockPresenter(ctrl)
	boom := errors.New("terminal gone")
	presenter.EXPECT().Choose(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(0, boom)

	g, err := New(Config{Seed: 9, StarterItemPicks: 1}, presenter, nil)
	require.NoError(t, err)

	state, err := g.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, StateExposition, state)
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		want     string
		terminal bool
	}{
		{StateExposition, "exposition", false},
		{StateDungeon, "dungeon", false},
		{StateSuccess, "success", true},
		{StateSlain, "slain", true},
		{StateEscape, "escape", true},
		{State(42), "unknown", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.state.String())
		assert.Equal(t, tt.terminal, tt.state.IsTerminal(), tt.want)
	}
}
