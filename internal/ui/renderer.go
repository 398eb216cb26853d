package ui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/samdwyer/rubycrawl/internal/entity"
	"github.com/samdwyer/rubycrawl/internal/gamedata"
	"github.com/samdwyer/rubycrawl/internal/markup"
	"github.com/samdwyer/rubycrawl/internal/world"
)

// Screen layout. Map cells are two columns wide so the grid looks square.
const (
	mapLeft   = 2
	mapTop    = 1
	cellWidth = 2
	statusRow = mapTop + world.Size + 1
	hintRow   = statusRow + 1
	textLeft  = 2
	textTop   = hintRow + 2
)

var (
	defaultStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle     = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	playerStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// DrawMap draws the discovered rooms and the player.
func (r *Renderer) DrawMap(d *world.Dungeon, p *entity.Player) {
	px, py := p.Position()
	for y := 0; y < world.Size; y++ {
		for x := 0; x < world.Size; x++ {
			room, err := d.Room(x, y)
			if err != nil {
				continue
			}
			glyph, style := cellGlyph(room)
			if x == px && y == py {
				glyph, style = p.Symbol, playerStyle
			}
			r.screen.SetContent(mapLeft+x*cellWidth, mapTop+y, glyph, nil, style)
			r.screen.SetContent(mapLeft+x*cellWidth+1, mapTop+y, ' ', nil, defaultStyle)
		}
	}
}

// cellGlyph returns the glyph and style for a room. Undiscovered rooms are blank.
func cellGlyph(room world.Room) (rune, tcell.Style) {
	if !room.IsDiscovered() {
		return ' ', defaultStyle
	}
	tile := room.Tile()
	return tile.Rune(), tileStyle(tile)
}

// tileStyle returns the appropriate style for a tile type.
func tileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TileFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case world.TileOpening:
		return tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	case world.TileTreasure:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case world.TileMonster:
		return tcell.StyleDefault.Foreground(tcell.ColorPurple).Bold(true)
	default:
		return defaultStyle
	}
}

// DrawStatus draws the player's name, health and inventory under the map.
func (r *Renderer) DrawStatus(p *entity.Player) {
	r.ClearRows(statusRow, statusRow)
	x := r.DrawText(mapLeft, statusRow, p.Name+"  Health ", defaultStyle)
	x = r.DrawText(x, statusRow, strconv.Itoa(p.Health()), healthStyle(p.Health()))
	items := p.Inventory()
	if len(items) == 0 {
		return
	}
	x = r.DrawText(x, statusRow, "  Items ", defaultStyle)
	for i, item := range items {
		if i > 0 {
			x = r.DrawText(x, statusRow, ", ", defaultStyle)
		}
		x = r.DrawMarkup(x, statusRow, item, defaultStyle)
	}
}

func healthStyle(health int) tcell.Style {
	switch {
	case health >= 8:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case health >= 5:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	}
}

// DrawText draws plain text and returns the column after it. Each grapheme
// cluster advances by its cell width.
func (r *Renderer) DrawText(x, y int, text string, style tcell.Style) int {
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		r.screen.SetContent(x, y, runes[0], runes[1:], style)
		x += g.Width()
	}
	return x
}

// DrawMarkup draws text with colour tags applied over base and returns the
// column after it.
func (r *Renderer) DrawMarkup(x, y int, text string, base tcell.Style) int {
	return r.drawSpans(x, y, markup.Parse(text), base)
}

// drawWord draws one laid-out word.
func (r *Renderer) drawWord(x, y int, w word, base tcell.Style) int {
	return r.drawSpans(x, y, w, base)
}

func (r *Renderer) drawSpans(x, y int, spans []markup.Span, base tcell.Style) int {
	for _, span := range spans {
		style := base
		if span.Color != "" {
			style = base.Foreground(gamedata.ColorOr(span.Color, tcell.ColorWhite))
		}
		x = r.DrawText(x, y, span.Text, style)
	}
	return x
}

// ClearRows blanks the full width of rows from..to inclusive.
func (r *Renderer) ClearRows(from, to int) {
	width, _ := r.screen.Size()
	for y := from; y <= to; y++ {
		for x := 0; x < width; x++ {
			r.screen.SetContent(x, y, ' ', nil, defaultStyle)
		}
	}
}
