// Package main prints generated dungeons, for checking seeds and layouts
// without playing.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"

	"github.com/gookit/color"

	"github.com/samdwyer/rubycrawl/internal/world"
)

var tileStyles = map[world.Tile]color.Style{
	world.TileWall:     {color.FgDarkGray},
	world.TileFloor:    {color.FgGray},
	world.TileOpening:  {color.FgCyan, color.OpBold},
	world.TileTreasure: {color.FgRed, color.OpBold},
	world.TileMonster:  {color.FgMagenta, color.OpBold},
}

func main() {
	seed := flag.Int64("seed", 1, "first seed to generate")
	count := flag.Int("count", 1, "number of consecutive seeds to print")
	layout := flag.String("layout", "", "validate and print an ASCII layout file instead of generating")
	plainOut := flag.Bool("plain", false, "disable colour")
	flag.Parse()

	if *plainOut {
		color.Disable()
	}

	if *layout != "" {
		d, err := readLayout(*layout)
		if err != nil {
			log.Fatalf("Invalid layout: %v", err)
		}
		printDungeon(os.Stdout, "layout "+*layout, d)
		return
	}

	ctx := context.Background()
	for i := 0; i < *count; i++ {
		s := *seed + int64(i)
		d := world.NewDungeon(rand.New(rand.NewSource(s)))
		if err := d.Generate(ctx); err != nil {
			log.Fatalf("Seed %d: %v", s, err)
		}
		printDungeon(os.Stdout, fmt.Sprintf("seed %d", s), d)
	}
}

func readLayout(path string) (*world.Dungeon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimRight(scanner.Text(), " \t\r"); line != "" {
			rows = append(rows, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return world.ParseLayout(rows)
}

func printDungeon(w io.Writer, title string, d *world.Dungeon) {
	ox, oy := d.Opening()
	fmt.Fprintf(w, "%s  opening (%d, %d)  monsters %d  open rooms %d\n",
		color.OpBold.Sprint(title), ox, oy, d.MonsterCount(), len(d.OpenRooms()))
	fmt.Fprintln(w, colorize(d.String()))
	fmt.Fprintln(w)
}

// colorize styles each glyph of a dungeon dump.
func colorize(dump string) string {
	var sb strings.Builder
	for _, r := range dump {
		if style, ok := tileStyles[world.Tile(r)]; ok {
			sb.WriteString(style.Sprint(string(r)))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
