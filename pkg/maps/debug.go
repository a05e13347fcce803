package maps

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize/english"

	"catan-engine/internal/board"
)

// Debug returns a text dump of a board: tiles, harbors and every player's
// buildings. names maps player IDs to display names; unknown IDs print as-is.
func Debug(b *board.Board, names map[string]string) string {
	var sb strings.Builder

	tiles := b.Tiles()
	sb.WriteString(fmt.Sprintf("Board: %s, %s, %s\n",
		english.Plural(len(tiles), "tile", ""),
		english.Plural(len(b.IntersectionCoords()), "intersection", ""),
		english.Plural(len(b.PathKeys()), "path", "")))
	sb.WriteString(fmt.Sprintf("Robber: %s\n", b.Robber()))

	sb.WriteString("\nTiles:\n")
	for _, t := range tiles {
		token := "-"
		if t.Token > 0 {
			token = fmt.Sprintf("%d", t.Token)
		}
		sb.WriteString(fmt.Sprintf("  %-18s %-9s %2s\n", t.Coords, t.Type, token))
	}

	sb.WriteString("\nHarbors:\n")
	for _, h := range b.Harbors() {
		rate := "3:1 any"
		if !h.Generic() {
			rate = "2:1 " + h.Resource.String()
		}
		sb.WriteString(fmt.Sprintf("  %s  %s\n", h.Path, rate))
	}

	sb.WriteString("\nBuildings:\n")
	owners := ownersInOrder(b)
	if len(owners) == 0 {
		sb.WriteString("  (none)\n")
	}
	for _, id := range owners {
		settlements, cities := 0, 0
		for _, bld := range b.Buildings(id) {
			if bld.Type == board.BuildingCity {
				cities++
			} else {
				settlements++
			}
		}
		name := id
		if n, ok := names[id]; ok {
			name = n
		}
		sb.WriteString(fmt.Sprintf("  %s: %s, %s, %s (longest %d)\n",
			name,
			english.Plural(settlements, "settlement", ""),
			english.Plural(cities, "city", "cities"),
			english.Plural(len(b.Roads(id)), "road", ""),
			b.LongestRoad(id)))
	}

	return sb.String()
}

// ownersInOrder lists every player with something on the board, in the order
// their first piece appears.
func ownersInOrder(b *board.Board) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	for _, bld := range b.Buildings("") {
		add(bld.Owner)
	}
	for _, r := range b.Roads("") {
		add(r.Owner)
	}
	return out
}
