package maps

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"

	"catan-engine/internal/board"
)

//go:embed data/*.json
var layoutFiles embed.FS

// ErrInvalidLayout is returned when a layout file is malformed.
var ErrInvalidLayout = errors.New("invalid layout")

// Registry holds all loaded layouts.
var Registry = make(map[string]*Layout)

// LoadAll loads all embedded layouts.
func LoadAll() error {
	entries, err := layoutFiles.ReadDir("data")
	if err != nil {
		return fmt.Errorf("failed to read layout directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		l, err := Load(entry.Name())
		if err != nil {
			return fmt.Errorf("failed to load layout %s: %w", entry.Name(), err)
		}

		Registry[l.ID] = l
	}

	return nil
}

// Load loads a single embedded layout by filename.
func Load(filename string) (*Layout, error) {
	data, err := layoutFiles.ReadFile(path.Join("data", filename))
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}
	return LoadFromJSON(data)
}

// LoadFromJSON loads a layout from JSON bytes.
func LoadFromJSON(data []byte) (*Layout, error) {
	var raw RawLayout
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse layout JSON: %w", err)
	}

	if err := validate(&raw); err != nil {
		return nil, err
	}

	return process(&raw)
}

// Get retrieves a layout from the registry by ID.
func Get(id string) *Layout {
	return Registry[id]
}

// Register adds a layout to the registry.
func Register(l *Layout) {
	if l != nil && l.ID != "" {
		Registry[l.ID] = l
	}
}

// LayoutInfo contains basic layout information for listing.
type LayoutInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	TileCount   int    `json:"tile_count"`
	HarborCount int    `json:"harbor_count"`
}

// List returns all registered layouts ordered by ID.
func List() []LayoutInfo {
	infos := make([]LayoutInfo, 0, len(Registry))
	for _, l := range Registry {
		infos = append(infos, LayoutInfo{
			ID:          l.ID,
			Name:        l.Name,
			TileCount:   len(l.Tiles),
			HarborCount: len(l.Harbors),
		})
	}
	slices.SortFunc(infos, func(a, b LayoutInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return infos
}

// validate checks the fields that do not need the board to be built.
func validate(raw *RawLayout) error {
	if raw.ID == "" {
		return fmt.Errorf("%w: layout ID is required", ErrInvalidLayout)
	}
	if raw.Name == "" {
		return fmt.Errorf("%w: layout name is required", ErrInvalidLayout)
	}
	if len(raw.Tiles) == 0 {
		return fmt.Errorf("%w: layout %s has no tiles", ErrInvalidLayout, raw.ID)
	}
	return nil
}

// process converts a raw layout and builds a board once so graph errors
// (stray harbors, bad tokens, missing desert) surface at load time.
func process(raw *RawLayout) (*Layout, error) {
	l := &Layout{
		ID:      raw.ID,
		Name:    raw.Name,
		Tiles:   make([]board.Tile, 0, len(raw.Tiles)),
		Harbors: make([]board.Harbor, 0, len(raw.Harbors)),
	}

	for i, rt := range raw.Tiles {
		terrain, ok := board.ParseHexType(rt.Terrain)
		if !ok {
			return nil, fmt.Errorf("%w: tile %d has unknown terrain %q", ErrInvalidLayout, i, rt.Terrain)
		}
		l.Tiles = append(l.Tiles, board.Tile{
			Coords: toCoords(rt.At),
			Type:   terrain,
			Token:  rt.Token,
		})
	}

	for i, rh := range raw.Harbors {
		res := board.ResourceNone
		if rh.Resource != "" {
			var ok bool
			res, ok = board.ParseResource(rh.Resource)
			if !ok {
				return nil, fmt.Errorf("%w: harbor %d has unknown resource %q", ErrInvalidLayout, i, rh.Resource)
			}
		}
		l.Harbors = append(l.Harbors, board.Harbor{
			Path:     board.NewPathKey(toCoords(rh.Path[0]), toCoords(rh.Path[1])),
			Resource: res,
		})
	}

	if raw.Robber != nil {
		c := toCoords(*raw.Robber)
		l.Robber = &c
	}

	if _, err := l.NewBoard(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidLayout, raw.ID, err)
	}

	return l, nil
}

// Raw converts a layout back to its JSON form.
func (l *Layout) Raw() RawLayout {
	raw := RawLayout{
		ID:      l.ID,
		Name:    l.Name,
		Tiles:   make([]RawTile, 0, len(l.Tiles)),
		Harbors: make([]RawHarbor, 0, len(l.Harbors)),
	}
	for _, t := range l.Tiles {
		raw.Tiles = append(raw.Tiles, RawTile{
			At:      fromCoords(t.Coords),
			Terrain: terrainName(t.Type),
			Token:   t.Token,
		})
	}
	for _, h := range l.Harbors {
		raw.Harbors = append(raw.Harbors, RawHarbor{
			Path:     [2][2]int{fromCoords(h.Path[0]), fromCoords(h.Path[1])},
			Resource: resourceName(h.Resource),
		})
	}
	if l.Robber != nil {
		r := fromCoords(*l.Robber)
		raw.Robber = &r
	}
	return raw
}
