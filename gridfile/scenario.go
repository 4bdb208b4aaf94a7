package gridfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for scenario parsing.
var (
	// ErrUnknownFormat indicates an unsupported file extension or Format value.
	ErrUnknownFormat = errors.New("gridfile: unknown scenario format")
	// ErrBadCoordinate indicates a start/goal entry that is not a [row, col] pair.
	ErrBadCoordinate = errors.New("gridfile: coordinate must be [row, col]")
	// ErrBadSymbol indicates an unrecognised character in an ASCII map.
	ErrBadSymbol = errors.New("gridfile: unknown map symbol")
	// ErrDuplicateMarker indicates more than one 'S' or 'G' in an ASCII map.
	ErrDuplicateMarker = errors.New("gridfile: start or goal marker appears more than once")
	// ErrInvalidGrid wraps gridgraph validation failures.
	ErrInvalidGrid = errors.New("gridfile: invalid grid")
)

// Format identifies a scenario encoding.
type Format int

const (
	// FormatYAML is a YAML document.
	FormatYAML Format = iota
	// FormatJSON is a JSON document, comments allowed.
	FormatJSON
	// FormatText is an ASCII map.
	FormatText
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks a Format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json", ".jsonc":
		return FormatJSON, nil
	case ".txt", ".map":
		return FormatText, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Scenario is a validated grid plus optional endpoints.
// Start and Goal are nil when the source did not specify them.
type Scenario struct {
	Grid  [][]int
	Start *gridgraph.Cell
	Goal  *gridgraph.Cell
}

// GridGraph builds the grid adapter for the scenario.
func (s *Scenario) GridGraph() (*gridgraph.GridGraph, error) {
	return gridgraph.From2D(s.Grid)
}

// document mirrors the YAML/JSON layout.
type document struct {
	Grid  [][]int `yaml:"grid" json:"grid"`
	Map   string  `yaml:"map" json:"map"`
	Start []int   `yaml:"start" json:"start"`
	Goal  []int   `yaml:"goal" json:"goal"`
}

// Load reads and parses the scenario at path.
func Load(path string) (*Scenario, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gridfile: read %s: %w", path, err)
	}
	s, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Parse decodes data in the given format and validates the grid shape.
func Parse(data []byte, format Format) (*Scenario, error) {
	var (
		s   *Scenario
		err error
	)
	switch format {
	case FormatYAML:
		var doc document
		if err = yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("gridfile: decode yaml: %w", err)
		}
		s, err = doc.scenario()
	case FormatJSON:
		var doc document
		// comments and trailing commas are stripped before decoding
		if err = json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
			return nil, fmt.Errorf("gridfile: decode json: %w", err)
		}
		s, err = doc.scenario()
	case FormatText:
		s, err = parseText(string(data))
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}
	if _, err := s.GridGraph(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGrid, err)
	}

	return s, nil
}

// scenario converts a decoded document, preferring an explicit grid over a map.
func (d document) scenario() (*Scenario, error) {
	s := &Scenario{Grid: d.Grid}
	if len(d.Grid) == 0 && d.Map != "" {
		parsed, err := parseText(d.Map)
		if err != nil {
			return nil, err
		}
		s = parsed
	}
	if d.Start != nil {
		c, err := toCell("start", d.Start)
		if err != nil {
			return nil, err
		}
		s.Start = &c
	}
	if d.Goal != nil {
		c, err := toCell("goal", d.Goal)
		if err != nil {
			return nil, err
		}
		s.Goal = &c
	}

	return s, nil
}

func toCell(field string, v []int) (gridgraph.Cell, error) {
	if len(v) != 2 {
		return gridgraph.Cell{}, fmt.Errorf("%w: %s has %d values", ErrBadCoordinate, field, len(v))
	}

	return gridgraph.Cell{Row: v[0], Col: v[1]}, nil
}

// ParseCell parses "r,c" (spaces allowed) into a Cell.
func ParseCell(text string) (gridgraph.Cell, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return gridgraph.Cell{}, fmt.Errorf("%w: %q", ErrBadCoordinate, text)
	}
	row, errRow := strconv.Atoi(strings.TrimSpace(parts[0]))
	col, errCol := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errRow != nil || errCol != nil {
		return gridgraph.Cell{}, fmt.Errorf("%w: %q", ErrBadCoordinate, text)
	}

	return gridgraph.Cell{Row: row, Col: col}, nil
}

// parseText reads an ASCII map. Blank lines are ignored and whitespace
// between symbols is allowed. '*' (a rendered path cell) reads as free.
func parseText(text string) (*Scenario, error) {
	s := &Scenario{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.Join(strings.Fields(line), "")
		if line == "" {
			continue
		}
		r := len(s.Grid)
		row := make([]int, 0, len(line))
		for c, ch := range line {
			switch ch {
			case '.', '0', '*':
				row = append(row, 0)
			case '#', '1':
				row = append(row, 1)
			case 'S', 'G':
				cell := &gridgraph.Cell{Row: r, Col: c}
				target := &s.Start
				if ch == 'G' {
					target = &s.Goal
				}
				if *target != nil {
					return nil, fmt.Errorf("%w: %q at %v", ErrDuplicateMarker, ch, *cell)
				}
				*target = cell
				row = append(row, 0)
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadSymbol, ch, r, c)
			}
		}
		s.Grid = append(s.Grid, row)
	}

	return s, nil
}
