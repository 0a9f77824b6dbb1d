package ptycap

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is a terminal dimension pair in character cells.
type Size struct {
	Cols, Rows int
}

// sizePresets are the named terminal-size presets recognized by the CLI
// collaborator, per spec.md §6.
var sizePresets = map[string]Size{
	"compact":  {80, 24},
	"standard": {120, 40},
	"large":    {160, 50},
	"xl":       {200, 60},
}

// ParseSize resolves a preset name or a "WxH" literal to a Size.
func ParseSize(spec string) (Size, error) {
	if s, ok := sizePresets[strings.ToLower(spec)]; ok {
		return s, nil
	}
	parts := strings.SplitN(spec, "x", 2)
	if len(parts) != 2 {
		parts = strings.SplitN(spec, "X", 2)
	}
	if len(parts) != 2 {
		return Size{}, fmt.Errorf("ptycap: unrecognized size %q (want a preset name or WxH)", spec)
	}
	cols, err := strconv.Atoi(parts[0])
	if err != nil {
		return Size{}, fmt.Errorf("ptycap: invalid width in size %q: %w", spec, err)
	}
	rows, err := strconv.Atoi(parts[1])
	if err != nil {
		return Size{}, fmt.Errorf("ptycap: invalid height in size %q: %w", spec, err)
	}
	if cols <= 0 || rows <= 0 {
		return Size{}, fmt.Errorf("ptycap: size %q must be positive", spec)
	}
	return Size{Cols: cols, Rows: rows}, nil
}

// DefaultSize is the "standard" preset, matching spec.md §6's default.
func DefaultSize() Size { return sizePresets["standard"] }

// AllPresets returns every named size preset, in a fixed order, for
// callers that want to exercise a capture against each one (the CLI's
// --multi-size flag).
func AllPresets() []Size {
	order := []string{"compact", "standard", "large", "xl"}
	out := make([]Size, len(order))
	for i, name := range order {
		out[i] = sizePresets[name]
	}
	return out
}
