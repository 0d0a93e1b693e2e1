package handlers

import (
	"strings"

	"github.com/agentstation/menumap/pkg/errors"
	"github.com/agentstation/menumap/pkg/menus"
)

// ListMode selects the shape of GET /restaurants.
type ListMode string

const (
	// ListAuto returns summaries for flat sources and full records for nested ones.
	ListAuto ListMode = "auto"
	// ListSummary returns [{id, name}].
	ListSummary ListMode = "summary"
	// ListFull returns every restaurant with its menu.
	ListFull ListMode = "full"
)

// ListModes lists the accepted values, for flag help.
var ListModes = []ListMode{ListAuto, ListSummary, ListFull}

// ParseListMode parses a list mode name. The empty string means ListAuto.
func ParseListMode(s string) (ListMode, error) {
	switch mode := ListMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case "":
		return ListAuto, nil
	case ListAuto, ListSummary, ListFull:
		return mode, nil
	default:
		return "", errors.NewValidationError("list_mode", s, "must be one of auto, summary, full")
	}
}

// resolve turns ListAuto into a concrete mode for the given layout.
func (m ListMode) resolve(layout menus.Layout) ListMode {
	if m != ListAuto {
		return m
	}
	if layout == menus.LayoutFlat {
		return ListSummary
	}
	return ListFull
}
