package lontara

import (
	"fmt"
	"strings"
)

// ScriptMode selects which scripts a name is shown in
type ScriptMode string

const (
	ScriptLatin   ScriptMode = "latin"
	ScriptLontara ScriptMode = "lontara"
	ScriptBoth    ScriptMode = "both"
)

// Layout arranges the two scripts when both are shown
type Layout string

const (
	LayoutStacked Layout = "stacked"
	LayoutInline  Layout = "inline"
)

// DisplayOptions configures Render
type DisplayOptions struct {
	Mode   ScriptMode
	Layout Layout

	// CustomLontara overrides the transliterated text when set
	CustomLontara string
}

// DefaultDisplayOptions shows both scripts stacked
func DefaultDisplayOptions() DisplayOptions {
	return DisplayOptions{
		Mode:   ScriptBoth,
		Layout: LayoutStacked,
	}
}

// ParseScriptMode converts a string to a ScriptMode, falling back to both
func ParseScriptMode(s string) ScriptMode {
	switch ScriptMode(strings.ToLower(strings.TrimSpace(s))) {
	case ScriptLatin:
		return ScriptLatin
	case ScriptLontara:
		return ScriptLontara
	default:
		return ScriptBoth
	}
}

// ParseLayout converts a string to a Layout, falling back to stacked
func ParseLayout(s string) Layout {
	if Layout(strings.ToLower(strings.TrimSpace(s))) == LayoutInline {
		return LayoutInline
	}
	return LayoutStacked
}

// Render formats Latin text in the requested scripts
func Render(latin string, opts DisplayOptions) string {
	if opts.Mode == ScriptLatin {
		return latin
	}

	script := opts.CustomLontara
	if script == "" {
		script = Transliterate(latin).Lontara
	}

	switch {
	case opts.Mode == ScriptLontara:
		return script
	case opts.Layout == LayoutInline:
		return fmt.Sprintf("%s (%s)", latin, script)
	default:
		return latin + "\n" + script
	}
}

// JoinName joins the non-empty parts of a name with single spaces
func JoinName(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
