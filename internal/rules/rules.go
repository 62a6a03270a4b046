// Package rules holds every text heuristic used to infer structure from a grid.
//
// Each rule maps a pattern to a meaning. Callers never embed their own
// literals; they ask this package, so the full set of heuristics and their
// priority order can be read and tested in one place.
package rules

import (
	"regexp"
	"strings"
)

// Meaning names what a matching cell tells us about the grid
type Meaning string

const (
	MeaningContainerID      Meaning = "container-id"
	MeaningStowageColumn    Meaning = "stowage-column"
	MeaningIdentifierColumn Meaning = "identifier-column"
	MeaningStowageCell      Meaning = "stowage-cell"
	MeaningProbeAnchor      Meaning = "probe-anchor"
)

// DefaultAnchorText is the label whose left neighbour receives the stowage value
const DefaultAnchorText = "(5) PROBE 3"

// Rule is one pattern -> meaning entry
type Rule struct {
	Name        string
	Meaning     Meaning
	Description string
	match       func(normalized string) bool
}

// Match applies the rule to a raw cell value
func (r Rule) Match(value string) bool {
	return r.match(Normalize(value))
}

var (
	containerIDRegex  = regexp.MustCompile(`^[A-Z]{4}[0-9]{7}$`)
	stowageCellRegex  = regexp.MustCompile(`[0-9]{2}[\s.][0-9]{2}[\s.][0-9]{2}`)
	whitespaceRegex   = regexp.MustCompile(`\s+`)
	nonDigitRegex     = regexp.MustCompile(`[^0-9]`)
	stowageHeaderWord = "STOWAGE"
)

// Table lists the structural rules in the order they are consulted.
// Header rules are evaluated per cell with the stowage rule first, so a
// single cell never marks both columns.
var Table = []Rule{
	{
		Name:        "container-id",
		Meaning:     MeaningContainerID,
		Description: "exactly 4 letters followed by 7 digits after trim/uppercase",
		match:       containerIDRegex.MatchString,
	},
	{
		Name:        "header-stowage",
		Meaning:     MeaningStowageColumn,
		Description: "header cell containing STOWAGE",
		match: func(s string) bool {
			return strings.Contains(s, stowageHeaderWord)
		},
	},
	{
		Name:        "header-container",
		Meaning:     MeaningIdentifierColumn,
		Description: "header cell containing CONTAINER, or both CONT and ID",
		match: func(s string) bool {
			if strings.Contains(s, "CONTAINER") {
				return true
			}
			return strings.Contains(s, "CONT") && strings.Contains(s, "ID")
		},
	},
	{
		Name:        "stowage-cell",
		Meaning:     MeaningStowageCell,
		Description: "two digits, separator, two digits, separator, two digits (separator = whitespace or period)",
		match:       stowageCellRegex.MatchString,
	},
	AnchorRule(DefaultAnchorText),
}

// AnchorRule returns the anchor-label rule for the given text.
// The table holds it for DefaultAnchorText; IsAnchor builds it from the configured text.
func AnchorRule(anchor string) Rule {
	if anchor == "" {
		anchor = DefaultAnchorText
	}
	want := Normalize(anchor)
	return Rule{
		Name:        "probe-anchor",
		Meaning:     MeaningProbeAnchor,
		Description: "cell whose collapsed text equals " + want,
		match: func(s string) bool {
			return s == want
		},
	}
}

// Lookup returns the rule with the given meaning
func Lookup(meaning Meaning) (Rule, bool) {
	for _, r := range Table {
		if r.Meaning == meaning {
			return r, true
		}
	}
	return Rule{}, false
}

func mustRule(meaning Meaning) Rule {
	r, ok := Lookup(meaning)
	if !ok {
		panic("rules: missing rule " + string(meaning))
	}
	return r
}

var (
	containerIDRule      = mustRule(MeaningContainerID)
	stowageColumnRule    = mustRule(MeaningStowageColumn)
	identifierColumnRule = mustRule(MeaningIdentifierColumn)
	stowageCellRule      = mustRule(MeaningStowageCell)
)

// Normalize uppercases, collapses internal whitespace and trims
func Normalize(value string) string {
	collapsed := whitespaceRegex.ReplaceAllString(value, " ")
	return strings.ToUpper(strings.TrimSpace(collapsed))
}

// ContainerID returns the canonical identifier when value is shaped like one.
// No partial matches and no correction of OCR-mangled characters.
func ContainerID(value string) (string, bool) {
	id := strings.ToUpper(strings.TrimSpace(value))
	if !containerIDRule.match(id) {
		return "", false
	}
	return id, true
}

// IsStowageHeader reports whether a header cell names the stowage column
func IsStowageHeader(value string) bool {
	return stowageColumnRule.Match(value)
}

// IsIdentifierHeader reports whether a header cell names the container id column
func IsIdentifierHeader(value string) bool {
	return identifierColumnRule.Match(value)
}

// IsStowageCell reports whether a cell already holds a dotted or spaced stowage position
func IsStowageCell(value string) bool {
	return stowageCellRule.match(value)
}

// IsAnchor reports whether a cell is the anchor label. An empty anchor falls back to DefaultAnchorText.
func IsAnchor(value, anchor string) bool {
	return AnchorRule(anchor).Match(value)
}

// Digits strips every non-digit character
func Digits(value string) string {
	return nonDigitRegex.ReplaceAllString(value, "")
}
