package model

import "fmt"

// ContainerBlock is the contiguous row range [Start, End) holding one container's record.
type ContainerBlock struct {
	// Identity, set by the block parser
	ID    string
	Start int // inclusive
	End   int // exclusive

	// Completed by the reordering engine
	Key             string
	ResolvedStowage string
	Resolved        bool   // false when the id was not found in the stowage map
	Strategy        string // injection strategy that applied, "" if none
}

// Len returns the number of rows in the block
func (b ContainerBlock) Len() int {
	return b.End - b.Start
}

// String returns a human-readable representation of the block
func (b ContainerBlock) String() string {
	return fmt.Sprintf("%s [%d,%d) key=%s", b.ID, b.Start, b.End, b.Key)
}

// ReportStructure is the partition of a monitoring report grid.
// HeaderRows and TailRows are never reordered.
type ReportStructure struct {
	HeaderRows []Row
	Blocks     []ContainerBlock
	TailRows   []Row
}

// HeaderEnd returns the index of the first block row (or the grid length when there are no blocks)
func (s *ReportStructure) HeaderEnd() int {
	return len(s.HeaderRows)
}

// TailStart returns the index of the first tail row
func (s *ReportStructure) TailStart() int {
	if len(s.Blocks) == 0 {
		return len(s.HeaderRows)
	}
	return s.Blocks[len(s.Blocks)-1].End
}

// RowCount returns the number of rows covered by the structure
func (s *ReportStructure) RowCount() int {
	return s.TailStart() + len(s.TailRows)
}

// StowageMap maps a canonical container identifier to raw stowage text.
// The first recorded value for an identifier wins.
type StowageMap struct {
	entries map[string]string
}

// NewStowageMap creates an empty map
func NewStowageMap() *StowageMap {
	return &StowageMap{entries: make(map[string]string)}
}

// Put records id -> stowage unless id is already present. It reports whether the value was recorded.
func (m *StowageMap) Put(id, stowage string) bool {
	if _, exists := m.entries[id]; exists {
		return false
	}
	m.entries[id] = stowage
	return true
}

// Lookup returns the raw stowage text for id
func (m *StowageMap) Lookup(id string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.entries[id]
	return v, ok
}

// Len returns the number of identifiers in the map
func (m *StowageMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}
