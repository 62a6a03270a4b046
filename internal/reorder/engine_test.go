package reorder

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stowsort/internal/codec"
	"stowsort/internal/inject"
	"stowsort/internal/model"
)

func stowage(pairs ...string) *model.StowageMap {
	m := model.NewStowageMap()
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Put(pairs[i], pairs[i+1])
	}
	return m
}

func ids(blocks []model.ContainerBlock) []string {
	out := make([]string, len(blocks))
	for i, b := range blocks {
		out[i] = b.ID
	}
	return out
}

func TestSingleMatchedBlock(t *testing.T) {
	report := model.NewGrid("Monitoring", []model.Row{
		{"REPORT"},
		{"ABCD1234567", "set -18"},
		{"", ""},
	})

	res := NewEngine(Options{}).Reorder(report, stowage("ABCD1234567", "020304"))

	assert.Equal(t, 1, res.Total)
	assert.Equal(t, 1, res.Matched)
	assert.Equal(t, 0, res.Unmatched)
	require.Len(t, res.Blocks, 1)
	assert.Equal(t, "020304", res.Blocks[0].ResolvedStowage)
	assert.Equal(t, "020304", res.Blocks[0].Key)
	assert.True(t, res.Blocks[0].Resolved)
}

func TestUnmatchedBlockSortsLast(t *testing.T) {
	report := model.NewGrid("Monitoring", []model.Row{
		{"HEAD"},
		{"WXYZ0000001", "unmatched"},
		{"ABCD1234567", "matched"},
	})

	res := NewEngine(Options{}).Reorder(report, stowage("ABCD1234567", "010101"))

	assert.Equal(t, []string{"ABCD1234567", "WXYZ0000001"}, ids(res.Blocks))
	assert.Equal(t, "010101", res.Blocks[0].Key)
	assert.Equal(t, codec.Sentinel, res.Blocks[1].Key)
	assert.Equal(t, 1, res.Unmatched)
	assert.Equal(t, "", res.Blocks[1].Strategy)

	assert.Equal(t, "HEAD", res.Grid.Rows[0][0])
	assert.Equal(t, "ABCD1234567", res.Grid.Rows[1][0])
	assert.Equal(t, "WXYZ0000001", res.Grid.Rows[2][0])
	assert.Equal(t, "unmatched", res.Grid.Rows[2][1])
}

func TestSortIsByBayRowTierAndStable(t *testing.T) {
	report := model.NewGrid("Monitoring", []model.Row{
		{"AAAA0000001", "first of equal pair"},
		{"BBBB0000002", ""},
		{"CCCC0000003", "second of equal pair"},
		{"DDDD0000004", "no match"},
		{"EEEE0000005", "also no match"},
	})
	m := stowage(
		"AAAA0000001", "10 02 82",
		"BBBB0000002", "02.04.06",
		"CCCC0000003", "100282",
	)

	res := NewEngine(Options{}).Reorder(report, m)

	assert.Equal(t,
		[]string{"BBBB0000002", "AAAA0000001", "CCCC0000003", "DDDD0000004", "EEEE0000005"},
		ids(res.Blocks))
	assert.True(t, sort.SliceIsSorted(res.Blocks, func(i, j int) bool {
		return res.Blocks[i].Key < res.Blocks[j].Key
	}))
}

func TestInjectionIsAppliedBeforeRebuild(t *testing.T) {
	report := model.NewGrid("Monitoring", []model.Row{
		{"H"},
		{"EFGH7654321", "99.99.99"},
		{"ABCD1234567", "12.34.56", "keep"},
	})
	m := stowage("ABCD1234567", "1.2.3", "EFGH7654321", "20 40 60")

	res := NewEngine(Options{}).Reorder(report, m)

	assert.Equal(t, model.Row{"ABCD1234567", "000123", "keep"}, res.Grid.Rows[1])
	assert.Equal(t, model.Row{"EFGH7654321", "204060"}, res.Grid.Rows[2])
	assert.Equal(t, 2, res.Injected)
	assert.Equal(t, inject.StrategyStowageCell, res.Blocks[0].Strategy)
}

func TestReportIsNotMutated(t *testing.T) {
	report := model.NewGrid("Monitoring", []model.Row{
		{"ABCD1234567", "12.34.56"},
	})
	before := report.Clone()

	NewEngine(Options{}).Reorder(report, stowage("ABCD1234567", "010101"))

	assert.Equal(t, before.Rows, report.Rows)
}

func TestRowsArePermutedAtBlockGranularity(t *testing.T) {
	report := model.NewGrid("Monitoring", []model.Row{
		{"title"},
		{"CCCC0000003"}, {"c-1"}, {"c-2"},
		{"AAAA0000001"}, {"a-1"},
		{"BBBB0000002"}, {"b-1"}, {"b-2"}, {"b-3"},
	})
	m := stowage("AAAA0000001", "010101", "BBBB0000002", "020202", "CCCC0000003", "030303")

	res := NewEngine(Options{FallbackRows: 1}).Reorder(report, m)

	var firstCells []string
	for _, row := range res.Grid.Rows {
		firstCells = append(firstCells, row[0])
	}
	assert.Equal(t,
		"title AAAA0000001 a-1 BBBB0000002 b-1 b-2 b-3 CCCC0000003 c-1 c-2",
		strings.Join(firstCells, " "))
	assert.Equal(t, report.Len(), res.Grid.Len())
}

func TestReorderIsIdempotent(t *testing.T) {
	report := model.NewGrid("Monitoring", []model.Row{
		{"HEAD", ""},
		{"CCCC0000003", "", "(5) PROBE 3"},
		{"AAAA0000001", "12 00 00"},
		{"ZZZZ9999999", "nothing"},
		{"BBBB0000002", ""},
	})
	m := stowage("AAAA0000001", "010101", "BBBB0000002", "020202", "CCCC0000003", "030303")
	engine := NewEngine(Options{})

	first := engine.Reorder(report, m)
	second := engine.Reorder(first.Grid, m)

	assert.Equal(t, ids(first.Blocks), ids(second.Blocks))
	assert.Equal(t, first.Total, second.Total)
	assert.Equal(t, first.Matched, second.Matched)
}

func TestNoContainersKeepsGrid(t *testing.T) {
	report := model.NewGrid("Monitoring", []model.Row{{"a"}, {"b"}})

	res := NewEngine(Options{}).Reorder(report, model.NewStowageMap())

	assert.Equal(t, 0, res.Total)
	assert.Equal(t, report.Rows, res.Grid.Rows)
	assert.Empty(t, res.Preview)
}

func TestPreviewIsCapped(t *testing.T) {
	var rows []model.Row
	m := model.NewStowageMap()
	for i := 0; i < 12; i++ {
		rows = append(rows, model.Row{fmt.Sprintf("ABCD%07d", i)})
	}
	report := model.NewGrid("Monitoring", rows)

	res := NewEngine(Options{}).Reorder(report, m)
	assert.Len(t, res.Preview, DefaultPreviewSize)

	res = NewEngine(Options{PreviewSize: 3}).Reorder(report, m)
	assert.Len(t, res.Preview, 3)
}
