package inject

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stowsort/internal/model"
)

func block(start, end int) model.ContainerBlock {
	return model.ContainerBlock{ID: "ABCD1234567", Start: start, End: end}
}

func TestStowageCellIsOverwritten(t *testing.T) {
	g := model.NewGrid("R", []model.Row{
		{"ABCD1234567", "x", "y"},
		{"a", "12.34.56", "(5) PROBE 3"},
		{"", "", ""},
	})
	before := g.Clone()

	name := New(Options{}).Inject(g, block(0, 3), "020304")

	assert.Equal(t, StrategyStowageCell, name)
	assert.Equal(t, "020304", g.Cell(1, 1))

	// every other cell untouched
	g.Rows[1][1] = before.Rows[1][1]
	assert.Equal(t, before.Rows, g.Rows)
}

func TestAnchorWritesLeftNeighbour(t *testing.T) {
	g := model.NewGrid("R", []model.Row{
		{"ABCD1234567", "old", " (5)  probe 3 "},
	})

	name := New(Options{}).Inject(g, block(0, 1), "010203")

	assert.Equal(t, StrategyAnchor, name)
	assert.Equal(t, model.Row{"ABCD1234567", "010203", " (5)  probe 3 "}, g.Rows[0])
}

func TestAnchorInFirstColumnWritesRight(t *testing.T) {
	g := model.NewGrid("R", []model.Row{
		{"ABCD1234567"},
		{"(5) PROBE 3"},
	})

	name := New(Options{}).Inject(g, block(0, 2), "010203")

	assert.Equal(t, StrategyAnchor, name)
	assert.Equal(t, model.Row{"(5) PROBE 3", "010203"}, g.Rows[1])
}

func TestFirstEmptyCellFallback(t *testing.T) {
	g := model.NewGrid("R", []model.Row{
		{"ABCD1234567", "a", "b"},
		{"c", "", "d"},
		{"", "", ""},
		{"e", "f", "g"},
		{"h", "i", "j"},
	})

	name := New(Options{}).Inject(g, block(0, 5), "020304")

	assert.Equal(t, StrategyFirstEmpty, name)
	assert.Equal(t, "020304", g.Cell(1, 1))
	assert.Equal(t, "", g.Cell(2, 0))
}

func TestFirstEmptyCellHonoursRowLimit(t *testing.T) {
	rows := []model.Row{{"ABCD1234567", "x"}}
	for i := 0; i < 3; i++ {
		rows = append(rows, model.Row{"full", "full"})
	}
	rows = append(rows, model.Row{"footer", ""})
	g := model.NewGrid("R", rows)

	in := New(Options{FallbackRows: 4})
	assert.Equal(t, "", in.Inject(g, block(0, 5), "020304"))
	assert.Equal(t, "", g.Cell(4, 1))

	in = New(Options{FallbackRows: 5})
	assert.Equal(t, StrategyFirstEmpty, in.Inject(g, block(0, 5), "020304"))
	assert.Equal(t, "020304", g.Cell(4, 1))
}

func TestShortRowCountsAsEmpty(t *testing.T) {
	g := model.NewGrid("R", []model.Row{
		{"ABCD1234567", "a", "b"},
		{"c"},
	})

	name := New(Options{}).Inject(g, block(0, 2), "020304")

	assert.Equal(t, StrategyFirstEmpty, name)
	assert.Equal(t, model.Row{"c", "020304"}, g.Rows[1])
}

func TestEmptyValueIsNoop(t *testing.T) {
	g := model.NewGrid("R", []model.Row{{"ABCD1234567", ""}})
	before := g.Clone()

	assert.Equal(t, "", New(Options{}).Inject(g, block(0, 1), "  "))
	assert.Equal(t, before.Rows, g.Rows)
}

func TestNoTargetIsSilent(t *testing.T) {
	g := model.NewGrid("R", []model.Row{{"ABCD1234567", "full"}})
	before := g.Clone()

	assert.Equal(t, "", New(Options{}).Inject(g, block(0, 1), "020304"))
	assert.Equal(t, before.Rows, g.Rows)
}

func TestStrategiesStayInsideBlock(t *testing.T) {
	g := model.NewGrid("R", []model.Row{
		{"ABCD1234567", "full"},
		{"EFGH7654321", "01.02.03"},
	})

	assert.Equal(t, "", New(Options{}).Inject(g, block(0, 1), "020304"))
	assert.Equal(t, "01.02.03", g.Cell(1, 1))
}

func TestCustomStrategyOrder(t *testing.T) {
	var calls []string
	record := func(name string, applies bool) Strategy {
		return Strategy{Name: name, Apply: func(*model.Grid, model.ContainerBlock, string) bool {
			calls = append(calls, name)
			return applies
		}}
	}

	in := NewWithStrategies(record("a", false), record("b", true), record("c", true))
	g := model.NewGrid("R", []model.Row{{"ABCD1234567"}})

	assert.Equal(t, "b", in.Inject(g, block(0, 1), "1"))
	assert.Equal(t, []string{"a", "b"}, calls)
	assert.Len(t, New(Options{}).Strategies(), 3)
}
