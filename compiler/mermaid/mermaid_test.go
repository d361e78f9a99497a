package mermaid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/schemaviz/compiler/graph"
)

func TestRenderSingleTable(t *testing.T) {
	t.Parallel()

	out := Render([][]graph.Event{{
		{Kind: graph.OpenGroup, Path: "users", Label: "users"},
		{Kind: graph.Leaf, Path: "users.name", Label: "name: string"},
		{Kind: graph.CloseGroup},
	}}, nil)
	assert.Equal(t, strings.Join([]string{
		"flowchart LR",
		"  subgraph users[users]",
		"    users.name[name: string]",
		"  end",
	}, "\n"), out)
}

func TestRenderNestedIndentation(t *testing.T) {
	t.Parallel()

	out := Render([][]graph.Event{{
		{Kind: graph.OpenGroup, Path: "a", Label: "a"},
		{Kind: graph.OpenGroup, Path: "a.b", Label: "b"},
		{Kind: graph.Leaf, Path: "a.b.c", Label: "c: number"},
		{Kind: graph.CloseGroup},
		{Kind: graph.CloseGroup},
	}}, nil)
	assert.Equal(t, strings.Join([]string{
		"flowchart LR",
		"  subgraph a[a]",
		"    subgraph a.b[b]",
		"      a.b.c[c: number]",
		"    end",
		"  end",
	}, "\n"), out)
}

func TestRenderEdges(t *testing.T) {
	t.Parallel()

	out := Render([][]graph.Event{{
		{Kind: graph.OpenGroup, Path: "messages", Label: "messages"},
		{Kind: graph.Leaf, Path: "messages.authorId", Label: "authorId: id 'users'"},
		{Kind: graph.CloseGroup},
	}}, []graph.Edge{{From: "messages.authorId", To: "users"}})
	lines := strings.Split(out, "\n")
	require.Equal(t, "  messages.authorId-->users", lines[len(lines)-1])
	// Exactly three characters between source and target, no spaces.
	assert.Contains(t, out, "messages.authorId-->users")
	assert.NotContains(t, out, "--> ")
}

func TestRenderNoBlankLines(t *testing.T) {
	t.Parallel()

	out := Render(nil, nil)
	assert.Equal(t, "flowchart LR", out)

	out = Render([][]graph.Event{nil, {}}, nil)
	assert.Equal(t, "flowchart LR", out)
	assert.False(t, strings.HasSuffix(out, "\n"))
	assert.NotContains(t, out, "\n\n")
}

func TestIndentBalance(t *testing.T) {
	t.Parallel()

	out := Render([][]graph.Event{
		{
			{Kind: graph.OpenGroup, Path: "x", Label: "x"},
			{Kind: graph.Leaf, Path: "x.a", Label: "a: string"},
			{Kind: graph.CloseGroup},
		},
		{
			{Kind: graph.OpenGroup, Path: "y", Label: "y"},
			{Kind: graph.CloseGroup},
		},
	}, nil)
	opens, closes := 0, 0
	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimLeft(line, " ")
		switch {
		case strings.HasPrefix(trimmed, "subgraph "):
			opens++
		case trimmed == "end":
			closes++
			// Every table block returns to one level under the header.
			assert.Equal(t, "  end", line)
		}
	}
	assert.Equal(t, opens, closes)
}
