package schemaviz_test

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/syssam/schemaviz"
	"github.com/syssam/schemaviz/schema"
	"github.com/syssam/schemaviz/schema/field"
)

// genSchema derives a schema from an opcode stream so that shrinking stays
// meaningful: the same opcodes always build the same schema.
func genSchema(ops []int, tables int) *schema.Schema {
	if tables < 1 {
		tables = 1
	}
	if tables > 4 {
		tables = 4
	}
	names := []string{"alpha", "beta", "gamma", "delta"}
	s := schema.New()
	next := 0
	pop := func() int {
		if len(ops) == 0 {
			return 0
		}
		op := ops[next%len(ops)]
		next++
		if op < 0 {
			op = -op
		}
		return op
	}
	var build func(depth int) field.Type
	build = func(depth int) field.Type {
		op := pop()
		if depth >= 3 {
			op %= 4
		}
		switch op % 7 {
		case 0:
			return field.String()
		case 1:
			return field.Number()
		case 2:
			return field.Value(pop())
		case 3:
			return field.ID(names[pop()%tables])
		case 4:
			n := pop()%3 + 1
			members := make([]field.Member, n)
			for i := range members {
				name := "f" + string(rune('a'+i))
				if pop()%2 == 0 {
					members[i] = field.F(name, build(depth+1))
				} else {
					members[i] = field.Opt(name, build(depth+1))
				}
			}
			return field.ObjectOf(members...)
		case 5:
			n := pop()%3 + 1
			members := make([]field.Type, n)
			for i := range members {
				members[i] = build(depth + 1)
			}
			return field.UnionOf(members...)
		default:
			return field.ArrayOf(build(depth + 1))
		}
	}
	for i := 0; i < tables; i++ {
		fields := make([]field.Member, pop()%4+1)
		for j := range fields {
			fields[j] = field.F("f"+string(rune('a'+j)), build(1))
		}
		s.AddTable(names[i], field.ObjectOf(fields...))
	}
	return s
}

func TestProperty_CompileDeterminism(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("two compilations are byte-identical", prop.ForAll(
		func(ops []int, tables int) bool {
			s := genSchema(ops, tables)
			first, err := schemaviz.Compile(s)
			if err != nil {
				return false
			}
			second, err := schemaviz.Compile(s)
			if err != nil {
				return false
			}
			return first == second
		},
		gen.SliceOf(gen.IntRange(0, 1<<20)),
		gen.IntRange(1, 4),
	))

	properties.Property("group opens and closes balance, depth ends at zero", prop.ForAll(
		func(ops []int, tables int) bool {
			out, err := schemaviz.Compile(genSchema(ops, tables))
			if err != nil {
				return false
			}
			opens, closes := 0, 0
			for _, line := range strings.Split(out, "\n") {
				if line == "" {
					return false // blank lines are never emitted
				}
				trimmed := strings.TrimLeft(line, " ")
				switch {
				case strings.HasPrefix(trimmed, "subgraph "):
					opens++
				case trimmed == "end":
					closes++
				}
				if closes > opens {
					return false
				}
			}
			return opens == closes
		},
		gen.SliceOf(gen.IntRange(0, 1<<20)),
		gen.IntRange(1, 4),
	))

	properties.Property("every edge line has a matching reference leaf", prop.ForAll(
		func(ops []int, tables int) bool {
			out, err := schemaviz.Compile(genSchema(ops, tables))
			if err != nil {
				return false
			}
			leaves := make(map[string]bool)
			for _, line := range strings.Split(out, "\n") {
				trimmed := strings.TrimLeft(line, " ")
				if i := strings.Index(trimmed, "-->"); i >= 0 && !strings.Contains(trimmed, "[") {
					if !leaves[trimmed[:i]] {
						return false
					}
					continue
				}
				if i := strings.Index(trimmed, ": id '"); i >= 0 {
					if j := strings.IndexByte(trimmed, '['); j > 0 {
						leaves[trimmed[:j]] = true
					}
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 1<<20)),
		gen.IntRange(1, 4),
	))

	properties.TestingRun(t)
}
