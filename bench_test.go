package schemaviz_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/syssam/schemaviz"
	"github.com/syssam/schemaviz/schema"
	"github.com/syssam/schemaviz/schema/field"
)

func BenchmarkCompile(b *testing.B) {
	s := messagesSchema()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := schemaviz.Compile(s)
		require.NoError(b, err)
	}
}

func BenchmarkCompileNested(b *testing.B) {
	deep := field.Type(field.String())
	for n := 0; n < 16; n++ {
		deep = field.ObjectOf(
			field.F("value", deep),
			field.Opt("next", field.UnionOf(field.Null(), field.ID("chain"))),
		)
	}
	s := schema.New().AddTable("chain", deep)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := schemaviz.Compile(s)
		require.NoError(b, err)
	}
}
