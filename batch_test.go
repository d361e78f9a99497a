package schemaviz_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/schemaviz"
	"github.com/syssam/schemaviz/schema"
	"github.com/syssam/schemaviz/schema/field"
)

func TestCompileAll(t *testing.T) {
	t.Parallel()

	schemas := make([]*schema.Schema, 16)
	want := make([]string, len(schemas))
	for i := range schemas {
		schemas[i] = messagesSchema()
	}
	single, err := schemaviz.Compile(messagesSchema())
	require.NoError(t, err)
	for i := range want {
		want[i] = single
	}

	out, err := schemaviz.CompileAll(context.Background(), schemas)
	require.NoError(t, err)
	assert.Equal(t, want, out, "results keep input order")
}

func TestCompileAllError(t *testing.T) {
	t.Parallel()

	schemas := []*schema.Schema{
		messagesSchema(),
		schema.New().AddTable("bad", field.String()),
	}
	_, err := schemaviz.CompileAll(context.Background(), schemas)
	require.Error(t, err)
}

func TestCompileAllEmpty(t *testing.T) {
	t.Parallel()

	out, err := schemaviz.CompileAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCompileAllCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := schemaviz.CompileAll(ctx, []*schema.Schema{messagesSchema()})
	require.ErrorIs(t, err, context.Canceled)
}
