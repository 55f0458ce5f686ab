package tui_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/py2sec/internal/adapters/tui"
)

func TestDashboard_OpenAndClose(t *testing.T) {
	var out bytes.Buffer
	d := tui.NewDashboard(nil, &out)

	ctx, tel, err := d.Open(context.Background())
	require.NoError(t, err)

	_, v := tel.Record(ctx, "compile")
	_, _ = v.Stdout().Write([]byte("building\n"))
	v.Complete(nil)

	require.NoError(t, ctx.Err())
	require.NoError(t, tel.Close())
	assert.Error(t, ctx.Err(), "closing ends the dashboard context")
	assert.NotEmpty(t, out.String())
}

func TestDashboard_ParentCanceled(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	d := tui.NewDashboard(nil, new(bytes.Buffer))

	ctx, tel, err := d.Open(parent)
	require.NoError(t, err)

	cancel()
	<-ctx.Done()
	_, v := tel.Record(ctx, "compile")
	v.Complete(nil)
	assert.NoError(t, tel.Close())
}
