package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfirm_CommitFlow(t *testing.T) {
	var c Confirm
	require.Equal(t, ConfirmIdle, c.State())

	require.NoError(t, c.Begin())
	require.Equal(t, ConfirmPending, c.State())

	require.True(t, c.Commit())
	require.Equal(t, ConfirmCommitted, c.State())
}

func TestConfirm_CancelFlow(t *testing.T) {
	var c Confirm
	require.NoError(t, c.Begin())
	require.True(t, c.Cancel())
	require.Equal(t, ConfirmCancelled, c.State())
}

func TestConfirm_DoubleBeginRejected(t *testing.T) {
	var c Confirm
	require.NoError(t, c.Begin())
	require.ErrorIs(t, c.Begin(), ErrConfirmInProgress)
	require.Equal(t, ConfirmPending, c.State())
}

func TestConfirm_CommitWithoutBeginIsNoOp(t *testing.T) {
	var c Confirm
	require.False(t, c.Commit())
	require.False(t, c.Cancel())
	require.Equal(t, ConfirmIdle, c.State())
}

func TestConfirm_FinishedIsNotReusable(t *testing.T) {
	var c Confirm
	require.NoError(t, c.Begin())
	require.True(t, c.Commit())

	require.False(t, c.Commit())
	require.False(t, c.Cancel())
	require.ErrorIs(t, c.Begin(), ErrConfirmInProgress)
}
