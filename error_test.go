package qhull

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hullworks/qhull/internal/engine"
)

func TestKindFromCode(t *testing.T) {
	assert.Equal(t, KindInput, KindFromCode(engine.ErrInput))
	assert.Equal(t, KindSingular, KindFromCode(engine.ErrSingular))
	assert.Equal(t, KindPrecision, KindFromCode(engine.ErrPrec))
	assert.Equal(t, KindTopology, KindFromCode(engine.ErrTopology))
	assert.Equal(t, KindWide, KindFromCode(engine.ErrWide))
	assert.Equal(t, KindNested, KindFromCode(engine.ErrTryNested))
	assert.Equal(t, KindOther, KindFromCode(42))
}

func TestErrorFormatting(t *testing.T) {
	err := &Error{Kind: KindSingular, Code: engine.ErrSingular}
	assert.Equal(t, "qhull error: singular input (#2)", err.Error())

	err = &Error{
		Kind:    KindSingular,
		Code:    engine.ErrSingular,
		Message: "the input spans only 1 dimension",
	}
	assert.Contains(t, err.Error(), "singular input (#2)")
	assert.Contains(t, err.Error(), "spans only 1 dimension")
}

func TestTryConvertsFailure(t *testing.T) {
	qh, err := New([][]float64{{0, 0}, {1, 0}, {0, 1}})
	require.NoError(t, err)
	defer qh.Close()

	err = qh.Try(func(ctx *engine.Context) {
		ctx.Errexit(engine.ErrPrec, "made-up precision trouble")
	})
	var qerr *Error
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, KindPrecision, qerr.Kind)
	assert.Equal(t, engine.ErrPrec, qerr.Code)
	assert.Contains(t, qerr.Message, "made-up precision trouble")

	// The recovery point is gone again; the next Try installs a fresh one.
	require.NoError(t, qh.Try(func(*engine.Context) {}))
}

func TestTryDiagnosticsResetBetweenFailures(t *testing.T) {
	qh, err := New([][]float64{{0, 0}, {1, 0}, {0, 1}})
	require.NoError(t, err)
	defer qh.Close()

	err = qh.Try(func(ctx *engine.Context) {
		ctx.Errexit(engine.ErrOther, "first failure")
	})
	require.Error(t, err)

	// The capture stream was swapped; the second failure's text does not
	// include the first's.
	err = qh.Try(func(ctx *engine.Context) {
		ctx.Errexit(engine.ErrOther, "second failure")
	})
	var qerr *Error
	require.ErrorAs(t, err, &qerr)
	assert.Contains(t, qerr.Message, "second failure")
	assert.NotContains(t, qerr.Message, "first failure")
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "input", KindInput.String())
	assert.Equal(t, "nested recovery point", KindNested.String())
	assert.Contains(t, ErrorKind(99).String(), "unknown")
}
