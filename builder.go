package qhull

import (
	"github.com/hullworks/qhull/internal/engine"
)

// Builder assembles a computation: a dimension hint, capture toggles, and a
// queue of deferred configuration closures that run against the raw engine
// context after initialization but before the point buffer is attached.
// A terminal Build* call attaches the buffer, runs the compute step (unless
// disabled) and optionally the post-compute consistency checks.
type Builder struct {
	dim           int
	captureOut    bool
	captureErr    bool
	compute       bool
	checkOutput   bool
	configurators []func(*engine.Context)
}

func NewBuilder() *Builder {
	// Error text is captured by default so failures come back with their
	// diagnostics attached.
	return &Builder{captureErr: true, compute: true}
}

// Dim declares the input dimensionality. Required before Build and
// BuildManaged; optional before BuildFromPoints, where it is validated
// against the actual points.
func (b *Builder) Dim(dim int) *Builder {
	b.dim = dim
	return b
}

// CaptureStdout redirects the engine's output stream into a temporary file,
// readable through Qh.CapturedOutput.
func (b *Builder) CaptureStdout(on bool) *Builder {
	b.captureOut = on
	return b
}

// CaptureStderr redirects the engine's error stream into a temporary file so
// diagnostic text can be attached to errors. On by default.
func (b *Builder) CaptureStderr(on bool) *Builder {
	b.captureErr = on
	return b
}

// Compute controls whether the terminal build call runs the compute step.
// When disabled the caller runs Qh.Compute themselves, typically after
// further raw configuration through Qh.Try.
func (b *Builder) Compute(on bool) *Builder {
	b.compute = on
	return b
}

// CheckOutput runs the engine's consistency checks right after the compute
// step.
func (b *Builder) CheckOutput(on bool) *Builder {
	b.checkOutput = on
	return b
}

// Configure queues a closure over the raw engine context. Closures run in
// registration order, each under its own recovery point.
func (b *Builder) Configure(f func(*engine.Context)) *Builder {
	b.configurators = append(b.configurators, f)
	return b
}

// Build computes over a caller-owned flat coordinate buffer. The buffer is
// borrowed for the lifetime of the returned Qh and may be rewritten in place
// by scaling options, exactly as the wrapped engine documents.
func (b *Builder) Build(coords []float64) (*Qh, error) {
	return b.build(coords, nil)
}

// BuildManaged copies the coordinates first, so the returned Qh owns its
// buffer outright.
func (b *Builder) BuildManaged(coords []float64) (*Qh, error) {
	owned := append([]float64(nil), coords...)
	return b.build(owned, owned)
}

// BuildFromPoints collects a point list into a fresh buffer, inferring the
// dimension. A dimension hint that disagrees with the points is a
// precondition violation and fails before the engine is ever touched.
func (b *Builder) BuildFromPoints(points [][]float64) (*Qh, error) {
	cc, err := CollectCoords(points)
	if err != nil {
		return nil, err
	}
	if b.dim != 0 && b.dim != cc.Dim {
		return nil, inputErrorf(
			"dimension hint %d does not match input dimension %d", b.dim, cc.Dim)
	}
	b.dim = cc.Dim
	return b.build(cc.Coords, cc.Coords)
}

func (b *Builder) build(coords []float64, holder []float64) (*Qh, error) {
	dim := b.dim
	if dim <= 0 {
		return nil, inputErrorf("a positive dimension is required, got %d", dim)
	}
	if len(coords) == 0 {
		return nil, inputErrorf("no points")
	}
	if len(coords)%dim != 0 {
		return nil, inputErrorf(
			"%d coordinates is not a multiple of dimension %d", len(coords), dim)
	}

	buffers, err := newIOBuffers(b.captureOut, b.captureErr)
	if err != nil {
		return nil, err
	}
	ctx := &engine.Context{}
	ctx.Init(buffers.outWriter(), buffers.errWriter())
	qh := &Qh{
		ctx:          ctx,
		buffers:      buffers,
		coordsHolder: holder,
		dim:          dim,
		inputDim:     dim,
	}
	for _, configure := range b.configurators {
		if err := qh.Try(configure); err != nil {
			qh.Close()
			return nil, err
		}
	}
	count := len(coords) / dim
	if err := qh.Try(func(ctx *engine.Context) {
		ctx.AttachPoints(coords, count, dim)
	}); err != nil {
		qh.Close()
		return nil, err
	}
	if b.compute {
		if err := qh.Compute(); err != nil {
			qh.Close()
			return nil, err
		}
		if b.checkOutput {
			if err := qh.CheckOutput(); err != nil {
				qh.Close()
				return nil, err
			}
		}
	}
	return qh, nil
}
