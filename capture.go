package qhull

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/hullworks/qhull/internal/engine"
)

// The engine reports everything as text on its two output streams, like the
// C library it stands in for. Capture redirects a stream into a temporary
// file so the text can be read back and attached to results; the files are
// scoped resources, deleted as soon as they are read or the Qh is closed.

type tmpFile struct {
	f *os.File
}

func newTmpFile() (*tmpFile, error) {
	f, err := os.CreateTemp("", "qhull-capture-*")
	if err != nil {
		return nil, errors.Wrap(err, "creating capture file")
	}
	return &tmpFile{f: f}, nil
}

func (t *tmpFile) writer() io.Writer { return t.f }

// readAndClose returns everything written so far, then closes and deletes
// the file.
func (t *tmpFile) readAndClose() (string, error) {
	defer t.close()
	if _, err := t.f.Seek(0, io.SeekStart); err != nil {
		return "", errors.Wrap(err, "rewinding capture file")
	}
	data, err := io.ReadAll(t.f)
	if err != nil {
		return "", errors.Wrap(err, "reading capture file")
	}
	return string(data), nil
}

func (t *tmpFile) close() {
	name := t.f.Name()
	t.f.Close()
	os.Remove(name)
}

type ioBuffers struct {
	out *tmpFile
	err *tmpFile
}

func newIOBuffers(captureOut, captureErr bool) (ioBuffers, error) {
	var b ioBuffers
	if captureOut {
		out, err := newTmpFile()
		if err != nil {
			return b, err
		}
		b.out = out
	}
	if captureErr {
		errFile, err := newTmpFile()
		if err != nil {
			b.close()
			return b, err
		}
		b.err = errFile
	}
	return b, nil
}

// An uncaptured output stream is discarded rather than forwarded to the
// process's stdout: a library has no business printing. Error text falls
// through to stderr so diagnostics are not lost when capture is off.
func (b *ioBuffers) outWriter() io.Writer {
	if b.out != nil {
		return b.out.writer()
	}
	return io.Discard
}

func (b *ioBuffers) errWriter() io.Writer {
	if b.err != nil {
		return b.err.writer()
	}
	return os.Stderr
}

// takeErrText drains the captured error text and installs a fresh capture
// file on the context, so a later failure starts from a clean stream.
func (b *ioBuffers) takeErrText(ctx *engine.Context) string {
	if b.err == nil {
		return ""
	}
	old := b.err
	fresh, err := newTmpFile()
	if err != nil {
		b.err = nil
	} else {
		b.err = fresh
	}
	ctx.Ferr = b.errWriter()
	text, err := old.readAndClose()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}

// takeOutText drains the captured output text the same way.
func (b *ioBuffers) takeOutText(ctx *engine.Context) (string, error) {
	if b.out == nil {
		return "", errors.New("stdout capture is not enabled")
	}
	old := b.out
	fresh, err := newTmpFile()
	if err != nil {
		b.out = nil
	} else {
		b.out = fresh
	}
	ctx.Fout = b.outWriter()
	return old.readAndClose()
}

func (b *ioBuffers) close() {
	if b.out != nil {
		b.out.close()
		b.out = nil
	}
	if b.err != nil {
		b.err.close()
		b.err = nil
	}
}
