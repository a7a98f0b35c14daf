package checkpoint

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"ember/internal/heap"
)

// Writer serializes visit calls as typed records on a msgpack stream.
type Writer struct {
	enc *msgpack.Encoder
	err error
}

// NewWriter returns a Writer persisting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{enc: msgpack.NewEncoder(w)}
}

// Reading reports false.
func (*Writer) Reading() bool { return false }

// Err returns the first write error, if any.
func (w *Writer) Err() error { return w.err }

func (w *Writer) kind(k recordKind) bool {
	if w.err != nil {
		return false
	}
	if err := w.enc.EncodeUint8(uint8(k)); err != nil {
		w.err = err
		return false
	}
	return true
}

// Ptr writes a pointer-sized word record.
func (w *Writer) Ptr(p *uint64) {
	if w.kind(recPtr) {
		w.err = w.enc.EncodeUint64(*p)
	}
}

// U32 writes a 32-bit record.
func (w *Writer) U32(p *uint32) {
	if w.kind(recU32) {
		w.err = w.enc.EncodeUint32(*p)
	}
}

// Region writes a raw byte range record.
func (w *Writer) Region(buf []byte) {
	if w.kind(recRegion) {
		w.err = w.enc.EncodeBytes(buf)
	}
}

// Tag writes a tag record.
func (w *Writer) Tag(expected int) {
	if w.kind(recTag) {
		w.err = w.enc.EncodeInt(int64(expected))
	}
}

// Ref writes a reference record from the slot.
func (w *Writer) Ref(s *heap.Slot) {
	if w.kind(recRef) {
		w.err = w.enc.EncodeUint64(uint64(s.Load()))
	}
}

var _ Serializer = (*Writer)(nil)
