package checkpoint

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"ember/internal/heap"
)

// Reader restores visit calls from a msgpack record stream. The first
// error poisons the reader: every later operation does nothing and applies
// nothing, so a failed Tag check cannot be followed by a partial restore.
type Reader struct {
	dec *msgpack.Decoder
	err error
}

// NewReader returns a Reader restoring from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{dec: msgpack.NewDecoder(r)}
}

// Reading reports true.
func (*Reader) Reading() bool { return true }

// Err returns the first error encountered, if any.
func (r *Reader) Err() error { return r.err }

// kind consumes the next record's kind marker and checks it against want.
func (r *Reader) kind(want recordKind) bool {
	if r.err != nil {
		return false
	}
	k, err := r.dec.DecodeUint8()
	if err != nil {
		r.err = formatErr("record kind", err)
		return false
	}
	if recordKind(k) != want {
		r.err = fmt.Errorf("%w: expected %s record, stream has %s", ErrFormat, want, recordKind(k))
		return false
	}
	return true
}

// Ptr reads a pointer-sized word record into p.
func (r *Reader) Ptr(p *uint64) {
	if !r.kind(recPtr) {
		return
	}
	v, err := r.dec.DecodeUint64()
	if err != nil {
		r.err = formatErr("ptr", err)
		return
	}
	*p = v
}

// U32 reads a 32-bit record into p.
func (r *Reader) U32(p *uint32) {
	if !r.kind(recU32) {
		return
	}
	v, err := r.dec.DecodeUint32()
	if err != nil {
		r.err = formatErr("u32", err)
		return
	}
	*p = v
}

// Region reads a raw byte range record into buf. The stored region must
// have exactly len(buf) bytes.
func (r *Reader) Region(buf []byte) {
	if !r.kind(recRegion) {
		return
	}
	b, err := r.dec.DecodeBytes()
	if err != nil {
		r.err = formatErr("region", err)
		return
	}
	if len(b) != len(buf) {
		r.err = fmt.Errorf("%w: region length %d, want %d", ErrFormat, len(b), len(buf))
		return
	}
	copy(buf, b)
}

// Tag compares the stream's next tag against expected. A mismatch is a
// hard, deterministic load failure.
func (r *Reader) Tag(expected int) {
	if !r.kind(recTag) {
		return
	}
	got, err := r.dec.DecodeInt()
	if err != nil {
		r.err = formatErr("tag", err)
		return
	}
	if got != expected {
		r.err = &TagMismatchError{Expected: expected, Got: got}
	}
}

// Ref reads a reference record into the slot.
func (r *Reader) Ref(s *heap.Slot) {
	if !r.kind(recRef) {
		return
	}
	v, err := r.dec.DecodeUint64()
	if err != nil {
		r.err = formatErr("ref", err)
		return
	}
	s.Store(heap.Ref(v))
}

var _ Serializer = (*Reader)(nil)
