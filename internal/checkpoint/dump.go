package checkpoint

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Record is one decoded stream record, for inspection tooling.
type Record struct {
	Kind  string
	Tag   int    // recTag only
	Value uint64 // recPtr, recU32, recRef
	Bytes []byte // recRegion only
}

// Records decodes the whole stream generically, without expected tags.
// Inspection only; restores go through Reader.
func Records(r io.Reader) ([]Record, error) {
	dec := msgpack.NewDecoder(r)
	var out []Record
	for {
		k, err := dec.DecodeUint8()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, formatErr("record kind", err)
		}
		rec := Record{Kind: recordKind(k).String()}
		switch recordKind(k) {
		case recPtr, recRef:
			rec.Value, err = dec.DecodeUint64()
		case recU32:
			var v uint32
			v, err = dec.DecodeUint32()
			rec.Value = uint64(v)
		case recRegion:
			rec.Bytes, err = dec.DecodeBytes()
		case recTag:
			rec.Tag, err = dec.DecodeInt()
		default:
			return out, fmt.Errorf("%w: unknown record kind %d", ErrFormat, k)
		}
		if err != nil {
			return out, formatErr(rec.Kind, err)
		}
		out = append(out, rec)
	}
}
