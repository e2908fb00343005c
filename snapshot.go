package unitgo

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hupe1980/unitgo/codec"
	"github.com/hupe1980/unitgo/dimension"
)

// Snapshot format:
//
//	[Magic: 4 bytes "UGQ0"] [Version: 2 bytes]
//	[NameLen: 1 byte] [Codec name]
//	[BodyLen: 4 bytes] [Body]
//
// The body is the codec-encoded Snapshot value. The header records the
// codec name so a snapshot can always be decoded by the codec that
// wrote it.
var (
	snapshotMagic   = [4]byte{'U', 'G', 'Q', '0'}
	snapshotVersion = uint16(1)
)

// Snapshot is the wire form of a Quantity.
//
// Base-unit ids inside the vectors are only meaningful against the
// registry that assigned them; persist the registry alongside
// (baseunit.Registry.Save) when snapshots cross process boundaries.
type Snapshot[T Number] struct {
	Value    T                `json:"value"`
	Scale    uint64           `json:"scale"`
	Semantic dimension.Vector `json:"semantic,omitempty"`
	Units    dimension.Vector `json:"units,omitempty"`
}

// Snapshot returns the wire form of q.
func (q Quantity[T]) Snapshot() Snapshot[T] {
	return Snapshot[T]{
		Value:    q.value,
		Scale:    q.scale,
		Semantic: q.semantic,
		Units:    q.units,
	}
}

// FromSnapshot rebuilds a quantity from its wire form, re-validating
// canonical form and scale.
func FromSnapshot[T Number](s Snapshot[T]) (Quantity[T], error) {
	return New(s.Value, s.Scale, s.Semantic, s.Units)
}

// Encode writes q to w as a self-describing snapshot.
func Encode[T Number](w io.Writer, q Quantity[T], optFns ...Option) error {
	opts := defaultOptions()

	for _, fn := range optFns {
		fn(&opts)
	}

	body, err := opts.codec.Marshal(q.Snapshot())
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	name := opts.codec.Name()
	if len(name) > 255 {
		return fmt.Errorf("codec name too long: %q", name)
	}

	header := make([]byte, 0, 7+len(name)+4)
	header = append(header, snapshotMagic[:]...)
	header = binary.LittleEndian.AppendUint16(header, snapshotVersion)
	header = append(header, uint8(len(name)))
	header = append(header, name...)
	header = binary.LittleEndian.AppendUint32(header, uint32(len(body)))

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write snapshot header: %w", err)
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("failed to write snapshot body: %w", err)
	}

	opts.logger.WithCodec(name).Debug("encoded quantity snapshot", "bytes", len(header)+len(body))

	return nil
}

// Decode reads a snapshot written by Encode. The codec is selected by
// the name recorded in the header; the decoded quantity is
// re-validated against canonical form.
func Decode[T Number](r io.Reader, optFns ...Option) (Quantity[T], error) {
	opts := defaultOptions()

	for _, fn := range optFns {
		fn(&opts)
	}

	var fixed [7]byte
	if _, err := io.ReadFull(r, fixed[:]); err != nil {
		return Quantity[T]{}, fmt.Errorf("failed to read snapshot header: %w", err)
	}
	if [4]byte(fixed[0:4]) != snapshotMagic {
		return Quantity[T]{}, fmt.Errorf("unsupported snapshot: invalid magic")
	}
	if version := binary.LittleEndian.Uint16(fixed[4:6]); version != snapshotVersion {
		return Quantity[T]{}, fmt.Errorf("unsupported snapshot version: %d", version)
	}

	name := make([]byte, fixed[6])
	if _, err := io.ReadFull(r, name); err != nil {
		return Quantity[T]{}, fmt.Errorf("failed to read codec name: %w", err)
	}
	c, ok := codec.ByName(string(name))
	if !ok {
		return Quantity[T]{}, fmt.Errorf("unknown snapshot codec: %q", name)
	}

	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return Quantity[T]{}, fmt.Errorf("failed to read body length: %w", err)
	}
	body := make([]byte, binary.LittleEndian.Uint32(lenBuf[:]))
	if _, err := io.ReadFull(r, body); err != nil {
		return Quantity[T]{}, fmt.Errorf("failed to read snapshot body: %w", err)
	}

	var s Snapshot[T]
	if err := c.Unmarshal(body, &s); err != nil {
		return Quantity[T]{}, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	q, err := FromSnapshot(s)
	if err != nil {
		return Quantity[T]{}, fmt.Errorf("invalid snapshot contents: %w", err)
	}

	opts.logger.WithCodec(c.Name()).WithScale(q.scale).Debug("decoded quantity snapshot")

	return q, nil
}
