package baseunit

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// Snapshot format:
//
//	[Magic: 4 bytes "UGR0"] [Version: 2 bytes] [Flags: 2 bytes]
//	[Level: 1 byte] [Reserved: 7 bytes]
//	payload (optionally zstd-compressed):
//	  [Count: 8 bytes] then per kind: [Len: 4 bytes] [Kind bytes]
//
// Kinds are written in ID order, so loading reproduces the exact ID
// assignment of the saved registry.
var (
	snapshotMagic   = [4]byte{'U', 'G', 'R', '0'}
	snapshotVersion = uint16(1)
)

const snapshotFlagCompressed = uint16(1)

// SnapshotOptions configures Save and Load.
type SnapshotOptions struct {
	// Compress enables zstd compression of the payload.
	Compress bool

	// CompressionLevel is the zstd level used when Compress is set.
	CompressionLevel int
}

// DefaultSnapshotOptions returns default snapshot options.
var DefaultSnapshotOptions = SnapshotOptions{
	Compress:         false,
	CompressionLevel: 3,
}

// WithCompression enables zstd compression of the snapshot payload.
func WithCompression(compress bool) func(o *SnapshotOptions) {
	return func(o *SnapshotOptions) {
		o.Compress = compress
	}
}

// WithCompressionLevel sets the zstd compression level.
func WithCompressionLevel(level int) func(o *SnapshotOptions) {
	return func(o *SnapshotOptions) {
		o.CompressionLevel = level
	}
}

// Save writes the registry to w.
//
// The snapshot preserves ID assignment: Load returns a registry in
// which every kind has the same ID it had when saved.
func (r *Registry) Save(w io.Writer, optFns ...func(o *SnapshotOptions)) error {
	opts := DefaultSnapshotOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	kinds := r.Kinds()

	var flags uint16
	if opts.Compress {
		flags |= snapshotFlagCompressed
	}

	header := make([]byte, 16)
	copy(header[0:4], snapshotMagic[:])
	binary.LittleEndian.PutUint16(header[4:6], snapshotVersion)
	binary.LittleEndian.PutUint16(header[6:8], flags)
	header[8] = uint8(opts.CompressionLevel)
	// header[9:16] reserved

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write registry snapshot header: %w", err)
	}

	payload := w
	var compressor *zstd.Encoder
	if opts.Compress {
		level := zstd.EncoderLevelFromZstd(opts.CompressionLevel)
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(level))
		if err != nil {
			return fmt.Errorf("failed to create compressor: %w", err)
		}
		compressor = enc
		payload = enc
	}

	bw := bufio.NewWriter(payload)

	if err := binary.Write(bw, binary.LittleEndian, uint64(len(kinds))); err != nil {
		return fmt.Errorf("failed to write kind count: %w", err)
	}
	for _, kind := range kinds {
		if err := binary.Write(bw, binary.LittleEndian, uint32(len(kind))); err != nil {
			return fmt.Errorf("failed to write kind length: %w", err)
		}
		if _, err := bw.WriteString(kind); err != nil {
			return fmt.Errorf("failed to write kind: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush registry snapshot: %w", err)
	}
	if compressor != nil {
		if err := compressor.Close(); err != nil {
			return fmt.Errorf("failed to finalize compressed snapshot: %w", err)
		}
	}

	return nil
}

// Load reads a registry snapshot written by Save.
func Load(src io.Reader, optFns ...func(o *Options)) (*Registry, error) {
	header := make([]byte, 16)
	if _, err := io.ReadFull(src, header); err != nil {
		return nil, fmt.Errorf("failed to read registry snapshot header: %w", err)
	}
	if [4]byte(header[0:4]) != snapshotMagic {
		return nil, fmt.Errorf("unsupported registry snapshot: invalid magic")
	}
	version := binary.LittleEndian.Uint16(header[4:6])
	if version != snapshotVersion {
		return nil, fmt.Errorf("unsupported registry snapshot version: %d", version)
	}
	flags := binary.LittleEndian.Uint16(header[6:8])

	payload := src
	if flags&snapshotFlagCompressed != 0 {
		dec, err := zstd.NewReader(src)
		if err != nil {
			return nil, fmt.Errorf("failed to create decompressor: %w", err)
		}
		defer dec.Close()
		payload = dec
	}

	br := bufio.NewReader(payload)

	var count uint64
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("failed to read kind count: %w", err)
	}

	reg := NewRegistry(optFns...)
	for i := uint64(0); i < count; i++ {
		var n uint32
		if err := binary.Read(br, binary.LittleEndian, &n); err != nil {
			return nil, fmt.Errorf("failed to read kind length: %w", err)
		}
		buf := make([]byte, n)
		if _, err := io.ReadFull(br, buf); err != nil {
			return nil, fmt.Errorf("failed to read kind: %w", err)
		}
		reg.Register(string(buf))
	}

	return reg, nil
}
