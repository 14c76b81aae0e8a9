// Package strfile reads and writes compiled fortune indexes.
//
// An index is stored next to its source as "<source>.dat" using the
// classic strfile layout: a big-endian header followed by NumStr+1
// uint32 offsets. The first NumStr offsets mark where each record starts;
// the last marks the byte just past the final delimiter line.
package strfile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/harrison/fortuner/internal/filelock"
	"github.com/harrison/fortuner/internal/models"
	"github.com/harrison/fortuner/internal/parser"
)

// Version is the header version written by this package.
const Version = 2

// Extension is appended to a source path to name its index.
const Extension = ".dat"

// Header is the fixed-size prefix of an index file.
type Header struct {
	Version  uint32
	NumStr   uint32
	LongLen  uint32
	ShortLen uint32
	Flags    uint32
	Delim    [4]byte
}

// Index describes the records of one source file.
type Index struct {
	Header
	Offsets []uint32
}

// ErrTooLarge is returned when a source does not fit 32-bit offsets.
var ErrTooLarge = errors.New("source too large for strfile offsets")

// IndexPath returns the index path for a source file.
func IndexPath(source string) string {
	return source + Extension
}

// Build computes the index for a scanned source.
func Build(scan *parser.ScanResult) (*Index, error) {
	if scan.End > math.MaxUint32 || uint64(len(scan.Spans)) > math.MaxUint32 {
		return nil, ErrTooLarge
	}

	ix := &Index{
		Header: Header{
			Version: Version,
			NumStr:  uint32(len(scan.Spans)),
			Delim:   [4]byte{models.Delimiter[0]},
		},
		Offsets: make([]uint32, 0, len(scan.Spans)+1),
	}
	for i, span := range scan.Spans {
		length := uint32(len(span.Text))
		if length > ix.LongLen {
			ix.LongLen = length
		}
		if i == 0 || length < ix.ShortLen {
			ix.ShortLen = length
		}
		ix.Offsets = append(ix.Offsets, uint32(span.Offset))
	}
	ix.Offsets = append(ix.Offsets, uint32(scan.End))
	return ix, nil
}

// BuildFile scans a source file and computes its index. The scan result is
// returned as well so callers can report on the source.
func BuildFile(source string) (*Index, *parser.ScanResult, error) {
	in, err := parser.Open(source)
	if err != nil {
		return nil, nil, models.NewSourceError(models.OpenFailed, source, err)
	}
	defer in.Close()

	scan, err := parser.Scan(in)
	if err != nil {
		return nil, nil, models.NewSourceError(models.ReadFailed, source, err)
	}
	ix, err := Build(scan)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", source, err)
	}
	return ix, scan, nil
}

// WriteTo encodes the index.
func (ix *Index) WriteTo(w io.Writer) (int64, error) {
	if err := binary.Write(w, binary.BigEndian, ix.Header); err != nil {
		return 0, err
	}
	if err := binary.Write(w, binary.BigEndian, ix.Offsets); err != nil {
		return int64(binary.Size(ix.Header)), err
	}
	return int64(binary.Size(ix.Header) + 4*len(ix.Offsets)), nil
}

// WriteFile writes the index for source to IndexPath(source), holding a
// lock on source so concurrent indexers of one file do not interleave.
func WriteFile(source string, ix *Index) error {
	path := IndexPath(source)
	err := filelock.WriteLocked(source, path, 0644, func(w io.Writer) error {
		_, err := ix.WriteTo(w)
		return err
	})
	if err != nil {
		return fmt.Errorf("write index %s: %w", path, err)
	}
	return nil
}

// Read decodes an index.
func Read(r io.Reader) (*Index, error) {
	ix := &Index{}
	if err := binary.Read(r, binary.BigEndian, &ix.Header); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if ix.Version != Version {
		return nil, fmt.Errorf("unsupported index version %d", ix.Version)
	}
	ix.Offsets = make([]uint32, int(ix.NumStr)+1)
	if err := binary.Read(r, binary.BigEndian, ix.Offsets); err != nil {
		return nil, fmt.Errorf("read offsets: %w", err)
	}
	return ix, nil
}

// ReadFile decodes the index stored at path.
func ReadFile(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ix, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ix, nil
}
