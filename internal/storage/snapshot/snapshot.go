package snapshot

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/devrev/recordstore/internal/errors"
	"github.com/devrev/recordstore/internal/model"
	"github.com/devrev/recordstore/internal/util"
)

// Record block layout. All integers are little-endian.
const (
	idOffset     = 0
	nameOffset   = idOffset + 4
	emailOffset  = nameOffset + model.NameWidth
	skillsOffset = emailOffset + model.EmailWidth
	salaryOffset = skillsOffset + model.SkillsWidth + 2 // 2 bytes of alignment padding

	// RecordSize is the size of one encoded record block
	RecordSize = salaryOffset + 4

	// HeaderSize is the size of the leading record count
	HeaderSize = 4

	// ChecksumSuffix names the CRC32 sidecar written next to a snapshot
	ChecksumSuffix = ".crc"
)

// EncodeRecord writes rec into a RecordSize block. Text fields longer than
// their width are truncated.
func EncodeRecord(buf []byte, rec model.Record) {
	rec = rec.Truncate()

	for i := range buf[:RecordSize] {
		buf[i] = 0
	}
	binary.LittleEndian.PutUint32(buf[idOffset:], uint32(rec.ID))
	copy(buf[nameOffset:nameOffset+model.MaxNameLen], rec.Name)
	copy(buf[emailOffset:emailOffset+model.MaxEmailLen], rec.Email)
	copy(buf[skillsOffset:skillsOffset+model.MaxSkillsLen], rec.Skills)
	binary.LittleEndian.PutUint32(buf[salaryOffset:], math.Float32bits(rec.Salary))
}

// DecodeRecord reads a record from a RecordSize block
func DecodeRecord(buf []byte) model.Record {
	return model.Record{
		ID:     int32(binary.LittleEndian.Uint32(buf[idOffset:])),
		Name:   cString(buf[nameOffset : nameOffset+model.NameWidth]),
		Email:  cString(buf[emailOffset : emailOffset+model.EmailWidth]),
		Skills: cString(buf[skillsOffset : skillsOffset+model.SkillsWidth]),
		Salary: math.Float32frombits(binary.LittleEndian.Uint32(buf[salaryOffset:])),
	}
}

func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// Encode returns the full snapshot encoding of records
func Encode(records []model.Record) []byte {
	data := make([]byte, HeaderSize+len(records)*RecordSize)
	binary.LittleEndian.PutUint32(data, uint32(len(records)))

	for i, rec := range records {
		offset := HeaderSize + i*RecordSize
		EncodeRecord(data[offset:offset+RecordSize], rec)
	}
	return data
}

// Decode parses a snapshot. A negative count, a short body or trailing bytes
// are reported as CorruptedData.
func Decode(data []byte) ([]model.Record, error) {
	if len(data) < HeaderSize {
		return nil, errors.CorruptedData(
			fmt.Sprintf("snapshot header truncated: %d bytes", len(data)), nil).
			WithDetail("size", len(data))
	}

	count := int32(binary.LittleEndian.Uint32(data))
	if count < 0 {
		return nil, errors.CorruptedData(fmt.Sprintf("snapshot has negative record count %d", count), nil).
			WithDetail("count", count)
	}

	expected := int64(HeaderSize) + int64(count)*RecordSize
	if int64(len(data)) != expected {
		return nil, errors.CorruptedData(
			fmt.Sprintf("snapshot size mismatch: %d records need %d bytes, got %d", count, expected, len(data)), nil).
			WithDetail("count", count).
			WithDetail("expected", expected).
			WithDetail("actual", len(data))
	}

	records := make([]model.Record, count)
	for i := range records {
		offset := HeaderSize + i*RecordSize
		records[i] = DecodeRecord(data[offset : offset+RecordSize])
	}
	return records, nil
}

// Write replaces the snapshot at path with records and writes its checksum
// sidecar. Any existing sidecar is removed first, so a failed checksum write
// leaves a snapshot that still reads as a plain dump. It returns the number
// of snapshot bytes written.
func Write(path string, records []model.Record) (int64, error) {
	data := Encode(records)

	if err := os.Remove(path + ChecksumSuffix); err != nil && !os.IsNotExist(err) {
		return 0, errors.SnapshotFailed("failed to remove stale snapshot checksum", err).WithDetail("path", path)
	}

	if err := writeFileAtomic(path, data); err != nil {
		return 0, errors.SnapshotFailed("failed to write snapshot", err).WithDetail("path", path)
	}

	checksum := util.EncodeChecksum(util.ComputeChecksum(data))
	if err := writeFileAtomic(path+ChecksumSuffix, checksum); err != nil {
		return 0, errors.SnapshotFailed("failed to write snapshot checksum", err).WithDetail("path", path)
	}

	return int64(len(data)), nil
}

// Read loads the snapshot at path. When a checksum sidecar exists it must
// match; a snapshot without one is accepted as is.
func Read(path string) ([]model.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.SnapshotFailed("failed to read snapshot", err).WithDetail("path", path)
	}

	sidecar, err := os.ReadFile(path + ChecksumSuffix)
	switch {
	case err == nil:
		expected, ok := util.DecodeChecksum(sidecar)
		if !ok {
			return nil, errors.CorruptedData(
				fmt.Sprintf("checksum sidecar has %d bytes", len(sidecar)), nil).WithDetail("path", path)
		}
		if !util.ValidateChecksum(data, expected) {
			return nil, errors.ChecksumFailed(expected, util.ComputeChecksum(data)).WithDetail("path", path)
		}
	case os.IsNotExist(err):
	default:
		return nil, errors.SnapshotFailed("failed to read snapshot checksum", err).WithDetail("path", path)
	}

	return Decode(data)
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it into place
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to sync file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to close file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to rename file: %w", err)
	}
	return nil
}
