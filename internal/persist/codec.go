package persist

import (
	"bytes"
	_ "embed"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	// ErrNoSave is returned by Store.Load when the slot is empty.
	ErrNoSave = errors.New("persist: no saved game")
	// ErrChecksum means the payload does not match its recorded hash.
	ErrChecksum = errors.New("persist: checksum mismatch")
)

var magic = [4]byte{'D', 'C', 'S', 'V'}

//go:embed schema/snapshot.schema.json
var schemaJSON string

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error

	encoder, _ = zstd.NewWriter(nil)
	decoder, _ = zstd.NewReader(nil)
)

func snapshotSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("snapshot.schema.json", schemaJSON)
	})
	return schema, schemaErr
}

// Encode serializes s as zstd(magic | xxhash64(payload) | payload) where
// payload is the JSON document.
func Encode(s *Snapshot) ([]byte, error) {
	out := *s
	if out.Log == nil {
		out.Log = []string{}
	}
	if out.Entities == nil {
		out.Entities = []Entity{}
	}
	if out.Generations == nil {
		out.Generations = []uint32{}
	}
	if out.Free == nil {
		out.Free = []uint32{}
	}
	payload, err := json.Marshal(&out)
	if err != nil {
		return nil, fmt.Errorf("persist: encode: %w", err)
	}
	if err := validate(payload); err != nil {
		return nil, err
	}

	frame := make([]byte, 0, len(magic)+8+len(payload))
	frame = append(frame, magic[:]...)
	frame = binary.LittleEndian.AppendUint64(frame, xxhash.Sum64(payload))
	frame = append(frame, payload...)
	return encoder.EncodeAll(frame, nil), nil
}

// Decode reverses Encode, verifying the checksum and the schema before
// decoding and rebuilding the map's transient index.
func Decode(data []byte) (*Snapshot, error) {
	frame, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("persist: decompress: %w", err)
	}
	if len(frame) < len(magic)+8 || !bytes.Equal(frame[:len(magic)], magic[:]) {
		return nil, errors.New("persist: not a save file")
	}
	sum := binary.LittleEndian.Uint64(frame[len(magic):])
	payload := frame[len(magic)+8:]
	if xxhash.Sum64(payload) != sum {
		return nil, ErrChecksum
	}
	if err := validate(payload); err != nil {
		return nil, err
	}

	var s Snapshot
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, fmt.Errorf("persist: decode: %w", err)
	}
	if s.Map == nil {
		return nil, errors.New("persist: snapshot has no map")
	}
	if err := s.Map.Validate(); err != nil {
		return nil, fmt.Errorf("persist: %w", err)
	}
	return &s, nil
}

func validate(payload []byte) error {
	sch, err := snapshotSchema()
	if err != nil {
		return fmt.Errorf("persist: schema: %w", err)
	}
	var doc any
	if err := json.Unmarshal(payload, &doc); err != nil {
		return fmt.Errorf("persist: decode: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("persist: invalid snapshot: %w", err)
	}
	return nil
}
