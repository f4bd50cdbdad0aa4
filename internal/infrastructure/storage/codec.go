package storage

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/bisarnacki/magog/internal/engine"
	"github.com/bisarnacki/magog/internal/forms"
	"github.com/fxamacker/cbor/v2"
)

const (
	SaveMagic   string = `MGSV` // 4 байта
	SaveVersion uint32 = 1
)

// MaxBodyLen - предел длины тела сохранения.
const MaxBodyLen uint32 = 64 << 20

// SaveHeader - заголовок файла сохранения, пишется binary.Write целиком.
type SaveHeader struct {
	Magic   [4]byte // 4 байта
	Version uint32  // 4 байта
	Tick    uint64  // 8 байт
	BodyLen uint32  // 4 байта
}

// EncodeError - мир не удалось сохранить.
type EncodeError struct {
	Stage string
	Err   error
}

func (e *EncodeError) Error() string { return fmt.Sprintf("encode %s: %v", e.Stage, e.Err) }
func (e *EncodeError) Unwrap() error { return e.Err }

// DecodeError - сохранение повреждено или несовместимо.
type DecodeError struct {
	Stage string
	Err   error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode %s: %v", e.Stage, e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	if encMode, err = cbor.CanonicalEncOptions().EncMode(); err != nil {
		panic(err)
	}
	if decMode, err = (cbor.DecOptions{MaxArrayElements: 1 << 24, MaxMapPairs: 1 << 24}).DecMode(); err != nil {
		panic(err)
	}
}

// Save пишет мир в w: заголовок и CBOR-тело снимка.
func Save(world *engine.World, w io.Writer) error {
	snap, err := world.Snapshot()
	if err != nil {
		return &EncodeError{Stage: "snapshot", Err: err}
	}
	body, err := encMode.Marshal(snap)
	if err != nil {
		return &EncodeError{Stage: "body", Err: err}
	}
	if len(body) > int(MaxBodyLen) {
		return &EncodeError{Stage: "body", Err: fmt.Errorf("body length %d exceeds limit %d", len(body), MaxBodyLen)}
	}

	header := SaveHeader{
		Version: SaveVersion,
		Tick:    snap.Tick,
		BodyLen: uint32(len(body)),
	}
	copy(header.Magic[:], SaveMagic)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return &EncodeError{Stage: "header", Err: err}
	}
	if _, err := w.Write(body); err != nil {
		return &EncodeError{Stage: "body", Err: err}
	}
	return nil
}

// Load читает мир, записанный Save. Формы берутся из reg.
func Load(r io.Reader, reg *forms.Registry) (*engine.World, error) {
	var header SaveHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, &DecodeError{Stage: "header", Err: err}
	}
	if string(header.Magic[:]) != SaveMagic {
		return nil, &DecodeError{Stage: "header", Err: fmt.Errorf("invalid magic %q", header.Magic[:])}
	}
	if header.Version != SaveVersion {
		return nil, &DecodeError{Stage: "header", Err: fmt.Errorf("unsupported version: %d (expected %d)", header.Version, SaveVersion)}
	}

	if header.BodyLen > MaxBodyLen {
		return nil, &DecodeError{Stage: "header", Err: fmt.Errorf("body length %d exceeds limit %d", header.BodyLen, MaxBodyLen)}
	}

	body, err := io.ReadAll(io.LimitReader(r, int64(header.BodyLen)))
	if err != nil {
		return nil, &DecodeError{Stage: "body", Err: err}
	}
	if len(body) != int(header.BodyLen) {
		return nil, &DecodeError{Stage: "body", Err: fmt.Errorf("body truncated: %d of %d bytes: %w", len(body), header.BodyLen, io.ErrUnexpectedEOF)}
	}
	var snap engine.Snapshot
	if err := decMode.Unmarshal(body, &snap); err != nil {
		return nil, &DecodeError{Stage: "body", Err: err}
	}
	if snap.Tick != header.Tick {
		return nil, &DecodeError{Stage: "body", Err: fmt.Errorf("tick %d does not match header tick %d", snap.Tick, header.Tick)}
	}

	world, err := engine.Restore(&snap, reg)
	if err != nil {
		return nil, &DecodeError{Stage: "restore", Err: err}
	}
	return world, nil
}

// Digest - отпечаток игрового состояния. Анимации не входят: их время
// зависит от часов отрисовки.
func Digest(world *engine.World) (string, error) {
	snap, err := world.Snapshot()
	if err != nil {
		return "", err
	}
	snap.Anim = nil
	body, err := encMode.Marshal(snap)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:]), nil
}

// Encode - Save в память.
func Encode(world *engine.World) ([]byte, error) {
	var buf bytes.Buffer
	if err := Save(world, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
