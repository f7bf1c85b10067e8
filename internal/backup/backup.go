// Package backup writes and reads a portable archive of the block log.
//
// The archive is a single CBOR document holding every block in ledger order.
// Payloads are stored in their JSON form so an archive stays readable by the
// block codec of any later version.
package backup

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/go-petr/swagbank/internal/domain"
	"github.com/go-petr/swagbank/pkg/jsonpkg"
)

// Version is the archive format written by Write.
const Version = 1

// ErrUnsupportedVersion is returned by Read for archives of another format.
var ErrUnsupportedVersion = errors.New("unsupported backup version")

type record struct {
	Timestamp time.Time        `cbor:"1,keyasint"`
	Issuer    domain.UserID    `cbor:"2,keyasint"`
	Kind      domain.BlockKind `cbor:"3,keyasint"`
	Payload   []byte           `cbor:"4,keyasint"`
}

type archive struct {
	Version   int       `cbor:"1,keyasint"`
	CreatedAt time.Time `cbor:"2,keyasint"`
	Blocks    []record  `cbor:"3,keyasint"`
}

var encMode = func() cbor.EncMode {
	em, err := cbor.EncOptions{Time: cbor.TimeRFC3339Nano}.EncMode()
	if err != nil {
		panic(err)
	}

	return em
}()

// Write encodes blocks into w.
func Write(w io.Writer, blocks []domain.Block, createdAt time.Time) error {
	a := archive{
		Version:   Version,
		CreatedAt: createdAt.UTC(),
		Blocks:    make([]record, 0, len(blocks)),
	}

	for i, b := range blocks {
		if b.Payload == nil {
			return fmt.Errorf("block %d: %w", i, domain.ErrUnknownBlockKind)
		}

		payload, err := jsonpkg.Marshal(b.Payload)
		if err != nil {
			return fmt.Errorf("encode block %d: %w", i, err)
		}

		a.Blocks = append(a.Blocks, record{
			Timestamp: b.Timestamp.UTC(),
			Issuer:    b.Issuer,
			Kind:      b.Kind(),
			Payload:   payload,
		})
	}

	return encMode.NewEncoder(w).Encode(a)
}

// Read decodes an archive written by Write.
func Read(r io.Reader) ([]domain.Block, error) {
	var a archive
	if err := cbor.NewDecoder(r).Decode(&a); err != nil {
		return nil, fmt.Errorf("decode backup: %w", err)
	}

	if a.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, a.Version)
	}

	blocks := make([]domain.Block, 0, len(a.Blocks))

	for i, rec := range a.Blocks {
		p, err := domain.DecodePayload(rec.Kind, rec.Payload)
		if err != nil {
			return nil, fmt.Errorf("decode block %d (%s): %w", i, rec.Kind, err)
		}

		blocks = append(blocks, domain.Block{Timestamp: rec.Timestamp.UTC(), Issuer: rec.Issuer, Payload: p})
	}

	return blocks, nil
}
