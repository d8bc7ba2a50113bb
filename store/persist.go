package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/cnf/structhash"

	"github.com/npillmayer/treesplice/bank"
)

// ErrCorruptSnapshot is returned by Load when a snapshot's checksum does
// not match its payload.
var ErrCorruptSnapshot = errors.New("store: snapshot checksum mismatch")

// envelope is the on-disk wrapper around a Bank snapshot: the raw Bank
// payload plus a structhash checksum over it, so a truncated write or a
// foreign file is rejected at load time instead of silently producing a
// half-populated Bank.
type envelope struct {
	Bank     json.RawMessage `json:"bank"`
	Checksum string          `json:"checksum"`
}

func checksum(payload json.RawMessage) (string, error) {
	h, err := structhash.Hash(payload, 1)
	if err != nil {
		return "", fmt.Errorf("store: hashing snapshot: %w", err)
	}
	return h, nil
}

// Persist writes b to path as a checksummed JSON snapshot, creating or
// truncating the file.
func Persist(path string, b *bank.Bank) error {
	payload, err := b.MarshalJSON()
	if err != nil {
		return fmt.Errorf("store: marshaling bank: %w", err)
	}
	sum, err := checksum(payload)
	if err != nil {
		return err
	}
	data, err := json.Marshal(envelope{Bank: payload, Checksum: sum})
	if err != nil {
		return fmt.Errorf("store: marshaling envelope: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("store: writing %s: %w", path, err)
	}
	tracer().Infof("store: persisted bank snapshot to %s (%d bytes)", path, len(data))
	return nil
}

// Load reads a snapshot previously written by Persist and restores a Bank
// from it. It returns ErrCorruptSnapshot if the stored checksum does not
// match the payload.
func Load(path string) (*bank.Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("store: reading %s: %w", path, err)
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("store: decoding envelope: %w", err)
	}
	want, err := checksum(env.Bank)
	if err != nil {
		return nil, err
	}
	if want != env.Checksum {
		return nil, fmt.Errorf("%w: %s", ErrCorruptSnapshot, path)
	}
	var b bank.Bank
	if err := b.UnmarshalJSON(env.Bank); err != nil {
		return nil, fmt.Errorf("store: decoding bank: %w", err)
	}
	tracer().Infof("store: loaded bank snapshot from %s", path)
	return &b, nil
}
