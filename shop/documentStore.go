package shop

import (
	"context"
	"encoding/json"
	"errors"

	"go-street-kiosk/database"
	"go-street-kiosk/ledger"
)

const (
	ConfigKey  = "config.json"
	MenuKey    = "menu.json"
	SoldOutKey = "sold_out.json"
)

var (
	ErrItemNotFound = errors.New("menu item not found")
	ErrItemExists   = errors.New("menu item already exists")
	ErrInvalid      = errors.New("invalid shop document")
)

// document reads and writes a singleton JSON blob whole, the same way the
// ledger service treats a weekly ledger.
type document struct {
	store database.BlobStore
}

// load decodes key into dst. It reports false without error when the key is
// absent so the caller keeps its defaults. A payload that does not parse is a
// DecodeError, never a silent reset to defaults.
func (d document) load(ctx context.Context, key string, dst any) (bool, error) {
	data, err := d.store.Get(ctx, key)
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, &ledger.DecodeError{Key: key, Err: err}
	}
	return true, nil
}

func (d document) save(ctx context.Context, key string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	return d.store.Put(ctx, key, data)
}
