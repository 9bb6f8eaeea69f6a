package repository

import (
	"context"
	"encoding/json"

	"github.com/vytor/lingoflash/internal/storage"
)

const nativeLangKey = "nativeLang"

// setting mirrors the stored {key, value} shape of the settings collection.
type setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type settingsRepository struct {
	store storage.Store
}

// NewSettingsRepository creates a new SettingsRepository over the store
func NewSettingsRepository(store storage.Store) SettingsRepository {
	return &settingsRepository{store: store}
}

// NativeLang returns the stored language preference, or "" when unset.
func (r *settingsRepository) NativeLang(ctx context.Context) (string, error) {
	data, err := r.store.Get(ctx, storage.CollectionSettings, nativeLangKey)
	if err != nil || data == nil {
		return "", err
	}
	var s setting
	if err := json.Unmarshal(data, &s); err != nil {
		return "", err
	}
	return s.Value, nil
}

func (r *settingsRepository) SetNativeLang(ctx context.Context, lang string) error {
	data, err := json.Marshal(setting{Key: nativeLangKey, Value: lang})
	if err != nil {
		return err
	}
	return r.store.Put(ctx, storage.CollectionSettings, nativeLangKey, data)
}
