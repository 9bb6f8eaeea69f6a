package repository

import (
	"context"
	"encoding/json"

	"github.com/vytor/lingoflash/internal/logger"
	"github.com/vytor/lingoflash/internal/models"
	"github.com/vytor/lingoflash/internal/storage"
)

type folderRepository struct {
	store storage.Store
}

// NewFolderRepository creates a new FolderRepository over the store
func NewFolderRepository(store storage.Store) FolderRepository {
	return &folderRepository{store: store}
}

func (r *folderRepository) List(ctx context.Context) ([]models.Folder, error) {
	log := logger.FromContext(ctx).WithPrefix("folder_repo")

	records, err := r.store.GetAll(ctx, storage.CollectionFolders)
	if err != nil {
		log.Error("failed to list folders: %v", err)
		return nil, err
	}

	folders := make([]models.Folder, 0, len(records))
	for _, data := range records {
		var f models.Folder
		if err := json.Unmarshal(data, &f); err != nil {
			log.Error("failed to decode folder record: %v", err)
			return nil, err
		}
		folders = append(folders, f)
	}
	return folders, nil
}

func (r *folderRepository) Get(ctx context.Context, id string) (*models.Folder, error) {
	data, err := r.store.Get(ctx, storage.CollectionFolders, id)
	if err != nil || data == nil {
		return nil, err
	}
	var f models.Folder
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *folderRepository) Put(ctx context.Context, folder models.Folder) error {
	data, err := json.Marshal(folder)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, storage.CollectionFolders, folder.ID, data)
}

func (r *folderRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, storage.CollectionFolders, id)
}
