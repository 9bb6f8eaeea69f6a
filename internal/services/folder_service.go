package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/vytor/lingoflash/internal/errors"
	"github.com/vytor/lingoflash/internal/logger"
	"github.com/vytor/lingoflash/internal/models"
	"github.com/vytor/lingoflash/internal/repository"
	"github.com/vytor/lingoflash/internal/study"
)

// FolderService handles folder CRUD. Deleting a folder removes its
// whole subtree and moves the affected cards to a surviving folder.
type FolderService interface {
	ListFolders(ctx context.Context) ([]models.Folder, error)
	CreateFolder(ctx context.Context, parentID string, name models.LocalizedString, icon string) (*models.Folder, error)
	DeleteFolder(ctx context.Context, id string) error
}

type folderService struct {
	folders repository.FolderRepository
	cards   repository.FlashcardRepository
}

// NewFolderService creates a new FolderService
func NewFolderService(folders repository.FolderRepository, cards repository.FlashcardRepository) FolderService {
	return &folderService{folders: folders, cards: cards}
}

func (s *folderService) ListFolders(ctx context.Context) ([]models.Folder, error) {
	folders, err := s.folders.List(ctx)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return folders, nil
}

func (s *folderService) CreateFolder(ctx context.Context, parentID string, name models.LocalizedString, icon string) (*models.Folder, error) {
	log := logger.FromContext(ctx)

	if parentID != "" {
		parent, err := s.folders.Get(ctx, parentID)
		if err != nil {
			return nil, errors.NewInternalError(err)
		}
		if parent == nil {
			return nil, errors.NewNotFoundError("folder", parentID)
		}
	}

	folder := models.Folder{
		ID:       uuid.NewString(),
		ParentID: parentID,
		Name:     name,
		Icon:     icon,
	}
	if err := s.folders.Put(ctx, folder); err != nil {
		log.Error("failed to save folder: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Info("folder created: id=%s, parent=%s", folder.ID, parentID)
	return &folder, nil
}

func (s *folderService) DeleteFolder(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	folders, err := s.folders.List(ctx)
	if err != nil {
		return errors.NewInternalError(err)
	}

	doomed := study.SubtreeIDs(folders, id)

	// Orphaned cards need somewhere to live; refuse to delete the last
	// surviving folder.
	var fallback *models.Folder
	for i := range folders {
		if !doomed[folders[i].ID] {
			fallback = &folders[i]
			break
		}
	}
	if fallback == nil {
		return errors.NewConflictError("cannot delete the only remaining folder")
	}

	cards, err := s.cards.List(ctx)
	if err != nil {
		return errors.NewInternalError(err)
	}
	for _, card := range cards {
		if !doomed[card.FolderID] {
			continue
		}
		card.FolderID = fallback.ID
		if err := s.cards.Put(ctx, card); err != nil {
			log.Error("failed to reassign card %s: %v", card.ID, err)
			return errors.NewInternalError(err)
		}
	}

	for folderID := range doomed {
		if err := s.folders.Delete(ctx, folderID); err != nil {
			log.Error("failed to delete folder %s: %v", folderID, err)
			return errors.NewInternalError(err)
		}
	}

	log.Info("folder subtree deleted: root=%s, folders=%d", id, len(doomed))
	return nil
}
