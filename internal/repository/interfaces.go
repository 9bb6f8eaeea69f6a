package repository

import (
	"context"

	"github.com/vytor/lingoflash/internal/models"
)

// FlashcardRepository handles flashcard data access
type FlashcardRepository interface {
	List(ctx context.Context) ([]models.Flashcard, error)
	Get(ctx context.Context, id string) (*models.Flashcard, error)
	Put(ctx context.Context, card models.Flashcard) error
	Delete(ctx context.Context, id string) error
}

// FolderRepository handles folder data access
type FolderRepository interface {
	List(ctx context.Context) ([]models.Folder, error)
	Get(ctx context.Context, id string) (*models.Folder, error)
	Put(ctx context.Context, folder models.Folder) error
	Delete(ctx context.Context, id string) error
}

// SettingsRepository handles the single language preference
type SettingsRepository interface {
	NativeLang(ctx context.Context) (string, error)
	SetNativeLang(ctx context.Context, lang string) error
}

// GamificationRepository handles the singleton streak record
type GamificationRepository interface {
	State(ctx context.Context) (*models.GamificationState, error)
	SaveState(ctx context.Context, state models.GamificationState) error
}
