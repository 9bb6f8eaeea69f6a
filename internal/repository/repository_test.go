package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/lingoflash/internal/models"
	"github.com/vytor/lingoflash/internal/repository"
	"github.com/vytor/lingoflash/internal/testutil"
)

func TestFlashcardRepository_RoundTrip(t *testing.T) {
	store := testutil.NewTestStore(t)
	repo := repository.NewFlashcardRepository(store)
	ctx := context.Background()

	card := models.NewFlashcard("card-1", "folder-1", "bonjour", "hola", time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	card.EaseFactor = 2.35
	card.IntervalDays = 6
	card.Repetition = 2
	card.Status = models.StatusReview

	require.NoError(t, repo.Put(ctx, card))

	got, err := repo.Get(ctx, "card-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, card.FR, got.FR)
	assert.Equal(t, card.ES, got.ES)
	assert.Equal(t, card.EaseFactor, got.EaseFactor)
	assert.Equal(t, card.IntervalDays, got.IntervalDays)
	assert.Equal(t, card.Repetition, got.Repetition)
	assert.Equal(t, card.Status, got.Status)
	assert.True(t, card.NextReview.Equal(got.NextReview))
}

func TestFlashcardRepository_GetAbsent(t *testing.T) {
	store := testutil.NewTestStore(t)
	repo := repository.NewFlashcardRepository(store)

	got, err := repo.Get(context.Background(), "no-such-card")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFlashcardRepository_ListAndDelete(t *testing.T) {
	store := testutil.NewTestStore(t)
	repo := repository.NewFlashcardRepository(store)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.Put(ctx, models.NewFlashcard("a", "f", "chat", "gato", now)))
	require.NoError(t, repo.Put(ctx, models.NewFlashcard("b", "f", "chien", "perro", now)))

	cards, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, cards, 2)

	require.NoError(t, repo.Delete(ctx, "a"))

	cards, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "b", cards[0].ID)
}

func TestFolderRepository_RoundTrip(t *testing.T) {
	store := testutil.NewTestStore(t)
	repo := repository.NewFolderRepository(store)
	ctx := context.Background()

	folder := models.Folder{
		ID:       "folder-1",
		ParentID: "root",
		Name:     models.LocalizedString{FR: "Animaux", ES: "Animales"},
		Icon:     "paw",
	}
	require.NoError(t, repo.Put(ctx, folder))

	got, err := repo.Get(ctx, "folder-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, folder, *got)
}

func TestSettingsRepository_DefaultThenToggle(t *testing.T) {
	store := testutil.NewTestStore(t)
	repo := repository.NewSettingsRepository(store)
	ctx := context.Background()

	lang, err := repo.NativeLang(ctx)
	require.NoError(t, err)
	assert.Empty(t, lang)

	require.NoError(t, repo.SetNativeLang(ctx, "es"))

	lang, err = repo.NativeLang(ctx)
	require.NoError(t, err)
	assert.Equal(t, "es", lang)
}

func TestGamificationRepository_RoundTrip(t *testing.T) {
	store := testutil.NewTestStore(t)
	repo := repository.NewGamificationRepository(store)
	ctx := context.Background()

	got, err := repo.State(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	state := models.GamificationState{
		Streak:        7,
		LastLoginDate: "2025-03-01",
		History: []models.StreakDay{
			{Date: "2025-02-28", Status: models.StreakFreeze},
			{Date: "2025-03-01", Status: models.StreakFlame},
		},
	}
	require.NoError(t, repo.SaveState(ctx, state))

	got, err = repo.State(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, state, *got)
}
