package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	apperrors "github.com/vytor/lingoflash/internal/errors"
	"github.com/vytor/lingoflash/internal/models"
	"github.com/vytor/lingoflash/internal/services"
	"github.com/vytor/lingoflash/internal/testutil/mocks"
)

func TestDeleteFolder_SubtreeAndReassignment(t *testing.T) {
	folders := new(mocks.MockFolderRepository)
	cards := new(mocks.MockFlashcardRepository)

	folders.On("List", mock.Anything).Return([]models.Folder{
		{ID: "keep"},
		{ID: "animals"},
		{ID: "pets", ParentID: "animals"},
	}, nil)
	cards.On("List", mock.Anything).Return([]models.Flashcard{
		{ID: "cat", FolderID: "pets"},
		{ID: "dog", FolderID: "animals"},
		{ID: "bread", FolderID: "keep"},
	}, nil)

	var reassigned []models.Flashcard
	cards.On("Put", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		reassigned = append(reassigned, args.Get(1).(models.Flashcard))
	}).Return(nil)
	folders.On("Delete", mock.Anything, "animals").Return(nil)
	folders.On("Delete", mock.Anything, "pets").Return(nil)

	svc := services.NewFolderService(folders, cards)
	err := svc.DeleteFolder(context.Background(), "animals")

	require.NoError(t, err)
	require.Len(t, reassigned, 2, "cards from the whole subtree move to the surviving folder")
	for _, c := range reassigned {
		assert.Equal(t, "keep", c.FolderID)
	}
	folders.AssertCalled(t, "Delete", mock.Anything, "animals")
	folders.AssertCalled(t, "Delete", mock.Anything, "pets")
	folders.AssertNotCalled(t, "Delete", mock.Anything, "keep")
}

func TestDeleteFolder_RefusesLastFolder(t *testing.T) {
	folders := new(mocks.MockFolderRepository)
	cards := new(mocks.MockFlashcardRepository)

	folders.On("List", mock.Anything).Return([]models.Folder{
		{ID: "root"},
		{ID: "child", ParentID: "root"},
	}, nil)

	svc := services.NewFolderService(folders, cards)
	err := svc.DeleteFolder(context.Background(), "root")

	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeConflict, appErr.Code)
	folders.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCreateFolder_UnknownParent(t *testing.T) {
	folders := new(mocks.MockFolderRepository)
	cards := new(mocks.MockFlashcardRepository)
	folders.On("Get", mock.Anything, "ghost").Return(nil, nil)

	svc := services.NewFolderService(folders, cards)
	_, err := svc.CreateFolder(context.Background(), "ghost", models.LocalizedString{FR: "Animaux", ES: "Animales"}, "🐾")

	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
}
