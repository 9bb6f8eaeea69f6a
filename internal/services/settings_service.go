package services

import (
	"context"

	"github.com/vytor/lingoflash/internal/errors"
	"github.com/vytor/lingoflash/internal/logger"
	"github.com/vytor/lingoflash/internal/repository"
)

// Supported native languages.
const (
	LangFR = "fr"
	LangES = "es"
)

// SettingsService handles the single language preference.
type SettingsService interface {
	NativeLang(ctx context.Context) (string, error)
	ToggleNativeLang(ctx context.Context) (string, error)
}

type settingsService struct {
	settings repository.SettingsRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(settings repository.SettingsRepository) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) NativeLang(ctx context.Context) (string, error) {
	lang, err := s.settings.NativeLang(ctx)
	if err != nil {
		return "", errors.NewInternalError(err)
	}
	if lang == "" {
		return LangFR, nil
	}
	return lang, nil
}

func (s *settingsService) ToggleNativeLang(ctx context.Context) (string, error) {
	current, err := s.NativeLang(ctx)
	if err != nil {
		return "", err
	}

	next := LangFR
	if current == LangFR {
		next = LangES
	}
	if err := s.settings.SetNativeLang(ctx, next); err != nil {
		return "", errors.NewInternalError(err)
	}

	logger.FromContext(ctx).Info("native language switched to %s", next)
	return next, nil
}
