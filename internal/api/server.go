package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/vytor/lingoflash/internal/errors"
	"github.com/vytor/lingoflash/internal/services"
	"github.com/vytor/lingoflash/internal/storage"
	"github.com/vytor/lingoflash/internal/streak"
)

// Server wires services to HTTP handlers.
type Server struct {
	CardService     services.CardService
	FolderService   services.FolderService
	StudyService    services.StudyService
	SettingsService services.SettingsService
	StatsService    services.StatsService
	StreakEngine    *streak.Engine
	Resetter        storage.Resetter
}

var validate = validator.New()

// decodeAndValidate decodes a JSON body into v and runs struct validation.
func decodeAndValidate(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.NewBadRequestError("invalid JSON body")
	}
	if err := validate.Struct(v); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return errors.NewValidationError(fe.Field(), "failed on '"+fe.Tag()+"' rule")
		}
		return errors.NewBadRequestError("invalid request")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
