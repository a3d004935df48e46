package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/huyndq/school-admin/internal/app/models"
	appRepos "github.com/huyndq/school-admin/internal/app/repositories"
	"github.com/huyndq/school-admin/internal/pkg/apperrors"
)

// CreateDefaultData populates the job-position catalog so a fresh database is
// immediately usable. Existing entries are left untouched.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	positionRepo := appRepos.NewPositionRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (Positions)...")
	var finalErr error // To collect potential errors without stopping the process

	defaults := []*appModels.Position{
		{Code: "HEAD", Name: "Head of Faculty", Description: "Leads a faculty and its staff", IsActive: true},
		{Code: "DEPT_HEAD", Name: "Head of Department", Description: "Leads a department within a faculty", IsActive: true},
		{Code: "LECT", Name: "Lecturer", Description: "Teaches assigned courses", IsActive: true},
		{Code: "SEN_LECT", Name: "Senior Lecturer", Description: "Teaches courses and mentors junior staff", IsActive: true},
		{Code: "ASSIST", Name: "Teaching Assistant", Description: "Supports lecturers during classes", IsActive: true},
		// Retired position kept on record; listings still show it.
		{Code: "VICE_HEAD", Name: "Vice Head of Faculty", Description: "Former deputy role, merged into Head of Faculty", IsActive: false, IsDeleted: true},
	}

	for _, position := range defaults {
		exists, err := positionRepo.CodeExists(ctx, position.Code)
		if err != nil {
			lgr.Error().Err(err).Str("code", position.Code).Msg("Error checking default position")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if exists {
			continue
		}

		if err := positionRepo.Create(ctx, position); err != nil && !errors.Is(err, apperrors.ErrPositionCodeExists) {
			lgr.Error().Err(err).Str("code", position.Code).Msg("Error creating default position")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Default data check complete.")
	return finalErr
}
