package usecase

import (
	stderrors "errors"

	"jalsetu/pkg/errors"
	"jalsetu/pkg/logger"
)

// coordinationErr keeps domain errors intact across a failed unit of work
// and wraps anything else as a rolled-back atomic unit the caller may
// retry.
func coordinationErr(err error) error {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	logger.Error("atomic unit failed: %v", err)
	return errors.CoordinationFailure("operation could not be completed", err)
}
