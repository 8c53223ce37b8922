package repository

import (
	"context"
	"encoding/json"

	intakeerrors "renovacampo/internal/intake/errors"
	"renovacampo/pkg/model"
)

// noopSubmissionRepository stands in for the archive when Mongo is disabled.
// Writes are dropped and reads report ErrArchiveDisabled.
type noopSubmissionRepository struct{}

func NewNoopSubmissionRepository() SubmissionRepository {
	return noopSubmissionRepository{}
}

func (noopSubmissionRepository) Create(context.Context, *model.Submission) error {
	return nil
}

func (noopSubmissionRepository) FindByID(context.Context, string) (*model.Submission, error) {
	return nil, intakeerrors.ErrArchiveDisabled
}

func (noopSubmissionRepository) MarkForwarded(context.Context, string, json.RawMessage) error {
	return nil
}

func (noopSubmissionRepository) List(context.Context, model.EntityKind, int64) ([]*model.Submission, error) {
	return nil, intakeerrors.ErrArchiveDisabled
}

func (noopSubmissionRepository) Ping(context.Context) error {
	return nil
}
