package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	intakeerrors "renovacampo/internal/intake/errors"
	"renovacampo/internal/intake/repository"
	"renovacampo/pkg/config"
	apperrors "renovacampo/pkg/errors"
	"renovacampo/pkg/kafka"
	"renovacampo/pkg/mapper"
	"renovacampo/pkg/middleware"
	"renovacampo/pkg/model"
	"renovacampo/pkg/taxid"
	"renovacampo/pkg/validator"

	"github.com/google/uuid"
)

const (
	EventSource        = "renovacampo-intake"
	EventSchemaVersion = "1"

	DefaultListLimit = 20
	MaxListLimit     = 100
)

// RequiredFields lists the attributes a form must supply for each kind.
var RequiredFields = map[model.EntityKind][]string{
	model.KindProperty: {mapper.AttrName, mapper.AttrAddress},
	model.KindProject:  {mapper.AttrName},
	model.KindInvestor: {mapper.AttrName, mapper.AttrTaxID, mapper.AttrEmail},
}

// Publisher emits normalized submission events.
type Publisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

// Forwarder stores a normalized entity with the registry backend.
type Forwarder interface {
	Create(ctx context.Context, entity model.Entity) (json.RawMessage, error)
}

type IntakeService interface {
	Submit(ctx context.Context, kind string, raw *model.RawFormInput) (*model.Submission, error)
	Preview(ctx context.Context, kind string, raw *model.RawFormInput) (*Preview, error)
	ValidateTaxID(raw string) TaxIDResult
	GetSubmission(ctx context.Context, id string) (*model.Submission, error)
	ListSubmissions(ctx context.Context, kind string, limit int) ([]*model.Submission, error)
}

type Preview struct {
	Kind       model.EntityKind  `json:"kind"`
	Payload    model.Entity      `json:"payload"`
	Overflow   *model.Overflow   `json:"overflow"`
	Sources    map[string]string `json:"sources"`
	Degraded   []string          `json:"degraded"`
	Validation validator.Result  `json:"validation"`
}

type TaxIDResult struct {
	Valid     bool       `json:"valid"`
	Kind      taxid.Kind `json:"kind"`
	Digits    string     `json:"digits"`
	Formatted string     `json:"formatted"`
}

type Option func(*intakeService)

func WithPublisher(p Publisher) Option {
	return func(s *intakeService) { s.publisher = p }
}

func WithForwarder(f Forwarder) Option {
	return func(s *intakeService) { s.forwarder = f }
}

type intakeService struct {
	repo      repository.SubmissionRepository
	mapper    *mapper.Mapper
	validator *validator.PayloadValidator
	publisher Publisher
	forwarder Forwarder
	cfg       *config.Config
}

// NewIntakeService wires the mapping pipeline. validator may be nil, in which
// case only the required-field check runs.
func NewIntakeService(
	repo repository.SubmissionRepository,
	m *mapper.Mapper,
	validator *validator.PayloadValidator,
	cfg *config.Config,
	opts ...Option,
) IntakeService {
	s := &intakeService{
		repo:      repo,
		mapper:    m,
		validator: validator,
		cfg:       cfg,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *intakeService) Submit(ctx context.Context, kindName string, raw *model.RawFormInput) (*model.Submission, error) {
	kind, res, err := s.mapForm(kindName, raw)
	if err != nil {
		return nil, err
	}

	if problems := s.problems(kind, raw, res); len(problems) > 0 {
		s.cfg.Log.Warn("Submission validation failed",
			"kind", kind,
			"errors", problems,
		)
		return nil, apperrors.Validation("Submission validation failed", map[string]any{
			"errors": problems,
		})
	}

	sub := &model.Submission{
		ID:        uuid.New().String(),
		Kind:      kind,
		Raw:       raw,
		Payload:   res.Entity,
		Degraded:  res.Degraded,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		s.cfg.Log.Error("Failed to archive submission",
			"id", sub.ID,
			"kind", kind,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to archive submission", err)
	}

	if s.forwarder != nil {
		if err := s.forward(ctx, sub); err != nil {
			return nil, err
		}
	}

	if s.publisher != nil {
		s.publish(ctx, sub)
	}

	s.cfg.Log.Info("Submission accepted",
		"id", sub.ID,
		"kind", kind,
		"forwarded", sub.Forwarded,
		"degraded", len(sub.Degraded),
	)
	return sub, nil
}

func (s *intakeService) Preview(_ context.Context, kindName string, raw *model.RawFormInput) (*Preview, error) {
	kind, res, err := s.mapForm(kindName, raw)
	if err != nil {
		return nil, err
	}

	problems := s.problems(kind, raw, res)
	return &Preview{
		Kind:     kind,
		Payload:  res.Entity,
		Overflow: res.Overflow,
		Sources:  res.Sources,
		Degraded: res.Degraded,
		Validation: validator.Result{
			IsValid: len(problems) == 0,
			Errors:  problems,
		},
	}, nil
}

func (s *intakeService) ValidateTaxID(raw string) TaxIDResult {
	digits := taxid.Clean(raw)
	return TaxIDResult{
		Valid:     taxid.Validate(digits),
		Kind:      taxid.DetectKind(digits),
		Digits:    digits,
		Formatted: taxid.Format(digits),
	}
}

func (s *intakeService) GetSubmission(ctx context.Context, id string) (*model.Submission, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.InvalidInput("Submission ID cannot be empty")
	}

	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError(err, "Failed to retrieve submission", "id", id)
	}
	return sub, nil
}

func (s *intakeService) ListSubmissions(ctx context.Context, kindName string, limit int) ([]*model.Submission, error) {
	var kind model.EntityKind
	if kindName != "" {
		k, ok := model.ParseEntityKind(kindName)
		if !ok {
			return nil, apperrors.InvalidInput(fmt.Sprintf("unknown entity kind: %s", kindName))
		}
		kind = k
	}

	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	subs, err := s.repo.List(ctx, kind, int64(limit))
	if err != nil {
		return nil, s.mapRepoError(err, "Failed to list submissions", "kind", kind)
	}
	return subs, nil
}

func (s *intakeService) mapForm(kindName string, raw *model.RawFormInput) (model.EntityKind, *mapper.Result, error) {
	kind, ok := model.ParseEntityKind(kindName)
	if !ok {
		return "", nil, apperrors.InvalidInput(fmt.Sprintf("unknown entity kind: %s", kindName))
	}
	if raw == nil {
		return "", nil, apperrors.InvalidInput("form data is required")
	}

	res, err := s.mapper.Map(kind, raw)
	if err != nil {
		return "", nil, apperrors.InvalidInput(err.Error())
	}
	return kind, res, nil
}

// problems runs the required-field check over the form values that sourced
// each attribute, then the payload rules when a validator is configured.
// Defaults filled in by the mapper do not satisfy a required field.
func (s *intakeService) problems(kind model.EntityKind, raw *model.RawFormInput, res *mapper.Result) []string {
	sourced := make(map[string]any, len(res.Sources))
	for attr, field := range res.Sources {
		if v, ok := raw.Get(field); ok {
			sourced[attr] = model.StringValue(v)
		}
	}

	problems := validator.ValidateRequired(sourced, RequiredFields[kind]).Errors

	if s.validator != nil {
		if err := s.validator.Validate(res.Entity); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				problems = append(problems, verrs.Messages()...)
			} else {
				problems = append(problems, err.Error())
			}
		}
	}
	return problems
}

func (s *intakeService) forward(ctx context.Context, sub *model.Submission) error {
	stored, err := s.forwarder.Create(ctx, sub.Payload)
	if err != nil {
		s.cfg.Log.Error("Failed to forward submission to backend",
			"id", sub.ID,
			"kind", sub.Kind,
			"error", err,
		)
		return apperrors.BadGateway("Registry backend", err)
	}

	sub.Forwarded = true
	sub.Backend = stored

	if err := s.repo.MarkForwarded(ctx, sub.ID, stored); err != nil {
		s.cfg.Log.Warn("Failed to record forwarded submission",
			"id", sub.ID,
			"error", err,
		)
	}
	return nil
}

// publish emits the normalized event. The submission is already archived
// and forwarded, so a failed publish is logged and not returned.
func (s *intakeService) publish(ctx context.Context, sub *model.Submission) {
	msg, err := kafka.NewMessage().
		WithKey(sub.ID).
		WithValue(sub).
		WithEventID("").
		WithEventType(EventType(sub.Kind)).
		WithCorrelationID(middleware.RequestIDFromContext(ctx)).
		WithSchemaVersion(EventSchemaVersion).
		WithSource(EventSource).
		Build()
	if err == nil {
		err = s.publisher.Publish(ctx, msg)
	}
	if err != nil {
		s.cfg.Log.Warn("Failed to publish submission event",
			"id", sub.ID,
			"kind", sub.Kind,
			"error", err,
		)
	}
}

func (s *intakeService) mapRepoError(err error, message string, args ...any) error {
	switch {
	case errors.Is(err, intakeerrors.ErrNotFound):
		return apperrors.NotFound("Submission")
	case errors.Is(err, intakeerrors.ErrInvalidID):
		return apperrors.InvalidInput("Invalid submission ID format")
	case errors.Is(err, intakeerrors.ErrArchiveDisabled):
		return apperrors.Unavailable("Submission archive")
	}
	s.cfg.Log.Error(message, append(args, "error", err)...)
	return apperrors.Internal(message, err)
}

// EventType names the event published for a normalized submission of kind.
func EventType(kind model.EntityKind) string {
	return "intake." + string(kind) + ".normalized"
}
