package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	intakeerrors "renovacampo/internal/intake/errors"
	"renovacampo/pkg/config"
	"renovacampo/pkg/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "Submissions"
)

type SubmissionRepository interface {
	Create(ctx context.Context, s *model.Submission) error
	FindByID(ctx context.Context, id string) (*model.Submission, error)
	MarkForwarded(ctx context.Context, id string, backend json.RawMessage) error
	List(ctx context.Context, kind model.EntityKind, limit int64) ([]*model.Submission, error)
	Ping(ctx context.Context) error
}

type mongoSubmissionRepository struct {
	cfg        *config.Config
	client     *mongo.Client
	collection *mongo.Collection
}

func NewMongoSubmissionRepository(cfg *config.Config) SubmissionRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoSubmissionRepository{
		cfg:        cfg,
		client:     cfg.Client.Mongo,
		collection: db.Collection(CollectionName),
	}
}

type submissionDocument struct {
	ID        string     `bson:"_id"`
	Kind      string     `bson:"kind"`
	Raw       bson.D     `bson:"raw"`
	Payload   bson.Raw   `bson:"payload"`
	Degraded  []string   `bson:"degraded,omitempty"`
	Forwarded bool       `bson:"forwarded"`
	Backend   string     `bson:"backend,omitempty"`
	CreatedAt time.Time  `bson:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty"`
}

// withTimeout bounds ctx by timeout unless the caller already set a
// shorter deadline.
func (r *mongoSubmissionRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < timeout {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoSubmissionRepository) Create(ctx context.Context, s *model.Submission) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	}

	doc, err := toDocument(s)
	if err != nil {
		return err
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to archive submission: %w", err)
	}
	return nil
}

func (r *mongoSubmissionRepository) FindByID(ctx context.Context, id string) (*model.Submission, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	if err := uuid.Validate(id); err != nil {
		return nil, fmt.Errorf("%w: %s", intakeerrors.ErrInvalidID, id)
	}

	var doc submissionDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", intakeerrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to find submission: %w", err)
	}

	return fromDocument(&doc)
}

func (r *mongoSubmissionRepository) MarkForwarded(ctx context.Context, id string, backend json.RawMessage) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	now := time.Now().UTC().Truncate(time.Millisecond)
	set := bson.M{"forwarded": true, "updated_at": now}
	if len(backend) > 0 {
		set["backend"] = string(backend)
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to mark submission forwarded: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", intakeerrors.ErrNotFound, id)
	}
	return nil
}

func (r *mongoSubmissionRepository) Ping(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()
	return r.client.Ping(ctx, nil)
}

// List returns the latest submissions of kind, newest first. An empty kind
// lists every kind.
func (r *mongoSubmissionRepository) List(ctx context.Context, kind model.EntityKind, limit int64) ([]*model.Submission, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetLimit(limit).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	filter := bson.M{}
	if kind != "" {
		filter["kind"] = string(kind)
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []submissionDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode submissions: %w", err)
	}

	out := make([]*model.Submission, 0, len(docs))
	for i := range docs {
		s, err := fromDocument(&docs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func toDocument(s *model.Submission) (*submissionDocument, error) {
	payload, err := bson.Marshal(s.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	raw := bson.D{}
	if s.Raw != nil {
		s.Raw.Range(func(key string, value any) bool {
			raw = append(raw, bson.E{Key: key, Value: value})
			return true
		})
	}

	return &submissionDocument{
		ID:        s.ID,
		Kind:      string(s.Kind),
		Raw:       raw,
		Payload:   payload,
		Degraded:  s.Degraded,
		Forwarded: s.Forwarded,
		Backend:   string(s.Backend),
		CreatedAt: s.CreatedAt,
	}, nil
}

func fromDocument(doc *submissionDocument) (*model.Submission, error) {
	kind := model.EntityKind(doc.Kind)
	payload := model.NewEntity(kind)
	if payload == nil {
		return nil, fmt.Errorf("archived submission %s has unknown kind %q", doc.ID, doc.Kind)
	}
	if len(doc.Payload) > 0 {
		if err := bson.Unmarshal(doc.Payload, payload); err != nil {
			return nil, fmt.Errorf("failed to decode payload: %w", err)
		}
	}

	raw := model.NewFields()
	for _, e := range doc.Raw {
		raw.Set(e.Key, plain(e.Value))
	}

	s := &model.Submission{
		ID:        doc.ID,
		Kind:      kind,
		Raw:       raw,
		Payload:   payload,
		Degraded:  doc.Degraded,
		Forwarded: doc.Forwarded,
		CreatedAt: doc.CreatedAt,
	}
	if doc.Backend != "" {
		s.Backend = json.RawMessage(doc.Backend)
	}
	return s, nil
}

// plain converts decoded BSON containers back to ordinary Go values.
func plain(v any) any {
	switch t := v.(type) {
	case primitive.D:
		m := make(map[string]any, len(t))
		for _, e := range t {
			m[e.Key] = plain(e.Value)
		}
		return m
	case primitive.A:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = plain(item)
		}
		return out
	default:
		return v
	}
}
