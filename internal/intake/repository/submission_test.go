package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	intakeerrors "renovacampo/internal/intake/errors"
	"renovacampo/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
)

func TestDocumentConversion_PreservesSubmission(t *testing.T) {
	created := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	s := &model.Submission{
		ID:   "0b6c1c1e-6a55-4c5e-9f0e-3f3f8e4a2b11",
		Kind: model.KindInvestor,
		Raw: model.FieldsFromPairs(
			"nome", "Maria Souza",
			"cpfcnpj", "529.982.247-25",
			"aceite", true,
			"perfil", map[string]any{"risco": "moderado"},
		),
		Payload: &model.InvestorPayload{
			Name:       "Maria Souza",
			TaxID:      "52998224725",
			TotalFunds: 1500.5,
			Active:     true,
		},
		Degraded:  []string{"phone"},
		Backend:   json.RawMessage(`{"id":7}`),
		CreatedAt: created,
	}

	doc, err := toDocument(s)
	if err != nil {
		t.Fatalf("toDocument() error = %v", err)
	}

	data, err := bson.Marshal(doc)
	if err != nil {
		t.Fatalf("bson.Marshal() error = %v", err)
	}
	var decoded submissionDocument
	if err := bson.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("bson.Unmarshal() error = %v", err)
	}

	got, err := fromDocument(&decoded)
	if err != nil {
		t.Fatalf("fromDocument() error = %v", err)
	}

	if got.ID != s.ID || got.Kind != s.Kind {
		t.Errorf("identity = %s/%s, want %s/%s", got.ID, got.Kind, s.ID, s.Kind)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, created)
	}
	if string(got.Backend) != `{"id":7}` {
		t.Errorf("Backend = %s", got.Backend)
	}

	keys := got.Raw.Keys()
	want := []string{"nome", "cpfcnpj", "aceite", "perfil"}
	if len(keys) != len(want) {
		t.Fatalf("raw keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("raw key %d = %q, want %q", i, keys[i], want[i])
		}
	}
	if v, _ := got.Raw.Get("aceite"); v != true {
		t.Errorf("aceite = %v, want true", v)
	}
	perfil, _ := got.Raw.Get("perfil")
	if m, ok := perfil.(map[string]any); !ok || m["risco"] != "moderado" {
		t.Errorf("perfil = %#v, want plain map", perfil)
	}

	payload, ok := got.Payload.(*model.InvestorPayload)
	if !ok {
		t.Fatalf("Payload type = %T", got.Payload)
	}
	if payload.TaxID != "52998224725" || payload.TotalFunds != 1500.5 || !payload.Active {
		t.Errorf("Payload = %+v", payload)
	}
}

func TestFromDocument_UnknownKind(t *testing.T) {
	_, err := fromDocument(&submissionDocument{ID: "x", Kind: "tractor"})
	if err == nil {
		t.Fatal("expected an error for an unknown kind")
	}
}

func TestNoopRepository(t *testing.T) {
	repo := NewNoopSubmissionRepository()
	ctx := context.Background()

	if err := repo.Create(ctx, &model.Submission{}); err != nil {
		t.Errorf("Create() error = %v", err)
	}
	if err := repo.Ping(ctx); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
	if _, err := repo.FindByID(ctx, "any"); !errors.Is(err, intakeerrors.ErrArchiveDisabled) {
		t.Errorf("FindByID() error = %v, want ErrArchiveDisabled", err)
	}
	if _, err := repo.List(ctx, model.KindProject, 10); !errors.Is(err, intakeerrors.ErrArchiveDisabled) {
		t.Errorf("List() error = %v, want ErrArchiveDisabled", err)
	}
}
