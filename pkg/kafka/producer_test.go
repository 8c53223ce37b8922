package kafka

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/segmentio/kafka-go"
)

type fakeWriter struct {
	mu       sync.Mutex
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func header(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func buildMessage(t *testing.T) Message {
	t.Helper()
	msg, err := NewMessage().
		WithKey("submission-1").
		WithValue(map[string]string{"kind": "property"}).
		WithEventType("intake.property.normalized").
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return msg
}

func TestProducer_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, nil, "intake.normalized", "")

	if err := p.Publish(context.Background(), buildMessage(t)); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	if len(w.messages) != 1 {
		t.Fatalf("wrote %d messages, want 1", len(w.messages))
	}
	got := w.messages[0]
	if string(got.Key) != "submission-1" {
		t.Errorf("Key = %q", got.Key)
	}
	if string(got.Value) != `{"kind":"property"}` {
		t.Errorf("Value = %s", got.Value)
	}
	if header(got, HeaderEventType) != "intake.property.normalized" {
		t.Errorf("event type header = %q", header(got, HeaderEventType))
	}
	if header(got, HeaderEventID) == "" {
		t.Error("event id header missing")
	}
}

func TestProducer_PublishRejectsInvalid(t *testing.T) {
	p := newProducer(&fakeWriter{}, nil, "t", "")

	if err := p.Publish(context.Background(), Message{Value: []byte("x")}); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("error = %v, want ErrEmptyKey", err)
	}
	if err := p.Publish(context.Background(), Message{Key: "k"}); !errors.Is(err, ErrEmptyValue) {
		t.Errorf("error = %v, want ErrEmptyValue", err)
	}
}

func TestProducer_PublishAfterClose(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, nil, "t", "")

	if err := p.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !w.closed {
		t.Error("writer not closed")
	}
	if err := p.Publish(context.Background(), buildMessage(t)); !errors.Is(err, ErrProducerClosed) {
		t.Errorf("error = %v, want ErrProducerClosed", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestProducer_PermanentFailureGoesToDLQ(t *testing.T) {
	w := &fakeWriter{err: errors.New("unknown topic or partition")}
	dlq := &fakeWriter{}
	p := newProducer(w, dlq, "intake.normalized", "intake.normalized.dlq")

	err := p.Publish(context.Background(), buildMessage(t))
	var kafkaErr *KafkaError
	if !errors.As(err, &kafkaErr) || kafkaErr.Type != ErrorTypePermanent {
		t.Fatalf("error = %v, want permanent KafkaError", err)
	}

	if len(dlq.messages) != 1 {
		t.Fatalf("dlq got %d messages, want 1", len(dlq.messages))
	}
	if header(dlq.messages[0], HeaderOriginalTopic) != "intake.normalized" {
		t.Errorf("original topic header = %q", header(dlq.messages[0], HeaderOriginalTopic))
	}
}

func TestProducer_TransientFailureSkipsDLQ(t *testing.T) {
	w := &fakeWriter{err: errors.New("dial tcp: connection refused")}
	dlq := &fakeWriter{}
	p := newProducer(w, dlq, "t", "t.dlq")

	err := p.Publish(context.Background(), buildMessage(t))
	if ClassifyError(err) != ErrorTypeTransient {
		t.Errorf("ClassifyError = %v, want transient", ClassifyError(err))
	}
	if len(dlq.messages) != 0 {
		t.Errorf("dlq got %d messages, want 0", len(dlq.messages))
	}
}

func TestProducer_MiddlewareOrder(t *testing.T) {
	p := newProducer(&fakeWriter{}, nil, "t", "")

	var calls []string
	record := func(name string) ProducerMiddleware {
		return func(ctx context.Context, msg Message, next func(context.Context, Message) error) error {
			calls = append(calls, name)
			return next(ctx, msg)
		}
	}
	p.Use(record("first"))
	p.Use(record("second"))

	if err := p.Publish(context.Background(), buildMessage(t)); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Errorf("calls = %v", calls)
	}
}

func TestMessageBuilder_EncodeFailure(t *testing.T) {
	_, err := NewMessage().WithKey("k").WithValue(make(chan int)).Build()
	if err == nil {
		t.Fatal("expected an encoding error")
	}
	if ClassifyError(err) != ErrorTypePermanent {
		t.Errorf("ClassifyError = %v, want permanent", ClassifyError(err))
	}
}
