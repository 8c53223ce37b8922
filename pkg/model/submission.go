package model

import (
	"encoding/json"
	"time"
)

// Submission is one archived intake form together with what it was mapped to.
type Submission struct {
	ID        string          `json:"id"`
	Kind      EntityKind      `json:"kind"`
	Raw       *RawFormInput   `json:"raw"`
	Payload   Entity          `json:"payload"`
	Degraded  []string        `json:"degraded,omitempty"`
	Forwarded bool            `json:"forwarded"`
	Backend   json.RawMessage `json:"backend,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}
