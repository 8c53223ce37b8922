package model

import "strings"

type EntityKind string

const (
	KindProperty EntityKind = "property"
	KindProject  EntityKind = "project"
	KindInvestor EntityKind = "investor"
)

var entityKindAliases = map[string]EntityKind{
	"property":    KindProperty,
	"propriedade": KindProperty,
	"terra":       KindProperty,
	"project":     KindProject,
	"projeto":     KindProject,
	"investor":    KindInvestor,
	"investidor":  KindInvestor,
}

// ParseEntityKind accepts the English kind names and the Portuguese form
// names used by the intake pages.
func ParseEntityKind(s string) (EntityKind, bool) {
	kind, ok := entityKindAliases[strings.ToLower(strings.TrimSpace(s))]
	return kind, ok
}

func EntityKinds() []EntityKind {
	return []EntityKind{KindProperty, KindProject, KindInvestor}
}

// Entity is a normalized payload ready for the backend.
type Entity interface {
	Kind() EntityKind
	// Extra returns the serialized overflow container.
	Extra() string
}

// NewEntity returns an empty payload of kind, or nil for an unknown kind.
func NewEntity(kind EntityKind) Entity {
	switch kind {
	case KindProperty:
		return &PropertyPayload{}
	case KindProject:
		return &ProjectPayload{}
	case KindInvestor:
		return &InvestorPayload{}
	default:
		return nil
	}
}

type Priority string

const (
	PriorityLow      Priority = "LOW"
	PriorityMedium   Priority = "MEDIUM"
	PriorityHigh     Priority = "HIGH"
	PriorityCritical Priority = "CRITICAL"
)

type ProjectStatus string

const (
	StatusPlanning   ProjectStatus = "PLANNING"
	StatusApproved   ProjectStatus = "APPROVED"
	StatusInProgress ProjectStatus = "IN_PROGRESS"
	StatusOnHold     ProjectStatus = "ON_HOLD"
	StatusCompleted  ProjectStatus = "COMPLETED"
	StatusCancelled  ProjectStatus = "CANCELLED"
)
