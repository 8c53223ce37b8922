// Package mapper converts raw intake form input into canonical entity
// payloads.
//
// Each payload attribute is sourced from an ordered list of form field
// aliases, so different form layouts can feed the same entity. Every
// non-empty form field that did not source an attribute lands in the
// overflow container, serialized onto the payload's additionalData. A form
// field is therefore either consumed or in the overflow, never both.
//
// Overflow is keyed on consumption, not on alias membership. A known alias
// that lost to an earlier alias, or latitude/longitude when the geolink
// already supplied coordinates, is still kept in additionalData.
//
// Mapping never fails on malformed data. Unparseable values degrade to
// defaults and the affected attributes are listed in Result.Degraded.
// A Mapper holds no mutable state and is safe for concurrent use.
package mapper

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"renovacampo/pkg/location"
	"renovacampo/pkg/model"
	"renovacampo/pkg/money"
)

var ErrUnknownKind = errors.New("unknown entity kind")

type Mapper struct {
	aliases   map[model.EntityKind]AliasTable
	policies  map[model.EntityKind]money.Policy
	locations map[model.EntityKind]location.Decomposer
}

type Option func(*Mapper)

// WithMoneyPolicy selects how monetary fields of kind are read.
func WithMoneyPolicy(kind model.EntityKind, policy money.Policy) Option {
	return func(m *Mapper) {
		m.policies[kind] = policy
	}
}

// WithLocationStrategy selects how the address of kind is decomposed.
func WithLocationStrategy(kind model.EntityKind, d location.Decomposer) Option {
	return func(m *Mapper) {
		if d != nil {
			m.locations[kind] = d
		}
	}
}

func WithAliases(kind model.EntityKind, table AliasTable) Option {
	return func(m *Mapper) {
		m.aliases[kind] = table.clone()
	}
}

func New(opts ...Option) *Mapper {
	m := &Mapper{
		aliases: make(map[model.EntityKind]AliasTable, len(defaultAliases)),
		policies: map[model.EntityKind]money.Policy{
			model.KindProject:  money.Simple,
			model.KindInvestor: money.Ambiguous,
		},
		locations: map[model.EntityKind]location.Decomposer{
			model.KindProperty: location.Generic,
			model.KindInvestor: location.Investor,
		},
	}
	for kind, table := range defaultAliases {
		m.aliases[kind] = table.clone()
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

type Result struct {
	Entity   model.Entity
	Overflow *model.Overflow
	// Consumed lists the form fields that sourced an attribute.
	Consumed []string
	// Sources maps each sourced attribute to its form field.
	Sources map[string]string
	// Degraded lists attributes whose source was present but could not be
	// fully interpreted and fell back to a default.
	Degraded []string
}

// Sourced reports whether the form supplied a non-blank value for attr.
func (r *Result) Sourced(attr string) bool {
	_, ok := r.Sources[attr]
	return ok
}

func (r *Result) IsDegraded(attr string) bool {
	for _, d := range r.Degraded {
		if d == attr {
			return true
		}
	}
	return false
}

var defaultMapper = New()

// Map converts raw into the payload for kind using the built-in tables.
func Map(kind model.EntityKind, raw *model.RawFormInput) (model.Entity, error) {
	res, err := defaultMapper.Map(kind, raw)
	if err != nil {
		return nil, err
	}
	return res.Entity, nil
}

func (m *Mapper) Map(kind model.EntityKind, raw *model.RawFormInput) (*Result, error) {
	switch kind {
	case model.KindProperty:
		p, res := m.MapProperty(raw)
		res.Entity = p
		return res, nil
	case model.KindProject:
		p, res := m.MapProject(raw)
		res.Entity = p
		return res, nil
	case model.KindInvestor:
		p, res := m.MapInvestor(raw)
		res.Entity = p
		return res, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Aliases returns the alias table this mapper uses for kind.
func (m *Mapper) Aliases(kind model.EntityKind) AliasTable {
	return m.aliases[kind].clone()
}

func (m *Mapper) policy(kind model.EntityKind) money.Policy {
	if p, ok := m.policies[kind]; ok {
		return p
	}
	return money.Ambiguous
}

func (m *Mapper) locator(kind model.EntityKind) location.Decomposer {
	if d, ok := m.locations[kind]; ok {
		return d
	}
	return location.Generic
}

// finish builds the overflow from every field the resolver did not consume.
func (r *resolver) finish() (*Result, string) {
	overflow := model.NewFields()
	r.raw.Range(func(key string, value any) bool {
		if _, used := r.consumed[key]; used {
			return true
		}
		if model.IsBlank(value) || isFunc(value) {
			return true
		}
		overflow.Set(key, value)
		return true
	})

	res := &Result{
		Overflow: overflow,
		Consumed: r.consumedOrder,
		Sources:  r.sources,
		Degraded: r.degraded,
	}

	data, err := json.Marshal(overflow)
	if err != nil {
		res.Degraded = append(res.Degraded, "additionalData")
		return res, "{}"
	}
	return res, string(data)
}

func isFunc(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}
