package mapper

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"renovacampo/pkg/model"
	"renovacampo/pkg/money"
)

// resolver walks alias chains over one form input and remembers which form
// fields were used.
type resolver struct {
	raw           *model.RawFormInput
	table         AliasTable
	consumed      map[string]struct{}
	consumedOrder []string
	sources       map[string]string
	degraded      []string
}

func newResolver(raw *model.RawFormInput, table AliasTable) *resolver {
	if raw == nil {
		raw = model.NewFields()
	}
	return &resolver{
		raw:      raw,
		table:    table,
		consumed: make(map[string]struct{}),
		sources:  make(map[string]string),
	}
}

func (r *resolver) consume(field string) {
	if _, ok := r.consumed[field]; ok {
		return
	}
	r.consumed[field] = struct{}{}
	r.consumedOrder = append(r.consumedOrder, field)
}

func (r *resolver) degrade(attr string) {
	for _, d := range r.degraded {
		if d == attr {
			return
		}
	}
	r.degraded = append(r.degraded, attr)
}

// pick returns the value of the first alias of attr that accept admits. When
// no alias is admitted, the first non-blank one is returned with ok false so
// the caller can degrade. Only the returned field is consumed.
func (r *resolver) pick(attr string, accept func(any) bool) (value any, present, ok bool) {
	var (
		fallbackField string
		fallback      any
	)

	for _, alias := range r.table.lookup(attr) {
		v, exists := r.raw.Get(alias)
		if !exists || model.IsBlank(v) || isFunc(v) {
			continue
		}
		if accept == nil || accept(v) {
			r.consume(alias)
			r.sources[attr] = alias
			return v, true, true
		}
		if fallbackField == "" {
			fallbackField, fallback = alias, v
		}
	}

	if fallbackField != "" {
		r.consume(fallbackField)
		r.sources[attr] = fallbackField
		return fallback, true, false
	}
	return nil, false, false
}

// text returns the first non-blank alias value of attr as a string.
func (r *resolver) text(attr string) string {
	v, _, _ := r.pick(attr, nil)
	return strings.TrimSpace(model.StringValue(v))
}

func (r *resolver) textOr(attr, def string) string {
	if s := r.text(attr); s != "" {
		return s
	}
	return def
}

// amount prefers the first alias that parses to a non-zero value.
func (r *resolver) amount(attr string, parse func(any) money.Result) float64 {
	v, present, _ := r.pick(attr, func(v any) bool {
		return parse(v).Value != 0
	})
	if !present {
		return 0
	}
	result := parse(v)
	if !result.Valid {
		r.degrade(attr)
	}
	return result.Value
}

// integer reads a whole number the way a lenient form would: the leading
// digits count and anything after them is ignored. ok reports whether any
// alias was present.
func (r *resolver) integer(attr string) (n int, ok bool) {
	v, present, _ := r.pick(attr, func(v any) bool {
		n, _ := leadingInt(v)
		return n != 0
	})
	if !present {
		return 0, false
	}
	n, clean := leadingInt(v)
	if !clean {
		r.degrade(attr)
	}
	return n, true
}

var reLeadingInt = regexp.MustCompile(`^[+-]?\d+`)

func leadingInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		return int(t), t == float64(int(t))
	}

	s := strings.TrimSpace(model.StringValue(v))
	prefix := reLeadingInt.FindString(s)
	if prefix == "" {
		return 0, false
	}
	n, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, false
	}
	return n, prefix == s
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"02/01/2006",
}

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func stringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
