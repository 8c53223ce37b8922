package mapper

import (
	"strings"

	"renovacampo/pkg/model"
	"renovacampo/pkg/money"
	"renovacampo/pkg/sanitizer"
)

const (
	DefaultProjectName     = "Projeto sem nome"
	DefaultProjectCategory = "Geral"
)

var priorities = map[string]model.Priority{
	"baixa":    model.PriorityLow,
	"low":      model.PriorityLow,
	"media":    model.PriorityMedium,
	"média":    model.PriorityMedium,
	"medium":   model.PriorityMedium,
	"alta":     model.PriorityHigh,
	"high":     model.PriorityHigh,
	"critica":  model.PriorityCritical,
	"crítica":  model.PriorityCritical,
	"critical": model.PriorityCritical,
}

// MapPriority maps a free-text priority label. Unknown or empty labels
// become MEDIUM.
func MapPriority(label string) model.Priority {
	p, _ := lookupPriority(label)
	return p
}

func lookupPriority(label string) (model.Priority, bool) {
	if p, ok := priorities[strings.ToLower(strings.TrimSpace(label))]; ok {
		return p, true
	}
	return model.PriorityMedium, false
}

// MapProject maps a project proposal form. The estimated end date is the
// start date plus the duration in whole months, so it depends only on the
// input.
func (m *Mapper) MapProject(raw *model.RawFormInput) (*model.ProjectPayload, *Result) {
	r := newResolver(raw, m.aliases[model.KindProject])
	policy := m.policy(model.KindProject)
	parseMoney := func(v any) money.Result { return money.ParseResult(v, policy) }

	p := &model.ProjectPayload{
		Name:        sanitizer.SanitizeText(r.textOr(AttrName, DefaultProjectName)),
		Category:    r.textOr(AttrCategory, DefaultProjectCategory),
		Description: r.text(AttrDescription),
		Status:      model.StatusPlanning,
	}

	start := r.text(AttrStartDate)
	p.StartDate = stringPtr(start)
	p.EstimatedEndDate = stringPtr(r.estimatedEndDate(start))

	label := r.text(AttrPriority)
	var known bool
	p.Priority, known = lookupPriority(label)
	if label != "" && !known {
		r.degrade(AttrPriority)
	}

	p.TotalEstimatedCosts = r.amount(AttrEstimatedCosts, parseMoney)
	p.TotalInvestment = r.amount(AttrInvestment, parseMoney)
	p.EstimatedReturnOverInvestment = r.amount(AttrROI, money.PercentResult)

	res, extra := r.finish()
	p.AdditionalData = extra
	return p, res
}

// estimatedEndDate derives the end from start and duration when both are
// usable, otherwise it takes the explicit end date field.
func (r *resolver) estimatedEndDate(start string) string {
	if start != "" {
		if months, ok := r.integer(AttrDuration); ok {
			if t, parsed := parseDate(start); parsed {
				return t.AddDate(0, months, 0).Format(dateLayout)
			}
			r.degrade(AttrEstimatedEndDate)
		}
	}
	return r.text(AttrEstimatedEndDate)
}
