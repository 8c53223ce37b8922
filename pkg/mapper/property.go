package mapper

import (
	"renovacampo/pkg/geo"
	"renovacampo/pkg/model"
	"renovacampo/pkg/money"
	"renovacampo/pkg/sanitizer"
)

const (
	DefaultPropertyName = "Propriedade sem nome"
	DefaultPropertyType = "Rural"
)

// MapProperty maps a land registration form.
func (m *Mapper) MapProperty(raw *model.RawFormInput) (*model.PropertyPayload, *Result) {
	r := newResolver(raw, m.aliases[model.KindProperty])

	p := &model.PropertyPayload{
		Name:        sanitizer.SanitizeText(r.textOr(AttrName, DefaultPropertyName)),
		Description: r.text(AttrDescription),
		Type:        r.textOr(AttrType, DefaultPropertyType),
	}

	p.TotalArea, _ = r.integer(AttrTotalArea)
	if available, ok := r.integer(AttrAvailableArea); ok && available != 0 {
		p.AvailableArea = &available
	}

	p.Address = r.text(AttrAddress)
	loc := m.locator(model.KindProperty).Decompose(p.Address)
	p.City, p.State = loc.City, loc.State
	if p.Address != "" && !loc.Parsed {
		r.degrade(AttrLocation)
	}

	if c, ok := r.coordinates(); ok {
		p.Latitude, p.Longitude = &c.Latitude, &c.Longitude
	}

	res, extra := r.finish()
	p.AdditionalData = extra
	return p, res
}

// coordinates prefers the map link and falls back to separate latitude and
// longitude fields.
func (r *resolver) coordinates() (geo.Coordinates, bool) {
	if link := r.text(AttrGeolink); link != "" {
		if c, ok := geo.ExtractResult(link); ok {
			return c, true
		}
		r.degrade(AttrCoordinates)
	}

	latRaw, latPresent, _ := r.pick(AttrLatitude, nil)
	lngRaw, lngPresent, _ := r.pick(AttrLongitude, nil)
	if !latPresent && !lngPresent {
		return geo.Coordinates{}, false
	}

	lat := money.ParseResult(latRaw, money.Ambiguous)
	lng := money.ParseResult(lngRaw, money.Ambiguous)
	if !lat.Valid || !lng.Valid {
		r.degrade(AttrCoordinates)
		return geo.Coordinates{}, false
	}
	return geo.Coordinates{Latitude: lat.Value, Longitude: lng.Value}, true
}
