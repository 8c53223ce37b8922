// Package geo extracts latitude/longitude pairs from map links and raw
// coordinate strings.
package geo

import (
	"regexp"
	"strconv"
	"strings"
)

type Coordinates struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

var (
	// A "-23.550520,-46.633308" pair anywhere in the text, such as a "?q=" query.
	reBarePair = regexp.MustCompile(`(-?\d+\.?\d*)\s*,\s*(-?\d+\.?\d*)`)
	// Map links carry the viewport center as "@lat,lng[,zoom]".
	reMapLink = regexp.MustCompile(`@(-?\d+\.?\d*),(-?\d+\.?\d*)`)

	patterns = []*regexp.Regexp{reBarePair, reMapLink}
)

// Extract returns the first coordinate pair found in text, or nil.
// Out-of-range values are returned as-is.
func Extract(text string) *Coordinates {
	c, ok := ExtractResult(text)
	if !ok {
		return nil
	}
	return &c
}

func ExtractResult(text string) (Coordinates, bool) {
	if strings.TrimSpace(text) == "" {
		return Coordinates{}, false
	}

	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		lat, errLat := strconv.ParseFloat(m[1], 64)
		lng, errLng := strconv.ParseFloat(m[2], 64)
		if errLat != nil || errLng != nil {
			continue
		}
		return Coordinates{Latitude: lat, Longitude: lng}, true
	}

	return Coordinates{}, false
}

// InRange reports whether c lies within valid latitude/longitude bounds.
func (c Coordinates) InRange() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}
