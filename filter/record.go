package filter

import (
	"strings"
	"time"

	"github.com/s0up4200/goavwx/avwx"
)

// Record is the flattened view of a station or report that filter
// expressions are evaluated against. Unknown numeric values are zero; use
// the Has* fields to tell them apart.
type Record struct {
	Kind        string
	Station     string
	Name        string
	City        string
	State       string
	Country     string
	Type        string
	Reporting   bool
	ElevationFt int
	Latitude    float64
	Longitude   float64
	Distance    float64

	Time        time.Time
	Raw         string
	FlightRules string
	WxCodes     []string

	Visibility     float64
	HasVisibility  bool
	Ceiling        int
	HasCeiling     bool
	WindSpeed      float64
	WindGust       float64
	Temperature    float64
	HasTemperature bool
	Dewpoint       float64
	Altimeter      float64

	Partial bool
}

// FromStation flattens a station.
func FromStation(s *avwx.Station) Record {
	r := Record{Kind: "station"}
	if s == nil {
		return r
	}
	r.Station = s.Ident()
	r.Name = s.Name
	r.City = s.City
	r.State = s.State
	r.Country = s.Country
	r.Type = s.Type
	r.Reporting = deref(s.Reporting)
	r.ElevationFt = deref(s.ElevationFt)
	r.Latitude = deref(s.Latitude)
	r.Longitude = deref(s.Longitude)
	r.Partial = s.IsPartial()
	return r
}

// FromNearStation flattens a coordinate search result. Distance is in
// nautical miles.
func FromNearStation(n *avwx.NearStation) Record {
	r := FromStation(n.Station)
	r.Distance = deref(n.NauticalMiles)
	r.Partial = r.Partial || n.IsPartial()
	return r
}

// FromReport flattens any report returned by the tagged operations.
func FromReport(report avwx.Report) Record {
	var r Record
	switch rep := report.(type) {
	case *avwx.Metar:
		r = fromMetar(rep)
	case *avwx.Taf:
		r = fromTaf(rep)
	case *avwx.Summary:
		r = fromSummary(rep)
	case *avwx.Pirep:
		r = fromPirep(rep)
	}
	if report != nil {
		r.Kind = report.Kind().String()
		r.Partial = report.IsPartial()
	}
	return r
}

func fromMetar(m *avwx.Metar) Record {
	r := Record{
		Station:     m.Station,
		Raw:         m.Raw,
		FlightRules: m.FlightRules,
		WxCodes:     codes(m.WxCodes),
		WindSpeed:   value(m.WindSpeed),
		WindGust:    value(m.WindGust),
		Altimeter:   value(m.Altimeter),
		Dewpoint:    value(m.Dewpoint),
	}
	if m.Time != nil && m.Time.Dt != nil {
		r.Time = *m.Time.Dt
	}
	if m.Visibility != nil && m.Visibility.Value != nil {
		r.Visibility, r.HasVisibility = *m.Visibility.Value, true
	}
	if m.Temperature != nil && m.Temperature.Value != nil {
		r.Temperature, r.HasTemperature = *m.Temperature.Value, true
	}
	r.Ceiling, r.HasCeiling = ceiling(m.Clouds)
	addInfo(&r, m.Info)
	return r
}

// fromTaf uses the first forecast period for the current conditions.
func fromTaf(t *avwx.Taf) Record {
	r := Record{Station: t.Station, Raw: t.Raw}
	if t.Time != nil && t.Time.Dt != nil {
		r.Time = *t.Time.Dt
	}
	if len(t.Forecast) > 0 {
		line := t.Forecast[0]
		r.FlightRules = line.FlightRules
		r.WxCodes = codes(line.WxCodes)
		r.WindSpeed = value(line.WindSpeed)
		r.WindGust = value(line.WindGust)
		if line.Visibility != nil && line.Visibility.Value != nil {
			r.Visibility, r.HasVisibility = *line.Visibility.Value, true
		}
		r.Ceiling, r.HasCeiling = ceiling(line.Clouds)
	}
	addInfo(&r, t.Info)
	return r
}

func fromSummary(s *avwx.Summary) Record {
	var r Record
	if s.Metar != nil {
		r.FlightRules = s.Metar.FlightRules
		r.WxCodes = codes(s.Metar.WxCodes)
		if s.Metar.Time != nil {
			r.Time = *s.Metar.Time
		}
		if s.Metar.Visibility != nil && s.Metar.Visibility.Value != nil {
			r.Visibility, r.HasVisibility = *s.Metar.Visibility.Value, true
		}
		if s.Metar.Ceiling != nil && s.Metar.Ceiling.Value != nil {
			r.Ceiling, r.HasCeiling = int(*s.Metar.Ceiling.Value), true
		}
	}
	addInfo(&r, s.Info)
	return r
}

// fromPirep uses the most recent report in the set.
func fromPirep(p *avwx.Pirep) Record {
	var r Record
	if len(p.Data) == 0 {
		return r
	}
	d := p.Data[0]
	r.Station = d.Station
	r.Raw = d.Raw
	r.WxCodes = codes(d.WxCodes)
	if d.Time != nil && d.Time.Dt != nil {
		r.Time = *d.Time.Dt
	}
	if d.Temperature != nil && d.Temperature.Value != nil {
		r.Temperature, r.HasTemperature = *d.Temperature.Value, true
	}
	r.Ceiling, r.HasCeiling = ceiling(d.Clouds)
	addInfo(&r, d.Info)
	return r
}

func addInfo(r *Record, s *avwx.Station) {
	if s == nil {
		return
	}
	info := FromStation(s)
	if r.Station == "" {
		r.Station = info.Station
	}
	r.Name = info.Name
	r.City = info.City
	r.State = info.State
	r.Country = info.Country
	r.Type = info.Type
	r.Reporting = info.Reporting
	r.ElevationFt = info.ElevationFt
	r.Latitude = info.Latitude
	r.Longitude = info.Longitude
}

// ceiling returns the lowest broken, overcast or obscured layer in feet.
func ceiling(clouds []avwx.Cloud) (int, bool) {
	found := false
	lowest := 0
	for _, c := range clouds {
		switch strings.ToUpper(c.Type) {
		case "BKN", "OVC", "VV":
		default:
			continue
		}
		base := c.Base
		if base == nil {
			base = c.Altitude
		}
		if base == nil {
			continue
		}
		if ft := *base * 100; !found || ft < lowest {
			lowest, found = ft, true
		}
	}
	return lowest, found
}

func codes(cs []avwx.Code) []string {
	if len(cs) == 0 {
		return nil
	}
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Repr)
	}
	return out
}

func value(n *avwx.Number) float64 {
	if n == nil || n.Value == nil {
		return 0
	}
	return *n.Value
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
