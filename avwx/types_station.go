package avwx

import "github.com/s0up4200/goavwx/decode"

// Runway describes one runway of a station.
type Runway struct {
	LengthFt *int     `json:"length_ft,omitempty"`
	WidthFt  *int     `json:"width_ft,omitempty"`
	Surface  string   `json:"surface,omitempty"`
	Lights   *bool    `json:"lights,omitempty"`
	Ident1   string   `json:"ident1,omitempty"`
	Ident2   string   `json:"ident2,omitempty"`
	Bearing1 *float64 `json:"bearing1,omitempty"`
	Bearing2 *float64 `json:"bearing2,omitempty"`
}

func (r *Runway) DecodeFields(o *decode.Object) {
	r.LengthFt = o.Int("length_ft")
	r.WidthFt = o.Int("width_ft")
	r.Surface = o.String("surface")
	r.Lights = o.Bool("lights")
	r.Ident1 = o.String("ident1")
	r.Ident2 = o.String("ident2")
	r.Bearing1 = o.Float("bearing1")
	r.Bearing2 = o.Float("bearing2")
}

// Station is an airport or reporting station.
type Station struct {
	decode.Partial
	City        string   `json:"city,omitempty"`
	Country     string   `json:"country,omitempty"`
	ElevationFt *int     `json:"elevation_ft,omitempty"`
	ElevationM  *int     `json:"elevation_m,omitempty"`
	GPS         string   `json:"gps,omitempty"`
	IATA        string   `json:"iata,omitempty"`
	ICAO        string   `json:"icao,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Local       string   `json:"local,omitempty"`
	Name        string   `json:"name,omitempty"`
	Note        string   `json:"note,omitempty"`
	Reporting   *bool    `json:"reporting,omitempty"`
	Runways     []Runway `json:"runways,omitempty"`
	State       string   `json:"state,omitempty"`
	Type        string   `json:"type,omitempty"`
	Website     string   `json:"website,omitempty"`
	Wiki        string   `json:"wiki,omitempty"`
}

func (s *Station) DecodeFields(o *decode.Object) {
	s.City = o.String("city")
	s.Country = o.String("country")
	s.ElevationFt = o.Int("elevation_ft")
	s.ElevationM = o.Int("elevation_m")
	s.GPS = o.String("gps")
	s.IATA = o.String("iata")
	s.ICAO = o.String("icao")
	s.Latitude = o.Float("latitude")
	s.Longitude = o.Float("longitude")
	s.Local = o.String("local")
	s.Name = o.String("name")
	s.Note = o.String("note")
	s.Reporting = o.Bool("reporting")
	s.Runways = decode.List[Runway](o, "runways")
	s.State = o.String("state")
	s.Type = o.String("type")
	s.Website = o.String("website")
	s.Wiki = o.String("wiki")
}

// Ident returns the ICAO code, falling back to GPS and IATA identifiers.
func (s *Station) Ident() string {
	switch {
	case s.ICAO != "":
		return s.ICAO
	case s.GPS != "":
		return s.GPS
	default:
		return s.IATA
	}
}

// NearStation is a station returned by a coordinate search, with its distance
// from the search point.
type NearStation struct {
	decode.Partial
	Station            *Station `json:"station,omitempty"`
	CoordinateDistance *float64 `json:"coordinate_distance,omitempty"`
	NauticalMiles      *float64 `json:"nautical_miles,omitempty"`
	Miles              *float64 `json:"miles,omitempty"`
	Kilometers         *float64 `json:"kilometers,omitempty"`
}

func (n *NearStation) DecodeFields(o *decode.Object) {
	n.Station = decode.Nested[Station](o, "station")
	n.CoordinateDistance = o.Float("coordinate_distance")
	n.NauticalMiles = o.Float("nautical_miles")
	n.Miles = o.Float("miles")
	n.Kilometers = o.Float("kilometers")
}

// StationRoute lists the stations found along a flight route.
type StationRoute struct {
	decode.Partial
	Meta    *Meta        `json:"meta,omitempty"`
	Route   []Coordinate `json:"route,omitempty"`
	Results []Station    `json:"results,omitempty"`
}

func (r *StationRoute) DecodeFields(o *decode.Object) {
	r.Meta = decode.Nested[Meta](o, "meta")
	r.Route = decode.List[Coordinate](o, "route")
	r.Results = decode.List[Station](o, "results")
}
