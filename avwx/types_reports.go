package avwx

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/s0up4200/goavwx/decode"
)

// Metar is a parsed routine weather observation.
type Metar struct {
	decode.Partial
	Meta                  *Meta              `json:"meta,omitempty"`
	Raw                   string             `json:"raw,omitempty"`
	Sanitized             string             `json:"sanitized,omitempty"`
	Station               string             `json:"station,omitempty"`
	Time                  *Timestamp         `json:"time,omitempty"`
	FlightRules           string             `json:"flight_rules,omitempty"`
	Altimeter             *Number            `json:"altimeter,omitempty"`
	Clouds                []Cloud            `json:"clouds,omitempty"`
	Visibility            *Visibility        `json:"visibility,omitempty"`
	WindDirection         *Number            `json:"wind_direction,omitempty"`
	WindSpeed             *Number            `json:"wind_speed,omitempty"`
	WindGust              *Number            `json:"wind_gust,omitempty"`
	WindVariableDirection json.RawMessage    `json:"wind_variable_direction,omitempty"`
	WxCodes               []Code             `json:"wx_codes,omitempty"`
	Temperature           *Number            `json:"temperature,omitempty"`
	Dewpoint              *Number            `json:"dewpoint,omitempty"`
	RelativeHumidity      *float64           `json:"relative_humidity,omitempty"`
	DensityAltitude       *int               `json:"density_altitude,omitempty"`
	PressureAltitude      *int               `json:"pressure_altitude,omitempty"`
	Remarks               string             `json:"remarks,omitempty"`
	RemarksInfo           *RemarksInfo       `json:"remarks_info,omitempty"`
	RunwayVisibility      []RunwayVisibility `json:"runway_visibility,omitempty"`
	Other                 []string           `json:"other,omitempty"`
	Units                 *Units             `json:"units,omitempty"`
	Summary               string             `json:"summary,omitempty"`
	Speech                string             `json:"speech,omitempty"`
	Translate             *Translations      `json:"translate,omitempty"`
	Info                  *Station           `json:"info,omitempty"`
}

func (m *Metar) DecodeFields(o *decode.Object) {
	m.Meta = decode.Nested[Meta](o, "meta")
	m.Raw = o.String("raw")
	m.Sanitized = o.String("sanitized")
	m.Station = o.String("station")
	m.Time = decode.Nested[Timestamp](o, "time")
	m.FlightRules = o.String("flight_rules")
	m.Altimeter = decode.Nested[Number](o, "altimeter")
	m.Clouds = decode.List[Cloud](o, "clouds")
	m.Visibility = decode.Nested[Visibility](o, "visibility")
	m.WindDirection = decode.Nested[Number](o, "wind_direction")
	m.WindSpeed = decode.Nested[Number](o, "wind_speed")
	m.WindGust = decode.Nested[Number](o, "wind_gust")
	m.WindVariableDirection = o.Raw("wind_variable_direction")
	m.WxCodes = decode.List[Code](o, "wx_codes")
	m.Temperature = decode.Nested[Number](o, "temperature")
	m.Dewpoint = decode.Nested[Number](o, "dewpoint")
	m.RelativeHumidity = o.Float("relative_humidity")
	m.DensityAltitude = o.Int("density_altitude")
	m.PressureAltitude = o.Int("pressure_altitude")
	m.Remarks = o.String("remarks")
	m.RemarksInfo = decode.Nested[RemarksInfo](o, "remarks_info")
	m.RunwayVisibility = decode.List[RunwayVisibility](o, "runway_visibility")
	m.Other = o.Strings("other")
	m.Units = decode.Nested[Units](o, "units")
	m.Summary = o.String("summary")
	m.Speech = o.String("speech")
	m.Translate = decode.Nested[Translations](o, "translate")
	m.Info = decode.Nested[Station](o, "info")
}

// Kind implements Report.
func (m *Metar) Kind() ReportKind { return ReportMetar }

// TafLine is one forecast period of a TAF.
type TafLine struct {
	Type                  string          `json:"type,omitempty"`
	Raw                   string          `json:"raw,omitempty"`
	Sanitized             string          `json:"sanitized,omitempty"`
	StartTime             *Timestamp      `json:"start_time,omitempty"`
	EndTime               *Timestamp      `json:"end_time,omitempty"`
	TransitionStart       *Timestamp      `json:"transition_start,omitempty"`
	FlightRules           string          `json:"flight_rules,omitempty"`
	Probability           *Number         `json:"probability,omitempty"`
	Altimeter             *Number         `json:"altimeter,omitempty"`
	Clouds                []Cloud         `json:"clouds,omitempty"`
	Visibility            *Visibility     `json:"visibility,omitempty"`
	WindDirection         *Number         `json:"wind_direction,omitempty"`
	WindSpeed             *Number         `json:"wind_speed,omitempty"`
	WindGust              *Number         `json:"wind_gust,omitempty"`
	WindVariableDirection json.RawMessage `json:"wind_variable_direction,omitempty"`
	WindShear             string          `json:"wind_shear,omitempty"`
	WxCodes               []Code          `json:"wx_codes,omitempty"`
	Icing                 json.RawMessage `json:"icing,omitempty"`
	Turbulence            json.RawMessage `json:"turbulence,omitempty"`
	Other                 []string        `json:"other,omitempty"`
	Summary               string          `json:"summary,omitempty"`
}

func (l *TafLine) DecodeFields(o *decode.Object) {
	l.Type = o.String("type")
	l.Raw = o.String("raw")
	l.Sanitized = o.String("sanitized")
	l.StartTime = decode.Nested[Timestamp](o, "start_time")
	l.EndTime = decode.Nested[Timestamp](o, "end_time")
	l.TransitionStart = decode.Nested[Timestamp](o, "transition_start")
	l.FlightRules = o.String("flight_rules")
	l.Probability = decode.Nested[Number](o, "probability")
	l.Altimeter = decode.Nested[Number](o, "altimeter")
	l.Clouds = decode.List[Cloud](o, "clouds")
	l.Visibility = decode.Nested[Visibility](o, "visibility")
	l.WindDirection = decode.Nested[Number](o, "wind_direction")
	l.WindSpeed = decode.Nested[Number](o, "wind_speed")
	l.WindGust = decode.Nested[Number](o, "wind_gust")
	l.WindVariableDirection = o.Raw("wind_variable_direction")
	l.WindShear = o.String("wind_shear")
	l.WxCodes = decode.List[Code](o, "wx_codes")
	l.Icing = o.Raw("icing")
	l.Turbulence = o.Raw("turbulence")
	l.Other = o.Strings("other")
	l.Summary = o.String("summary")
}

// SanitizedType returns the line's change indicator as readable text:
// BECMG becomes "Becoming From", FROM becomes "From" and TEMPO becomes
// "Temporary From <start> to <end>".
func (l *TafLine) SanitizedType() string {
	s := strings.ReplaceAll(l.Type, "BECMG", "Becoming From")
	s = strings.ReplaceAll(s, "FROM", "From")
	if strings.Contains(s, "TEMPO") {
		s = strings.ReplaceAll(s, "TEMPO", "Temporary From "+l.StartTime.String()+" to "+l.EndTime.String())
	}
	return s
}

// Taf is a parsed terminal aerodrome forecast.
type Taf struct {
	decode.Partial
	Meta         *Meta        `json:"meta,omitempty"`
	Raw          string       `json:"raw,omitempty"`
	Sanitized    string       `json:"sanitized,omitempty"`
	Station      string       `json:"station,omitempty"`
	Time         *Timestamp   `json:"time,omitempty"`
	StartTime    *Timestamp   `json:"start_time,omitempty"`
	EndTime      *Timestamp   `json:"end_time,omitempty"`
	Forecast     []TafLine    `json:"forecast,omitempty"`
	Remarks      string       `json:"remarks,omitempty"`
	RemarksInfo  *RemarksInfo `json:"remarks_info,omitempty"`
	MaxTemp      string       `json:"max_temp,omitempty"`
	MinTemp      string       `json:"min_temp,omitempty"`
	Alts         []string     `json:"alts,omitempty"`
	Temps        []string     `json:"temps,omitempty"`
	IsAmended    bool         `json:"is_amended"`
	IsCorrection bool         `json:"is_correction"`
	Units        *Units       `json:"units,omitempty"`
	Info         *Station     `json:"info,omitempty"`
}

func (t *Taf) DecodeFields(o *decode.Object) {
	t.Meta = decode.Nested[Meta](o, "meta")
	t.Raw = o.String("raw")
	t.Sanitized = o.String("sanitized")
	t.Station = o.String("station")
	t.Time = decode.Nested[Timestamp](o, "time")
	t.StartTime = decode.Nested[Timestamp](o, "start_time")
	t.EndTime = decode.Nested[Timestamp](o, "end_time")
	t.Forecast = decode.List[TafLine](o, "forecast")
	t.Remarks = o.String("remarks")
	t.RemarksInfo = decode.Nested[RemarksInfo](o, "remarks_info")
	t.MaxTemp = o.String("max_temp")
	t.MinTemp = o.String("min_temp")
	t.Alts = o.Strings("alts")
	t.Temps = o.Strings("temps")
	t.IsAmended = o.Flag("is_amended")
	t.IsCorrection = o.Flag("is_correction")
	t.Units = decode.Nested[Units](o, "units")
	t.Info = decode.Nested[Station](o, "info")
}

// Kind implements Report.
func (t *Taf) Kind() ReportKind { return ReportTaf }

// Aircraft identifies the aircraft that filed a pilot report.
type Aircraft struct {
	Code string `json:"code,omitempty"`
	Type string `json:"type,omitempty"`
}

func (a *Aircraft) DecodeFields(o *decode.Object) {
	a.Code = o.String("code")
	a.Type = o.String("type")
}

// PirepLocation is the position a pilot report refers to.
type PirepLocation struct {
	Repr      string  `json:"repr,omitempty"`
	Station   string  `json:"station,omitempty"`
	Direction *Number `json:"direction,omitempty"`
	Distance  *Number `json:"distance,omitempty"`
}

func (l *PirepLocation) DecodeFields(o *decode.Object) {
	l.Repr = o.String("repr")
	l.Station = o.String("station")
	l.Direction = decode.Nested[Number](o, "direction")
	l.Distance = decode.Nested[Number](o, "distance")
}

// Icing is a reported icing layer.
type Icing struct {
	Severity string  `json:"severity,omitempty"`
	Type     string  `json:"type,omitempty"`
	Floor    *Number `json:"floor,omitempty"`
	Ceiling  *Number `json:"ceiling,omitempty"`
}

func (i *Icing) DecodeFields(o *decode.Object) {
	i.Severity = o.String("severity")
	i.Type = o.String("type")
	i.Floor = decode.Nested[Number](o, "floor")
	i.Ceiling = decode.Nested[Number](o, "ceiling")
}

// Turbulence is a reported turbulence layer.
type Turbulence struct {
	Severity string  `json:"severity,omitempty"`
	Floor    *Number `json:"floor,omitempty"`
	Ceiling  *Number `json:"ceiling,omitempty"`
}

func (t *Turbulence) DecodeFields(o *decode.Object) {
	t.Severity = o.String("severity")
	t.Floor = decode.Nested[Number](o, "floor")
	t.Ceiling = decode.Nested[Number](o, "ceiling")
}

// PirepData is a single pilot report.
type PirepData struct {
	Raw              string         `json:"raw,omitempty"`
	Sanitized        string         `json:"sanitized,omitempty"`
	Station          string         `json:"station,omitempty"`
	Time             *Timestamp     `json:"time,omitempty"`
	Type             string         `json:"type,omitempty"`
	Aircraft         *Aircraft      `json:"aircraft,omitempty"`
	Altitude         *Number        `json:"altitude,omitempty"`
	Location         *PirepLocation `json:"location,omitempty"`
	Clouds           []Cloud        `json:"clouds,omitempty"`
	FlightVisibility *Number        `json:"flight_visibility,omitempty"`
	Icing            *Icing         `json:"icing,omitempty"`
	Turbulence       *Turbulence    `json:"turbulence,omitempty"`
	Temperature      *Number        `json:"temperature,omitempty"`
	WxCodes          []Code         `json:"wx_codes,omitempty"`
	Other            []string       `json:"other,omitempty"`
	Remarks          string         `json:"remarks,omitempty"`
	Info             *Station       `json:"info,omitempty"`
}

func (p *PirepData) DecodeFields(o *decode.Object) {
	p.Raw = o.String("raw")
	p.Sanitized = o.String("sanitized")
	p.Station = o.String("station")
	p.Time = decode.Nested[Timestamp](o, "time")
	p.Type = o.String("type")
	p.Aircraft = decode.Nested[Aircraft](o, "aircraft")
	p.Altitude = decode.Nested[Number](o, "altitude")
	p.Location = decode.Nested[PirepLocation](o, "location")
	p.Clouds = decode.List[Cloud](o, "clouds")
	p.FlightVisibility = decode.Nested[Number](o, "flight_visibility")
	p.Icing = decode.Nested[Icing](o, "icing")
	p.Turbulence = decode.Nested[Turbulence](o, "turbulence")
	p.Temperature = decode.Nested[Number](o, "temperature")
	p.WxCodes = decode.List[Code](o, "wx_codes")
	p.Other = o.Strings("other")
	p.Remarks = o.String("remarks")
	p.Info = decode.Nested[Station](o, "info")
}

// Pirep is the set of pilot reports near a location.
type Pirep struct {
	decode.Partial
	Meta      *Meta       `json:"meta,omitempty"`
	Timestamp *time.Time  `json:"timestamp,omitempty"`
	Data      []PirepData `json:"data,omitempty"`
	Units     *Units      `json:"units,omitempty"`
}

func (p *Pirep) DecodeFields(o *decode.Object) {
	p.Meta = decode.Nested[Meta](o, "meta")
	p.Timestamp = o.Time("timestamp")
	p.Data = decode.List[PirepData](o, "data")
	p.Units = decode.Nested[Units](o, "units")
}

// Kind implements Report.
func (p *Pirep) Kind() ReportKind { return ReportPirep }

// SummaryMetar is the condensed current observation of a Summary.
type SummaryMetar struct {
	Time        *time.Time  `json:"time,omitempty"`
	FlightRules string      `json:"flight_rules,omitempty"`
	Ceiling     *Number     `json:"ceiling,omitempty"`
	Visibility  *Visibility `json:"visibility,omitempty"`
	WxCodes     []Code      `json:"wx_codes,omitempty"`
}

func (s *SummaryMetar) DecodeFields(o *decode.Object) {
	s.Time = o.Time("time")
	s.FlightRules = o.String("flight_rules")
	s.Ceiling = decode.Nested[Number](o, "ceiling")
	s.Visibility = decode.Nested[Visibility](o, "visibility")
	s.WxCodes = decode.List[Code](o, "wx_codes")
}

// SummaryForecast is one period of the condensed TAF of a Summary.
type SummaryForecast struct {
	StartTime   *time.Time `json:"start_time,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	FlightRules string     `json:"flight_rules,omitempty"`
}

func (s *SummaryForecast) DecodeFields(o *decode.Object) {
	s.StartTime = o.Time("start_time")
	s.EndTime = o.Time("end_time")
	s.FlightRules = o.String("flight_rules")
}

// SummaryTaf is the condensed forecast of a Summary.
type SummaryTaf struct {
	Time     *time.Time        `json:"time,omitempty"`
	Forecast []SummaryForecast `json:"forecast,omitempty"`
}

func (s *SummaryTaf) DecodeFields(o *decode.Object) {
	s.Time = o.Time("time")
	s.Forecast = decode.List[SummaryForecast](o, "forecast")
}

// Summary combines the current observation and forecast for a station.
type Summary struct {
	decode.Partial
	Meta      *Meta         `json:"meta,omitempty"`
	Metar     *SummaryMetar `json:"metar,omitempty"`
	Taf       *SummaryTaf   `json:"taf,omitempty"`
	Summary   string        `json:"summary,omitempty"`
	Speech    string        `json:"speech,omitempty"`
	Translate *Translations `json:"translate,omitempty"`
	Info      *Station      `json:"info,omitempty"`
}

func (s *Summary) DecodeFields(o *decode.Object) {
	s.Meta = decode.Nested[Meta](o, "meta")
	s.Metar = decode.Nested[SummaryMetar](o, "metar")
	s.Taf = decode.Nested[SummaryTaf](o, "taf")
	s.Summary = o.String("summary")
	s.Speech = o.String("speech")
	s.Translate = decode.Nested[Translations](o, "translate")
	s.Info = decode.Nested[Station](o, "info")
}

// Kind implements Report.
func (s *Summary) Kind() ReportKind { return ReportSummary }
