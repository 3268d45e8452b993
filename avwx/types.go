package avwx

import (
	"strconv"
	"time"

	"github.com/s0up4200/goavwx/decode"
)

// Number is a parsed numeric value with its original text and spoken form.
type Number struct {
	Repr   string   `json:"repr,omitempty"`
	Value  *float64 `json:"value,omitempty"`
	Spoken string   `json:"spoken,omitempty"`
}

func (n *Number) DecodeFields(o *decode.Object) {
	n.Repr = o.String("repr")
	n.Value = o.Float("value")
	n.Spoken = o.String("spoken")
}

// String returns the value when known, otherwise the original text.
func (n *Number) String() string {
	if n == nil {
		return ""
	}
	if n.Value != nil {
		return strconv.FormatFloat(*n.Value, 'f', -1, 64)
	}
	return n.Repr
}

// Timestamp is a report time as written in the report and as resolved by
// the API.
type Timestamp struct {
	Repr string     `json:"repr,omitempty"`
	Dt   *time.Time `json:"dt,omitempty"`
}

func (t *Timestamp) DecodeFields(o *decode.Object) {
	t.Repr = o.String("repr")
	t.Dt = o.Time("dt")
}

// String returns the resolved time in RFC 3339, or the original text.
func (t *Timestamp) String() string {
	if t == nil {
		return ""
	}
	if t.Dt != nil {
		return t.Dt.Format(time.RFC3339)
	}
	return t.Repr
}

// Code pairs a report code with its meaning.
type Code struct {
	Repr  string `json:"repr,omitempty"`
	Value string `json:"value,omitempty"`
}

func (c *Code) DecodeFields(o *decode.Object) {
	c.Repr = o.String("repr")
	c.Value = o.String("value")
}

// Units lists the units used by a report's values.
type Units struct {
	Accumulation string `json:"accumulation,omitempty"`
	Altimeter    string `json:"altimeter,omitempty"`
	Altitude     string `json:"altitude,omitempty"`
	Temperature  string `json:"temperature,omitempty"`
	Visibility   string `json:"visibility,omitempty"`
	WindSpeed    string `json:"wind_speed,omitempty"`
}

func (u *Units) DecodeFields(o *decode.Object) {
	u.Accumulation = o.String("accumulation")
	u.Altimeter = o.String("altimeter")
	u.Altitude = o.String("altitude")
	u.Temperature = o.String("temperature")
	u.Visibility = o.String("visibility")
	u.WindSpeed = o.String("wind_speed")
}

// Meta carries response bookkeeping.
type Meta struct {
	Timestamp       *time.Time `json:"timestamp,omitempty"`
	StationsUpdated *time.Time `json:"stations_updated,omitempty"`
	CacheTimestamp  *time.Time `json:"cache_timestamp,omitempty"`
	Warning         string     `json:"warning,omitempty"`
}

func (m *Meta) DecodeFields(o *decode.Object) {
	m.Timestamp = o.Time("timestamp")
	m.StationsUpdated = o.Time("stations_updated")
	m.CacheTimestamp = o.Time("cache_timestamp")
	m.Warning = o.String("warning")
}

// Cloud is a single cloud layer.
type Cloud struct {
	Repr     string `json:"repr,omitempty"`
	Type     string `json:"type,omitempty"`
	Base     *int   `json:"base,omitempty"`
	Top      *int   `json:"top,omitempty"`
	Altitude *int   `json:"altitude,omitempty"`
	Modifier string `json:"modifier,omitempty"`
}

func (c *Cloud) DecodeFields(o *decode.Object) {
	c.Repr = o.String("repr")
	c.Type = o.String("type")
	c.Base = o.Int("base")
	c.Top = o.Int("top")
	c.Altitude = o.Int("altitude")
	c.Modifier = o.String("modifier")
}

// Coordinate is a point on a route or area boundary.
type Coordinate struct {
	Lat  *float64 `json:"lat,omitempty"`
	Lon  *float64 `json:"lon,omitempty"`
	Repr string   `json:"repr,omitempty"`
}

func (c *Coordinate) DecodeFields(o *decode.Object) {
	c.Lat = o.Float("lat")
	c.Lon = o.Float("lon")
	c.Repr = o.String("repr")
}

// Visibility extends Number with the fraction it was written as.
type Visibility struct {
	Number
	Numerator   *int   `json:"numerator,omitempty"`
	Denominator *int   `json:"denominator,omitempty"`
	Normalized  string `json:"normalized,omitempty"`
}

func (v *Visibility) DecodeFields(o *decode.Object) {
	v.Number.DecodeFields(o)
	v.Numerator = o.Int("numerator")
	v.Denominator = o.Int("denominator")
	v.Normalized = o.String("normalized")
}

// Translations holds the plain-language rendering of a report, returned
// with options=translate.
type Translations struct {
	Altimeter   string            `json:"altimeter,omitempty"`
	Clouds      string            `json:"clouds,omitempty"`
	WxCodes     string            `json:"wx_codes,omitempty"`
	Visibility  string            `json:"visibility,omitempty"`
	Dewpoint    string            `json:"dewpoint,omitempty"`
	Temperature string            `json:"temperature,omitempty"`
	Wind        string            `json:"wind,omitempty"`
	Remarks     map[string]string `json:"remarks,omitempty"`
}

func (t *Translations) DecodeFields(o *decode.Object) {
	t.Altimeter = o.String("altimeter")
	t.Clouds = o.String("clouds")
	t.WxCodes = o.String("wx_codes")
	t.Visibility = o.String("visibility")
	t.Dewpoint = o.String("dewpoint")
	t.Temperature = o.String("temperature")
	t.Wind = o.String("wind")
	t.Remarks = o.StringMap("remarks")
}

// PressureTendency is the three-hour pressure change group of a remark.
type PressureTendency struct {
	Repr     string   `json:"repr,omitempty"`
	Tendency string   `json:"tendency,omitempty"`
	Change   *float64 `json:"change,omitempty"`
}

func (p *PressureTendency) DecodeFields(o *decode.Object) {
	p.Repr = o.String("repr")
	p.Tendency = o.String("tendency")
	p.Change = o.Float("change")
}

// RemarksInfo is the parsed content of a report's RMK section.
type RemarksInfo struct {
	MaximumTemperature6  *Number           `json:"maximum_temperature_6,omitempty"`
	MinimumTemperature6  *Number           `json:"minimum_temperature_6,omitempty"`
	MaximumTemperature24 *Number           `json:"maximum_temperature_24,omitempty"`
	MinimumTemperature24 *Number           `json:"minimum_temperature_24,omitempty"`
	PressureTendency     *PressureTendency `json:"pressure_tendency,omitempty"`
	Precip36Hours        *Number           `json:"precip_36_hours,omitempty"`
	Precip24Hours        *Number           `json:"precip_24_hours,omitempty"`
	PrecipHourly         *Number           `json:"precip_hourly,omitempty"`
	SunshineMinutes      *Number           `json:"sunshine_minutes,omitempty"`
	SnowDepth            *Number           `json:"snow_depth,omitempty"`
	SeaLevelPressure     *Number           `json:"sea_level_pressure,omitempty"`
	DewpointDecimal      *Number           `json:"dewpoint_decimal,omitempty"`
	TemperatureDecimal   *Number           `json:"temperature_decimal,omitempty"`
	Codes                []Code            `json:"codes,omitempty"`
}

func (r *RemarksInfo) DecodeFields(o *decode.Object) {
	r.MaximumTemperature6 = decode.Nested[Number](o, "maximum_temperature_6")
	r.MinimumTemperature6 = decode.Nested[Number](o, "minimum_temperature_6")
	r.MaximumTemperature24 = decode.Nested[Number](o, "maximum_temperature_24")
	r.MinimumTemperature24 = decode.Nested[Number](o, "minimum_temperature_24")
	r.PressureTendency = decode.Nested[PressureTendency](o, "pressure_tendency")
	r.Precip36Hours = decode.Nested[Number](o, "precip_36_hours")
	r.Precip24Hours = decode.Nested[Number](o, "precip_24_hours")
	r.PrecipHourly = decode.Nested[Number](o, "precip_hourly")
	r.SunshineMinutes = decode.Nested[Number](o, "sunshine_minutes")
	r.SnowDepth = decode.Nested[Number](o, "snow_depth")
	r.SeaLevelPressure = decode.Nested[Number](o, "sea_level_pressure")
	r.DewpointDecimal = decode.Nested[Number](o, "dewpoint_decimal")
	r.TemperatureDecimal = decode.Nested[Number](o, "temperature_decimal")
	r.Codes = decode.List[Code](o, "codes")
}

// RunwayVisibility is a runway visual range group.
type RunwayVisibility struct {
	Repr               string   `json:"repr,omitempty"`
	Runway             string   `json:"runway,omitempty"`
	Visibility         *Number  `json:"visibility,omitempty"`
	VariableVisibility []Number `json:"variable_visibility,omitempty"`
	Trend              *Code    `json:"trend,omitempty"`
}

func (r *RunwayVisibility) DecodeFields(o *decode.Object) {
	r.Repr = o.String("repr")
	r.Runway = o.String("runway")
	r.Visibility = decode.Nested[Number](o, "visibility")
	r.VariableVisibility = decode.List[Number](o, "variable_visibility")
	r.Trend = decode.Nested[Code](o, "trend")
}
