package avwx

import (
	"encoding/json"

	"github.com/s0up4200/goavwx/decode"
)

// Qualifiers is the decoded Q-line of a NOTAM.
type Qualifiers struct {
	Repr      string      `json:"repr,omitempty"`
	FIR       string      `json:"fir,omitempty"`
	Subject   *Code       `json:"subject,omitempty"`
	Condition *Code       `json:"condition,omitempty"`
	Traffic   *Code       `json:"traffic,omitempty"`
	Purpose   []Code      `json:"purpose,omitempty"`
	Scope     []Code      `json:"scope,omitempty"`
	Lower     *Number     `json:"lower,omitempty"`
	Upper     *Number     `json:"upper,omitempty"`
	Coord     *Coordinate `json:"coord,omitempty"`
	Radius    *Number     `json:"radius,omitempty"`
}

func (q *Qualifiers) DecodeFields(o *decode.Object) {
	q.Repr = o.String("repr")
	q.FIR = o.String("fir")
	q.Subject = decode.Nested[Code](o, "subject")
	q.Condition = decode.Nested[Code](o, "condition")
	q.Traffic = decode.Nested[Code](o, "traffic")
	q.Purpose = decode.List[Code](o, "purpose")
	q.Scope = decode.List[Code](o, "scope")
	q.Lower = decode.Nested[Number](o, "lower")
	q.Upper = decode.Nested[Number](o, "upper")
	q.Coord = decode.Nested[Coordinate](o, "coord")
	q.Radius = decode.Nested[Number](o, "radius")
}

// NotamData is a single notice to air missions.
type NotamData struct {
	Raw        string          `json:"raw,omitempty"`
	Sanitized  string          `json:"sanitized,omitempty"`
	Station    string          `json:"station,omitempty"`
	Time       *Timestamp      `json:"time,omitempty"`
	Number     string          `json:"number,omitempty"`
	Replaces   string          `json:"replaces,omitempty"`
	Type       *Code           `json:"type,omitempty"`
	Qualifiers *Qualifiers     `json:"qualifiers,omitempty"`
	StartTime  *Timestamp      `json:"start_time,omitempty"`
	EndTime    *Timestamp      `json:"end_time,omitempty"`
	Schedule   json.RawMessage `json:"schedule,omitempty"`
	Body       string          `json:"body,omitempty"`
	Lower      *Number         `json:"lower,omitempty"`
	Upper      *Number         `json:"upper,omitempty"`
	Remarks    string          `json:"remarks,omitempty"`
}

func (n *NotamData) DecodeFields(o *decode.Object) {
	n.Raw = o.String("raw")
	n.Sanitized = o.String("sanitized")
	n.Station = o.String("station")
	n.Time = decode.Nested[Timestamp](o, "time")
	n.Number = o.String("number")
	n.Replaces = o.String("replaces")
	n.Type = decode.Nested[Code](o, "type")
	n.Qualifiers = decode.Nested[Qualifiers](o, "qualifiers")
	n.StartTime = decode.Nested[Timestamp](o, "start_time")
	n.EndTime = decode.Nested[Timestamp](o, "end_time")
	n.Schedule = o.Raw("schedule")
	n.Body = o.String("body")
	n.Lower = decode.Nested[Number](o, "lower")
	n.Upper = decode.Nested[Number](o, "upper")
	n.Remarks = o.String("remarks")
}

// Notam is the set of NOTAMs for a location.
type Notam struct {
	decode.Partial
	Meta *Meta       `json:"meta,omitempty"`
	Data []NotamData `json:"data,omitempty"`
}

func (n *Notam) DecodeFields(o *decode.Object) {
	n.Meta = decode.Nested[Meta](o, "meta")
	n.Data = decode.List[NotamData](o, "data")
}

// Bulletin identifies the WMO bulletin an advisory was issued in.
type Bulletin struct {
	Repr    string `json:"repr,omitempty"`
	Type    *Code  `json:"type,omitempty"`
	Country string `json:"country,omitempty"`
	Number  *int   `json:"number,omitempty"`
}

func (b *Bulletin) DecodeFields(o *decode.Object) {
	b.Repr = o.String("repr")
	b.Type = decode.Nested[Code](o, "type")
	b.Country = o.String("country")
	b.Number = o.Int("number")
}

// Observation is the observed or forecast phenomenon of an advisory.
type Observation struct {
	Type      *Code           `json:"type,omitempty"`
	StartTime *Timestamp      `json:"start_time,omitempty"`
	EndTime   *Timestamp      `json:"end_time,omitempty"`
	Position  *Coordinate     `json:"position,omitempty"`
	Floor     *Number         `json:"floor,omitempty"`
	Ceiling   *Number         `json:"ceiling,omitempty"`
	Coords    []Coordinate    `json:"coords,omitempty"`
	Bounds    []string        `json:"bounds,omitempty"`
	Movement  json.RawMessage `json:"movement,omitempty"`
	Intensity json.RawMessage `json:"intensity,omitempty"`
	Other     []string        `json:"other,omitempty"`
}

func (ob *Observation) DecodeFields(o *decode.Object) {
	ob.Type = decode.Nested[Code](o, "type")
	ob.StartTime = decode.Nested[Timestamp](o, "start_time")
	ob.EndTime = decode.Nested[Timestamp](o, "end_time")
	ob.Position = decode.Nested[Coordinate](o, "position")
	ob.Floor = decode.Nested[Number](o, "floor")
	ob.Ceiling = decode.Nested[Number](o, "ceiling")
	ob.Coords = decode.List[Coordinate](o, "coords")
	ob.Bounds = o.Strings("bounds")
	ob.Movement = o.Raw("movement")
	ob.Intensity = o.Raw("intensity")
	ob.Other = o.Strings("other")
}

// AirSigmetReport is a single AIRMET or SIGMET.
type AirSigmetReport struct {
	Raw         string          `json:"raw,omitempty"`
	Sanitized   string          `json:"sanitized,omitempty"`
	Station     string          `json:"station,omitempty"`
	Time        *Timestamp      `json:"time,omitempty"`
	Remarks     string          `json:"remarks,omitempty"`
	Bulletin    *Bulletin       `json:"bulletin,omitempty"`
	Issuer      string          `json:"issuer,omitempty"`
	Correction  json.RawMessage `json:"correction,omitempty"`
	Area        string          `json:"area,omitempty"`
	Type        string          `json:"type,omitempty"`
	StartTime   *Timestamp      `json:"start_time,omitempty"`
	EndTime     *Timestamp      `json:"end_time,omitempty"`
	Body        string          `json:"body,omitempty"`
	Region      string          `json:"region,omitempty"`
	Observation *Observation    `json:"observation,omitempty"`
	Forecast    *Observation    `json:"forecast,omitempty"`
	Units       *Units          `json:"units,omitempty"`
}

func (r *AirSigmetReport) DecodeFields(o *decode.Object) {
	r.Raw = o.String("raw")
	r.Sanitized = o.String("sanitized")
	r.Station = o.String("station")
	r.Time = decode.Nested[Timestamp](o, "time")
	r.Remarks = o.String("remarks")
	r.Bulletin = decode.Nested[Bulletin](o, "bulletin")
	r.Issuer = o.String("issuer")
	r.Correction = o.Raw("correction")
	r.Area = o.String("area")
	r.Type = o.String("type")
	r.StartTime = decode.Nested[Timestamp](o, "start_time")
	r.EndTime = decode.Nested[Timestamp](o, "end_time")
	r.Body = o.String("body")
	r.Region = o.String("region")
	r.Observation = decode.Nested[Observation](o, "observation")
	r.Forecast = decode.Nested[Observation](o, "forecast")
	r.Units = decode.Nested[Units](o, "units")
}

// AirSigmet is the set of current AIRMETs and SIGMETs.
type AirSigmet struct {
	decode.Partial
	Meta    *Meta             `json:"meta,omitempty"`
	Reports []AirSigmetReport `json:"reports,omitempty"`
}

func (a *AirSigmet) DecodeFields(o *decode.Object) {
	a.Meta = decode.Nested[Meta](o, "meta")
	a.Reports = decode.List[AirSigmetReport](o, "reports")
}
