package avwx

import (
	"encoding/json"

	"github.com/s0up4200/goavwx/decode"
)

// ForecastPeriod is one time step of an NBM or GFS MOS forecast. Products
// populate different subsets of the numeric elements.
type ForecastPeriod struct {
	Time                   *Timestamp  `json:"time,omitempty"`
	Temperature            *Number     `json:"temperature,omitempty"`
	Dewpoint               *Number     `json:"dewpoint,omitempty"`
	SkyCover               *Number     `json:"sky_cover,omitempty"`
	Ceiling                *Number     `json:"ceiling,omitempty"`
	CloudBase              *Number     `json:"cloud_base,omitempty"`
	Cloud                  *Code       `json:"cloud,omitempty"`
	Visibility             *Visibility `json:"visibility,omitempty"`
	VisObstruction         *Code       `json:"vis_obstruction,omitempty"`
	WindDirection          *Number     `json:"wind_direction,omitempty"`
	WindSpeed              *Number     `json:"wind_speed,omitempty"`
	WindGust               *Number     `json:"wind_gust,omitempty"`
	PrecipType             *Code       `json:"precip_type,omitempty"`
	PrecipDuration         *Number     `json:"precip_duration,omitempty"`
	PrecipChance1          *Number     `json:"precip_chance_1,omitempty"`
	PrecipChance6          *Number     `json:"precip_chance_6,omitempty"`
	PrecipChance12         *Number     `json:"precip_chance_12,omitempty"`
	PrecipAmount1          *Number     `json:"precip_amount_1,omitempty"`
	PrecipAmount6          *Number     `json:"precip_amount_6,omitempty"`
	PrecipAmount12         *Number     `json:"precip_amount_12,omitempty"`
	FreezingPrecip         *Number     `json:"freezing_precip,omitempty"`
	Snow                   *Number     `json:"snow,omitempty"`
	Sleet                  *Number     `json:"sleet,omitempty"`
	Rain                   *Number     `json:"rain,omitempty"`
	SnowLevel              *Number     `json:"snow_level,omitempty"`
	SnowAmount1            *Number     `json:"snow_amount_1,omitempty"`
	SnowAmount6            *Number     `json:"snow_amount_6,omitempty"`
	IcingAmount1           *Number     `json:"icing_amount_1,omitempty"`
	IcingAmount6           *Number     `json:"icing_amount_6,omitempty"`
	Thunderstorm1          *Number     `json:"thunderstorm_1,omitempty"`
	Thunderstorm3          *Number     `json:"thunderstorm_3,omitempty"`
	Thunderstorm6          *Number     `json:"thunderstorm_6,omitempty"`
	Thunderstorm12         *Number     `json:"thunderstorm_12,omitempty"`
	SevereStorm1           *Number     `json:"severe_storm_1,omitempty"`
	SevereStorm3           *Number     `json:"severe_storm_3,omitempty"`
	SevereStorm6           *Number     `json:"severe_storm_6,omitempty"`
	SevereStorm12          *Number     `json:"severe_storm_12,omitempty"`
	SolarRadiation         *Number     `json:"solar_radiation,omitempty"`
	WaveHeight             *Number     `json:"wave_height,omitempty"`
	MixingHeight           *Number     `json:"mixing_height,omitempty"`
	TransportWindDirection *Number     `json:"transport_wind_direction,omitempty"`
	TransportWindSpeed     *Number     `json:"transport_wind_speed,omitempty"`
	Haines                 *Number     `json:"haines,omitempty"`
}

// NumberField names one numeric element of a ForecastPeriod.
type NumberField struct {
	Key   string
	Value **Number
}

// Numbers returns the numeric elements in a fixed order.
func (p *ForecastPeriod) Numbers() []NumberField {
	return []NumberField{
		{"temperature", &p.Temperature},
		{"dewpoint", &p.Dewpoint},
		{"sky_cover", &p.SkyCover},
		{"ceiling", &p.Ceiling},
		{"cloud_base", &p.CloudBase},
		{"wind_direction", &p.WindDirection},
		{"wind_speed", &p.WindSpeed},
		{"wind_gust", &p.WindGust},
		{"precip_duration", &p.PrecipDuration},
		{"precip_chance_1", &p.PrecipChance1},
		{"precip_chance_6", &p.PrecipChance6},
		{"precip_chance_12", &p.PrecipChance12},
		{"precip_amount_1", &p.PrecipAmount1},
		{"precip_amount_6", &p.PrecipAmount6},
		{"precip_amount_12", &p.PrecipAmount12},
		{"freezing_precip", &p.FreezingPrecip},
		{"snow", &p.Snow},
		{"sleet", &p.Sleet},
		{"rain", &p.Rain},
		{"snow_level", &p.SnowLevel},
		{"snow_amount_1", &p.SnowAmount1},
		{"snow_amount_6", &p.SnowAmount6},
		{"icing_amount_1", &p.IcingAmount1},
		{"icing_amount_6", &p.IcingAmount6},
		{"thunderstorm_1", &p.Thunderstorm1},
		{"thunderstorm_3", &p.Thunderstorm3},
		{"thunderstorm_6", &p.Thunderstorm6},
		{"thunderstorm_12", &p.Thunderstorm12},
		{"severe_storm_1", &p.SevereStorm1},
		{"severe_storm_3", &p.SevereStorm3},
		{"severe_storm_6", &p.SevereStorm6},
		{"severe_storm_12", &p.SevereStorm12},
		{"solar_radiation", &p.SolarRadiation},
		{"wave_height", &p.WaveHeight},
		{"mixing_height", &p.MixingHeight},
		{"transport_wind_direction", &p.TransportWindDirection},
		{"transport_wind_speed", &p.TransportWindSpeed},
		{"haines", &p.Haines},
	}
}

func (p *ForecastPeriod) DecodeFields(o *decode.Object) {
	p.Time = decode.Nested[Timestamp](o, "time")
	p.Cloud = decode.Nested[Code](o, "cloud")
	p.Visibility = decode.Nested[Visibility](o, "visibility")
	p.VisObstruction = decode.Nested[Code](o, "vis_obstruction")
	p.PrecipType = decode.Nested[Code](o, "precip_type")
	for _, f := range p.Numbers() {
		*f.Value = decode.Nested[Number](o, f.Key)
	}
}

// ModelReport is the body shared by NBM and GFS MOS reports.
type ModelReport struct {
	Meta     *Meta            `json:"meta,omitempty"`
	Raw      string           `json:"raw,omitempty"`
	Station  string           `json:"station,omitempty"`
	Time     *Timestamp       `json:"time,omitempty"`
	Remarks  json.RawMessage  `json:"remarks,omitempty"`
	Forecast []ForecastPeriod `json:"forecast,omitempty"`
	Units    *Units           `json:"units,omitempty"`
	Info     *Station         `json:"info,omitempty"`
}

func (m *ModelReport) DecodeFields(o *decode.Object) {
	m.Meta = decode.Nested[Meta](o, "meta")
	m.Raw = o.String("raw")
	m.Station = o.String("station")
	m.Time = decode.Nested[Timestamp](o, "time")
	m.Remarks = o.Raw("remarks")
	m.Forecast = decode.List[ForecastPeriod](o, "forecast")
	m.Units = decode.Nested[Units](o, "units")
	m.Info = decode.Nested[Station](o, "info")
}

// Nbm is a National Blend of Models forecast.
type Nbm struct {
	decode.Partial
	ModelReport
}

func (n *Nbm) DecodeFields(o *decode.Object) {
	n.ModelReport.DecodeFields(o)
}

// Gfs is a GFS Model Output Statistics forecast.
type Gfs struct {
	decode.Partial
	ModelReport
}

func (g *Gfs) DecodeFields(o *decode.Object) {
	g.ModelReport.DecodeFields(o)
}
