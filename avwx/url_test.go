package avwx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildURL(t *testing.T) {
	const base = "https://avwx.rest/api/"

	tests := []struct {
		name           string
		path           string
		primary        string
		includePrimary bool
		params         []Param
		want           string
	}{
		{
			name:           "primary only",
			path:           "metar/",
			primary:        "KJFK",
			includePrimary: true,
			want:           "https://avwx.rest/api/metar/KJFK?",
		},
		{
			name:           "single option",
			path:           "metar/",
			primary:        "KJFK",
			includePrimary: true,
			params:         []Param{StringParam("options", "translate")},
			want:           "https://avwx.rest/api/metar/KJFK?options=translate&",
		},
		{
			name:           "empty and unset params are skipped",
			path:           "metar/",
			primary:        "KJFK",
			includePrimary: true,
			params: []Param{
				StringParam("options", ""),
				BoolParam("airport", Optional[bool]{}),
				IntParam("n", Optional[int]{}),
				StringParam("filter", "raw"),
			},
			want: "https://avwx.rest/api/metar/KJFK?filter=raw&",
		},
		{
			name:           "param equal to primary is skipped",
			path:           "station/",
			primary:        "KJFK",
			includePrimary: true,
			params:         []Param{StringParam("ident", "KJFK"), StringParam("filter", "icao")},
			want:           "https://avwx.rest/api/station/KJFK?filter=icao&",
		},
		{
			name:           "primary omitted",
			path:           "parse/metar",
			primary:        "KJFK 011251Z",
			includePrimary: false,
			params:         []Param{StringParam("options", "info")},
			want:           "https://avwx.rest/api/parse/metar?options=info&",
		},
		{
			name:           "booleans and numbers",
			path:           "station/near/",
			primary:        "40.6,-73.8",
			includePrimary: true,
			params: []Param{
				IntParam("n", Some(0)),
				BoolParam("airport", Some(true)),
				BoolParam("reporting", Some(false)),
				FloatParam("distance", Some(12.5)),
			},
			want: "https://avwx.rest/api/station/near/40.6,-73.8?n=0&airport=true&reporting=false&distance=12.5&",
		},
		{
			name:           "params keep their order",
			path:           "search/station",
			includePrimary: false,
			params: []Param{
				StringParam("text", "KJFK"),
				IntParam("n", Some(10)),
				StringParam("remove", "wiki"),
			},
			want: "https://avwx.rest/api/search/station?text=KJFK&n=10&remove=wiki&",
		},
		{
			name:           "whitespace is stripped and values are escaped",
			path:           "metar/",
			primary:        "KJFK",
			includePrimary: true,
			params:         []Param{StringParam("options", " info, translate ")},
			want:           "https://avwx.rest/api/metar/KJFK?options=info%2Ctranslate&",
		},
		{
			name:           "whitespace only is empty",
			path:           "metar/",
			primary:        "KJFK",
			includePrimary: true,
			params:         []Param{StringParam("remove", "   ")},
			want:           "https://avwx.rest/api/metar/KJFK?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildURL(base, tt.path, tt.primary, tt.includePrimary, tt.params)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptional(t *testing.T) {
	var unset Optional[int]
	assert.False(t, unset.IsSet())
	assert.Equal(t, 10, unset.Or(10))

	zero := Some(0)
	v, ok := zero.Get()
	assert.True(t, ok)
	assert.Equal(t, 0, v)
	assert.Equal(t, 0, zero.Or(10))
}

func TestParamIsSet(t *testing.T) {
	assert.False(t, StringParam("a", "").IsSet())
	assert.True(t, StringParam("a", "b").IsSet())
	assert.True(t, BoolParam("a", Some(false)).IsSet())
	assert.False(t, FloatParam("a", Optional[float64]{}).IsSet())
}
