package filter

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/goavwx/avwx"
)

func ptr[T any](v T) *T { return &v }

func testMetar() *avwx.Metar {
	observed := time.Now().Add(-20 * time.Minute)
	return &avwx.Metar{
		Station:     "KJFK",
		Raw:         "KJFK 011251Z 31015G25KT 2SM -RA BR BKN008 OVC015 08/06 A2992",
		Time:        &avwx.Timestamp{Repr: "011251Z", Dt: &observed},
		FlightRules: "IFR",
		WxCodes:     []avwx.Code{{Repr: "-RA", Value: "Light Rain"}, {Repr: "BR", Value: "Mist"}},
		Visibility:  &avwx.Visibility{Number: avwx.Number{Repr: "2", Value: ptr(2.0)}},
		WindSpeed:   &avwx.Number{Value: ptr(15.0)},
		WindGust:    &avwx.Number{Value: ptr(25.0)},
		Temperature: &avwx.Number{Value: ptr(8.0)},
		Clouds: []avwx.Cloud{
			{Type: "FEW", Base: ptr(4)},
			{Type: "BKN", Base: ptr(8)},
			{Type: "OVC", Base: ptr(15)},
		},
		Info: &avwx.Station{ICAO: "KJFK", Name: "John F Kennedy International Airport", State: "NY", Country: "US", ElevationFt: ptr(13)},
	}
}

func TestCompileFilter(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{name: "valid expression", expression: `hasCode("RA")`},
		{name: "empty expression", expression: "   ", wantErr: true, errContains: "empty expression"},
		{name: "invalid syntax", expression: `hasCode("unclosed`, wantErr: true},
		{name: "complex expression", expression: `rulesAtLeast("IFR") and Ceiling < 1000 and WindGust > 20`},
		{name: "record access", expression: `Record.Station == "KJFK"`},
	}

	compiler := NewExprCompiler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := compiler.Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				var ce *CompilationError
				assert.True(t, errors.As(err, &ce))
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, filter)
		})
	}
}

func TestFilterEvaluation(t *testing.T) {
	record := FromReport(testMetar())

	tests := []struct {
		expression string
		want       bool
	}{
		{`Station == "KJFK"`, true},
		{`Kind == "metar"`, true},
		{`FlightRules == "IFR"`, true},
		{`rulesAtLeast("MVFR")`, true},
		{`rulesAtLeast("LIFR")`, false},
		{`hasCode("RA")`, true},
		{`hasCode("+RA")`, true},
		{`hasCode("SN")`, false},
		{`HasCeiling and Ceiling == 800`, true},
		{`Visibility < 3 and HasVisibility`, true},
		{`WindGust - WindSpeed >= 10`, true},
		{`Temperature > 10`, false},
		{`State == "NY" and ElevationFt < 100`, true},
		{`ageMinutes() >= 19 and ageMinutes() < 60`, true},
		{`hasText(Name, "kennedy")`, true},
		{`hasPrefix(Station, "k")`, true},
		{`Name contains "Kennedy"`, true},
		{`Station startsWith "K"`, true},
		{`"BR" in WxCodes`, true},
		{`not Partial`, true},
	}

	compiler := NewExprCompiler()
	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			filter, err := compiler.Compile(tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.want, filter.Evaluate(record))
		})
	}
}

func TestEvaluationErrorIsNoMatch(t *testing.T) {
	filter, err := NewExprCompiler().Compile(`Station.Foo == 1`)
	require.NoError(t, err)

	record := Record{Station: "KJFK"}
	assert.False(t, filter.Evaluate(record))

	_, err = filter.EvaluateErr(record)
	var ee *EvaluationError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "KJFK", ee.Subject)
}

func TestNonBooleanExpression(t *testing.T) {
	tests := []string{`Station`, `Ceiling`}

	compiler := NewExprCompiler()
	for _, expression := range tests {
		t.Run(expression, func(t *testing.T) {
			filter, err := compiler.Compile(expression)
			require.NoError(t, err)

			record := Record{Station: "KJFK", Ceiling: 800}
			assert.NotPanics(t, func() {
				assert.False(t, filter.Evaluate(record))
			})

			_, err = filter.EvaluateErr(record)
			var ee *EvaluationError
			require.ErrorAs(t, err, &ee)
			assert.Equal(t, "KJFK", ee.Subject)
			assert.Contains(t, ee.Error(), "did not return a boolean")
		})
	}
}

func TestCompilerCache(t *testing.T) {
	compiler := NewExprCompiler(WithCache(2))

	first, err := compiler.Compile(`Station == "KJFK"`)
	require.NoError(t, err)
	again, err := compiler.Compile(`  Station == "KJFK"  `)
	require.NoError(t, err)
	assert.Same(t, first, again)
	assert.Equal(t, 1, compiler.Size())

	_, err = compiler.Compile(`Station == "KLGA"`)
	require.NoError(t, err)
	_, err = compiler.Compile(`Station == "KEWR"`)
	require.NoError(t, err)
	assert.Equal(t, 2, compiler.Size())

	compiler.Clear()
	assert.Equal(t, 0, compiler.Size())
}

func TestLRUEviction(t *testing.T) {
	c := newLRUCache[int](2)
	c.Put("a", 1)
	c.Put("b", 2)
	_, _ = c.Get("a")
	c.Put("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestFromRecords(t *testing.T) {
	t.Run("near station", func(t *testing.T) {
		r := FromNearStation(&avwx.NearStation{
			Station:       &avwx.Station{ICAO: "KLGA", Reporting: ptr(true), Latitude: ptr(40.77)},
			NauticalMiles: ptr(9.1),
		})
		assert.Equal(t, "station", r.Kind)
		assert.Equal(t, "KLGA", r.Station)
		assert.True(t, r.Reporting)
		assert.InDelta(t, 9.1, r.Distance, 1e-9)
	})

	t.Run("taf uses first period", func(t *testing.T) {
		r := FromReport(&avwx.Taf{
			Station: "KJFK",
			Forecast: []avwx.TafLine{
				{FlightRules: "MVFR", Clouds: []avwx.Cloud{{Type: "OVC", Base: ptr(25)}}},
				{FlightRules: "VFR"},
			},
		})
		assert.Equal(t, "taf", r.Kind)
		assert.Equal(t, "MVFR", r.FlightRules)
		assert.Equal(t, 2500, r.Ceiling)
	})

	t.Run("summary", func(t *testing.T) {
		r := FromReport(&avwx.Summary{
			Metar: &avwx.SummaryMetar{FlightRules: "LIFR", Ceiling: &avwx.Number{Value: ptr(200.0)}},
			Info:  &avwx.Station{ICAO: "KBOS"},
		})
		assert.Equal(t, "summary", r.Kind)
		assert.Equal(t, "KBOS", r.Station)
		assert.Equal(t, 200, r.Ceiling)
	})

	t.Run("empty pirep", func(t *testing.T) {
		r := FromReport(&avwx.Pirep{})
		assert.Equal(t, "pirep", r.Kind)
		assert.Empty(t, r.Station)
	})

	t.Run("no ceiling", func(t *testing.T) {
		_, ok := ceiling([]avwx.Cloud{{Type: "FEW", Base: ptr(50)}, {Type: "SCT"}})
		assert.False(t, ok)
	})
}

func TestManager(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.RegisterFilters(map[string]string{
		"ifr":   `rulesAtLeast("IFR")`,
		"gusty": `WindGust >= 25`,
	}))
	assert.Equal(t, []string{"gusty", "ifr"}, m.ListFilters())

	err := m.RegisterFilters(map[string]string{"broken": `(`})
	require.Error(t, err)
	assert.Len(t, m.ListFilters(), 2)

	_, err = m.GetFilter("missing")
	var upe *UnknownPresetError
	assert.ErrorAs(t, err, &upe)

	f, err := m.Select("", "")
	require.NoError(t, err)
	assert.Nil(t, f)

	f, err = m.Select(`Station == "KJFK"`, "ifr")
	require.NoError(t, err)
	assert.Equal(t, `Station == "KJFK"`, f.Expression())

	f, err = m.Select("", "ifr")
	require.NoError(t, err)
	assert.Equal(t, `rulesAtLeast("IFR")`, f.Expression())
}

func TestApply(t *testing.T) {
	vfr := testMetar()
	vfr.Station, vfr.FlightRules = "KLGA", "VFR"
	reports := []avwx.Report{testMetar(), vfr}

	f, err := NewExprCompiler().Compile(`rulesAtLeast("MVFR")`)
	require.NoError(t, err)

	matches := Apply(f, reports, FromReport)
	require.Len(t, matches, 1)
	assert.Equal(t, "KJFK", matches[0].(*avwx.Metar).Station)

	assert.Len(t, Apply[avwx.Report](nil, reports, FromReport), 2)
}
