package decode

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type inner struct {
	X *int
}

func (i *inner) DecodeFields(o *Object) {
	i.X = o.Int("x")
}

type item struct {
	Y *int
}

func (i *item) DecodeFields(o *Object) {
	i.Y = o.Int("y")
}

type outer struct {
	Partial
	A *inner
	B []item
}

func (v *outer) DecodeFields(o *Object) {
	v.A = Nested[inner](o, "a")
	v.B = List[item](o, "b")
}

type scalars struct {
	Partial
	Name    string
	Tags    []string
	Ratio   *float64
	Count   *int
	Enabled *bool
	Flagged bool
	When    *time.Time
	Extra   json.RawMessage
	Labels  map[string]string
}

func (s *scalars) DecodeFields(o *Object) {
	s.Name = o.String("name")
	s.Tags = o.Strings("tags")
	s.Ratio = o.Float("ratio")
	s.Count = o.Int("count")
	s.Enabled = o.Bool("enabled")
	s.Flagged = o.Flag("flagged")
	s.When = o.Time("when")
	s.Extra = o.Raw("extra")
	s.Labels = o.StringMap("labels")
}

func mustParse(t *testing.T, doc string) gjson.Result {
	t.Helper()
	res, err := Parse([]byte(doc))
	require.NoError(t, err)
	return res
}

func TestValueNestedAndList(t *testing.T) {
	res := mustParse(t, `{"a": {"x": 1}, "b": [{"y": 2}, {"y": 3}]}`)

	v, warnings := Value[outer](res)
	assert.Empty(t, warnings)
	assert.False(t, v.IsPartial())

	require.NotNil(t, v.A)
	require.NotNil(t, v.A.X)
	assert.Equal(t, 1, *v.A.X)

	require.Len(t, v.B, 2)
	assert.Equal(t, 2, *v.B[0].Y)
	assert.Equal(t, 3, *v.B[1].Y)
}

func TestValueDropsUnknownKeys(t *testing.T) {
	res := mustParse(t, `{"a": {"x": 1, "unexpected": true}, "zzz": [1, 2, 3]}`)

	v, warnings := Value[outer](res)
	assert.Empty(t, warnings)
	require.NotNil(t, v.A)
	assert.Equal(t, 1, *v.A.X)
	assert.Nil(t, v.B)
}

func TestValueAbsentAndNullFieldsAreUnset(t *testing.T) {
	res := mustParse(t, `{"a": null}`)

	v, warnings := Value[outer](res)
	assert.Empty(t, warnings)
	assert.Nil(t, v.A)
	assert.Nil(t, v.B)
}

func TestValueShapeMismatchesBecomeWarnings(t *testing.T) {
	res := mustParse(t, `{"a": [1], "b": [{"y": "two"}, 7, {"y": 3}]}`)

	v, warnings := Value[outer](res)
	assert.Nil(t, v.A)
	require.Len(t, v.B, 2)
	assert.Nil(t, v.B[0].Y)
	assert.Equal(t, 3, *v.B[1].Y)

	require.Len(t, warnings, 3)
	assert.Equal(t, Warning{Path: "a", Want: "object", Got: "array"}, warnings[0])
	assert.Equal(t, "b[0].y", warnings[1].Path)
	assert.Equal(t, "integer", warnings[1].Want)
	assert.Equal(t, "b[1]", warnings[2].Path)

	assert.True(t, v.IsPartial())
	assert.Equal(t, warnings, v.Warnings)
}

func TestValueScalars(t *testing.T) {
	res := mustParse(t, `{
		"name": 42,
		"tags": ["a", 1, null, true],
		"ratio": "0.5",
		"count": "12",
		"enabled": false,
		"flagged": true,
		"when": "2024-03-01T12:30:00Z",
		"extra": {"anything": [1, 2]},
		"labels": {"slp": "1013", "n": 4}
	}`)

	v, warnings := Value[scalars](res)
	assert.Empty(t, warnings)

	assert.Equal(t, "42", v.Name)
	assert.Equal(t, []string{"a", "1", "true"}, v.Tags)
	assert.InDelta(t, 0.5, *v.Ratio, 1e-9)
	assert.Equal(t, 12, *v.Count)
	require.NotNil(t, v.Enabled)
	assert.False(t, *v.Enabled)
	assert.True(t, v.Flagged)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC), *v.When)
	assert.JSONEq(t, `{"anything": [1, 2]}`, string(v.Extra))
	assert.Equal(t, map[string]string{"slp": "1013", "n": "4"}, v.Labels)
}

func TestValueScalarMismatches(t *testing.T) {
	res := mustParse(t, `{
		"name": {"nested": true},
		"tags": "a,b",
		"ratio": "high",
		"count": 1.5,
		"enabled": "yes",
		"when": "yesterday"
	}`)

	v, warnings := Value[scalars](res)
	assert.Empty(t, v.Name)
	assert.Nil(t, v.Tags)
	assert.Nil(t, v.Ratio)
	assert.Nil(t, v.Count)
	assert.Nil(t, v.Enabled)
	assert.Nil(t, v.When)

	paths := make([]string, 0, len(warnings))
	for _, w := range warnings {
		paths = append(paths, w.Path)
	}
	assert.Equal(t, []string{"name", "tags", "ratio", "count", "enabled", "when"}, paths)
}

func TestValueNonObjectRoot(t *testing.T) {
	v, warnings := Value[outer](mustParse(t, `[1, 2]`))
	require.Len(t, warnings, 1)
	assert.Equal(t, "$", warnings[0].Path)
	assert.Equal(t, "object", warnings[0].Want)
	assert.Nil(t, v.A)
}

func TestValues(t *testing.T) {
	res := mustParse(t, `[{"a": {"x": 1}}, "junk", {"a": {"x": "bad"}}]`)

	vs, warnings := Values[outer](res)
	require.Len(t, vs, 2)
	assert.Equal(t, 1, *vs[0].A.X)
	assert.False(t, vs[0].IsPartial())
	assert.True(t, vs[1].IsPartial())
	assert.Equal(t, "[2].a.x", vs[1].Warnings[0].Path)

	require.Len(t, warnings, 2)
	assert.Equal(t, "[1]", warnings[0].Path)
	assert.Equal(t, "[2].a.x", warnings[1].Path)
}

func TestValuesNonArrayRoot(t *testing.T) {
	vs, warnings := Values[outer](mustParse(t, `{"a": {}}`))
	assert.Nil(t, vs)
	require.Len(t, warnings, 1)
	assert.Equal(t, "array", warnings[0].Want)
}

func TestParse(t *testing.T) {
	_, err := Parse([]byte(`{"a":`))
	assert.ErrorIs(t, err, ErrInvalidJSON)

	res, err := Parse([]byte(`{"a": 1}`))
	require.NoError(t, err)
	assert.True(t, res.IsObject())
}

func TestWarningString(t *testing.T) {
	w := Warning{Path: "wind.speed", Want: "number", Got: `string "calm"`}
	assert.Equal(t, `wind.speed: want number, got string "calm"`, w.String())
}
