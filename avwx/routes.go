package avwx

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/s0up4200/goavwx/decode"
)

// ReportsRoute holds the reports of one kind found along a flight route.
// Every element of Results has the dynamic type selected by Kind.
type ReportsRoute struct {
	decode.Partial
	Kind    ReportKind   `json:"kind"`
	Meta    *Meta        `json:"meta,omitempty"`
	Route   []Coordinate `json:"route,omitempty"`
	Results []Report     `json:"results,omitempty"`
}

// GetReportsAlongRoute returns the reports of the given kind for stations
// within distance nautical miles of a route.
func (c *Client) GetReportsAlongRoute(ctx context.Context, kind ReportKind, route string, distance float64, p ReportParams) (*ReportsRoute, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	endpoint := "path/" + kind.String()
	rawURL := BuildURL(c.baseURL, endpoint, "", false, []Param{
		StringParam("route", route),
		FloatParam("distance", Some(distance)),
		StringParam("options", p.Options),
		StringParam("remove", p.Remove),
		StringParam("filter", p.Filter),
	})

	res, err := c.dispatch(ctx, endpoint, http.MethodGet, rawURL, "")
	if err != nil {
		return nil, fmt.Errorf("failed to get %s along route: %w", kind, err)
	}

	result, warnings := decodeReportsRoute(kind, res)
	c.reportWarnings(endpoint, warnings)
	return result, nil
}

func decodeReportsRoute(kind ReportKind, res gjson.Result) (*ReportsRoute, []decode.Warning) {
	rr := &ReportsRoute{Kind: kind}
	warnings := decode.Decode(res, func(o *decode.Object) {
		rr.Meta = decode.Nested[Meta](o, "meta")
		rr.Route = decode.List[Coordinate](o, "route")
	})

	results := res.Get("results")
	if results.Exists() && results.Type != gjson.Null {
		var ws []decode.Warning
		switch kind {
		case ReportMetar:
			rr.Results, ws = asReports[Metar](decode.Values[Metar](results))
		case ReportTaf:
			rr.Results, ws = asReports[Taf](decode.Values[Taf](results))
		case ReportSummary:
			rr.Results, ws = asReports[Summary](decode.Values[Summary](results))
		case ReportPirep:
			rr.Results, ws = asReports[Pirep](decode.Values[Pirep](results))
		}
		for _, w := range ws {
			if w.Path == "$" {
				w.Path = ""
			}
			w.Path = "results" + w.Path
			warnings = append(warnings, w)
		}
	}

	rr.Warnings = warnings
	return rr, warnings
}

func asReports[T any, PT interface {
	*T
	Report
}](vs []T, warnings []decode.Warning) ([]Report, []decode.Warning) {
	if vs == nil {
		return nil, warnings
	}
	out := make([]Report, len(vs))
	for i := range vs {
		out[i] = PT(&vs[i])
	}
	return out, warnings
}
