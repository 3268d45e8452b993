package avwx

import (
	"context"
	"fmt"
)

func (p ReportParams) stationParams() []Param {
	return []Param{
		StringParam("options", p.Options),
		BoolParam("airport", p.Airport),
		BoolParam("reporting", p.Reporting),
		StringParam("remove", p.Remove),
		StringParam("filter", p.Filter),
		StringParam("onfail", p.OnFail),
	}
}

func (p ReportParams) locationParams() []Param {
	return []Param{
		StringParam("options", p.Options),
		StringParam("remove", p.Remove),
		StringParam("filter", p.Filter),
		StringParam("onfail", p.OnFail),
	}
}

// GetMetar returns the current METAR for a station ident or "lat,lon".
func (c *Client) GetMetar(ctx context.Context, location string, p ReportParams) (*Metar, error) {
	metar, err := fetchOne[Metar](ctx, c, getRequest("metar", "metar/", location, p.stationParams()...))
	if err != nil {
		return nil, fmt.Errorf("failed to get metar for %s: %w", location, err)
	}
	return metar, nil
}

// ParseMetar parses a raw METAR string.
func (c *Client) ParseMetar(ctx context.Context, raw string, p ParseParams) (*Metar, error) {
	metar, err := fetchOne[Metar](ctx, c, parseRequest("parse/metar", "parse/metar", raw, p.params()...))
	if err != nil {
		return nil, fmt.Errorf("failed to parse metar: %w", err)
	}
	return metar, nil
}

// GetTaf returns the current TAF for a station ident or "lat,lon".
func (c *Client) GetTaf(ctx context.Context, location string, p ReportParams) (*Taf, error) {
	taf, err := fetchOne[Taf](ctx, c, getRequest("taf", "taf/", location, p.stationParams()...))
	if err != nil {
		return nil, fmt.Errorf("failed to get taf for %s: %w", location, err)
	}
	return taf, nil
}

// ParseTaf parses a raw TAF string.
func (c *Client) ParseTaf(ctx context.Context, raw string, p ParseParams) (*Taf, error) {
	taf, err := fetchOne[Taf](ctx, c, parseRequest("parse/taf", "parse/taf", raw, p.params()...))
	if err != nil {
		return nil, fmt.Errorf("failed to parse taf: %w", err)
	}
	return taf, nil
}

// GetPirep returns the pilot reports near a station ident or "lat,lon".
// Airport and Reporting are not used by this endpoint.
func (c *Client) GetPirep(ctx context.Context, location string, p ReportParams) (*Pirep, error) {
	pirep, err := fetchOne[Pirep](ctx, c, getRequest("pirep", "pirep/", location, p.locationParams()...))
	if err != nil {
		return nil, fmt.Errorf("failed to get pirep for %s: %w", location, err)
	}
	return pirep, nil
}

// ParsePirep parses a raw pilot report.
func (c *Client) ParsePirep(ctx context.Context, raw string, p ParseParams) (*Pirep, error) {
	pirep, err := fetchOne[Pirep](ctx, c, parseRequest("parse/pirep", "parse/pirep", raw, p.params()...))
	if err != nil {
		return nil, fmt.Errorf("failed to parse pirep: %w", err)
	}
	return pirep, nil
}

// GetSummary returns the current conditions summary for a station ident or
// "lat,lon". Airport and Reporting are not used by this endpoint.
func (c *Client) GetSummary(ctx context.Context, location string, p ReportParams) (*Summary, error) {
	summary, err := fetchOne[Summary](ctx, c, getRequest("summary", "summary/", location, p.locationParams()...))
	if err != nil {
		return nil, fmt.Errorf("failed to get summary for %s: %w", location, err)
	}
	return summary, nil
}

// GetReport returns the report of the given kind for a location.
func (c *Client) GetReport(ctx context.Context, kind ReportKind, location string, p ReportParams) (Report, error) {
	var (
		report Report
		err    error
	)
	switch kind {
	case ReportMetar:
		var m *Metar
		m, err = c.GetMetar(ctx, location, p)
		report = m
	case ReportTaf:
		var t *Taf
		t, err = c.GetTaf(ctx, location, p)
		report = t
	case ReportSummary:
		var s *Summary
		s, err = c.GetSummary(ctx, location, p)
		report = s
	case ReportPirep:
		var pr *Pirep
		pr, err = c.GetPirep(ctx, location, p)
		report = pr
	default:
		return nil, kind.Validate()
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}
