package avwx

import (
	"context"
	"fmt"
)

func (p ReportParams) modelParams() []Param {
	p.OnFail = orDefault(p.OnFail, OnFailCache)
	return p.stationParams()
}

// GetNbm returns the National Blend of Models forecast of the given product
// for a station ident or "lat,lon". OnFail defaults to "cache".
func (c *Client) GetNbm(ctx context.Context, kind ForecastKind, location string, p ReportParams) (*Nbm, error) {
	if err := kind.validateNbm(); err != nil {
		return nil, err
	}
	r := getRequest("nbm/"+kind.String(), "nbm/"+kind.String()+"/", location, p.modelParams()...)
	nbm, err := fetchOne[Nbm](ctx, c, r)
	if err != nil {
		return nil, fmt.Errorf("failed to get nbm %s for %s: %w", kind, location, err)
	}
	return nbm, nil
}

// ParseNbm parses a raw NBM report of the given product.
func (c *Client) ParseNbm(ctx context.Context, kind ForecastKind, raw string, p ParseParams) (*Nbm, error) {
	if err := kind.validateNbm(); err != nil {
		return nil, err
	}
	r := parseRequest("parse/nbm", "parse/nbm/", raw, p.params()...)
	r.primary, r.includePrimary = kind.String(), true
	nbm, err := fetchOne[Nbm](ctx, c, r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse nbm %s: %w", kind, err)
	}
	return nbm, nil
}

// GetGfs returns the GFS MOS forecast of the given product for a station
// ident or "lat,lon". OnFail defaults to "cache".
func (c *Client) GetGfs(ctx context.Context, kind ForecastKind, location string, p ReportParams) (*Gfs, error) {
	if err := kind.validateGfs(); err != nil {
		return nil, err
	}
	r := getRequest("gfs/"+kind.String(), "gfs/"+kind.String()+"/", location, p.modelParams()...)
	gfs, err := fetchOne[Gfs](ctx, c, r)
	if err != nil {
		return nil, fmt.Errorf("failed to get gfs %s for %s: %w", kind, location, err)
	}
	return gfs, nil
}

// ParseGfs parses a raw GFS MOS report of the given product.
func (c *Client) ParseGfs(ctx context.Context, kind ForecastKind, raw string, p ParseParams) (*Gfs, error) {
	if err := kind.validateGfs(); err != nil {
		return nil, err
	}
	r := parseRequest("parse/gfs", "parse/gfs/", raw, p.params()...)
	r.primary, r.includePrimary = kind.String(), true
	gfs, err := fetchOne[Gfs](ctx, c, r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse gfs %s: %w", kind, err)
	}
	return gfs, nil
}
