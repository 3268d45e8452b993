package avwx

import (
	"context"
	"fmt"
)

// GetNotam returns the NOTAMs for a station ident or "lat,lon". OnFail
// defaults to "cache".
func (c *Client) GetNotam(ctx context.Context, location string, p NotamParams) (*Notam, error) {
	r := getRequest("notam", "notam/", location,
		IntParam("distance", p.Distance),
		StringParam("remove", p.Remove),
		StringParam("filter", p.Filter),
		StringParam("onfail", orDefault(p.OnFail, OnFailCache)),
	)
	notam, err := fetchOne[Notam](ctx, c, r)
	if err != nil {
		return nil, fmt.Errorf("failed to get notams for %s: %w", location, err)
	}
	return notam, nil
}

// ParseNotam parses a raw NOTAM. Options are not used by this endpoint.
func (c *Client) ParseNotam(ctx context.Context, raw string, p ParseParams) (*Notam, error) {
	r := parseRequest("parse/notam", "parse/notam", raw,
		StringParam("remove", p.Remove),
		StringParam("filter", p.Filter),
	)
	notam, err := fetchOne[Notam](ctx, c, r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse notam: %w", err)
	}
	return notam, nil
}

// GetAirSigmet returns all current AIRMETs and SIGMETs.
func (c *Client) GetAirSigmet(ctx context.Context, p AirSigmetParams) (*AirSigmet, error) {
	r := getRequest("airsigmet", "airsigmet", "",
		StringParam("remove", p.Remove),
		StringParam("filter", p.Filter),
		StringParam("onfail", p.OnFail),
	)
	result, err := fetchOne[AirSigmet](ctx, c, r)
	if err != nil {
		return nil, fmt.Errorf("failed to get airsigmet: %w", err)
	}
	return result, nil
}

// ParseAirSigmet parses a raw AIRMET or SIGMET.
func (c *Client) ParseAirSigmet(ctx context.Context, raw string, p ParseParams) (*AirSigmet, error) {
	result, err := fetchOne[AirSigmet](ctx, c, parseRequest("parse/airsigmet", "parse/airsigmet", raw, p.params()...))
	if err != nil {
		return nil, fmt.Errorf("failed to parse airsigmet: %w", err)
	}
	return result, nil
}
