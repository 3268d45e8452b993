package avwx

import (
	"context"
	"fmt"
)

// GetStation returns the station details for an ICAO, IATA or GPS ident.
func (c *Client) GetStation(ctx context.Context, ident string, p StationParams) (*Station, error) {
	r := getRequest("station", "station/", ident, p.params()...)
	station, err := fetchOne[Station](ctx, c, r)
	if err != nil {
		return nil, fmt.Errorf("failed to get station %s: %w", ident, err)
	}
	return station, nil
}

// GetNearStations returns the stations closest to coords, given as "lat,lon".
func (c *Client) GetNearStations(ctx context.Context, coords string, p ListParams) ([]NearStation, error) {
	r := getRequest("station/near", "station/near/", coords, p.params(DefaultNearCount)...)
	stations, err := fetchMany[NearStation](ctx, c, r)
	if err != nil {
		return nil, fmt.Errorf("failed to get stations near %s: %w", coords, err)
	}

	c.logger.Debug().
		Str("coords", coords).
		Int("count", len(stations)).
		Msg("Retrieved near stations from AVWX")
	return stations, nil
}

// SearchStations returns the stations matching a free text search.
func (c *Client) SearchStations(ctx context.Context, text string, p ListParams) ([]Station, error) {
	params := append([]Param{StringParam("text", text)}, p.params(DefaultSearchCount)...)
	r := getRequest("search/station", "search/station", "", params...)
	stations, err := fetchMany[Station](ctx, c, r)
	if err != nil {
		return nil, fmt.Errorf("failed to search stations for %q: %w", text, err)
	}

	c.logger.Debug().
		Str("text", text).
		Int("count", len(stations)).
		Msg("Retrieved station search results from AVWX")
	return stations, nil
}

// GetStationsAlongRoute returns the stations within distance nautical miles
// of a route. The route is a semicolon separated list of idents or
// coordinates, e.g. "KLEX;12.34,-12.34;KMCO".
func (c *Client) GetStationsAlongRoute(ctx context.Context, route string, distance float64, p StationParams) (*StationRoute, error) {
	params := append([]Param{
		StringParam("route", route),
		FloatParam("distance", Some(distance)),
	}, p.params()...)
	r := getRequest("path/station", "path/station", "", params...)
	result, err := fetchOne[StationRoute](ctx, c, r)
	if err != nil {
		return nil, fmt.Errorf("failed to get stations along route: %w", err)
	}
	return result, nil
}
