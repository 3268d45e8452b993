package avwx

import (
	"context"
)

// API defines the interface for AVWX operations
type API interface {
	// TestConnection verifies the client can reach AVWX with its key
	TestConnection(ctx context.Context) error

	StationAPI
	ReportAPI
	ForecastAPI
}

// StationAPI covers station lookup and search.
type StationAPI interface {
	GetStation(ctx context.Context, ident string, p StationParams) (*Station, error)
	GetNearStations(ctx context.Context, coords string, p ListParams) ([]NearStation, error)
	SearchStations(ctx context.Context, text string, p ListParams) ([]Station, error)
	GetStationsAlongRoute(ctx context.Context, route string, distance float64, p StationParams) (*StationRoute, error)
}

// ReportAPI covers observed and issued reports.
type ReportAPI interface {
	GetMetar(ctx context.Context, location string, p ReportParams) (*Metar, error)
	ParseMetar(ctx context.Context, raw string, p ParseParams) (*Metar, error)
	GetTaf(ctx context.Context, location string, p ReportParams) (*Taf, error)
	ParseTaf(ctx context.Context, raw string, p ParseParams) (*Taf, error)
	GetPirep(ctx context.Context, location string, p ReportParams) (*Pirep, error)
	ParsePirep(ctx context.Context, raw string, p ParseParams) (*Pirep, error)
	GetSummary(ctx context.Context, location string, p ReportParams) (*Summary, error)
	GetNotam(ctx context.Context, location string, p NotamParams) (*Notam, error)
	ParseNotam(ctx context.Context, raw string, p ParseParams) (*Notam, error)
	GetAirSigmet(ctx context.Context, p AirSigmetParams) (*AirSigmet, error)
	ParseAirSigmet(ctx context.Context, raw string, p ParseParams) (*AirSigmet, error)

	// GetReport dispatches on kind to the matching Get method
	GetReport(ctx context.Context, kind ReportKind, location string, p ReportParams) (Report, error)
	// GetReportsAlongRoute returns reports of one kind along a route
	GetReportsAlongRoute(ctx context.Context, kind ReportKind, route string, distance float64, p ReportParams) (*ReportsRoute, error)
}

// ForecastAPI covers the NBM and GFS model products.
type ForecastAPI interface {
	GetNbm(ctx context.Context, kind ForecastKind, location string, p ReportParams) (*Nbm, error)
	ParseNbm(ctx context.Context, kind ForecastKind, raw string, p ParseParams) (*Nbm, error)
	GetGfs(ctx context.Context, kind ForecastKind, location string, p ReportParams) (*Gfs, error)
	ParseGfs(ctx context.Context, kind ForecastKind, raw string, p ParseParams) (*Gfs, error)
}

var _ API = (*Client)(nil)
