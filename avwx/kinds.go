package avwx

import (
	"fmt"
	"strings"
)

// ReportKind selects a report family for the tagged operations.
type ReportKind string

const (
	ReportMetar   ReportKind = "metar"
	ReportTaf     ReportKind = "taf"
	ReportSummary ReportKind = "summary"
	ReportPirep   ReportKind = "pirep"
)

// ReportKinds lists every supported report kind.
var ReportKinds = []ReportKind{ReportMetar, ReportTaf, ReportSummary, ReportPirep}

// ParseReportKind parses s case-insensitively.
func ParseReportKind(s string) (ReportKind, error) {
	k := ReportKind(strings.ToLower(strings.TrimSpace(s)))
	if err := k.Validate(); err != nil {
		return "", err
	}
	return k, nil
}

// Validate returns an error wrapping ErrUnknownReportKind for unsupported kinds.
func (k ReportKind) Validate() error {
	switch k {
	case ReportMetar, ReportTaf, ReportSummary, ReportPirep:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownReportKind, string(k))
	}
}

func (k ReportKind) String() string {
	return string(k)
}

// Report is implemented by the results of the tagged report operations:
// *Metar, *Taf, *Summary and *Pirep.
type Report interface {
	Kind() ReportKind
	IsPartial() bool
}

// ForecastKind selects an NBM or GFS model product.
type ForecastKind string

const (
	ForecastNBH ForecastKind = "nbh"
	ForecastNBS ForecastKind = "nbs"
	ForecastNBE ForecastKind = "nbe"
	ForecastNBX ForecastKind = "nbx"
	ForecastMAV ForecastKind = "mav"
	ForecastMEX ForecastKind = "mex"
)

// NbmKinds and GfsKinds list the products served by each model.
var (
	NbmKinds = []ForecastKind{ForecastNBH, ForecastNBS, ForecastNBE, ForecastNBX}
	GfsKinds = []ForecastKind{ForecastMAV, ForecastMEX}
)

// ParseForecastKind parses s case-insensitively.
func ParseForecastKind(s string) (ForecastKind, error) {
	k := ForecastKind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case ForecastNBH, ForecastNBS, ForecastNBE, ForecastNBX, ForecastMAV, ForecastMEX:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownForecastKind, s)
	}
}

// IsNbm reports whether k is a National Blend of Models product.
func (k ForecastKind) IsNbm() bool {
	switch k {
	case ForecastNBH, ForecastNBS, ForecastNBE, ForecastNBX:
		return true
	}
	return false
}

// IsGfs reports whether k is a GFS MOS product.
func (k ForecastKind) IsGfs() bool {
	return k == ForecastMAV || k == ForecastMEX
}

func (k ForecastKind) String() string {
	return string(k)
}

func (k ForecastKind) validateNbm() error {
	if !k.IsNbm() {
		return fmt.Errorf("%w: %q is not an NBM product", ErrUnknownForecastKind, string(k))
	}
	return nil
}

func (k ForecastKind) validateGfs() error {
	if !k.IsGfs() {
		return fmt.Errorf("%w: %q is not a GFS product", ErrUnknownForecastKind, string(k))
	}
	return nil
}
