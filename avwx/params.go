package avwx

// Fallback values sent to the API when a parameter is left unset.
const (
	DefaultNearCount   = 10
	DefaultSearchCount = 10
	OnFailCache        = "cache"
	OnFailError        = "error"
	OnFailNearest      = "nearest"
)

// StationParams are the common response shaping parameters.
type StationParams struct {
	// Remove lists response keys to drop, comma separated.
	Remove string
	// Filter lists the only response keys to keep, comma separated.
	Filter string
}

func (p StationParams) params() []Param {
	return []Param{
		StringParam("remove", p.Remove),
		StringParam("filter", p.Filter),
	}
}

// ListParams control station listings from coordinate and text searches.
type ListParams struct {
	// N is the number of stations to return. Defaults to 10.
	N         Optional[int]
	Airport   Optional[bool]
	Reporting Optional[bool]
	Remove    string
	Filter    string
}

func (p ListParams) params(defaultN int) []Param {
	return []Param{
		IntParam("n", Some(p.N.Or(defaultN))),
		BoolParam("airport", p.Airport),
		BoolParam("reporting", p.Reporting),
		StringParam("remove", p.Remove),
		StringParam("filter", p.Filter),
	}
}

// ReportParams control report retrieval.
type ReportParams struct {
	// Options is a comma separated list such as "info,translate,summary,speech".
	Options   string
	Airport   Optional[bool]
	Reporting Optional[bool]
	Remove    string
	Filter    string
	// OnFail picks the fallback when no current report exists: "error",
	// "cache" or "nearest".
	OnFail string
}

// ParseParams control report parsing.
type ParseParams struct {
	Options string
	Remove  string
	Filter  string
}

func (p ParseParams) params() []Param {
	return []Param{
		StringParam("options", p.Options),
		StringParam("remove", p.Remove),
		StringParam("filter", p.Filter),
	}
}

// NotamParams control NOTAM retrieval.
type NotamParams struct {
	// Distance is the search radius in nautical miles.
	Distance Optional[int]
	Remove   string
	Filter   string
	// OnFail defaults to "cache".
	OnFail string
}

// AirSigmetParams control AIRMET and SIGMET retrieval.
type AirSigmetParams struct {
	Remove string
	Filter string
	OnFail string
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
