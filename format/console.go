package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/s0up4200/goavwx/avwx"
	"github.com/s0up4200/goavwx/decode"
)

// Options controls how much of each result is printed
type Options struct {
	ShowDetails bool
	ShowRaw     bool
}

// ConsoleFormatter renders AVWX results as trees for terminal output
type ConsoleFormatter struct {
	opts Options
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter(opts Options) *ConsoleFormatter {
	return &ConsoleFormatter{opts: opts}
}

// entry is one branch of a tree: a title line and its indented children
type entry struct {
	title string
	lines []string
}

func writeHeader(sb *strings.Builder, noun string, count int) {
	sb.WriteString("\n" + noun)
	if count != 1 {
		sb.WriteString("s")
	}
	fmt.Fprintf(sb, " (%d):\n\n", count)
}

func writeTree(sb *strings.Builder, entries []entry) {
	for i, e := range entries {
		isLast := i == len(entries)-1
		prefix := "├"
		indent := "│   "
		if isLast {
			prefix = "╰"
			indent = "    "
		}

		fmt.Fprintf(sb, "%s── %s\n", prefix, e.title)
		for _, line := range e.lines {
			if line != "" {
				fmt.Fprintf(sb, "%s%s\n", indent, line)
			}
		}

		if !isLast {
			sb.WriteString("│\n")
		}
	}
	sb.WriteString("\n")
}

// FormatStations formats station details
func (f *ConsoleFormatter) FormatStations(stations []avwx.Station) string {
	if len(stations) == 0 {
		return "No stations found"
	}

	var sb strings.Builder
	writeHeader(&sb, "Station", len(stations))

	entries := make([]entry, 0, len(stations))
	for i := range stations {
		entries = append(entries, f.stationEntry(&stations[i], ""))
	}
	writeTree(&sb, entries)
	return sb.String()
}

// FormatNearStations formats the result of a coordinate search
func (f *ConsoleFormatter) FormatNearStations(near []avwx.NearStation) string {
	if len(near) == 0 {
		return "No stations found nearby"
	}

	var sb strings.Builder
	writeHeader(&sb, "Nearby station", len(near))

	entries := make([]entry, 0, len(near))
	for _, n := range near {
		if n.Station == nil {
			continue
		}
		suffix := ""
		if n.NauticalMiles != nil {
			suffix = fmt.Sprintf(" (%.1f nm)", *n.NauticalMiles)
		}
		e := f.stationEntry(n.Station, suffix)
		e.lines = append(e.lines, partialLine(&n.Partial))
		entries = append(entries, e)
	}
	writeTree(&sb, entries)
	return sb.String()
}

// FormatStationRoute formats the stations found along a route
func (f *ConsoleFormatter) FormatStationRoute(route *avwx.StationRoute) string {
	if route == nil || len(route.Results) == 0 {
		return "No stations found along route"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\nRoute: %s\n", routeLine(route.Route))
	writeHeader(&sb, "Station", len(route.Results))

	entries := make([]entry, 0, len(route.Results))
	for i := range route.Results {
		entries = append(entries, f.stationEntry(&route.Results[i], ""))
	}
	writeTree(&sb, entries)
	return sb.String()
}

func (f *ConsoleFormatter) stationEntry(s *avwx.Station, suffix string) entry {
	e := entry{title: s.Ident() + suffix}
	if s.Name != "" {
		e.title += " - " + s.Name
	}

	var place []string
	for _, p := range []string{s.City, s.State, s.Country} {
		if p != "" {
			place = append(place, p)
		}
	}
	if len(place) > 0 {
		e.lines = append(e.lines, "Location: "+strings.Join(place, ", "))
	}
	if s.Type != "" {
		e.lines = append(e.lines, "Type: "+strings.ReplaceAll(s.Type, "_", " "))
	}
	if s.Reporting != nil && !*s.Reporting {
		e.lines = append(e.lines, "Reporting: no")
	}

	if f.opts.ShowDetails {
		if s.Latitude != nil && s.Longitude != nil {
			e.lines = append(e.lines, fmt.Sprintf("Coordinates: %.4f, %.4f", *s.Latitude, *s.Longitude))
		}
		if s.ElevationFt != nil {
			e.lines = append(e.lines, fmt.Sprintf("Elevation: %d ft", *s.ElevationFt))
		}
		for _, r := range s.Runways {
			line := fmt.Sprintf("Runway %s/%s", r.Ident1, r.Ident2)
			if r.LengthFt != nil {
				line += fmt.Sprintf(": %d ft", *r.LengthFt)
			}
			if r.Surface != "" {
				line += " " + r.Surface
			}
			e.lines = append(e.lines, line)
		}
		if s.Website != "" {
			e.lines = append(e.lines, "Website: "+s.Website)
		}
	}
	e.lines = append(e.lines, partialLine(&s.Partial))
	return e
}

// FormatReports formats any mix of METAR, TAF, summary and PIREP results
func (f *ConsoleFormatter) FormatReports(reports []avwx.Report) string {
	if len(reports) == 0 {
		return "No reports found"
	}

	var sb strings.Builder
	writeHeader(&sb, "Report", len(reports))

	entries := make([]entry, 0, len(reports))
	for _, r := range reports {
		switch rep := r.(type) {
		case *avwx.Metar:
			entries = append(entries, f.metarEntry(rep))
		case *avwx.Taf:
			entries = append(entries, f.tafEntry(rep))
		case *avwx.Summary:
			entries = append(entries, f.summaryEntry(rep))
		case *avwx.Pirep:
			entries = append(entries, f.pirepEntries(rep)...)
		}
	}
	writeTree(&sb, entries)
	return sb.String()
}

// FormatReportsRoute formats the reports found along a route
func (f *ConsoleFormatter) FormatReportsRoute(route *avwx.ReportsRoute) string {
	if route == nil || len(route.Results) == 0 {
		return "No reports found along route"
	}
	return fmt.Sprintf("\nRoute: %s\n", routeLine(route.Route)) + f.FormatReports(route.Results)
}

func (f *ConsoleFormatter) metarEntry(m *avwx.Metar) entry {
	e := entry{title: reportTitle("METAR", m.Station, m.FlightRules, m.Time)}

	if f.opts.ShowRaw || f.opts.ShowDetails {
		e.lines = append(e.lines, "Raw: "+m.Raw)
	}
	e.lines = append(e.lines,
		windLine(m.WindDirection, m.WindSpeed, m.WindGust, m.Units),
		visibilityLine(m.Visibility, m.Units),
		cloudsLine(m.Clouds),
		weatherLine(m.WxCodes),
	)
	if m.Temperature != nil {
		line := fmt.Sprintf("Temperature: %s%s", m.Temperature, unit(m.Units, "temperature"))
		if m.Dewpoint != nil {
			line += fmt.Sprintf(" / Dewpoint: %s%s", m.Dewpoint, unit(m.Units, "temperature"))
		}
		e.lines = append(e.lines, line)
	}
	if m.Altimeter != nil {
		e.lines = append(e.lines, fmt.Sprintf("Altimeter: %s %s", m.Altimeter, unit(m.Units, "altimeter")))
	}
	if f.opts.ShowDetails {
		if m.Remarks != "" {
			e.lines = append(e.lines, "Remarks: "+m.Remarks)
		}
		if m.Summary != "" {
			e.lines = append(e.lines, "Summary: "+m.Summary)
		}
	}
	e.lines = append(e.lines, partialLine(&m.Partial))
	return e
}

func (f *ConsoleFormatter) tafEntry(t *avwx.Taf) entry {
	title := "TAF " + t.Station
	if t.IsAmended {
		title += " AMD"
	}
	if t.IsCorrection {
		title += " COR"
	}
	if ts := timeString(t.Time); ts != "" {
		title += " issued " + ts
	}
	e := entry{title: title}

	if f.opts.ShowRaw || f.opts.ShowDetails {
		e.lines = append(e.lines, "Raw: "+t.Raw)
	}
	if t.StartTime != nil || t.EndTime != nil {
		e.lines = append(e.lines, fmt.Sprintf("Valid: %s to %s", timeString(t.StartTime), timeString(t.EndTime)))
	}
	for i := range t.Forecast {
		line := &t.Forecast[i]
		label := line.SanitizedType()
		if !strings.Contains(label, "Temporary") && (line.StartTime != nil || line.EndTime != nil) {
			label = strings.TrimSpace(fmt.Sprintf("%s %s to %s", label, timeString(line.StartTime), timeString(line.EndTime)))
		}
		if line.Probability != nil {
			label = fmt.Sprintf("PROB%s %s", line.Probability, label)
		}
		text := line.Summary
		if text == "" || f.opts.ShowRaw {
			text = line.Raw
		}
		e.lines = append(e.lines, fmt.Sprintf("%s: [%s] %s", label, orDash(line.FlightRules), text))
	}
	e.lines = append(e.lines, partialLine(&t.Partial))
	return e
}

func (f *ConsoleFormatter) summaryEntry(s *avwx.Summary) entry {
	station := ""
	if s.Info != nil {
		station = s.Info.Ident()
	}
	e := entry{title: "Summary " + station}

	if s.Metar != nil {
		line := "Current: " + orDash(s.Metar.FlightRules)
		if s.Metar.Time != nil {
			line += " at " + s.Metar.Time.UTC().Format(time.RFC3339)
		}
		if s.Metar.Ceiling != nil {
			line += fmt.Sprintf(", ceiling %s", s.Metar.Ceiling)
		}
		if s.Metar.Visibility != nil {
			line += fmt.Sprintf(", visibility %s", &s.Metar.Visibility.Number)
		}
		e.lines = append(e.lines, line, weatherLine(s.Metar.WxCodes))
	}
	if s.Taf != nil {
		for _, fc := range s.Taf.Forecast {
			var start, end string
			if fc.StartTime != nil {
				start = fc.StartTime.UTC().Format(time.RFC3339)
			}
			if fc.EndTime != nil {
				end = fc.EndTime.UTC().Format(time.RFC3339)
			}
			e.lines = append(e.lines, fmt.Sprintf("Forecast %s to %s: %s", start, end, orDash(fc.FlightRules)))
		}
	}
	if s.Summary != "" && f.opts.ShowDetails {
		e.lines = append(e.lines, "Summary: "+s.Summary)
	}
	e.lines = append(e.lines, partialLine(&s.Partial))
	return e
}

func (f *ConsoleFormatter) pirepEntries(p *avwx.Pirep) []entry {
	entries := make([]entry, 0, len(p.Data))
	for _, d := range p.Data {
		title := strings.TrimSpace("PIREP " + d.Station)
		if d.Type != "" {
			title += " (" + d.Type + ")"
		}
		if ts := timeString(d.Time); ts != "" {
			title += " at " + ts
		}
		e := entry{title: title}

		if f.opts.ShowRaw || f.opts.ShowDetails {
			e.lines = append(e.lines, "Raw: "+d.Raw)
		}
		if d.Aircraft != nil {
			e.lines = append(e.lines, "Aircraft: "+orDash(d.Aircraft.Type))
		}
		if d.Location != nil && d.Location.Repr != "" {
			e.lines = append(e.lines, "Location: "+d.Location.Repr)
		}
		if d.Altitude != nil {
			e.lines = append(e.lines, fmt.Sprintf("Altitude: %s %s", d.Altitude, unit(p.Units, "altitude")))
		}
		e.lines = append(e.lines, cloudsLine(d.Clouds), weatherLine(d.WxCodes))
		if d.Icing != nil {
			e.lines = append(e.lines, strings.TrimSpace("Icing: "+d.Icing.Severity+" "+d.Icing.Type))
		}
		if d.Turbulence != nil {
			e.lines = append(e.lines, "Turbulence: "+d.Turbulence.Severity)
		}
		if d.Temperature != nil {
			e.lines = append(e.lines, fmt.Sprintf("Temperature: %s%s", d.Temperature, unit(p.Units, "temperature")))
		}
		entries = append(entries, e)
	}
	if len(entries) > 0 {
		last := &entries[len(entries)-1]
		last.lines = append(last.lines, partialLine(&p.Partial))
	}
	return entries
}

// FormatNotam formats a NOTAM set
func (f *ConsoleFormatter) FormatNotam(n *avwx.Notam) string {
	if n == nil || len(n.Data) == 0 {
		return "No NOTAMs found"
	}

	var sb strings.Builder
	writeHeader(&sb, "NOTAM", len(n.Data))

	entries := make([]entry, 0, len(n.Data))
	for _, d := range n.Data {
		title := strings.TrimSpace(d.Number + " " + d.Station)
		if d.Type != nil && d.Type.Value != "" {
			title += " (" + d.Type.Value + ")"
		}
		e := entry{title: title}
		if d.Replaces != "" {
			e.lines = append(e.lines, "Replaces: "+d.Replaces)
		}
		if d.StartTime != nil || d.EndTime != nil {
			e.lines = append(e.lines, fmt.Sprintf("Effective: %s to %s", orDash(timeString(d.StartTime)), orDash(timeString(d.EndTime))))
		}
		if d.Qualifiers != nil && d.Qualifiers.Subject != nil && f.opts.ShowDetails {
			line := "Subject: " + d.Qualifiers.Subject.Value
			if d.Qualifiers.Condition != nil {
				line += " / " + d.Qualifiers.Condition.Value
			}
			e.lines = append(e.lines, line)
		}
		body := d.Body
		if f.opts.ShowRaw || body == "" {
			body = d.Raw
		}
		e.lines = append(e.lines, strings.Split(strings.TrimSpace(body), "\n")...)
		entries = append(entries, e)
	}
	writeTree(&sb, entries)
	writeWarning(&sb, &n.Partial)
	return sb.String()
}

// FormatAirSigmet formats AIRMET and SIGMET reports
func (f *ConsoleFormatter) FormatAirSigmet(a *avwx.AirSigmet) string {
	if a == nil || len(a.Reports) == 0 {
		return "No AIRMETs or SIGMETs found"
	}

	var sb strings.Builder
	writeHeader(&sb, "AIRMET/SIGMET report", len(a.Reports))

	entries := make([]entry, 0, len(a.Reports))
	for _, r := range a.Reports {
		title := strings.TrimSpace(r.Type + " " + r.Area)
		if r.Bulletin != nil && r.Bulletin.Repr != "" {
			title += " [" + r.Bulletin.Repr + "]"
		}
		e := entry{title: orDash(title)}
		if r.Region != "" {
			e.lines = append(e.lines, "Region: "+r.Region)
		}
		if r.StartTime != nil || r.EndTime != nil {
			e.lines = append(e.lines, fmt.Sprintf("Valid: %s to %s", orDash(timeString(r.StartTime)), orDash(timeString(r.EndTime))))
		}
		if r.Observation != nil && r.Observation.Type != nil {
			line := "Observed: " + r.Observation.Type.Value
			if r.Observation.Floor != nil || r.Observation.Ceiling != nil {
				line += fmt.Sprintf(" from %s to %s", orDash(r.Observation.Floor.String()), orDash(r.Observation.Ceiling.String()))
			}
			e.lines = append(e.lines, line)
		}
		if f.opts.ShowRaw || f.opts.ShowDetails {
			e.lines = append(e.lines, "Raw: "+r.Raw)
		} else if r.Body != "" {
			e.lines = append(e.lines, r.Body)
		}
		entries = append(entries, e)
	}
	writeTree(&sb, entries)
	writeWarning(&sb, &a.Partial)
	return sb.String()
}

// FormatForecast formats an NBM or GFS model report. Each period lists the
// numeric elements that carry a value.
func (f *ConsoleFormatter) FormatForecast(kind avwx.ForecastKind, r *avwx.ModelReport, p *decode.Partial) string {
	if r == nil || len(r.Forecast) == 0 {
		return "No forecast periods found"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s %s", strings.ToUpper(kind.String()), r.Station)
	if ts := timeString(r.Time); ts != "" {
		fmt.Fprintf(&sb, " issued %s", ts)
	}
	sb.WriteString("\n")
	writeHeader(&sb, "Period", len(r.Forecast))

	entries := make([]entry, 0, len(r.Forecast))
	for i := range r.Forecast {
		period := &r.Forecast[i]
		e := entry{title: orDash(timeString(period.Time))}

		var values []string
		for _, field := range period.Numbers() {
			n := *field.Value
			if n == nil || (n.Value == nil && n.Repr == "") {
				continue
			}
			values = append(values, fmt.Sprintf("%s=%s", field.Key, n))
			if !f.opts.ShowDetails && len(values) == 8 {
				break
			}
		}
		if len(values) > 0 {
			e.lines = append(e.lines, strings.Join(values, " "))
		}
		if period.PrecipType != nil && period.PrecipType.Value != "" {
			e.lines = append(e.lines, "Precipitation: "+period.PrecipType.Value)
		}
		if period.Visibility != nil {
			e.lines = append(e.lines, visibilityLine(period.Visibility, r.Units))
		}
		entries = append(entries, e)
	}
	writeTree(&sb, entries)
	if p != nil {
		writeWarning(&sb, p)
	}
	return sb.String()
}

func reportTitle(kind, station, rules string, t *avwx.Timestamp) string {
	title := kind + " " + station
	if rules != "" {
		title += " [" + rules + "]"
	}
	if ts := timeString(t); ts != "" {
		title += " at " + ts
	}
	return title
}

func windLine(dir, speed, gust *avwx.Number, u *avwx.Units) string {
	if speed == nil {
		return ""
	}
	line := "Wind: "
	if dir != nil {
		if dir.Value != nil {
			line += fmt.Sprintf("%03.0f° ", *dir.Value)
		} else {
			line += dir.Repr + " "
		}
	}
	line += speed.String() + " " + unit(u, "wind_speed")
	if gust != nil {
		line += " gusting " + gust.String()
	}
	return line
}

func visibilityLine(v *avwx.Visibility, u *avwx.Units) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("Visibility: %s %s", &v.Number, unit(u, "visibility"))
}

func cloudsLine(clouds []avwx.Cloud) string {
	if len(clouds) == 0 {
		return ""
	}
	layers := make([]string, 0, len(clouds))
	for _, c := range clouds {
		if c.Repr != "" {
			layers = append(layers, c.Repr)
		} else {
			layers = append(layers, c.Type)
		}
	}
	return "Clouds: " + strings.Join(layers, " ")
}

func weatherLine(codes []avwx.Code) string {
	if len(codes) == 0 {
		return ""
	}
	names := make([]string, 0, len(codes))
	for _, c := range codes {
		if c.Value != "" {
			names = append(names, c.Value)
		} else {
			names = append(names, c.Repr)
		}
	}
	return "Weather: " + strings.Join(names, ", ")
}

func routeLine(coords []avwx.Coordinate) string {
	parts := make([]string, 0, len(coords))
	for _, c := range coords {
		switch {
		case c.Repr != "":
			parts = append(parts, c.Repr)
		case c.Lat != nil && c.Lon != nil:
			parts = append(parts, fmt.Sprintf("%.2f,%.2f", *c.Lat, *c.Lon))
		}
	}
	return strings.Join(parts, " → ")
}

func partialLine(p *decode.Partial) string {
	if !p.IsPartial() {
		return ""
	}
	return fmt.Sprintf("Warning: %d field(s) could not be decoded", len(p.Warnings))
}

func writeWarning(sb *strings.Builder, p *decode.Partial) {
	if line := partialLine(p); line != "" {
		sb.WriteString(line + "\n")
	}
}

func timeString(t *avwx.Timestamp) string {
	if t == nil {
		return ""
	}
	if t.Dt != nil {
		return t.Dt.UTC().Format("2006-01-02 15:04Z")
	}
	return t.Repr
}

func unit(u *avwx.Units, name string) string {
	if u == nil {
		return ""
	}
	switch name {
	case "altimeter":
		return u.Altimeter
	case "altitude":
		return u.Altitude
	case "temperature":
		return u.Temperature
	case "visibility":
		return u.Visibility
	case "wind_speed":
		return u.WindSpeed
	}
	return ""
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
