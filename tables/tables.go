// Package tables provides the WMO code tables and the translation
// tables that carry GRIB metadata between editions 1 and 2.
//
// Two kinds of tables live here. The translation tables (parameter,
// level, time-range, statistical process, calendar) map identifiers
// between the GRIB1 and GRIB2 namespaces and drive the encoders. The
// parameter maps (which hold the center-specific cases), the forward
// level map and the statistical-process-to-time-range maps are
// data-driven; the reverse level translation, the time-range template
// selection and the choice of statistical process for a GRIB1 time
// range are switches. The descriptive tables name the codes for
// warnings and inspection output, and pivot through the translation
// tables so both editions share one set of names.
//
// All tables are plain Go data structures: map lookups, no code
// generation, no runtime loading.
package tables

import "fmt"

// codeRange labels a contiguous block of codes, such as the local-use
// and missing ranges most WMO tables reserve.
type codeRange struct {
	lo, hi int
	name   string
}

// CodeTable maps numeric codes to short names. Codes outside the
// explicit entries fall back to the ranges, then to a generic label.
type CodeTable struct {
	label   string
	entries map[int]string
	ranges  []codeRange
}

// newCodeTable builds a CodeTable from explicit entries and optional
// labelled ranges.
func newCodeTable(label string, entries map[int]string, ranges ...codeRange) *CodeTable {
	return &CodeTable{label: label, entries: entries, ranges: ranges}
}

// localUse is the reserved-for-local-use range most tables carry.
func localUse(lo, hi int) codeRange {
	return codeRange{lo, hi, "Local"}
}

// missing255 labels code 255 as missing.
func missing255() codeRange {
	return codeRange{255, 255, "Missing"}
}

// Name returns the name for code, the range label for reserved codes,
// or a generic fallback.
func (t *CodeTable) Name(code int) string {
	if name, ok := t.entries[code]; ok {
		return name
	}
	for _, r := range t.ranges {
		if code >= r.lo && code <= r.hi {
			return fmt.Sprintf("%s (%d)", r.name, code)
		}
	}
	return fmt.Sprintf("%s %d", t.label, code)
}

// Known reports whether code has an explicit entry.
func (t *CodeTable) Known(code int) bool {
	_, ok := t.entries[code]
	return ok
}
