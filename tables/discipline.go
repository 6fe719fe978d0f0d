package tables

// WMO Code Table 0.0: discipline of processed data.
//
// The discipline is an edition-2 concept; Decoder1 synthesizes it
// through the parameter translation. The reverse parameter map only
// covers the disciplines GRIB1's parameter tables can express, which
// mappedDisciplines records so the encoder can distinguish "parameter
// not mapped" from "discipline outside GRIB1 entirely".

// DisciplineTable names the product disciplines.
var DisciplineTable = newCodeTable("discipline", map[int]string{
	0:  "Meteorological",
	1:  "Hydrological",
	2:  "Land surface",
	3:  "Satellite remote sensing",
	4:  "Space weather",
	10: "Oceanographic",
}, localUse(192, 254), missing255())

// GetDisciplineName returns the name for a discipline code.
func GetDisciplineName(code int) string {
	return DisciplineTable.Name(code)
}

// mappedDisciplines lists the disciplines with at least one entry in
// the GRIB2-to-GRIB1 parameter map; derived from the map itself so the
// two cannot drift apart.
var mappedDisciplines = func() map[int]bool {
	m := make(map[int]bool)
	for k := range paramToGRIB1 {
		m[int(k>>16)] = true
	}
	return m
}()

// HasGRIB1Mapping reports whether any parameter of the discipline can
// be expressed in a GRIB1 parameter table.
func HasGRIB1Mapping(discipline int) bool {
	return mappedDisciplines[discipline]
}
