package tables

// GRIB1-to-GRIB2 parameter translation.
//
// The GRIB1 parameter namespace is (center, table version, code); GRIB2
// uses (discipline, category, number). Codes below 128 are WMO standard
// and carry a default mapping; several centers redefine codes in their
// local tables, so an entry may list center-and-table overrides that
// win over the default. Codes 128-254 are local-only and map only for
// the centers that define them.

// ParamID is a GRIB2 parameter identifier.
type ParamID struct {
	Discipline uint8
	Category   uint8
	Number     uint8
}

// ParamUnknown is returned when no mapping exists.
var ParamUnknown = ParamID{255, 255, 255}

type paramOverride struct {
	center int
	table  int
	to     ParamID
}

type paramEntry struct {
	std       ParamID // default mapping; ParamUnknown if local-only
	overrides []paramOverride
	// gatedCenters lists centers whose presence in overrides makes the
	// default unavailable: a message from such a center with an
	// unlisted table version is unknown rather than standard.
	gatedCenters []int
}

func p(d, c, n uint8) ParamID { return ParamID{d, c, n} }

var paramToGRIB2 = map[int]paramEntry{
	1:  {std: p(0, 3, 0), overrides: []paramOverride{{98, 228, p(0, 7, 7)}}},
	2:  {std: p(0, 3, 1)},
	3:  {std: p(0, 3, 2), overrides: []paramOverride{{98, 228, p(10, 0, 17)}}},
	4:  {std: p(0, 2, 14)},
	5:  {std: p(0, 3, 3)},
	6:  {std: p(0, 3, 4)},
	7:  {std: p(0, 3, 5)},
	8:  {std: p(0, 3, 6), overrides: []paramOverride{{78, 174, p(2, 0, 34)}}},
	9:  {std: p(0, 3, 7)},
	10: {std: p(0, 14, 0), overrides: []paramOverride{{98, 200, p(0, 14, 2)}}},
	11: {std: p(0, 0, 0)},
	12: {std: p(0, 0, 1)},
	13: {std: p(0, 0, 2)},
	14: {std: p(0, 0, 3)},
	15: {std: p(0, 0, 4)},
	16: {std: p(0, 0, 5)},
	17: {std: p(0, 0, 6)},
	18: {std: p(0, 0, 7)},
	19: {std: p(0, 0, 8)},
	20: {std: p(0, 19, 0)},
	21: {std: p(0, 15, 6), overrides: []paramOverride{{98, 128, p(0, 0, 28)}}},
	22: {std: p(0, 15, 7), overrides: []paramOverride{{98, 128, p(0, 3, 31)}}},
	23: {std: p(0, 15, 8), overrides: []paramOverride{{98, 128, p(0, 2, 45)}}},
	24: {std: p(0, 7, 0)},
	25: {std: p(0, 0, 9)},
	26: {std: p(0, 3, 8)},
	27: {std: p(0, 3, 9)},
	28: {std: p(10, 0, 0)},
	29: {std: p(10, 0, 1)},
	30: {std: p(10, 0, 2), overrides: []paramOverride{{98, 203, p(0, 7, 8)}}},
	31: {std: p(0, 2, 0)},
	32: {std: p(0, 2, 1)},
	33: {std: p(0, 2, 2), gatedCenters: []int{98}, overrides: []paramOverride{
		{98, 201, p(0, 1, 82)}, {98, 203, p(0, 2, 46)}}},
	34: {std: p(0, 2, 3)},
	35: {std: p(0, 2, 4)},
	36: {std: p(0, 2, 5)},
	37: {std: p(0, 2, 6)},
	38: {std: p(0, 2, 7)},
	39: {std: p(0, 2, 8)},
	40: {std: p(0, 2, 9)},
	41: {std: p(0, 2, 10), overrides: []paramOverride{{98, 201, p(0, 1, 78)}}},
	42: {std: p(0, 2, 11)},
	43: {std: p(0, 2, 12)},
	44: {std: p(0, 2, 13)},
	45: {std: p(0, 2, 15)},
	46: {std: p(0, 2, 16), overrides: []paramOverride{{98, 202, p(0, 3, 20)}}},
	47: {std: p(10, 1, 0), overrides: []paramOverride{{98, 202, p(0, 3, 24)}}},
	48: {std: p(10, 1, 1), overrides: []paramOverride{{98, 202, p(0, 3, 21)}}},
	49: {std: p(10, 1, 2), overrides: []paramOverride{{98, 202, p(0, 3, 22)}}},
	50: {std: p(10, 1, 3)},
	51: {std: p(0, 1, 0)},
	52: {std: p(0, 1, 1)},
	53: {std: p(0, 1, 2)},
	54: {std: p(0, 1, 3), overrides: []paramOverride{{98, 2, p(0, 1, 64)}}},
	55: {std: p(0, 1, 4)},
	56: {std: p(0, 1, 5)},
	57: {std: p(0, 1, 6)},
	58: {std: p(0, 6, 0), overrides: []paramOverride{{98, 2, p(0, 1, 70)}}},
	59: {std: p(0, 1, 7), overrides: []paramOverride{{98, 128, p(0, 7, 6)}}},
	60: {std: p(0, 19, 2)},
	61: {std: p(0, 1, 8), overrides: []paramOverride{{98, 202, p(2, 0, 28)}}},
	62: {std: p(0, 1, 9), overrides: []paramOverride{{98, 202, p(2, 0, 32)}}},
	63: {std: p(0, 1, 10)},
	64: {std: p(0, 1, 12)},
	65: {std: p(0, 1, 13)},
	66: {std: p(0, 1, 11)},
	67: {std: p(0, 19, 3)},
	68: {std: p(10, 4, 2), overrides: []paramOverride{{98, 201, p(0, 6, 26)}}},
	69: {std: p(10, 4, 0), overrides: []paramOverride{{98, 201, p(0, 6, 27)}}},
	70: {std: p(10, 4, 1)},
	71: {std: p(0, 6, 1)},
	72: {std: p(0, 6, 2)},
	73: {std: p(0, 6, 3)},
	74: {std: p(0, 6, 4)},
	75: {std: p(0, 6, 5), gatedCenters: []int{98}, overrides: []paramOverride{
		{98, 128, p(0, 1, 85)}, {98, 202, p(2, 0, 29)}}},
	76: {std: p(0, 6, 6), gatedCenters: []int{98}, overrides: []paramOverride{
		{98, 2, p(0, 1, 69)}, {98, 128, p(0, 1, 86)}, {98, 202, p(2, 0, 30)}}},
	77:  {std: p(0, 7, 1), overrides: []paramOverride{{98, 128, p(0, 2, 32)}}},
	78:  {std: p(0, 1, 14), overrides: []paramOverride{{98, 202, p(2, 0, 31)}}},
	79:  {std: p(0, 1, 15)},
	80:  {std: p(10, 3, 0)},
	81:  {std: p(1, 2, 8)},
	82:  {std: p(10, 3, 1)},
	83:  {std: p(2, 0, 1)},
	84:  {std: p(0, 19, 1)},
	85:  {std: p(2, 0, 2)},
	86:  {std: p(2, 0, 3)},
	87:  {std: p(2, 0, 4)},
	88:  {std: p(10, 4, 3)},
	89:  {std: p(0, 3, 10)},
	90:  {std: p(2, 0, 5)},
	91:  {std: p(1, 2, 7)},
	92:  {std: p(10, 2, 1)},
	93:  {std: p(10, 2, 2)},
	94:  {std: p(10, 2, 3)},
	95:  {std: p(10, 2, 4)},
	96:  {std: p(10, 2, 5)},
	97:  {std: p(10, 2, 6)},
	98:  {std: p(10, 2, 7)},
	99:  {std: p(0, 1, 16), overrides: []paramOverride{{98, 203, p(0, 19, 25)}}},
	100: {std: p(10, 0, 3), overrides: []paramOverride{{98, 201, p(0, 1, 77)}}},
	101: {std: p(10, 0, 4)},
	102: {std: p(10, 0, 5)},
	103: {std: p(10, 0, 6)},
	104: {std: p(10, 0, 7)},
	105: {std: p(10, 0, 8)},
	106: {std: p(10, 0, 9)},
	107: {std: p(10, 0, 10)},
	108: {std: p(10, 0, 11)},
	109: {std: p(10, 0, 12), gatedCenters: []int{98}, overrides: []paramOverride{
		{98, 162, p(0, 0, 20)}, {98, 228, p(0, 6, 13)}}},
	110: {std: p(10, 0, 13)},
	111: {std: p(0, 4, 0), overrides: []paramOverride{{98, 201, p(0, 1, 76)}}},
	112: {std: p(0, 5, 0), overrides: []paramOverride{{98, 201, p(0, 1, 55)}}},
	113: {std: p(0, 4, 1)},
	114: {std: p(0, 5, 1)},
	115: {std: p(0, 5, 2)},
	116: {std: p(0, 4, 2)},
	117: {std: p(0, 4, 3)},
	118: {std: p(0, 4, 4)},
	119: {std: p(0, 4, 5)},
	120: {std: p(0, 4, 6)},
	121: {std: p(0, 0, 10), overrides: []paramOverride{{98, 228, p(0, 7, 2)}}},
	122: {std: p(0, 0, 11)},
	123: {std: p(0, 2, 20), overrides: []paramOverride{{98, 228, p(0, 7, 4)}}},
	124: {std: p(0, 2, 17)},
	125: {std: p(0, 2, 18)},
	126: {std: p(0, 2, 19)},

	// Local tables; unknown unless a center-and-table pair matches.
	131: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 1, 70)}, {7, 129, p(0, 1, 43)}}},
	132: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 7, 11)}, {7, 129, p(0, 6, 21)}}},
	133: {std: ParamUnknown, overrides: []paramOverride{
		{7, 2, p(0, 7, 2)}, {7, 129, p(0, 1, 44)}, {98, 201, p(0, 1, 61)}}},
	134: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 7, 5)}, {7, 129, p(0, 6, 16)}}},
	135: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 1, 38)}, {7, 129, p(0, 1, 21)}}},
	136: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 2, 25)}, {7, 129, p(0, 1, 69)}}},
	137: {std: ParamUnknown, overrides: []paramOverride{{7, 129, p(0, 1, 70)}, {7, 131, p(0, 17, 0)}}},
	138: {std: ParamUnknown, overrides: []paramOverride{{7, 129, p(0, 1, 45)}}},
	139: {std: ParamUnknown, overrides: []paramOverride{{7, 129, p(0, 1, 46)}}},
	140: {std: ParamUnknown, overrides: []paramOverride{
		{7, 2, p(0, 1, 33)}, {7, 129, p(0, 6, 20)}, {98, 203, p(0, 7, 3)}}},
	141: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 1, 34)}}},
	142: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 1, 35)}}},
	143: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 1, 36)}}},
	144: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(2, 0, 9)}, {7, 128, p(10, 3, 2)}}},
	145: {std: ParamUnknown, overrides: []paramOverride{{7, 131, p(0, 1, 41)}}},
	146: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 6, 15)}, {98, 200, p(0, 6, 15)}}},
	147: {std: ParamUnknown, overrides: []paramOverride{
		{7, 2, p(0, 3, 16)}, {98, 201, p(0, 19, 24)}, {98, 254, p(0, 2, 27)}}},
	148: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 3, 17)}, {98, 254, p(0, 2, 28)}}},
	152: {std: ParamUnknown, overrides: []paramOverride{{98, 201, p(0, 19, 11)}}},
	153: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 1, 22)}, {98, 201, p(0, 2, 31)}}},
	154: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 14, 1)}}},
	155: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(2, 0, 10)}, {98, 200, p(2, 0, 10)}}},
	156: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 7, 7)}}},
	157: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 7, 6)}}},
	158: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 19, 11)}}},
	159: {std: ParamUnknown, overrides: []paramOverride{{7, 130, p(0, 19, 17)}}},
	160: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 4, 53)}, {7, 130, p(2, 3, 5)}}},
	163: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 5, 8)}}},
	170: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 1, 24)}, {7, 130, p(0, 19, 18)}}},
	171: {std: ParamUnknown, overrides: []paramOverride{
		{7, 2, p(0, 1, 25)}, {7, 130, p(2, 3, 6)}, {98, 201, p(0, 0, 19)}, {98, 228, p(2, 0, 26)}}},
	172: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 2, 26)}}},
	174: {std: ParamUnknown, overrides: []paramOverride{{7, 140, p(0, 6, 25)}}},
	178: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 1, 23)}}},
	180: {std: ParamUnknown, overrides: []paramOverride{
		{7, 130, p(0, 1, 17)}, {98, 128, p(0, 2, 38)}, {98, 202, p(0, 14, 1)}}},
	181: {std: ParamUnknown, overrides: []paramOverride{{7, 130, p(2, 0, 15)}, {98, 128, p(0, 2, 37)}}},
	182: {std: ParamUnknown, overrides: []paramOverride{{7, 130, p(2, 0, 28)}}},
	184: {std: ParamUnknown, overrides: []paramOverride{{7, 130, p(0, 19, 19)}}},
	189: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 0, 15)}}},
	190: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 7, 8)}}},
	191: {std: ParamUnknown, overrides: []paramOverride{{7, 133, p(0, 6, 33)}}},
	192: {std: ParamUnknown, overrides: []paramOverride{{7, 133, p(10, 191, 1)}}},
	193: {std: ParamUnknown, overrides: []paramOverride{{7, 131, p(0, 0, 21)}}},
	194: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 1, 39)}}},
	195: {std: ParamUnknown, overrides: []paramOverride{{7, 128, p(10, 4, 4)}}},
	196: {std: ParamUnknown, overrides: []paramOverride{
		{7, 2, p(0, 2, 27)}, {7, 128, p(10, 4, 5)}, {7, 130, p(2, 0, 7)}}},
	197: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 2, 28)}, {7, 128, p(10, 4, 6)}}},
	200: {std: ParamUnknown, overrides: []paramOverride{{98, 201, p(2, 0, 13)}}},
	202: {std: ParamUnknown, overrides: []paramOverride{{98, 133, p(0, 3, 27)}, {98, 200, p(2, 0, 6)}}},
	203: {std: ParamUnknown, overrides: []paramOverride{{7, 130, p(2, 0, 16)}, {98, 201, p(0, 0, 18)}}},
	204: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 4, 7)}, {98, 200, p(0, 4, 7)}}},
	205: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 5, 3)}, {98, 200, p(0, 5, 3)}}},
	206: {std: ParamUnknown, overrides: []paramOverride{{7, 130, p(0, 15, 3)}}},
	207: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(2, 0, 11)}}},
	208: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(2, 0, 12)}}},
	209: {std: ParamUnknown, overrides: []paramOverride{{7, 133, p(0, 3, 28)}}},
	211: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 4, 8)}, {98, 200, p(0, 4, 8)}}},
	212: {std: ParamUnknown, overrides: []paramOverride{
		{7, 2, p(0, 5, 4)}, {98, 200, p(0, 5, 4)}, {98, 201, p(2, 0, 16)}}},
	214: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 1, 37)}}},
	218: {std: ParamUnknown, overrides: []paramOverride{{7, 129, p(0, 1, 27)}}},
	219: {std: ParamUnknown, overrides: []paramOverride{
		{7, 129, p(0, 6, 13)}, {7, 130, p(2, 0, 17)}, {98, 200, p(0, 2, 21)}}},
	221: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 3, 18)}}},
	222: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 3, 15)}}},
	223: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(2, 0, 13)}, {7, 129, p(0, 1, 65)}}},
	224: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(2, 3, 0)}, {7, 129, p(0, 1, 66)}}},
	225: {std: ParamUnknown, overrides: []paramOverride{{7, 129, p(0, 1, 67)}}},
	226: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(2, 0, 14)}, {7, 129, p(0, 1, 68)}}},
	227: {std: ParamUnknown, overrides: []paramOverride{{7, 129, p(0, 7, 15)}}},
	228: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 1, 40)}}},
	229: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 0, 16)}}},
	230: {std: ParamUnknown, overrides: []paramOverride{
		{7, 2, p(0, 3, 19)}, {7, 130, p(2, 3, 7)}, {98, 201, p(0, 15, 1)}}},
	231: {std: ParamUnknown, overrides: []paramOverride{{7, 130, p(2, 3, 8)}}},
	233: {std: ParamUnknown, overrides: []paramOverride{{98, 140, p(10, 0, 16)}}},
	234: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(1, 0, 5)}}},
	235: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(1, 0, 6)}, {98, 128, p(0, 0, 17)}}},
	238: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 1, 42)}}},
	239: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 0, 18)}}},
	240: {std: ParamUnknown, overrides: []paramOverride{{7, 129, p(0, 16, 3)}, {7, 130, p(2, 3, 9)}}},
	246: {std: ParamUnknown, overrides: []paramOverride{{7, 130, p(2, 0, 18)}, {98, 128, p(0, 1, 83)}}},
	247: {std: ParamUnknown, overrides: []paramOverride{{7, 130, p(2, 0, 19)}, {98, 128, p(0, 1, 84)}}},
	248: {std: ParamUnknown, overrides: []paramOverride{{7, 130, p(2, 0, 20)}, {98, 128, p(0, 6, 32)}}},
	249: {std: ParamUnknown, overrides: []paramOverride{{7, 130, p(2, 0, 21)}}},
	250: {std: ParamUnknown, overrides: []paramOverride{{7, 129, p(2, 4, 2)}}},
	252: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 2, 29)}}},
	253: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 2, 30)}, {98, 140, p(10, 0, 44)}}},
	254: {std: ParamUnknown, overrides: []paramOverride{{7, 2, p(0, 7, 12)}}},
}

// ParamToGRIB2 translates a GRIB1 (center, table version, code)
// parameter into the GRIB2 (discipline, category, number) namespace.
// Unmapped parameters return ParamUnknown.
func ParamToGRIB2(center, table, code int) ParamID {
	e, ok := paramToGRIB2[code]
	if !ok {
		return ParamUnknown
	}
	for _, o := range e.overrides {
		if o.center == center && o.table == table {
			return o.to
		}
	}
	for _, c := range e.gatedCenters {
		if c == center {
			return ParamUnknown
		}
	}
	return e.std
}
