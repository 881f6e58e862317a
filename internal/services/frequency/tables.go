package frequency

import "strings"

// Table maps each letter A-Z to a relative weight
type Table map[rune]float64

// English holds general English letter frequencies in percent
var English = Table{
	'E': 12.702, 'T': 9.056, 'A': 8.167, 'O': 7.507, 'I': 6.966,
	'N': 6.749, 'S': 6.327, 'H': 6.094, 'R': 5.987, 'D': 4.253,
	'L': 4.025, 'C': 2.782, 'U': 2.758, 'M': 2.406, 'W': 2.360,
	'F': 2.228, 'G': 2.015, 'Y': 1.974, 'P': 1.929, 'B': 1.492,
	'V': 0.978, 'K': 0.772, 'J': 0.153, 'X': 0.150, 'Q': 0.095,
	'Z': 0.074,
}

// Oxford holds letter frequencies in percent from the Concise Oxford
// Dictionary word list
var Oxford = Table{
	'E': 11.1607, 'A': 8.4966, 'R': 7.5809, 'I': 7.5448, 'O': 7.1635,
	'T': 6.9509, 'N': 6.6544, 'S': 5.7351, 'L': 5.4893, 'C': 4.5388,
	'U': 3.6308, 'D': 3.3844, 'P': 3.1671, 'M': 3.0129, 'H': 3.0034,
	'G': 2.4705, 'B': 2.0720, 'F': 1.8121, 'Y': 1.7779, 'W': 1.2899,
	'K': 1.1016, 'V': 1.0074, 'X': 0.2902, 'Z': 0.2722, 'J': 0.1965,
	'Q': 0.1962,
}

// MorseCodes are the International Morse Code symbols for A-Z
var MorseCodes = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".",
	'F': "..-.", 'G': "--.", 'H': "....", 'I': "..", 'J': ".---",
	'K': "-.-", 'L': ".-..", 'M': "--", 'N': "-.", 'O': "---",
	'P': ".--.", 'Q': "--.-", 'R': ".-.", 'S': "...", 'T': "-",
	'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-", 'Y': "-.--",
	'Z': "--..",
}

// Morse timing in dit units
const (
	ditUnits    = 1
	dahUnits    = 3
	symbolSpace = 1
)

// MorseDuration returns the transmission time of a code in dit units
func MorseDuration(code string) int {
	if code == "" {
		return 0
	}
	d := (len(code) - 1) * symbolSpace
	d += strings.Count(code, ".") * ditUnits
	d += strings.Count(code, "-") * dahUnits
	return d
}

// Morse weights each letter by the inverse of its Morse duration. Samuel
// Morse gave the shortest codes to the letters he found most common in
// printers' type cases.
var Morse = morseTable()

func morseTable() Table {
	t := make(Table, len(MorseCodes))
	for r, code := range MorseCodes {
		t[r] = 1 / float64(MorseDuration(code))
	}
	return t
}

// Bigrams holds common English letter pair frequencies in percent
var Bigrams = map[string]float64{
	"TH": 3.56, "HE": 3.07, "IN": 2.43, "ER": 2.05, "AN": 1.99,
	"RE": 1.85, "ON": 1.76, "AT": 1.49, "EN": 1.45, "ND": 1.35,
	"TI": 1.34, "ES": 1.34, "OR": 1.28, "TE": 1.20, "OF": 1.17,
	"ED": 1.17, "IS": 1.13, "IT": 1.12, "AL": 1.09, "AR": 1.07,
	"ST": 1.05, "TO": 1.04, "NT": 1.04, "NG": 0.95, "SE": 0.93,
	"HA": 0.93, "AS": 0.87, "OU": 0.87, "IO": 0.83, "LE": 0.83,
	"VE": 0.83, "CO": 0.79, "ME": 0.79, "DE": 0.76, "HI": 0.76,
	"RI": 0.73, "RO": 0.73, "IC": 0.70, "NE": 0.69, "EA": 0.69,
	"RA": 0.69, "CE": 0.65, "LI": 0.62, "CH": 0.60, "LL": 0.58,
	"BE": 0.58, "MA": 0.57, "SI": 0.55, "OM": 0.55, "UR": 0.54,
	"CA": 0.54, "EL": 0.53, "TA": 0.53, "LA": 0.53, "NS": 0.51,
	"DI": 0.50, "FO": 0.50, "HO": 0.49, "PE": 0.49, "EC": 0.48,
	"PR": 0.47, "NO": 0.47, "CT": 0.46, "US": 0.45, "AC": 0.45,
	"OT": 0.44, "IL": 0.43, "TR": 0.43, "LY": 0.43, "NC": 0.42,
	"ET": 0.42, "UT": 0.42, "SS": 0.41, "SO": 0.40, "RS": 0.40,
	"UN": 0.39, "LO": 0.39, "WA": 0.38, "GE": 0.38, "IE": 0.38,
	"WH": 0.38, "EE": 0.38, "WI": 0.37, "EM": 0.37, "AD": 0.37,
	"OL": 0.37, "RT": 0.37, "PO": 0.36, "WE": 0.36, "NA": 0.35,
	"UL": 0.35, "NI": 0.34, "TS": 0.34, "MO": 0.34, "OW": 0.33,
	"PA": 0.32, "IM": 0.32, "MI": 0.32, "AI": 0.32, "SH": 0.32,
}

// Trigrams holds common English letter triple frequencies in percent
var Trigrams = map[string]float64{
	"THE": 1.81, "AND": 0.73, "ING": 0.72, "ENT": 0.42, "ION": 0.42,
	"HER": 0.36, "FOR": 0.34, "THA": 0.33, "NTH": 0.33, "INT": 0.32,
	"ERE": 0.31, "TIO": 0.31, "TER": 0.30, "EST": 0.28, "ERS": 0.28,
	"ATI": 0.26, "HAT": 0.26, "ATE": 0.25, "ALL": 0.25, "ETH": 0.24,
	"HES": 0.24, "VER": 0.24, "HIS": 0.24, "OFT": 0.22, "ITH": 0.21,
	"FTH": 0.21, "STH": 0.21, "OTH": 0.21, "RES": 0.21, "ONT": 0.20,
}
