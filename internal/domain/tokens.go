package domain

import (
	"regexp"
	"strings"
)

// tokenKind identifies which field grammar a report token belongs to.
type tokenKind int

const (
	kindUnknown tokenKind = iota
	kindStation
	kindTime
	kindAuto
	kindWind
	kindWindVariation
	kindVisibility
	kindWeather
	kindCloud
	kindTempDewpoint
	kindAltimeter
	kindRemarks
)

var tokenKindNames = [...]string{
	kindUnknown:       "unknown",
	kindStation:       "station",
	kindTime:          "time",
	kindAuto:          "auto",
	kindWind:          "wind",
	kindWindVariation: "wind_variation",
	kindVisibility:    "visibility",
	kindWeather:       "weather",
	kindCloud:         "cloud",
	kindTempDewpoint:  "temp_dewpoint",
	kindAltimeter:     "altimeter",
	kindRemarks:       "remarks",
}

func (k tokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "unknown"
}

type token struct {
	kind tokenKind
	text string
}

const (
	autoMarker    = "AUTO"
	remarksMarker = "RMK"
)

var (
	timeTokenRe          = regexp.MustCompile(`^\d{6}Z`)
	windTokenRe          = regexp.MustCompile(`^(VRB|\d{3})\d{2,3}(G\d{2,3})?KT`)
	windVariationTokenRe = regexp.MustCompile(`^\d{3}V\d{3}`)

	visibilityMilesTokenRe    = regexp.MustCompile(`^\d+SM`)
	visibilityFractionTokenRe = regexp.MustCompile(`^\d+/\d+SM`)
	visibilityMetersTokenRe   = regexp.MustCompile(`^\d{4}$`)

	// weatherTokenRe only admits tokens made entirely of known groups, so a
	// token such as "RAXX" is ignored rather than partially decoded.
	weatherTokenRe      = regexp.MustCompile(`^[-+]?(VC)?(MI|PR|BC|DR|BL|SH|TS|FZ)?(DZ|RA|SN|SG|IC|PL|GR|GS|UP|BR|FG|FU|VA|DU|SA|HZ|PY|PO|SQ|FC|SS|DS)+$`)
	cloudTokenRe        = regexp.MustCompile(`^(SKC|CLR|FEW|SCT|BKN|OVC|VV)\d{0,3}(CB|TCU)?$`)
	tempDewpointTokenRe = regexp.MustCompile(`^M?\d{2}/M?\d{2}$`)
	altimeterTokenRe    = regexp.MustCompile(`^[AQ]\d{4}$`)
)

type matcher struct {
	kind  tokenKind
	match func(string) bool
}

// bodyMatchers classify every token after the visibility group, tried in order.
var bodyMatchers = []matcher{
	{kindWeather, weatherTokenRe.MatchString},
	{kindCloud, cloudTokenRe.MatchString},
	{kindTempDewpoint, tempDewpointTokenRe.MatchString},
	{kindAltimeter, altimeterTokenRe.MatchString},
	{kindRemarks, func(s string) bool { return s == remarksMarker }},
}

func isReportType(s string) bool {
	return s == "METAR" || s == "SPECI"
}

func isVisibilityToken(s string) bool {
	return visibilityMilesTokenRe.MatchString(s) ||
		visibilityFractionTokenRe.MatchString(s) ||
		visibilityMetersTokenRe.MatchString(s)
}

func classifyBody(s string) tokenKind {
	for _, m := range bodyMatchers {
		if m.match(s) {
			return m.kind
		}
	}
	return kindUnknown
}

// classify assigns a field kind to each whitespace-delimited field of a report.
// The report-type prefix is dropped and classification stops at the remarks
// marker, which is not included in the result.
func classify(fields []string) []token {
	out := make([]token, 0, len(fields))
	i := 0
	next := func(kind tokenKind) {
		out = append(out, token{kind: kind, text: fields[i]})
		i++
	}

	if i < len(fields) && isReportType(fields[i]) {
		i++
	}
	if i < len(fields) {
		next(kindStation)
	}
	if i < len(fields) && timeTokenRe.MatchString(fields[i]) {
		next(kindTime)
	}
	if i < len(fields) && fields[i] == autoMarker {
		next(kindAuto)
	}
	if i < len(fields) && windTokenRe.MatchString(fields[i]) {
		next(kindWind)
		if i < len(fields) && windVariationTokenRe.MatchString(fields[i]) {
			next(kindWindVariation)
		}
	}
	for i < len(fields) && isVisibilityToken(fields[i]) {
		next(kindVisibility)
	}

	for ; i < len(fields); i++ {
		kind := classifyBody(fields[i])
		if kind == kindRemarks {
			break
		}
		out = append(out, token{kind: kind, text: fields[i]})
	}
	return out
}

// tokenize splits a raw report on whitespace.
func tokenize(raw string) []string {
	return strings.Fields(raw)
}
