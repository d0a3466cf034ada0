// Package domain decodes METAR aviation weather reports into plain English.
//
// # Report Layout
//
// A METAR is a single line of space-delimited groups in a fixed order:
//
//	METAR KJFK 251200Z AUTO 18010G20KT 180V240 10SM -RA BKN030 OVC250 20/10 A3000 RMK AO2
//
// The leading "METAR" or "SPECI" marks the report type and is not decoded.
// The station identifier follows unconditionally, then the optional groups
// below. Everything after "RMK" is free-form remarks and is never inspected.
//
// Header groups (positional, each optional):
//
//	DDHHMMZ         observation day of month and UTC time
//	AUTO            fully automated station (skipped)
//	dddssGggKT      wind: direction in degrees, speed and optional gust in knots;
//	                "VRB" replaces the direction for variable winds
//	dddVddd         variable wind direction range (skipped)
//	NSM, N/DSM      visibility in statute miles (US)
//	NNNN            visibility in meters (international)
//
// Body groups (any order, classified token by token):
//
//	[-|+][VC]wx     present weather, e.g. "-FZRA", "+SN", "VCFG"
//	cccNNN[CB|TCU]  cloud layer: cover code and base in hundreds of feet
//	[M]TT/[M]DD     temperature/dewpoint in whole °C, "M" = minus
//	ANNNN, QNNNN    altimeter in hundredths of inHg, or QNH in hPa
//
// Tokens that fit no grammar are skipped. A partially decodable report
// still yields every field it can.
//
// # Unit Conversions
//
// Wind speeds use 1 kt = 1.15078 mph; temperatures use F = C × 9/5 + 32. Both
// are rounded half-to-even to whole numbers, so 10 kt is 12 mph and 20 °C is
// 68 °F. Meter visibility uses 1 statute mile = 1609.34 m.
//
// # Flight Category
//
// [FlightCategory] maps visibility and ceiling to LIFR/IFR/MVFR/VFR. [Decode]
// leaves DecodedReport.FlightCategory empty; callers that want a category
// use [EstimateFlightCategory] on the raw text.
package domain
