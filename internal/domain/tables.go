package domain

// weatherCodes maps present-weather groups to English. Intensity, proximity,
// descriptor, precipitation, obscuration and other codes share one table.
var weatherCodes = map[string]string{
	// Intensity and proximity
	"-":  "light",
	"+":  "heavy",
	"VC": "in the vicinity",

	// Descriptor
	"MI": "shallow",
	"PR": "partial",
	"BC": "patches of",
	"DR": "low drifting",
	"BL": "blowing",
	"SH": "showers",
	"TS": "thunderstorm",
	"FZ": "freezing",

	// Precipitation
	"DZ": "drizzle",
	"RA": "rain",
	"SN": "snow",
	"SG": "snow grains",
	"IC": "ice crystals",
	"PL": "ice pellets",
	"GR": "hail",
	"GS": "small hail",
	"UP": "unknown precipitation",

	// Obscuration
	"BR": "mist",
	"FG": "fog",
	"FU": "smoke",
	"VA": "volcanic ash",
	"DU": "widespread dust",
	"SA": "sand",
	"HZ": "haze",
	"PY": "spray",

	// Other
	"PO": "dust whirls",
	"SQ": "squalls",
	"FC": "funnel cloud",
	"SS": "sandstorm",
	"DS": "duststorm",
}

var cloudCodes = map[string]string{
	"SKC": "clear skies",
	"CLR": "clear skies",
	"FEW": "few clouds",
	"SCT": "scattered clouds",
	"BKN": "broken clouds",
	"OVC": "overcast",
	"VV":  "vertical visibility",
}

type compassSector struct {
	low, high float64
	name      string
}

// compassSectors are half-open [low, high) intervals in degrees.
var compassSectors = []compassSector{
	{0, 22.5, "north"},
	{22.5, 67.5, "northeast"},
	{67.5, 112.5, "east"},
	{112.5, 157.5, "southeast"},
	{157.5, 202.5, "south"},
	{202.5, 247.5, "southwest"},
	{247.5, 292.5, "west"},
	{292.5, 337.5, "northwest"},
	{337.5, 360, "north"},
}
