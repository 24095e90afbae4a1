package assistant

import "strings"

// regionHints are the tokens whose presence means a location already names a
// US state or a settlement kind, so no ", USA" suffix is needed. The check
// is a plain substring match, which is crude ("ca" matches inside many
// words); that looseness is long-standing behavior and is kept.
var regionHints = []string{
	"city", "town", "state",
	"co", "ca", "ny", "fl", "wa", "tx", "il", "pa", "oh", "ga", "nc", "mi", "va", "nj", "tn", "az",
	"mo", "md", "in", "or", "sc", "ky", "la", "al", "ct", "ut", "ia", "nv", "ar", "ms", "ks", "nm",
	"ne", "id", "hi", "nh", "me", "ri", "mt", "de", "sd", "nd", "ak", "vt", "wy", "wv",
}

// PrepareLocation normalizes an extracted location before it goes to the
// geocoder: trims it, strips a leading "in ", and appends ", USA" when
// nothing in the text hints at a US state or region.
func PrepareLocation(location string) string {
	location = strings.TrimSpace(location)
	if strings.HasPrefix(location, "in ") {
		location = strings.TrimSpace(location[3:])
	}

	locationLower := strings.ToLower(location)
	for _, hint := range regionHints {
		if strings.Contains(locationLower, hint) {
			return location
		}
	}
	return location + ", USA"
}
