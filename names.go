package orbitalgenesis

import (
	"fmt"
)

var namePrefixes = []string{
	"Keth", "Vor", "Zan", "Thal", "Ery", "Nym", "Ax", "Ori", "Cal", "Dra",
	"Vel", "Sar", "Ion", "Pol", "Qir", "Ulm", "Hes", "Tau", "Myr", "Gal",
}

var nameSuffixes = []string{
	"aris", "ion", "eus", "ara", "os", "ith", "ande", "ux", "ea", "orin",
	"is", "ath", "une", "era", "on", "ys",
}

var romanNumerals = []string{
	"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X",
}

// newName combines a random prefix/suffix pair with a 2-3 digit number.
// Uniqueness is not guaranteed and is harmless: identity lives in the UUID.
func newName(src Source) string {
	pre := namePrefixes[intRange(src, 0, len(namePrefixes)-1)]
	suf := nameSuffixes[intRange(src, 0, len(nameSuffixes)-1)]
	return fmt.Sprintf("%s%s-%d", pre, suf, intRange(src, 10, 999))
}

// moonName derives a moon name from the parent planet name and the moon's
// index around it.
func moonName(parent string, idx int) string {
	if idx < len(romanNumerals) {
		return parent + " " + romanNumerals[idx]
	}
	return fmt.Sprintf("%s %d", parent, idx+1)
}
