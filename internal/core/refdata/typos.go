package refdata

import "strings"

// typoDomains maps each canonical provider domain to its known
// misspellings. Only pre-enumerated misspellings are caught; this is a
// lookup, not an edit-distance algorithm.
var typoDomains = map[string][]string{
	"gmail.com": {
		"gamil.com",
		"gmai.com",
		"gmaill.com",
		"gmail.co",
		"gmail.cm",
		"gmal.com",
		"gmial.com",
		"gnail.com",
	},
	"yahoo.com": {
		"yaho.com",
		"yahoo.co",
		"yahoo.cm",
		"yahooo.com",
		"yhoo.com",
	},
	"hotmail.com": {
		"hotmai.com",
		"hotmaill.com",
		"hotmail.co",
		"hotmial.com",
		"hotmal.com",
	},
	"outlook.com": {
		"outlok.com",
		"outloo.com",
		"outlook.co",
		"outook.com",
	},
	"aol.com": {
		"aol.co",
		"aoll.com",
		"aoo.com",
	},
}

// typoIndex is the reverse lookup (misspelling -> canonical), built once
// at startup.
var typoIndex = func() map[string]string {
	index := make(map[string]string)
	for canonical, misspellings := range typoDomains {
		for _, m := range misspellings {
			index[m] = canonical
		}
	}
	return index
}()

// SuggestDomain reports whether domain is a known misspelling of a
// canonical provider domain, and if so which one.
func SuggestDomain(domain string) (string, bool) {
	canonical, ok := typoIndex[strings.ToLower(domain)]
	return canonical, ok
}
