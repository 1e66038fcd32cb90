// Package refdata holds the static reference tables the scoring engine
// checks addresses against: known disposable-mail providers, role-based
// local-part words, and a dictionary of common domain misspellings.
//
// All tables are closed, hand-maintained lists loaded at process start and
// never mutated. Expanding coverage is a data-maintenance task, not an
// algorithmic one.
package refdata

import (
	"sort"
	"strings"
)

var disposableDomains = map[string]struct{}{
	"10minutemail.com":    {},
	"20minutemail.com":    {},
	"burnermail.io":       {},
	"dispostable.com":     {},
	"emailondeck.com":     {},
	"fakeinbox.com":       {},
	"getairmail.com":      {},
	"getnada.com":         {},
	"guerrillamail.com":   {},
	"guerrillamail.net":   {},
	"maildrop.cc":         {},
	"mailinator.com":      {},
	"mailnesia.com":       {},
	"mintemail.com":       {},
	"mohmal.com":          {},
	"mytemp.email":        {},
	"sharklasers.com":     {},
	"spamgourmet.com":     {},
	"temp-mail.org":       {},
	"tempinbox.com":       {},
	"tempmail.com":        {},
	"throwaway.email":     {},
	"throwawaymail.com":   {},
	"trashmail.com":       {},
	"yopmail.com":         {},
}

// IsDisposableDomain reports whether the domain belongs to a known
// disposable-mail provider. An empty domain (malformed address) is not a
// member.
func IsDisposableDomain(domain string) bool {
	_, ok := disposableDomains[strings.ToLower(domain)]
	return ok
}

// DisposableDomains returns the full provider list, sorted.
func DisposableDomains() []string {
	domains := make([]string, 0, len(disposableDomains))
	for d := range disposableDomains {
		domains = append(domains, d)
	}
	sort.Strings(domains)
	return domains
}
