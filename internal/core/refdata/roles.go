package refdata

import "strings"

var roleWords = map[string]struct{}{
	"abuse":         {},
	"accounts":      {},
	"admin":         {},
	"administrator": {},
	"billing":       {},
	"careers":       {},
	"contact":       {},
	"donotreply":    {},
	"email":         {},
	"enquiries":     {},
	"finance":       {},
	"hello":         {},
	"help":          {},
	"hr":            {},
	"info":          {},
	"inquiries":     {},
	"jobs":          {},
	"legal":         {},
	"mail":          {},
	"marketing":     {},
	"newsletter":    {},
	"no-reply":      {},
	"noreply":       {},
	"notifications": {},
	"office":        {},
	"postmaster":    {},
	"privacy":       {},
	"sales":         {},
	"security":      {},
	"service":       {},
	"support":       {},
	"team":          {},
	"webmaster":     {},
}

var roleSeparators = []string{".", "_", "-"}

// IsRoleBased reports whether the local part identifies a shared inbox:
// either it equals a role word exactly, or it starts with a role word
// followed by '.', '_' or '-'. An empty local part is not role-based.
func IsRoleBased(localPart string) bool {
	lp := strings.ToLower(localPart)
	if _, ok := roleWords[lp]; ok {
		return true
	}
	for role := range roleWords {
		for _, sep := range roleSeparators {
			if strings.HasPrefix(lp, role+sep) {
				return true
			}
		}
	}
	return false
}
