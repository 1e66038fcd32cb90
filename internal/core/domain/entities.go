package domain

import (
	"errors"
	"time"
)

// ErrEmptyAddress is returned when the input is blank after trimming.
// A blank input produces no result at all, unlike a malformed address
// which still gets a full (invalid) VerificationResult.
var ErrEmptyAddress = errors.New("email address is empty")

type Status string

const (
	StatusValid   Status = "valid"
	StatusRisky   Status = "risky"
	StatusInvalid Status = "invalid"
)

type Deliverable string

const (
	DeliverableYes   Deliverable = "yes"
	DeliverableRisky Deliverable = "risky"
	DeliverableNo    Deliverable = "no"
)

// Check names used as keys in VerificationResult.Checks.
const (
	CheckSyntax       = "syntax"
	CheckDisposable   = "disposable"
	CheckRoleBased    = "role_based"
	CheckTypo         = "typo"
	CheckProfessional = "professional"
)

// CheckResult is the outcome of one independent check. Passed is the
// favorable outcome for the address: syntax valid, domain not disposable,
// local part not role-based, no known typo, professional pattern matched.
// Suggestion is only set by the typo check.
type CheckResult struct {
	Passed     bool   `json:"passed"`
	Score      int    `json:"score"`
	Suggestion string `json:"suggestion,omitempty"`
}

// VerificationResult is the full verdict for one address. It is built once
// per verification and never mutated after being returned.
type VerificationResult struct {
	Email       string                 `json:"email"`
	LocalPart   string                 `json:"local_part"`
	Domain      string                 `json:"domain"`
	Checks      map[string]CheckResult `json:"checks"`
	Score       int                    `json:"score"`
	Status      Status                 `json:"status"`
	Reason      string                 `json:"reason"`
	Deliverable Deliverable            `json:"deliverable"`
	VerifiedAt  time.Time              `json:"verified_at"`
}
