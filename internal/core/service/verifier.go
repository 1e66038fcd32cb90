package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"stoik.com/emailscore/internal/core/domain"
	"stoik.com/emailscore/internal/core/port"
	"stoik.com/emailscore/internal/core/refdata"
)

// Score contributions per check, plus the base offset every valid-syntax
// address starts from. The final score is clamped to [0,100].
const (
	baseScore = 50

	scoreSyntaxValid   = 25
	scoreDisposable    = -30
	scoreNotDisposable = 15
	scoreRoleBased     = -15
	scoreNotRoleBased  = 10
	scoreTypo          = -10
	scoreNoTypo        = 5
	scoreProfessional  = 10

	validThreshold = 70
	riskyThreshold = 40

	maxAddressLength = 320
)

// addressPattern is an RFC-5321-ish shape: one or more allowed local-part
// characters, '@', then dot-separated DNS labels of 1-63 alphanumeric
// characters with internal hyphens only.
var addressPattern = regexp.MustCompile(
	"^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@" +
		"[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?" +
		"(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$",
)

// professionalPatterns match local parts that look like a person rather
// than a machine: firstname.lastname, initial.lastname, or a bare
// lowercase token readable as a concatenated name. The last pattern is
// deliberately kept as broad as it reads (any lowercase alphabetic string
// of length >= 2); tightening it would change scores.
var professionalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[a-z]+\.[a-z]+$`),
	regexp.MustCompile(`^[a-z]\.[a-z]+$`),
	regexp.MustCompile(`^[a-z]+[a-z]$`),
}

// VerificationService scores email addresses against the static reference
// data. It holds no mutable state and is safe for concurrent use.
type VerificationService struct {
	metrics port.MetricsRecorder
}

func NewVerificationService(metrics port.MetricsRecorder) *VerificationService {
	return &VerificationService{
		metrics: metrics,
	}
}

// Verify scores a single address. Malformed addresses are classified, not
// rejected: only a blank input (after trimming) yields no result, signaled
// by domain.ErrEmptyAddress.
func (s *VerificationService) Verify(ctx context.Context, email string) (*domain.VerificationResult, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return nil, domain.ErrEmptyAddress
	}

	localPart, domainPart := splitAddress(normalized)

	result := &domain.VerificationResult{
		Email:      normalized,
		LocalPart:  localPart,
		Domain:     domainPart,
		Checks:     make(map[string]domain.CheckResult),
		VerifiedAt: time.Now().UTC(),
	}

	syntax := checkSyntax(normalized)
	result.Checks[domain.CheckSyntax] = syntax

	// Invalid syntax short-circuits the pipeline: no other checks run.
	if !syntax.Passed {
		result.Score = 0
		result.Status = domain.StatusInvalid
		result.Reason = "Invalid email syntax"
		result.Deliverable = domain.DeliverableNo
		s.record(result)
		return result, nil
	}

	disposable := checkDisposable(domainPart)
	roleBased := checkRoleBased(localPart)
	typo := checkTypo(domainPart)
	professional := checkProfessional(localPart)

	result.Checks[domain.CheckDisposable] = disposable
	result.Checks[domain.CheckRoleBased] = roleBased
	result.Checks[domain.CheckTypo] = typo
	result.Checks[domain.CheckProfessional] = professional

	total := baseScore + syntax.Score + disposable.Score + roleBased.Score + typo.Score + professional.Score
	result.Score = clampScore(total)

	// Fixed-priority decision ladder. A disposable domain is always risky,
	// whatever the numeric score says.
	switch {
	case !disposable.Passed:
		result.Status = domain.StatusRisky
		result.Reason = "Disposable email provider"
		result.Deliverable = domain.DeliverableRisky
	case result.Score >= validThreshold:
		result.Status = domain.StatusValid
		result.Reason = "Email appears valid and deliverable"
		result.Deliverable = domain.DeliverableYes
	case result.Score >= riskyThreshold:
		result.Status = domain.StatusRisky
		if !roleBased.Passed {
			result.Reason = "Role-based email address"
		} else {
			result.Reason = "Email deliverability uncertain"
		}
		result.Deliverable = domain.DeliverableRisky
	default:
		result.Status = domain.StatusInvalid
		result.Reason = "Email appears invalid or low quality"
		result.Deliverable = domain.DeliverableNo
	}

	s.record(result)

	log.WithFields(log.Fields{
		"email":  result.Email,
		"score":  result.Score,
		"status": result.Status,
	}).Debug("Email verified")

	return result, nil
}

func (s *VerificationService) record(result *domain.VerificationResult) {
	if s.metrics != nil {
		s.metrics.RecordVerification(result.Status, result.Score)
	}
}

// splitAddress decomposes an address on its first '@'. An address without
// '@' keeps everything in the local part and has an empty domain; later
// checks treat that as a normal non-member input.
func splitAddress(email string) (localPart, domainPart string) {
	at := strings.Index(email, "@")
	if at < 0 {
		return email, ""
	}
	return email[:at], email[at+1:]
}

func checkSyntax(email string) domain.CheckResult {
	if len(email) > maxAddressLength || !addressPattern.MatchString(email) {
		return domain.CheckResult{Passed: false, Score: 0}
	}
	return domain.CheckResult{Passed: true, Score: scoreSyntaxValid}
}

func checkDisposable(domainPart string) domain.CheckResult {
	if domainPart != "" && refdata.IsDisposableDomain(domainPart) {
		return domain.CheckResult{Passed: false, Score: scoreDisposable}
	}
	return domain.CheckResult{Passed: true, Score: scoreNotDisposable}
}

func checkRoleBased(localPart string) domain.CheckResult {
	if localPart != "" && refdata.IsRoleBased(localPart) {
		return domain.CheckResult{Passed: false, Score: scoreRoleBased}
	}
	return domain.CheckResult{Passed: true, Score: scoreNotRoleBased}
}

func checkTypo(domainPart string) domain.CheckResult {
	if suggestion, ok := refdata.SuggestDomain(domainPart); ok {
		return domain.CheckResult{Passed: false, Score: scoreTypo, Suggestion: suggestion}
	}
	return domain.CheckResult{Passed: true, Score: scoreNoTypo}
}

func checkProfessional(localPart string) domain.CheckResult {
	for _, pattern := range professionalPatterns {
		if pattern.MatchString(localPart) {
			return domain.CheckResult{Passed: true, Score: scoreProfessional}
		}
	}
	return domain.CheckResult{Passed: false, Score: 0}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
