package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"stoik.com/emailscore/internal/core/domain"
	"stoik.com/emailscore/mocks"
)

type VerifierSuite struct {
	suite.Suite
	verificationService *VerificationService
}

func TestVerifier(t *testing.T) {
	suite.Run(t, new(VerifierSuite))
}

func (suite *VerifierSuite) SetupTest() {
	suite.verificationService = NewVerificationService(nil)
}

func (suite *VerifierSuite) TestVerify_ProfessionalAddress() {
	result, err := suite.verificationService.Verify(context.Background(), "John.Doe@gmail.com")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "john.doe@gmail.com", result.Email)
	assert.Equal(suite.T(), "john.doe", result.LocalPart)
	assert.Equal(suite.T(), "gmail.com", result.Domain)

	assert.True(suite.T(), result.Checks[domain.CheckSyntax].Passed)
	assert.True(suite.T(), result.Checks[domain.CheckDisposable].Passed)
	assert.True(suite.T(), result.Checks[domain.CheckRoleBased].Passed)
	assert.True(suite.T(), result.Checks[domain.CheckTypo].Passed)
	assert.True(suite.T(), result.Checks[domain.CheckProfessional].Passed)

	// 25+15+10+5+10+50 = 115, clamped
	assert.Equal(suite.T(), 100, result.Score)
	assert.Equal(suite.T(), domain.StatusValid, result.Status)
	assert.Equal(suite.T(), "Email appears valid and deliverable", result.Reason)
	assert.Equal(suite.T(), domain.DeliverableYes, result.Deliverable)
}

func (suite *VerifierSuite) TestVerify_InvalidSyntax() {
	for _, email := range []string{
		"plainaddress",
		"missing@domain@twice.com",
		"user@-leadinghyphen.com",
		"user@domain..com",
		"spaces in@address.com",
	} {
		result, err := suite.verificationService.Verify(context.Background(), email)

		assert.NoError(suite.T(), err)
		assert.Equal(suite.T(), 0, result.Score, email)
		assert.Equal(suite.T(), domain.StatusInvalid, result.Status, email)
		assert.Equal(suite.T(), "Invalid email syntax", result.Reason, email)
		assert.Equal(suite.T(), domain.DeliverableNo, result.Deliverable, email)

		// Syntax failure short-circuits: no other checks evaluated.
		assert.Len(suite.T(), result.Checks, 1, email)
		assert.False(suite.T(), result.Checks[domain.CheckSyntax].Passed, email)
	}
}

func (suite *VerifierSuite) TestVerify_OverlongAddress() {
	email := strings.Repeat("a", 320) + "@example.com"

	result, err := suite.verificationService.Verify(context.Background(), email)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.StatusInvalid, result.Status)
	assert.Len(suite.T(), result.Checks, 1)
}

func (suite *VerifierSuite) TestVerify_BlankInput() {
	for _, email := range []string{"", "   ", "\t\n"} {
		result, err := suite.verificationService.Verify(context.Background(), email)

		assert.ErrorIs(suite.T(), err, domain.ErrEmptyAddress)
		assert.Nil(suite.T(), result)
	}
}

func (suite *VerifierSuite) TestVerify_DisposableOverridesScore() {
	result, err := suite.verificationService.Verify(context.Background(), "test@mailinator.com")

	assert.NoError(suite.T(), err)
	// 25-30+10+5+10+50 = 70: the score alone would clear the valid
	// threshold, but disposable always wins.
	assert.Equal(suite.T(), 70, result.Score)
	assert.False(suite.T(), result.Checks[domain.CheckDisposable].Passed)
	assert.Equal(suite.T(), domain.StatusRisky, result.Status)
	assert.Equal(suite.T(), "Disposable email provider", result.Reason)
	assert.Equal(suite.T(), domain.DeliverableRisky, result.Deliverable)
}

func (suite *VerifierSuite) TestVerify_RoleWordStillScoresValid() {
	// "admin" also matches the (broad) professional pattern, so the role
	// penalty alone cannot drag the score below the valid threshold:
	// 25+15-15+5+10+50 = 90.
	result, err := suite.verificationService.Verify(context.Background(), "admin@example.com")

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), result.Checks[domain.CheckRoleBased].Passed)
	assert.True(suite.T(), result.Checks[domain.CheckProfessional].Passed)
	assert.Equal(suite.T(), 90, result.Score)
	assert.Equal(suite.T(), domain.StatusValid, result.Status)
}

func (suite *VerifierSuite) TestVerify_RoleBasedRisky() {
	// Role prefix plus a domain typo and no professional bonus lands the
	// score in the risky band: 25+15-15-10+0+50 = 65.
	result, err := suite.verificationService.Verify(context.Background(), "support-team@gmial.com")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 65, result.Score)
	assert.False(suite.T(), result.Checks[domain.CheckRoleBased].Passed)
	assert.False(suite.T(), result.Checks[domain.CheckProfessional].Passed)
	assert.Equal(suite.T(), domain.StatusRisky, result.Status)
	assert.Equal(suite.T(), "Role-based email address", result.Reason)
	assert.Equal(suite.T(), domain.DeliverableRisky, result.Deliverable)
}

func (suite *VerifierSuite) TestVerify_TypoSuggestion() {
	result, err := suite.verificationService.Verify(context.Background(), "user@gmial.com")

	assert.NoError(suite.T(), err)
	typo := result.Checks[domain.CheckTypo]
	assert.False(suite.T(), typo.Passed)
	assert.Equal(suite.T(), "gmail.com", typo.Suggestion)
	assert.Equal(suite.T(), -10, typo.Score)
}

func (suite *VerifierSuite) TestVerify_NormalizesInput() {
	result, err := suite.verificationService.Verify(context.Background(), "  John.DOE@GMAIL.com ")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "john.doe@gmail.com", result.Email)
}

func (suite *VerifierSuite) TestVerify_MissingAtSign() {
	result, err := suite.verificationService.Verify(context.Background(), "nodomain")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "nodomain", result.LocalPart)
	assert.Equal(suite.T(), "", result.Domain)
	assert.Equal(suite.T(), domain.StatusInvalid, result.Status)
}

func (suite *VerifierSuite) TestVerify_Idempotent() {
	first, err := suite.verificationService.Verify(context.Background(), "jane.roe@yahoo.com")
	assert.NoError(suite.T(), err)

	second, err := suite.verificationService.Verify(context.Background(), "jane.roe@yahoo.com")
	assert.NoError(suite.T(), err)

	assert.Equal(suite.T(), first.Checks, second.Checks)
	assert.Equal(suite.T(), first.Score, second.Score)
	assert.Equal(suite.T(), first.Status, second.Status)
	assert.Equal(suite.T(), first.Reason, second.Reason)
}

func (suite *VerifierSuite) TestVerify_ScoreAlwaysInRange() {
	for _, email := range []string{
		"john.doe@gmail.com",
		"admin@mailinator.com",
		"support-team@gmial.com",
		"x@y.z",
		"a.b@hotmal.com",
		"noreply@yopmail.com",
	} {
		result, err := suite.verificationService.Verify(context.Background(), email)

		assert.NoError(suite.T(), err)
		assert.GreaterOrEqual(suite.T(), result.Score, 0, email)
		assert.LessOrEqual(suite.T(), result.Score, 100, email)
	}
}

func (suite *VerifierSuite) TestVerify_RecordsMetrics() {
	recorder := mocks.NewMetricsRecorder(suite.T())
	recorder.EXPECT().RecordVerification(domain.StatusValid, 100).Return()

	verificationService := NewVerificationService(recorder)
	_, err := verificationService.Verify(context.Background(), "john.doe@gmail.com")

	assert.NoError(suite.T(), err)
}
