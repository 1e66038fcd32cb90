package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"stoik.com/emailscore/internal/core/domain"
	"stoik.com/emailscore/internal/core/service"
)

func TestDomainsCmd(t *testing.T) {
	cmd := domainsCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)

	assert.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "mailinator.com")
}

func TestVerifyCmd_Single(t *testing.T) {
	verificationService = service.NewVerificationService(nil)

	cmd := verifyCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"john.doe@gmail.com"})

	assert.NoError(t, cmd.Execute())

	var result domain.VerificationResult
	assert.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, domain.StatusValid, result.Status)
	assert.Equal(t, 100, result.Score)
}

func TestVerifyCmd_Bulk(t *testing.T) {
	verificationService = service.NewVerificationService(nil)

	cmd := verifyCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"a@example.com", "test@mailinator.com", "--delay", "50"})

	assert.NoError(t, cmd.Execute())

	var result domain.BulkResult
	assert.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Len(t, result.Results, 2)
	assert.Equal(t, 2, result.Stats.Total)
}
