package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempCredentialsFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "firebase-credentials.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	return path
}

func TestCheckFirebase_Valid(t *testing.T) {
	// An existing empty file is enough; content is the SDK's concern.
	status := checkFirebase(FirebaseConfig{
		CredentialsPath: tempCredentialsFile(t),
		ProjectID:       "evo-engine",
	})

	assert.True(t, status.Valid)
	assert.Empty(t, status.Diagnostics)
}

func TestCheckFirebase_MissingCredentialsFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.json")
	status := checkFirebase(FirebaseConfig{
		CredentialsPath: missing,
		ProjectID:       "evo-engine",
	})

	assert.False(t, status.Valid)
	require.Len(t, status.Diagnostics, 1)
	assert.Contains(t, status.Diagnostics[0], missing)
}

func TestCheckFirebase_EmptyProjectID(t *testing.T) {
	status := checkFirebase(FirebaseConfig{
		CredentialsPath: tempCredentialsFile(t),
	})

	assert.False(t, status.Valid)
	require.Len(t, status.Diagnostics, 1)
	assert.Contains(t, status.Diagnostics[0], "ProjectID")
}

func TestCheckTelegram_Valid(t *testing.T) {
	status := checkTelegram(TelegramConfig{BotToken: "123:abc", ChatID: "-100200300"})
	assert.True(t, status.Valid)
}

func TestCheckTelegram_Empty(t *testing.T) {
	status := checkTelegram(TelegramConfig{})
	assert.False(t, status.Valid)
	assert.Len(t, status.Diagnostics, 2)
}

func TestCheckTelegram_PlaceholderValues(t *testing.T) {
	status := checkTelegram(TelegramConfig{
		BotToken: "your_bot_token_here",
		ChatID:   "your_chat_id_here",
	})

	assert.False(t, status.Valid)
	require.Len(t, status.Diagnostics, 2)
	assert.Contains(t, status.Diagnostics[0], "placeholder")
}

func TestCheckResearch_Valid(t *testing.T) {
	status := checkResearch(baseResearch())
	assert.True(t, status.Valid)
	assert.Empty(t, status.Diagnostics)
}

func TestCheckResearch_HypothesesMustBePositive(t *testing.T) {
	for _, n := range []int{0, -3} {
		rc := baseResearch()
		rc.MaxHypothesesPerCycle = n

		status := checkResearch(rc)
		assert.False(t, status.Valid, "max_hypotheses_per_cycle=%d", n)
		assert.NotEmpty(t, status.Diagnostics)
	}
}

func TestCheckResearch_ShortBacktestIsWarningOnly(t *testing.T) {
	rc := baseResearch()
	rc.BacktestDays = 10

	status := checkResearch(rc)

	assert.True(t, status.Valid)
	require.Len(t, status.Diagnostics, 1)
	assert.Contains(t, status.Diagnostics[0], "BacktestDays")
}

func TestCheckResearch_RatesOutOfRange(t *testing.T) {
	rc := baseResearch()
	rc.MinWinRate = 1.5

	status := checkResearch(rc)
	assert.False(t, status.Valid)

	rc = baseResearch()
	rc.MaxDrawdown = -0.1

	status = checkResearch(rc)
	assert.False(t, status.Valid)
}

func TestCheckExchanges_EmptyCredentialsAreValid(t *testing.T) {
	status := checkExchanges(map[string]ExchangeKeys{
		ProviderBinance:  {},
		ProviderCoinbase: {APIKey: "k"},
	})

	assert.True(t, status.Valid)
	assert.Empty(t, status.Diagnostics)
}
