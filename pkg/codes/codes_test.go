package codes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryDefaults(t *testing.T) {
	expected := map[string]struct {
		status   int
		severity Severity
	}{
		"VALIDATION_ERROR":      {400, SeverityLow},
		"AUTHENTICATION_ERROR":  {401, SeverityMedium},
		"AUTHORIZATION_ERROR":   {403, SeverityMedium},
		"NOT_FOUND":             {404, SeverityLow},
		"CONFLICT":              {409, SeverityLow},
		"RATE_LIMIT_EXCEEDED":   {429, SeverityLow},
		"INTERNAL_SERVER_ERROR": {500, SeverityMedium},
		"DATABASE_ERROR":        {500, SeverityMedium},
		"FILE_SYSTEM_ERROR":     {500, SeverityMedium},
		"NETWORK_ERROR":         {502, SeverityMedium},
		"TIMEOUT_ERROR":         {504, SeverityMedium},
		"SERVICE_UNAVAILABLE":   {503, SeverityHigh},
	}

	require.Len(t, Registry, len(expected))
	for _, kind := range Registry {
		want, ok := expected[kind.Code]
		require.True(t, ok, "unexpected kind %s", kind.Code)
		assert.Equal(t, want.status, kind.Status, kind.Code)
		assert.Equal(t, want.severity, kind.Severity, kind.Code)
		assert.True(t, ValidStatus(kind.Status), kind.Code)
		assert.NotEmpty(t, kind.Message, kind.Code)
	}
}

func TestSeverityValid(t *testing.T) {
	for _, s := range []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, Severity("").Valid())
	assert.False(t, Severity("fatal").Valid())
}

func TestSeverityAtLeast(t *testing.T) {
	assert.True(t, SeverityCritical.AtLeast(SeverityHigh))
	assert.True(t, SeverityHigh.AtLeast(SeverityHigh))
	assert.False(t, SeverityMedium.AtLeast(SeverityHigh))
	assert.False(t, Severity("bogus").AtLeast(SeverityLow))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(200))
	assert.True(t, ValidStatus(599))
	assert.False(t, ValidStatus(0))
	assert.False(t, ValidStatus(600))
	assert.False(t, ValidStatus(-1))
}
