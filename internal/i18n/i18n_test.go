package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_T(t *testing.T) {
	c, err := Load("en")
	require.NoError(t, err)

	assert.Equal(t, "Yesterday", c.T("en", "yesterday"))
	assert.Equal(t, "Gisteren", c.T("nl", "yesterday"))
	assert.Equal(t, "Yesterday", c.T("fr", "yesterday"))
	assert.Equal(t, "missing_key", c.T("en", "missing_key"))
}

func TestCatalog_Language(t *testing.T) {
	c, err := Load("en")
	require.NoError(t, err)

	assert.Equal(t, "nl", c.Language("nl-NL,nl;q=0.9,en;q=0.8"))
	assert.Equal(t, "en", c.Language("fr-FR, en-GB;q=0.5"))
	assert.Equal(t, "en", c.Language(""))
	assert.Equal(t, "en", c.Language("de"))
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("en: [not, a, map]"), "en")
	assert.Error(t, err)

	_, err = Parse([]byte("nl:\n  today: Vandaag\n"), "en")
	assert.Error(t, err)
}
