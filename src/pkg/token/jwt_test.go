package token

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(secret string) *viper.Viper {
	v := viper.New()
	v.Set("jwt.secret", secret)
	v.Set("app.name", "tchukudu-test")
	return v
}

func TestGenerateAndParse(t *testing.T) {
	cfg := testConfig("test-secret")

	signed, err := Generate(cfg, Metadata{
		UserID:   "client-1",
		FullName: "Marie Kabongo",
		UserType: "client",
	})
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	metadata, err := Parse(cfg, signed)
	require.NoError(t, err)
	assert.Equal(t, "client-1", metadata.UserID)
	assert.Equal(t, "Marie Kabongo", metadata.FullName)
	assert.Equal(t, "client", metadata.UserType)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	signed, err := Generate(testConfig("secret-a"), Metadata{UserID: "client-1"})
	require.NoError(t, err)

	_, err = Parse(testConfig("secret-b"), signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse(testConfig("test-secret"), "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
