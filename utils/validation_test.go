package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("a.b+c@sub.domain.pk"))
	assert.False(t, IsValidEmail(""))
	assert.False(t, IsValidEmail("user@nodot"))
	assert.False(t, IsValidEmail("no at sign.com"))
}

func TestIsValidContact(t *testing.T) {
	assert.True(t, IsValidContact("0300-1234567"))
	assert.True(t, IsValidContact("0399-0000000"))
	assert.False(t, IsValidContact("03001234567"), "dash is required")
	assert.False(t, IsValidContact("0200-1234567"), "must start with 03")
	assert.False(t, IsValidContact("0300-123456"), "seven digits after the dash")
	assert.False(t, IsValidContact("0300-12345678"))
}

func TestIsValidLicense(t *testing.T) {
	assert.True(t, IsValidLicense("12345"))
	assert.True(t, IsValidLicense("1234567"))
	assert.False(t, IsValidLicense("1234"))
	assert.False(t, IsValidLicense("12345678"))
	assert.False(t, IsValidLicense("12a45"))
}

func TestIsValidAge(t *testing.T) {
	assert.True(t, IsValidAge("1"))
	assert.True(t, IsValidAge("85"))
	assert.False(t, IsValidAge("0"))
	assert.False(t, IsValidAge("-3"))
	assert.False(t, IsValidAge("abc"))
	assert.False(t, IsValidAge(""))
}

func TestHashTokenIsStableHex(t *testing.T) {
	h1 := HashToken("some-token")
	h2 := HashToken("some-token")
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)
	assert.NotEqual(t, h1, HashToken("other-token"))
}
