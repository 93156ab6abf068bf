package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerivePassword_Deterministic(t *testing.T) {
	t.Parallel()

	h1, err := DerivePassword("Secret1!", "aabbccdd")
	require.NoError(t, err)
	h2, err := DerivePassword("Secret1!", "aabbccdd")
	require.NoError(t, err)

	assert.Equal(t, h1, h2)
	assert.Len(t, h1, derivedKeyLen*2) // hex doubles the byte length

	other, err := DerivePassword("Secret1!", "ddccbbaa")
	require.NoError(t, err)
	assert.NotEqual(t, h1, other)
}

func TestCreatePasswordRecord_VerifyRoundTrip(t *testing.T) {
	t.Parallel()

	rec, err := CreatePasswordRecord("Secret1!")
	require.NoError(t, err)
	assert.Len(t, rec.Salt, saltBytes*2)

	assert.True(t, VerifyPassword("Secret1!", rec.Salt, rec.Hash))
	assert.False(t, VerifyPassword("Secret2!", rec.Salt, rec.Hash))
	assert.False(t, VerifyPassword("", rec.Salt, rec.Hash))
}

func TestCreatePasswordRecord_FreshSalts(t *testing.T) {
	t.Parallel()

	a, err := CreatePasswordRecord("samepassword")
	require.NoError(t, err)
	b, err := CreatePasswordRecord("samepassword")
	require.NoError(t, err)

	assert.NotEqual(t, a.Salt, b.Salt)
	assert.NotEqual(t, a.Hash, b.Hash)
}

func TestVerifyPassword_MalformedExpectedHash(t *testing.T) {
	t.Parallel()

	rec, err := CreatePasswordRecord("Secret1!")
	require.NoError(t, err)

	// never errors, always false
	assert.False(t, VerifyPassword("Secret1!", rec.Salt, ""))
	assert.False(t, VerifyPassword("Secret1!", rec.Salt, "zz-not-hex"))
	assert.False(t, VerifyPassword("Secret1!", rec.Salt, rec.Hash[:16]))
}

func TestNewSessionToken(t *testing.T) {
	t.Parallel()

	a, err := NewSessionToken()
	require.NoError(t, err)
	b, err := NewSessionToken()
	require.NoError(t, err)

	assert.Len(t, a, tokenBytes*2)
	assert.NotEqual(t, a, b)
}
