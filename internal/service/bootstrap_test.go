package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeedAccounts(t *testing.T) {
	t.Parallel()

	accounts, err := ParseSeedAccounts("")
	require.NoError(t, err)
	assert.Nil(t, accounts)

	accounts, err = ParseSeedAccounts(`[{"name":"Alice","email":"alice@x.com","password":"Secret1!","role":"admin"}]`)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "alice@x.com", accounts[0].Email)
	assert.Equal(t, "admin", accounts[0].Role)

	_, err = ParseSeedAccounts(`{"not":"a list"}`)
	assert.Error(t, err)

	_, err = ParseSeedAccounts(`not json at all`)
	assert.Error(t, err)
}
