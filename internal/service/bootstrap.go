package service

import (
	"encoding/json"
	"fmt"
)

// SeedAccount is one entry of the bulk account list supplied via
// configuration. Entries missing an email or password are skipped at seed
// time.
type SeedAccount struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SeedSource carries the directory bootstrap inputs: an optional bulk
// account list and the fallback admin pair used when the list is absent or
// unusable.
type SeedSource struct {
	Accounts      []SeedAccount
	AdminEmail    string
	AdminPassword string
}

// ParseSeedAccounts decodes the bulk account JSON. Empty input is not an
// error; malformed input is, so the caller can log it once at startup and
// fall back to the bootstrap admin as a deliberate branch.
func ParseSeedAccounts(raw string) ([]SeedAccount, error) {
	if raw == "" {
		return nil, nil
	}
	var accounts []SeedAccount
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		return nil, fmt.Errorf("parse seed accounts: %w", err)
	}
	return accounts, nil
}
