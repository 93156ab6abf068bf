package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		authHeader string
		queryToken string
		want       string
	}{
		{name: "bearer header", authHeader: "Bearer abc123", want: "abc123"},
		{name: "lowercase prefix", authHeader: "bearer abc123", want: "abc123"},
		{name: "uppercase prefix", authHeader: "BEARER abc123", want: "abc123"},
		{name: "padded token trimmed", authHeader: "Bearer   abc123  ", want: "abc123"},
		{name: "query fallback", queryToken: "qtok", want: "qtok"},
		{name: "non-bearer header falls back to query", authHeader: "Basic dXNlcg==", queryToken: "qtok", want: "qtok"},
		{name: "header wins over query", authHeader: "Bearer htok", queryToken: "qtok", want: "htok"},
		{name: "nothing provided", want: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ExtractToken(tc.authHeader, tc.queryToken))
		})
	}
}
