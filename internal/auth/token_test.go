package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer([]byte("0123456789abcdef"), time.Hour)

	token, err := issuer.Issue("session-1")
	require.NoError(t, err)

	id, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "session-1", id)
}

func TestTokenIssuer_Rejects(t *testing.T) {
	issuer := NewTokenIssuer([]byte("0123456789abcdef"), time.Hour)
	other := NewTokenIssuer([]byte("fedcba9876543210"), time.Hour)

	forged, err := other.Issue("session-1")
	require.NoError(t, err)

	now := time.Now()
	expiring := NewTokenIssuer([]byte("0123456789abcdef"), time.Minute)
	expiring.now = func() time.Time { return now }
	expired, err := expiring.Issue("session-1")
	require.NoError(t, err)
	expiring.now = func() time.Time { return now.Add(2 * time.Minute) }

	tests := []struct {
		name   string
		issuer *TokenIssuer
		token  string
	}{
		{name: "Garbage", issuer: issuer, token: "not-a-token"},
		{name: "Wrong secret", issuer: issuer, token: forged},
		{name: "Expired", issuer: expiring, token: expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.issuer.Parse(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
