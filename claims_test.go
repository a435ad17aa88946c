package appclient_test

import (
	"testing"
	"time"

	appclient "github.com/employedbar/go-appclient"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTokenRolePrecedence(t *testing.T) {
	tests := []struct {
		name     string
		claims   jwt.MapClaims
		expected []string
	}{
		{
			name: "roles array wins over everything",
			claims: jwt.MapClaims{
				"sub":   "manager@bar.local",
				"roles": []string{"ROLE_MANAGER", "ROLE_ADMIN"},
				"role":  "ROLE_CASHIER",
				"authorities": []map[string]string{
					{"authority": "ROLE_WAITER"},
				},
			},
			expected: []string{"ADMIN", "MANAGER"},
		},
		{
			name: "singular role claim",
			claims: jwt.MapClaims{
				"sub":  "cashier@bar.local",
				"role": "ROLE_CASHIER",
			},
			expected: []string{"CASHIER"},
		},
		{
			name: "authorities objects",
			claims: jwt.MapClaims{
				"sub": "waiter@bar.local",
				"authorities": []map[string]string{
					{"authority": "ROLE_WAITER"},
					{"authority": "ROLE_HOST"},
				},
			},
			expected: []string{"HOST", "WAITER"},
		},
		{
			name:     "no role claim degrades to empty set",
			claims:   jwt.MapClaims{"sub": "nobody@bar.local"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := appclient.DecodeToken(signToken(t, tt.claims))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, claims.Roles().List())
		})
	}
}

func TestDecodeTokenIsIdempotent(t *testing.T) {
	token := tokenWithRoles(t, "manager@bar.local", "ROLE_MANAGER")

	first, err := appclient.DecodeToken(token)
	require.NoError(t, err)
	second, err := appclient.DecodeToken(token)
	require.NoError(t, err)

	assert.Equal(t, first.Roles(), second.Roles())
	assert.Equal(t, first.Subject(), second.Subject())
}

func TestDecodeTokenMalformed(t *testing.T) {
	tests := []string{
		"not-a-token",
		"only.two",
		"",
		"a.%%%.c",
	}

	for _, raw := range tests {
		claims, err := appclient.DecodeToken(raw)
		assert.Nil(t, claims, raw)
		require.Error(t, err, raw)
		assert.True(t, appclient.IsTokenMalformedError(err), raw)
	}
}

func TestDecodeTokenOptionalFieldsDegrade(t *testing.T) {
	claims, err := appclient.DecodeToken(signToken(t, jwt.MapClaims{
		"sub": "ghost@bar.local",
	}))
	require.NoError(t, err)

	assert.Empty(t, claims.Roles())
	assert.True(t, claims.Expires().IsZero())
	assert.True(t, claims.Issued().IsZero())
	assert.Equal(t, "ghost@bar.local", claims.DisplayName())
}

func TestDecodeTokenDisplayFields(t *testing.T) {
	now := time.Now()
	claims, err := appclient.DecodeToken(signToken(t, jwt.MapClaims{
		"sub":       "maria@bar.local",
		"firstname": "Maria",
		"lastname":  "Gerente",
		"iat":       jwt.NewNumericDate(now),
		"exp":       jwt.NewNumericDate(now.Add(time.Hour)),
	}))
	require.NoError(t, err)

	assert.Equal(t, "Maria Gerente", claims.DisplayName())
	assert.WithinDuration(t, now.Add(time.Hour), claims.Expires(), time.Second)
	assert.WithinDuration(t, now, claims.Issued(), time.Second)
}
