package appclient_test

import (
	"sync"
	"testing"
	"time"

	appclient "github.com/employedbar/go-appclient"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSigningKey = []byte("test-signing-key")

func testConfig() *appclient.SimpleConfig {
	return &appclient.SimpleConfig{}
}

// recordingNavigator captures redirect pushes.
type recordingNavigator struct {
	mu    sync.Mutex
	paths []string
}

func (n *recordingNavigator) Push(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.paths = append(n.paths, path)
}

func (n *recordingNavigator) Paths() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.paths...)
}

// recordingNotifier captures user-visible notices.
type recordingNotifier struct {
	mu      sync.Mutex
	notices []appclient.Notice
}

func (n *recordingNotifier) Notify(notice appclient.Notice) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice)
}

func (n *recordingNotifier) Notices() []appclient.Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]appclient.Notice(nil), n.notices...)
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSigningKey)
	require.NoError(t, err)
	return token
}

func tokenWithRoles(t *testing.T, subject string, roles ...string) string {
	t.Helper()
	now := time.Now()
	return signToken(t, jwt.MapClaims{
		"sub":   subject,
		"roles": roles,
		"iat":   jwt.NewNumericDate(now),
		"exp":   jwt.NewNumericDate(now.Add(time.Hour)),
	})
}
