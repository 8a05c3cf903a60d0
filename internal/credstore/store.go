// Package credstore persists session credentials for the ptladmin CLI.
// It manages the four independently-keyed session values (access token,
// refresh token, serialized user profile, expiry timestamp) in the OS
// keychain, with an in-memory implementation for tests.
//
// The four values are not transactionally consistent with each other;
// callers must tolerate any subset being present, absent or corrupt.
package credstore

// Keys under which session values are stored.
const (
	KeyToken        = "auth_token"
	KeyRefreshToken = "refresh_token"
	KeyUser         = "auth_user"
	KeyTokenExpiry  = "token_expiry"
)

// SessionKeys lists every key owned by the session manager, in the order
// they are cleared on logout.
var SessionKeys = []string{KeyToken, KeyRefreshToken, KeyUser, KeyTokenExpiry}

// Store is a mutable string key-value namespace. A missing key reads as
// empty with no error; Remove of a missing key is a no-op.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}
