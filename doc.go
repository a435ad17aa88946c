// Package appclient implements the client-side session core for the staff
// management app: token custody, claims decoding, role-gated navigation,
// and the HTTP gateway that keeps all three consistent.
//
// Identity flow:
//   - TokenStore holds the single durable fact, the opaque token. It is
//     written by SessionStore.Login/Logout and cleared by the
//     RequestGateway on a 401; nothing else may write it.
//   - SessionResolver derives the Session (authenticated flag, claims,
//     role set) from the store on every read. Claims are never persisted,
//     so they cannot drift from the token.
//   - NavigationGuard evaluates a RouteRequirement against the current
//     Session before every transition and yields allow, redirect, or deny.
//   - RequestGateway attaches the bearer credential to outbound calls and
//     coalesces concurrent 401 responses into a single logout + redirect.
//
// Store backends cover in-memory use, a SQLite table via Bun (the durable
// default, surviving restarts the way browser storage survives reloads),
// and Redis for clients that already carry a Redis connection.
package appclient
