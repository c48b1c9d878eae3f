// Package services wraps the catalog backend's REST endpoints in thin typed
// clients: accounts, collections, video games, and the IGDB search proxy.
//
// # Authentication
//
// Protected endpoints receive the bearer token through an [oauth2.Transport]
// built from a static token source, so every request carries
// "Authorization: Bearer <token>" without the wrappers touching headers.
//
// # Error Handling
//
// Wrappers map failures onto typed errors from the shared package:
//   - [shared.ErrNotAuthorized] : 401 response, the session should be treated as invalid
//   - [shared.ErrAPIRequest] : any other non-2xx response or transport-level failure
//   - [shared.ErrInvalidInput] : client-side validation rejected the payload before any network call
//
// Callers translate these into user-facing messages; nothing is retried and
// no timeouts are applied beyond the provided context.
//
// # Search Proxy
//
// [SearchService] fronts a rate-limited third-party metadata API, so calls
// pass through an [x/time/rate] limiter before leaving the client.
package services
