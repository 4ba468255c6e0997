// Package oauth2 implements an OAuth 2.0 client-credentials authentication
// provider that shares the client's networking resources.
//
// During resource-aware initialization the flow looks up a shared dispatch
// loop, timer, and DNS resolver from the registry view it is given. Each is
// optional and looked up independently; absence of one never blocks use of
// another. The flow builds its outbound HTTP client lazily and rebuilds it
// only when the dispatch loop it was built with changes. Issuer metadata is
// resolved once during initialization; a retrieval failure aborts the
// provider's readiness and is not retried internally.
//
// The flow owns exactly one resource: the HTTP client it builds. Close
// releases that client and nothing else.
package oauth2
