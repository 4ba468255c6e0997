// Package auth defines the authentication provider contract for the Pulsar
// client and a factory registry of named provider implementations.
//
// Providers go through a two-phase initialization protocol. Every provider
// implements the resource-agnostic Start. Providers that can take advantage
// of shared client resources additionally implement ResourceAware; the
// Start dispatch helper routes initialization accordingly, so providers
// written before resource sharing existed keep working unchanged:
//
//	provider, _ := auth.Create("oauth2", params)
//	if err := auth.Start(provider, reg.View()); err != nil {
//	    // initialization failure aborts client construction
//	}
package auth
