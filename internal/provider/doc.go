// Package provider holds the closed set of LLM backends a user can attach a
// credential to, and the Registry that builds, caches, and talks to live
// backend clients.
//
// A Provider pairs a display name with a constructor. The Registry never
// retries: a failed construction surfaces as *ConstructionError and a failed
// call as *TransportError, both carrying the provider name.
package provider
