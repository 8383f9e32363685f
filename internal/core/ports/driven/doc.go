// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them. Each external capability the assistant relies on —
// embedding, vector persistence, language-model inference, tabular
// analysis, text extraction — is a narrow contract here so tests can
// substitute deterministic fakes.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
