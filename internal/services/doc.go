// Package services defines shared utilities consumed by subspy commands and
// their external integrations.
//
// Key responsibilities:
//   - Context helpers that stamp the run identifier and command name for
//     logging.
//   - Structured error markers plus the Wrap helper, with Hint turning a
//     marker into the next step printed by the CLI.
//
// Clients for remote services (the LLM chat API) live in subpackages.
package services
