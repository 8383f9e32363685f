// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters): ingestion, question answering,
// tabular analysis, store inspection, and the assistant session loop.
package services
