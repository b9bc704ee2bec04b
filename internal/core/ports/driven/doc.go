// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports): document loaders, embedding and LLM
// providers, snapshot persistence and prompt templates.
package driven
