// Package domain contains the core data model for docent: documents,
// chunks, index snapshots, answers and the error taxonomy shared by all
// services and adapters.
package domain
