package domain

// NoInformationAnswer is returned when retrieval finds nothing relevant.
// The language model is not invoked in that case.
const NoInformationAnswer = "I could not find relevant information in the uploaded documents."

// Answer is the final response to a question: the normalised model
// output plus an ordered, de-duplicated list of source citations.
type Answer struct {
	Text    string   `json:"answer"`
	Sources []string `json:"sources"`
}

// IngestReport summarises one ingestion run. Per-file failures are
// recorded in FailedFiles; their presence does not make the run an error
// as long as at least one file produced chunks.
type IngestReport struct {
	IndexedCount int      `json:"indexed_count"`
	ChunkCount   int      `json:"chunk_count"`
	FailedFiles  []string `json:"failed_files"`
}

// ResetReport summarises a knowledge-base reset.
type ResetReport struct {
	FilesDeleted int `json:"files_deleted"`
}
