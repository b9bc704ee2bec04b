package domain

// Page is a single page of extracted document text.
type Page struct {
	// Number is the 1-based page number within the document.
	Number int

	// Text is the raw extracted text of the page.
	Text string
}

// Document is the loader output for one source file.
// It is never mutated after loading; the ingestion pipeline owns it for
// the duration of a single run.
type Document struct {
	// Source is the originating file path. Its basename identifies the
	// document in citations.
	Source string

	// Pages holds the extracted pages in document order.
	Pages []Page
}

// Chunk is a bounded, page-scoped span of document text. It is the unit
// of retrieval and is immutable once created by the segmenter.
type Chunk struct {
	// ID is a deterministic identifier derived from source, page and
	// ordinal, so re-segmenting the same input yields the same IDs.
	ID string

	// Source is the originating file path.
	Source string

	// Page is the 1-based page number the chunk was cut from. Chunks
	// never cross page boundaries.
	Page int

	// Ordinal is the position of the chunk within its document.
	Ordinal int

	// Content is the chunk text. Never empty.
	Content string
}
