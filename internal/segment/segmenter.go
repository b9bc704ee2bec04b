// Package segment splits page-structured documents into overlapping
// chunks. Segmentation is deterministic: identical input text and
// parameters always yield an identical chunk sequence.
package segment

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/docent-labs/docent-cli/internal/core/domain"
)

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = domain.DefaultChunkSize

// DefaultOverlap is the default number of overlapping characters.
const DefaultOverlap = domain.DefaultChunkOverlap

// Segmenter cuts each page of a document into a sliding window of
// chunks. Page boundaries are never crossed, so every chunk keeps its
// page attribution.
type Segmenter struct {
	chunkSize int
	overlap   int
}

// Option configures the segmenter.
type Option func(*Segmenter)

// WithChunkSize sets the maximum chunk size in characters.
func WithChunkSize(size int) Option {
	return func(s *Segmenter) {
		if size > 0 {
			s.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between consecutive chunks in characters.
func WithOverlap(overlap int) Option {
	return func(s *Segmenter) {
		if overlap >= 0 {
			s.overlap = overlap
		}
	}
}

// New creates a segmenter with the given options.
func New(opts ...Option) *Segmenter {
	s := &Segmenter{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultOverlap,
	}

	for _, opt := range opts {
		opt(s)
	}

	// The sliding window requires overlap < chunkSize to advance.
	if s.overlap >= s.chunkSize {
		s.overlap = s.chunkSize / 4
	}

	return s
}

// ChunkSize returns the configured maximum chunk size.
func (s *Segmenter) ChunkSize() int { return s.chunkSize }

// Overlap returns the configured overlap.
func (s *Segmenter) Overlap() int { return s.overlap }

// Segment splits every page of doc into chunks. Empty or
// whitespace-only pages yield no chunks; whitespace-only spans are
// dropped so no chunk is ever empty.
func (s *Segmenter) Segment(doc *domain.Document) []domain.Chunk {
	var chunks []domain.Chunk
	ordinal := 0

	for _, page := range doc.Pages {
		for _, span := range s.splitPage(page.Text) {
			if strings.TrimSpace(span) == "" {
				continue
			}
			chunks = append(chunks, domain.Chunk{
				ID:      chunkID(doc.Source, page.Number, ordinal),
				Source:  doc.Source,
				Page:    page.Number,
				Ordinal: ordinal,
				Content: span,
			})
			ordinal++
		}
	}

	return chunks
}

// chunkID derives a stable identifier from the chunk coordinates, so
// re-segmenting the same input yields the same IDs.
func chunkID(source string, page, ordinal int) string {
	name := fmt.Sprintf("%s#page=%d&seq=%d", source, page, ordinal)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}

// splitPage produces the sliding window of spans for one page. The last
// span may be shorter than chunkSize; all others end at a preferred
// boundary when one exists within overlap distance of the size limit.
// All offsets are in runes, so a hard cut never splits a multi-byte
// character.
func (s *Segmenter) splitPage(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	runes := []rune(text)
	n := len(runes)
	var spans []string
	start := 0

	for {
		end := start + s.chunkSize
		if end >= n {
			spans = append(spans, string(runes[start:n]))
			break
		}

		end = s.cutPoint(runes, start, end)
		spans = append(spans, string(runes[start:end]))

		// Nominal next start keeps exactly `overlap` shared characters;
		// snapping back to a boundary can only grow the shared span.
		// A span shorter than the overlap has nothing to share, so the
		// window continues from the cut.
		next := end - s.overlap
		if next <= start {
			next = end
		}
		next = s.snapToBoundary(runes, start, next)
		start = next
	}

	return spans
}

// cutPoint finds the best end position for a chunk starting at start
// with a hard limit at limit. Boundaries are preferred in order:
// paragraph break, line break, sentence end, word break. Only
// boundaries within overlap distance of the limit are considered; when
// none exists the cut is a hard one at the limit.
func (s *Segmenter) cutPoint(runes []rune, start, limit int) int {
	lo := limit - s.overlap
	if lo <= start {
		lo = start + 1
	}
	window := string(runes[lo:limit])

	if i := strings.LastIndex(window, "\n\n"); i >= 0 {
		return lo + runeOffset(window, i) + 2
	}
	if i := strings.LastIndexByte(window, '\n'); i >= 0 {
		return lo + runeOffset(window, i) + 1
	}
	for _, end := range []string{". ", "! ", "? "} {
		if i := strings.LastIndex(window, end); i >= 0 {
			return lo + runeOffset(window, i) + len(end)
		}
	}
	if i := strings.LastIndexByte(window, ' '); i >= 0 {
		return lo + runeOffset(window, i) + 1
	}

	return limit
}

// snapToBoundary moves a chunk start position back to just after the
// latest whitespace boundary within overlap distance, so the next
// window begins on a word where possible. The result always stays
// strictly after prev to guarantee the window advances.
func (s *Segmenter) snapToBoundary(runes []rune, prev, pos int) int {
	if pos <= prev {
		return prev + 1
	}
	lo := pos - s.overlap
	if lo <= prev {
		lo = prev + 1
	}
	if pos <= lo {
		return pos
	}
	window := string(runes[lo:pos])

	if i := strings.LastIndex(window, "\n\n"); i >= 0 {
		return lo + runeOffset(window, i) + 2
	}
	if i := strings.LastIndexAny(window, "\n "); i >= 0 {
		return lo + runeOffset(window, i) + 1
	}

	return pos
}

// runeOffset converts a byte offset inside window to a rune offset.
// Boundary markers are ASCII, so the offset always lands on a rune start.
func runeOffset(window string, byteOff int) int {
	return utf8.RuneCountInString(window[:byteOff])
}
