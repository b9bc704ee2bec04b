package segment

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/docent-labs/docent-cli/internal/core/domain"
)

func TestNew(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		s := New()
		if s.ChunkSize() != DefaultChunkSize {
			t.Errorf("expected chunkSize %d, got %d", DefaultChunkSize, s.ChunkSize())
		}
		if s.Overlap() != DefaultOverlap {
			t.Errorf("expected overlap %d, got %d", DefaultOverlap, s.Overlap())
		}
	})

	t.Run("custom chunk size", func(t *testing.T) {
		s := New(WithChunkSize(500))
		if s.ChunkSize() != 500 {
			t.Errorf("expected chunkSize 500, got %d", s.ChunkSize())
		}
	})

	t.Run("overlap exceeds chunk size", func(t *testing.T) {
		s := New(WithChunkSize(100), WithOverlap(150))
		if s.Overlap() >= s.ChunkSize() {
			t.Error("overlap should be reduced when it exceeds chunk size")
		}
	})

	t.Run("zero values ignored", func(t *testing.T) {
		s := New(WithChunkSize(0), WithOverlap(-1))
		if s.ChunkSize() != DefaultChunkSize {
			t.Errorf("expected default chunkSize, got %d", s.ChunkSize())
		}
		if s.Overlap() != DefaultOverlap {
			t.Errorf("expected default overlap, got %d", s.Overlap())
		}
	})
}

func onePageDoc(text string) *domain.Document {
	return &domain.Document{
		Source: "/docs/report.txt",
		Pages:  []domain.Page{{Number: 1, Text: text}},
	}
}

func TestSegment_EmptyPage(t *testing.T) {
	s := New()

	for _, text := range []string{"", "   ", "\n\n\t \n"} {
		if chunks := s.Segment(onePageDoc(text)); len(chunks) != 0 {
			t.Errorf("text %q: expected 0 chunks, got %d", text, len(chunks))
		}
	}
}

func TestSegment_ExactChunkSize(t *testing.T) {
	// A page whose text is exactly chunkSize characters long produces
	// exactly one chunk containing the full text.
	s := New(WithChunkSize(100), WithOverlap(20))
	text := strings.Repeat("a", 99) + "b"

	chunks := s.Segment(onePageDoc(text))

	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Content != text {
		t.Errorf("chunk content differs from page text")
	}
}

func TestSegment_SlidingWindow(t *testing.T) {
	// 2500 characters of word-structured text with chunkSize=1000 and
	// overlap=200 must yield 3 chunks, each within the size limit, with
	// consecutive chunks sharing at least the configured overlap.
	s := New(WithChunkSize(1000), WithOverlap(200))
	text := strings.TrimSpace(strings.Repeat("lorem ipsum dolor sit amet ", 93))[:2500]

	chunks := s.Segment(onePageDoc(text))

	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if len(c.Content) > 1000 {
			t.Errorf("chunk %d exceeds size limit: %d chars", i, len(c.Content))
		}
		if c.Page != 1 {
			t.Errorf("chunk %d has page %d, want 1", i, c.Page)
		}
		if c.Ordinal != i {
			t.Errorf("chunk %d has ordinal %d", i, c.Ordinal)
		}
	}
	assertOverlap(t, chunks, 200)
}

// assertOverlap checks that each chunk's tail reappears at the head of
// the next chunk with at least `overlap` shared characters.
func assertOverlap(t *testing.T, chunks []domain.Chunk, overlap int) {
	t.Helper()
	for i := 0; i+1 < len(chunks); i++ {
		cur, next := chunks[i].Content, chunks[i+1].Content
		shared := 0
		max := len(cur)
		if len(next) < max {
			max = len(next)
		}
		for n := max; n >= overlap; n-- {
			if strings.HasSuffix(cur, next[:n]) {
				shared = n
				break
			}
		}
		if shared < overlap {
			t.Errorf("chunks %d and %d share %d chars, want >= %d", i, i+1, shared, overlap)
		}
	}
}

func TestSegment_Deterministic(t *testing.T) {
	s := New(WithChunkSize(300), WithOverlap(60))
	doc := &domain.Document{
		Source: "/docs/spec.md",
		Pages: []domain.Page{
			{Number: 1, Text: strings.Repeat("the quick brown fox jumps over the lazy dog. ", 40)},
			{Number: 2, Text: "short page"},
		},
	}

	first := s.Segment(doc)
	second := s.Segment(doc)

	if !reflect.DeepEqual(first, second) {
		t.Error("segmenting the same document twice produced different chunks")
	}
}

func TestSegment_PageBoundariesNotCrossed(t *testing.T) {
	s := New(WithChunkSize(100), WithOverlap(20))
	doc := &domain.Document{
		Source: "/docs/multi.txt",
		Pages: []domain.Page{
			{Number: 1, Text: strings.Repeat("one two three four five. ", 10)},
			{Number: 2, Text: strings.Repeat("six seven eight nine ten. ", 10)},
			{Number: 3, Text: "   "},
		},
	}

	chunks := s.Segment(doc)

	for _, c := range chunks {
		if c.Page == 3 {
			t.Error("whitespace-only page produced a chunk")
		}
		if c.Page == 1 && strings.Contains(c.Content, "six") {
			t.Error("chunk crossed a page boundary")
		}
	}
}

func TestSegment_PrefersParagraphBoundary(t *testing.T) {
	s := New(WithChunkSize(100), WithOverlap(40))
	para := strings.Repeat("x", 70)
	text := para + "\n\n" + strings.Repeat("y", 200)

	chunks := s.Segment(onePageDoc(text))

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	// The paragraph break sits within overlap distance of the 100-char
	// limit, so the first chunk must end on it instead of a hard cut.
	if !strings.HasSuffix(chunks[0].Content, "\n\n") {
		t.Errorf("first chunk should end at the paragraph break, got %q", chunks[0].Content)
	}
}

func TestSegment_HardCutWithoutBoundaries(t *testing.T) {
	s := New(WithChunkSize(50), WithOverlap(10))
	text := strings.Repeat("z", 120)

	chunks := s.Segment(onePageDoc(text))

	if len(chunks) < 3 {
		t.Fatalf("expected at least 3 chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if len(c.Content) > 50 {
			t.Errorf("chunk %d exceeds limit: %d", i, len(c.Content))
		}
	}
	assertOverlap(t, chunks, 10)
}

func TestSegment_OverlapLongerThanSpan(t *testing.T) {
	// An early paragraph break can end a chunk well before the size
	// limit, leaving a span shorter than the configured overlap. The
	// window must still advance instead of walking backwards.
	s := New(WithChunkSize(1000), WithOverlap(600))
	text := strings.Repeat("a", 400) + "\n\n" + strings.Repeat("b", 3000)

	chunks := s.Segment(onePageDoc(text))

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	if len(chunks) > 12 {
		t.Fatalf("expected a handful of chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if len(c.Content) > 1000 {
			t.Errorf("chunk %d exceeds limit: %d", i, len(c.Content))
		}
	}
	if !strings.HasPrefix(text, chunks[0].Content) {
		t.Error("first chunk should start the page")
	}
	if !strings.HasSuffix(text, chunks[len(chunks)-1].Content) {
		t.Error("last chunk should end the page")
	}
}

func TestSegment_MultiByteRunes(t *testing.T) {
	s := New(WithChunkSize(100), WithOverlap(20))
	text := strings.Repeat("語", 200)

	chunks := s.Segment(onePageDoc(text))

	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if !utf8.ValidString(c.Content) {
			t.Errorf("chunk %d is not valid UTF-8: %q", i, c.Content)
		}
		if n := utf8.RuneCountInString(c.Content); n > 100 {
			t.Errorf("chunk %d has %d characters, limit is 100", i, n)
		}
	}
	// Hard cuts land on character boundaries, so the three windows
	// cover 100, 100 and the remaining 40 characters.
	want := []int{100, 100, 40}
	for i, c := range chunks {
		if n := utf8.RuneCountInString(c.Content); n != want[i] {
			t.Errorf("chunk %d: expected %d characters, got %d", i, want[i], n)
		}
	}
}

func TestSegment_StableChunkIDs(t *testing.T) {
	s := New(WithChunkSize(80), WithOverlap(16))
	doc := onePageDoc(strings.Repeat("alpha beta gamma delta. ", 20))

	first := s.Segment(doc)
	second := s.Segment(doc)

	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("chunk %d: ID changed between runs", i)
		}
		if first[i].ID == "" {
			t.Errorf("chunk %d: empty ID", i)
		}
	}
}

func TestSegment_NoEmptyChunks(t *testing.T) {
	s := New(WithChunkSize(40), WithOverlap(8))
	text := "word " + strings.Repeat(" ", 60) + " tail"

	for _, c := range s.Segment(onePageDoc(text)) {
		if strings.TrimSpace(c.Content) == "" {
			t.Error("produced a whitespace-only chunk")
		}
	}
}
