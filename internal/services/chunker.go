package services

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// "12. ", "3) " and "Q4: " open a new question in a question bank.
	questionStart = regexp.MustCompile(`^(?:Q\s*)?\d{1,3}[.):]\s+\S`)
	// "# Backend Engineer" and "Role: Data Scientist" open a new role profile.
	profileStart = regexp.MustCompile(`^(?:#{1,3}\s+\S|Role:\s*\S)`)
	sentenceEnd  = regexp.MustCompile(`[.!?]+\s+`)
)

// ReferenceChunker splits interview reference material into pieces small
// enough to embed. A numbered question and its notes never span two chunks,
// neither does a role profile. Guides are packed by paragraph with overlap.
type ReferenceChunker interface {
	Chunk(docType, text string) []string
}

type referenceChunker struct {
	maxRunes int
	overlap  int
}

func NewReferenceChunker(maxRunes, overlap int) ReferenceChunker {
	if maxRunes <= 0 {
		maxRunes = 1000
	}
	if overlap < 0 || overlap >= maxRunes/2 {
		overlap = maxRunes / 4
	}
	return &referenceChunker{maxRunes: maxRunes, overlap: overlap}
}

func (rc *referenceChunker) Chunk(docType, text string) []string {
	switch docType {
	case DocTypeQuestionBank:
		return rc.pack(splitAtMarkers(text, questionStart), 0)
	case DocTypeRoleProfile:
		return rc.pack(splitAtMarkers(text, profileStart), 0)
	default:
		return rc.pack(paragraphs(text), rc.overlap)
	}
}

// pack joins blocks greedily up to maxRunes. With overlap > 0 each chunk
// after the first starts with the tail of the one before it.
func (rc *referenceChunker) pack(blocks []string, overlap int) []string {
	limit := rc.maxRunes
	if overlap > 0 {
		limit -= overlap + 1
	}

	var chunks, parts []string
	carry := ""
	size := 0

	flush := func() {
		if len(parts) == 0 {
			return
		}
		chunk := strings.Join(parts, "\n")
		if carry != "" {
			chunk = carry + "\n" + chunk
		}
		chunks = append(chunks, chunk)
		carry = tailWords(chunk, overlap)
		parts, size = nil, 0
	}

	for _, block := range blocks {
		for _, piece := range splitLong(block, limit) {
			n := utf8.RuneCountInString(piece)
			if len(parts) > 0 && size+1+n > limit {
				flush()
			}
			if len(parts) > 0 {
				size++
			}
			parts = append(parts, piece)
			size += n
		}
	}
	flush()

	return chunks
}

// splitAtMarkers starts a new block at every line matching marker. Text with
// no marker at all is split into paragraphs instead.
func splitAtMarkers(text string, marker *regexp.Regexp) []string {
	var blocks, current []string
	matched := false

	flush := func() {
		if block := strings.TrimSpace(strings.Join(current, "\n")); block != "" {
			blocks = append(blocks, block)
		}
		current = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if marker.MatchString(strings.TrimSpace(line)) {
			matched = true
			flush()
		}
		current = append(current, line)
	}
	flush()

	if !matched {
		return paragraphs(text)
	}
	return blocks
}

// paragraphs splits on blank lines, or on single newlines when the text has
// none (CleanText drops blank lines).
func paragraphs(text string) []string {
	sep := "\n\n"
	if !strings.Contains(text, sep) {
		sep = "\n"
	}

	var out []string
	for _, p := range strings.Split(text, sep) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// splitLong breaks a block longer than limit at sentence ends, and a
// single sentence longer than limit at rune boundaries.
func splitLong(block string, limit int) []string {
	if utf8.RuneCountInString(block) <= limit {
		return []string{block}
	}

	var pieces []string
	current := ""
	add := func(s string) {
		switch {
		case current == "":
			current = s
		case utf8.RuneCountInString(current)+1+utf8.RuneCountInString(s) <= limit:
			current += " " + s
		default:
			pieces = append(pieces, current)
			current = s
		}
	}

	for _, sentence := range sentences(block) {
		for utf8.RuneCountInString(sentence) > limit {
			r := []rune(sentence)
			add(string(r[:limit]))
			sentence = string(r[limit:])
		}
		add(sentence)
	}
	if current != "" {
		pieces = append(pieces, current)
	}
	return pieces
}

func sentences(text string) []string {
	var out []string
	start := 0
	for _, loc := range sentenceEnd.FindAllStringIndex(text, -1) {
		if s := strings.TrimSpace(text[start:loc[1]]); s != "" {
			out = append(out, s)
		}
		start = loc[1]
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		out = append(out, s)
	}
	return out
}

// tailWords returns at most n trailing runes of text, starting on a word.
func tailWords(text string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(text)
	if len(r) <= n {
		return text
	}
	tail := string(r[len(r)-n:])
	if i := strings.IndexAny(tail, " \n"); i >= 0 {
		tail = tail[i+1:]
	}
	return strings.TrimSpace(tail)
}
