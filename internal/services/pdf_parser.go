package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// DocumentParser extracts plain text from uploaded resumes and reference
// documents. PDFs are parsed page by page; .txt files are read as-is.
type DocumentParser interface {
	ExtractText(filePath string) (*DocumentContent, error)
}

type DocumentContent struct {
	Text      string
	PageCount int
	FilePath  string
}

type documentParser struct{}

func NewDocumentParser() DocumentParser {
	return &documentParser{}
}

func (p *documentParser) ExtractText(filePath string) (*DocumentContent, error) {
	// Check if file exists
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", filePath)
	}

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf":
		return p.extractPDF(filePath)
	case ".txt":
		return p.extractPlain(filePath)
	default:
		return nil, fmt.Errorf("unsupported document type %q: %w", filepath.Ext(filePath), ErrValidation)
	}
}

func (p *documentParser) extractPlain(filePath string) (*DocumentContent, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read text file: %w", err)
	}

	text := CleanText(string(raw))
	if text == "" {
		return nil, fmt.Errorf("no text content found in file: %w", ErrValidation)
	}

	return &DocumentContent{
		Text:      text,
		PageCount: 1,
		FilePath:  filePath,
	}, nil
}

func (p *documentParser) extractPDF(filePath string) (*DocumentContent, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Log error but continue with other pages
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no text content found in PDF: %w", ErrValidation)
	}

	return &DocumentContent{
		Text:      text,
		PageCount: totalPage,
		FilePath:  filePath,
	}, nil
}

// CleanText trims every line and drops blank ones.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
