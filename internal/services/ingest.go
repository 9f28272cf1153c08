package services

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// ReferenceDocument is a file loaded into the knowledge base.
type ReferenceDocument struct {
	Path    string
	DocType string
	Name    string
}

// Source groups a document's chunks in the vector store, e.g.
// "question_bank/technical_question_bank".
func (d ReferenceDocument) Source() string {
	return d.DocType + "/" + strings.ToLower(strings.Join(strings.Fields(d.Name), "_"))
}

type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

type ChunkStore interface {
	UpsertChunk(ctx context.Context, chunk ReferenceChunk, embedding []float32) error
	DeleteSource(ctx context.Context, source string) error
}

type ReferenceIngester struct {
	parser   DocumentParser
	chunker  ReferenceChunker
	embedder Embedder
	store    ChunkStore
}

func NewReferenceIngester(parser DocumentParser, chunker ReferenceChunker, embedder Embedder, store ChunkStore) *ReferenceIngester {
	return &ReferenceIngester{
		parser:   parser,
		chunker:  chunker,
		embedder: embedder,
		store:    store,
	}
}

// Ingest embeds every chunk of doc, then replaces whatever was stored for its
// source. Stored chunks are left alone when extraction or embedding fails.
func (ri *ReferenceIngester) Ingest(ctx context.Context, doc ReferenceDocument) (int, error) {
	content, err := ri.parser.ExtractText(doc.Path)
	if err != nil {
		return 0, fmt.Errorf("failed to extract %s: %w", doc.Name, err)
	}

	texts := ri.chunker.Chunk(doc.DocType, content.Text)
	log.Printf("   ✂️  %d pages, %d characters, %d chunks", content.PageCount, len(content.Text), len(texts))

	source := doc.Source()
	chunks := make([]ReferenceChunk, len(texts))
	embeddings := make([][]float32, len(texts))
	for i, text := range texts {
		embedding, err := ri.embedder.GenerateEmbedding(ctx, text)
		if err != nil {
			return 0, fmt.Errorf("failed to embed chunk %d of %s: %w", i, source, err)
		}
		chunks[i] = ReferenceChunk{Source: source, DocType: doc.DocType, Index: i, Text: text}
		embeddings[i] = embedding
	}

	if err := ri.store.DeleteSource(ctx, source); err != nil {
		return 0, err
	}

	for i, chunk := range chunks {
		if err := ri.store.UpsertChunk(ctx, chunk, embeddings[i]); err != nil {
			return i, err
		}
		if (i+1)%5 == 0 || i == len(chunks)-1 {
			log.Printf("   📊 Progress: %d/%d chunks stored", i+1, len(chunks))
		}
	}

	return len(chunks), nil
}
