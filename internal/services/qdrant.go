package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"

	"nextgen/interview-coach/internal/config"
)

// QdrantService stores and searches embedded reference chunks. Chunks are
// grouped by source document so a re-ingest can replace them as a set.
type QdrantService interface {
	InitCollection(ctx context.Context) error
	UpsertChunk(ctx context.Context, chunk ReferenceChunk, embedding []float32) error
	SearchSimilar(ctx context.Context, queryEmbedding []float32, docType string, limit int) ([]SearchResult, error)
	DeleteSource(ctx context.Context, source string) error
	Close() error
}

// ReferenceChunk is one embedded piece of an ingested reference document.
type ReferenceChunk struct {
	Source  string
	DocType string
	Index   int
	Text    string
}

// PointID is the stable qdrant id of a chunk.
func (c ReferenceChunk) PointID() uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("%s#%d", c.Source, c.Index)))
}

type SearchResult struct {
	Source  string
	Index   int
	Score   float32
	Text    string
	DocType string
}

type qdrantService struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
}

// embeddingSize matches the output dimension of text-embedding-004.
const embeddingSize = 768

func NewQdrantService(cfg config.QdrantConfig) (QdrantService, error) {
	// Parse URL to extract host, port, and TLS usage
	parsed, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// For gRPC client, use port 6334 by default (gRPC port)
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: cfg.APIKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &qdrantService{
		client:         client,
		collectionName: cfg.Collection,
		vectorSize:     embeddingSize,
	}, nil
}

// InitCollection implements QdrantService.
func (q *qdrantService) InitCollection(ctx context.Context) error {
	// Check if collection exists
	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		log.Printf("✅ Collection '%s' already exists", q.collectionName)
		return nil
	}

	// Create collection
	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})

	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created successfully\n", q.collectionName)
	return nil
}

// UpsertChunk implements QdrantService.
func (q *qdrantService) UpsertChunk(ctx context.Context, chunk ReferenceChunk, embedding []float32) error {
	point := &qdrant.PointStruct{
		Id:      qdrant.NewID(chunk.PointID().String()),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]any{
			"source":      chunk.Source,
			"doc_type":    chunk.DocType,
			"chunk_index": int64(chunk.Index),
			"text":        chunk.Text,
		}),
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert chunk %d of %s: %w", chunk.Index, chunk.Source, err)
	}

	return nil
}

// SearchSimilar implements QdrantService.
func (q *qdrantService) SearchSimilar(ctx context.Context, queryEmbedding []float32, docType string, limit int) ([]SearchResult, error) {
	var filter *qdrant.Filter
	if docType != "" {
		filter = &qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatch("doc_type", docType),
			},
		}
	}

	points, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Filter:         filter,
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search %s chunks: %w", docType, err)
	}

	results := make([]SearchResult, 0, len(points))
	for _, point := range points {
		results = append(results, SearchResult{
			Source:  point.Payload["source"].GetStringValue(),
			Index:   int(point.Payload["chunk_index"].GetIntegerValue()),
			Score:   point.Score,
			Text:    point.Payload["text"].GetStringValue(),
			DocType: point.Payload["doc_type"].GetStringValue(),
		})
	}

	return results, nil
}

// DeleteSource implements QdrantService. It removes every chunk ingested
// from source.
func (q *qdrantService) DeleteSource(ctx context.Context, source string) error {
	_, err := q.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: q.collectionName,
		Points: qdrant.NewPointsSelectorFilter(&qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatch("source", source),
			},
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to delete chunks of %s: %w", source, err)
	}

	return nil
}

func (q *qdrantService) Close() error {
	return q.client.Close()
}
