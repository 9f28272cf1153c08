package services

import (
	"context"
	"log"
)

// Knowledge base document types written by the ingest script.
const (
	DocTypeQuestionBank   = "question_bank"
	DocTypeInterviewGuide = "interview_guide"
	DocTypeRoleProfile    = "role_profile"
)

// KnowledgeBase looks up reference material to ground prompts.
type KnowledgeBase interface {
	Retrieve(ctx context.Context, query string, docTypes []string) string
}

type knowledgeBase struct {
	gemini GeminiService
	qdrant QdrantService
	limit  int
}

// NewKnowledgeBase returns a retriever over qdrant, or one that always finds
// nothing when qdrant is nil.
func NewKnowledgeBase(gemini GeminiService, qdrant QdrantService) KnowledgeBase {
	if qdrant == nil {
		return noKnowledge{}
	}
	return &knowledgeBase{gemini: gemini, qdrant: qdrant, limit: 3}
}

// Retrieve returns formatted matches or "". Failures are logged and ignored.
func (k *knowledgeBase) Retrieve(ctx context.Context, query string, docTypes []string) string {
	embedding, err := k.gemini.GenerateEmbedding(ctx, query)
	if err != nil {
		log.Printf("⚠️  Failed to embed knowledge query: %v", err)
		return ""
	}

	var all []SearchResult
	for _, docType := range docTypes {
		results, err := k.qdrant.SearchSimilar(ctx, embedding, docType, k.limit)
		if err != nil {
			log.Printf("⚠️  Failed to search for %s: %v", docType, err)
			continue
		}
		all = append(all, results...)
	}

	return FormatRAGContext(all)
}

type noKnowledge struct{}

func (noKnowledge) Retrieve(context.Context, string, []string) string { return "" }
