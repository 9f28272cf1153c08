package main

import (
	"context"
	"log"
	"os"
	"strings"

	"nextgen/interview-coach/internal/config"
	"nextgen/interview-coach/internal/services"
)

func main() {
	log.Println("🚀 Starting document ingestion...")

	// Load configuration
	cfg := config.Load()

	if cfg.Gemini.APIKey == "" || !cfg.Qdrant.Enabled() {
		log.Fatalf("❌ GEMINI_API_KEY and QDRANT_URL are required for ingestion")
	}

	ctx := context.Background()

	// Initialize services
	geminiService, err := services.NewGeminiService(cfg.Gemini)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	qdrantService, err := services.NewQdrantService(cfg.Qdrant)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}
	defer qdrantService.Close()

	if err := qdrantService.InitCollection(ctx); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	ingester := services.NewReferenceIngester(
		services.NewDocumentParser(),
		services.NewReferenceChunker(1000, 200),
		geminiService,
		qdrantService,
	)

	documents := []services.ReferenceDocument{
		{
			Path:    "./reference_docs/technical_question_bank.pdf",
			DocType: services.DocTypeQuestionBank,
			Name:    "Technical Question Bank",
		},
		{
			Path:    "./reference_docs/behavioral_question_bank.pdf",
			DocType: services.DocTypeQuestionBank,
			Name:    "Behavioral Question Bank",
		},
		{
			Path:    "./reference_docs/interview_guide.pdf",
			DocType: services.DocTypeInterviewGuide,
			Name:    "Interviewing Guide",
		},
		{
			Path:    "./reference_docs/role_profiles.txt",
			DocType: services.DocTypeRoleProfile,
			Name:    "Role Profiles",
		},
	}

	successCount := 0
	failCount := 0

	for _, doc := range documents {
		log.Printf("\n📄 Processing: %s", doc.Name)
		log.Printf("   Path: %s", doc.Path)
		log.Printf("   Source: %s", doc.Source())

		if _, err := os.Stat(doc.Path); os.IsNotExist(err) {
			log.Printf("   ⚠️  File not found, skipping...")
			failCount++
			continue
		}

		stored, err := ingester.Ingest(ctx, doc)
		if err != nil {
			log.Printf("   ❌ Failed to ingest: %v", err)
			failCount++
			continue
		}

		log.Printf("   ✅ Successfully ingested %s (%d chunks)", doc.Name, stored)
		successCount++
	}

	// Summary
	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Ingestion Summary:")
	log.Printf("   ✅ Successful: %d documents", successCount)
	log.Printf("   ❌ Failed: %d documents", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		log.Println("⚠️  Some documents failed to ingest. Please check the logs above.")
		os.Exit(1)
	}

	log.Println("✅ All documents ingested successfully!")
}
