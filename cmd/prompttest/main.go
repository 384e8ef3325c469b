package main

// Exercise one document generation against the configured AI gateway:
//   go run ./cmd/prompttest -category compliance -name "Acme Foods" -industry Food

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"companion-backend/internal/docs"
	"companion-backend/internal/llm"
	openai "companion-backend/internal/llm/openai"
	"companion-backend/internal/profile"
	"companion-backend/internal/shared/config"
)

func main() {
	cfg := config.Load()

	category := flag.String("category", docs.CategoryRegistration, "document category")
	name := flag.String("name", "", "business name")
	description := flag.String("description", "", "business description")
	industry := flag.String("industry", "", "business industry")
	location := flag.String("location", "", "business location")
	brandStyle := flag.String("brand-style", "", "brand look and feel")
	model := flag.String("model", cfg.LLMModel, "LLM model")
	outPath := flag.String("out", "", "path to write the full content (optional)")
	flag.Parse()

	cat, ok := docs.CategoryByKey(*category)
	if !ok {
		exitErr(fmt.Sprintf("unknown category %q (one of %s)", *category, strings.Join(docs.CategoryKeys(), ", ")))
	}

	prompt, _ := llm.CategoryPrompt(cat.Key)
	p := profile.BusinessProfile{
		BusinessName: *name,
		Description:  *description,
		Industry:     *industry,
		Location:     *location,
		BrandStyle:   *brandStyle,
	}

	client := openai.NewClient(cfg.AIGatewayURL, cfg.AIAPIKey, *model)
	content, err := client.Complete(context.Background(), llm.CompletionInput{
		SystemPrompt: prompt,
		UserPrompt:   profile.ContextBlock(p),
		Temperature:  0.7,
		MaxTokens:    3000,
	})
	if err != nil {
		exitErr(fmt.Sprintf("completion failed: %v", err))
	}

	points := docs.ExtractKeyPoints(cat, content)
	fmt.Printf("category: %s\ntitle: %s\ncontent: %d chars\n", cat.Key, cat.Title, len(content))
	for i, point := range points {
		fmt.Printf("  %d. %s\n", i+1, point)
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, []byte(content), 0o644); err != nil {
			exitErr(fmt.Sprintf("write output: %v", err))
		}
		fmt.Printf("wrote %s\n", *outPath)
	}
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
