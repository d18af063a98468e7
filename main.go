package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/duynguyendang/gitguide/internal/session"
	"github.com/duynguyendang/gitguide/pkg/assist"
	"github.com/duynguyendang/gitguide/pkg/cache"
	"github.com/duynguyendang/gitguide/pkg/github"
	"github.com/duynguyendang/gitguide/pkg/mcp"
	"github.com/duynguyendang/gitguide/pkg/server"
	"github.com/duynguyendang/gitguide/pkg/service/ai"
)

func main() {
	addr := flag.String("addr", ":8000", "address for the REST API server")
	mcpMode := flag.Bool("mcp", false, "serve over MCP stdio instead of HTTP")
	promptPath := flag.String("prompt", "prompts/answer.prompt", "path to the answer prompt file")
	flag.Parse()

	_ = godotenv.Load()

	ctx := context.Background()

	aiSvc, err := ai.NewGeminiService(ctx, "")
	if err != nil {
		log.Fatalf("Failed to initialize Gemini: %v", err)
	}
	defer aiSvc.Close()

	gh := github.NewClient(os.Getenv("GITHUB_TOKEN"))
	repos := github.NewRepoSearcher(gh, cache.New[[]github.RepoSummary](cache.DefaultCapacity, cache.DefaultTTL))
	issues := github.NewIssueSearcher(gh, cache.New[[]github.IssueSummary](cache.DefaultCapacity, cache.DefaultTTL))
	guides := github.NewGuideFetcher(gh, cache.New[string](cache.DefaultCapacity, cache.DefaultTTL))

	sessions := session.NewManager(aiSvc)
	assembler := assist.NewAssembler(repos, issues, guides)
	responder := assist.NewResponder(assembler, aiSvc, *promptPath)

	if *mcpMode {
		if err := mcp.Run(ctx, sessions, responder); err != nil {
			log.Fatalf("MCP server error: %v", err)
		}
		return
	}

	srv := server.NewServer(sessions, responder)
	log.Printf("GitGuide listening on %s", *addr)
	if err := srv.Run(*addr); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
