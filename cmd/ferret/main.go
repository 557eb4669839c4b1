// Command ferret runs one deep-research query from the terminal and prints
// the final answer and its sources. It reads the same environment variables
// as ferretd (a .env file is honored).
//
// Usage:
//
//	ferret "What is the capital of France?"
//
// With no arguments the query is read from stdin.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/spetersoncode/ferret"
	"github.com/spetersoncode/ferret/provider/anthropic"
	"github.com/spetersoncode/ferret/provider/google"
	"github.com/spetersoncode/ferret/provider/openai"
	"github.com/spetersoncode/ferret/search"
	"github.com/spetersoncode/ferret/workflow"
)

func main() {
	godotenv.Load()

	query := strings.TrimSpace(strings.Join(os.Args[1:], " "))
	if query == "" {
		fmt.Print("Enter your query: ")
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			query = strings.TrimSpace(scanner.Text())
		}
	}
	if query == "" {
		log.Fatal("a non-empty query is required")
	}

	completer, err := createCompleter()
	if err != nil {
		log.Fatalf("Failed to create completer: %v", err)
	}

	tavilyKey := os.Getenv("TAVILY_API_KEY")
	if tavilyKey == "" {
		log.Fatal("TAVILY_API_KEY is required")
	}

	pipeline := workflow.NewPipeline(completer, search.NewTavily(tavilyKey))

	result, err := pipeline.Run(context.Background(), query)
	if err != nil {
		log.Fatalf("Research failed: %v", err)
	}

	fmt.Println("FINAL ANSWER")
	fmt.Println(result.FinalAnswer)
	fmt.Println()
	fmt.Println("SOURCES")
	for i, source := range result.Sources {
		fmt.Printf("%d. %s\n", i+1, source.URL)
	}
}

func createCompleter() (ferret.Completer, error) {
	provider := os.Getenv("FERRET_PROVIDER")
	if provider == "" {
		provider = "anthropic"
	}
	model := os.Getenv("FERRET_MODEL")

	switch provider {
	case "anthropic":
		var opts []anthropic.ClientOption
		if model != "" {
			opts = append(opts, anthropic.WithModel(model))
		}
		return anthropic.New(os.Getenv("ANTHROPIC_API_KEY"), opts...), nil
	case "openai":
		var opts []openai.ClientOption
		if model != "" {
			opts = append(opts, openai.WithModel(model))
		}
		return openai.New(os.Getenv("OPENAI_API_KEY"), opts...), nil
	case "google":
		var opts []google.ClientOption
		if model != "" {
			opts = append(opts, google.WithModel(model))
		}
		return google.New(context.Background(), os.Getenv("GOOGLE_API_KEY"), opts...)
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}
