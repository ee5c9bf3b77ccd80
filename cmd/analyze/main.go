// Command analyze scores a contract file from the command line and
// prints the risk report as JSON. Useful for batch runs and for
// inspecting the battery without standing up the API.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/avsouza/leaseguard/internal/config"
	"github.com/avsouza/leaseguard/internal/engine"
	"github.com/avsouza/leaseguard/internal/extract"
	"github.com/avsouza/leaseguard/internal/llm"
)

func main() {
	withAI := flag.Bool("ai", false, "also request the Gemini legal narrative")
	timeout := flag.Duration("timeout", 3*time.Minute, "overall timeout for the narrative call")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <contrato.pdf|contrato.docx|->\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	text, err := readContract(flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to read contract: %v", err)
	}

	report := engine.ScoreDocument(text)

	out := struct {
		engine.Report
		Narrative string `json:"analise_ia,omitempty"`
	}{Report: report}

	if *withAI {
		cfg, err := config.Load()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		client := llm.NewClient(cfg.App.LLM.Endpoint, cfg.App.LLM.Model, cfg.App.LLM.APIKey)
		if !client.Configured() {
			log.Println("No Gemini key configured, skipping narrative")
		} else {
			ctx, cancel := context.WithTimeout(context.Background(), *timeout)
			defer cancel()
			narrative, err := client.Analyze(ctx, text)
			if err != nil {
				log.Printf("Narrative failed: %v", err)
			} else {
				out.Narrative = narrative
			}
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		log.Fatalf("Failed to encode report: %v", err)
	}
}

// readContract loads the document text: "-" reads plain text from
// stdin, PDF and DOCX files go through the extractor, anything else
// is treated as plain text.
func readContract(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf", ".docx":
		return extract.NewFileExtractor().Extract(path, data)
	default:
		return string(data), nil
	}
}
