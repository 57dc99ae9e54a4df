// Command export-ledger prints the financial rollup of the stored
// applications, for the office's periodic audit filing.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/kirubhashini2006-coder/internship-portal/internal/config"
	"github.com/kirubhashini2006-coder/internship-portal/internal/report"
	"github.com/kirubhashini2006-coder/internship-portal/internal/storage"
)

func main() {
	asJSON := flag.Bool("json", false, "emit the summary as JSON")
	flag.Parse()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("bad configuration: ", err)
	}

	backend, err := openBackend(cfg)
	if err != nil {
		log.Fatal("failed to open storage backend: ", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	records, err := backend.Load(ctx)
	if err != nil {
		log.Fatal("failed to load records: ", err)
	}

	summary := report.Aggregate(records)
	stats := report.Count(records, time.Now())

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(map[string]interface{}{
			"stats":   stats,
			"summary": summary,
		}); err != nil {
			log.Fatal(err)
		}
		return
	}

	fmt.Println("Training placement ledger")
	fmt.Println("=========================")
	fmt.Printf("Records:      %d (internship %d, project %d)\n",
		summary.RecordCount, summary.InternshipCount, summary.ProjectCount)
	fmt.Printf("Pending:      %d  Approved: %d  Ongoing: %d\n",
		stats.Pending, stats.Approved, stats.Ongoing)
	fmt.Printf("Total fees:   %.2f\n", summary.Total)
	fmt.Printf("Average fee:  %.2f\n", summary.AveragePerRecord)

	fmt.Println("\nBy department:")
	for _, g := range summary.ByDepartment {
		fmt.Printf("  %-40s %12.2f\n", g.Key, g.Total)
	}
	fmt.Println("\nBy category:")
	for _, g := range summary.ByCategory {
		fmt.Printf("  %-40s %12.2f\n", g.Key, g.Total)
	}
}

func openBackend(cfg config.Config) (storage.Persistence, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		return storage.NewMemory(), nil
	case config.BackendRedis:
		return storage.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.StorageKey)
	case config.BackendPostgres:
		return storage.OpenPostgres(cfg.PostgresDSN, cfg.StorageKey)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
