// Command htslookup resolves one or more HS codes to duty-rate entries and
// prints each result as JSON. With -csv, the resolved entries are also
// written to a CSV file.
// Usage: htslookup [-csv out.csv] CODE [CODE...]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"moogship/internal/config"
	"moogship/internal/csvexport"
	fsstore "moogship/internal/documentstore/fs"
	s3store "moogship/internal/documentstore/s3"
	"moogship/internal/domain"
	"moogship/internal/hts"
	"moogship/internal/port"
	"moogship/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	csvPath := flag.String("csv", "", "also write resolved entries to this CSV file, or to a dated file built from an export name")
	flag.Parse()

	codes := flag.Args()
	if len(codes) == 0 {
		return fmt.Errorf("usage: htslookup [-csv out.csv] CODE [CODE...]")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := newDocumentStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize document store: %w", err)
	}

	resolver := hts.NewResolver(store, cfg.Document.ID)
	tariffSvc := service.NewTariffService(resolver)

	ctx := context.Background()
	var resolved []domain.HTSEntry
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	for _, code := range codes {
		entry := tariffSvc.GetDutyRate(ctx, code)
		if entry == nil {
			fmt.Printf("%s: no duty rate available\n", code)
			continue
		}
		if err := enc.Encode(entry); err != nil {
			return fmt.Errorf("encode result for %s: %w", code, err)
		}
		if !entry.IsAdValorem() {
			log.Printf("%s: rate %q is not ad valorem; percentage %.4f is an approximation",
				code, entry.GeneralRate, entry.Percentage)
		}
		resolved = append(resolved, *entry)
	}

	if *csvPath != "" {
		out := csvexport.ResolvePath(*csvPath)
		if err := writeCSV(out, resolved); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		log.Printf("wrote %d entries to %s", len(resolved), out)
	}

	return nil
}

// newDocumentStore selects the document store backend from config.
func newDocumentStore(cfg *config.Config) (port.DocumentStore, error) {
	switch cfg.Document.Provider {
	case "fs", "":
		return fsstore.NewStore(cfg.Document.Root), nil
	case "s3":
		return s3store.NewStore(&cfg.S3)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedStore, cfg.Document.Provider)
	}
}

func writeCSV(path string, entries []domain.HTSEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(csvexport.BOM); err != nil {
		return err
	}

	w := csvexport.NewWriter(f)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	if err := w.WriteEntries(entries); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
