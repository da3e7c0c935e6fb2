package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/mosallam/sam-finder/internal/config"
	"github.com/mosallam/sam-finder/internal/output"
	"github.com/mosallam/sam-finder/internal/samgov"
	"github.com/mosallam/sam-finder/internal/scrape"
)

func main() {
	profilesPath := flag.String("profiles", "", "profiles YAML file (default: embedded profiles)")
	profileID := flag.String("profile", "", "run a single profile by id")
	outDir := flag.String("output", "output", "directory for CSV output")
	previewRows := flag.Int("preview", 20, "rows shown in the combined preview")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	// .env is optional; the environment may already carry the key.
	_ = godotenv.Load()

	apiKey := os.Getenv("SAM_API_KEY")
	if apiKey == "" {
		log.Fatalf("%v", &samgov.ConfigError{
			Field: "SAM_API_KEY",
			Msg:   "not set; request a public API key under Account Details at https://sam.gov",
		})
	}

	reg, err := config.LoadRegistry(*profilesPath)
	if err != nil {
		log.Fatalf("Failed to load profiles: %v", err)
	}

	profiles := reg.Profiles
	if *profileID != "" {
		p := reg.Find(*profileID)
		if p == nil {
			log.Fatalf("Profile %q not found", *profileID)
		}
		profiles = []config.Profile{*p}
	}

	writer, err := output.NewWriter(*outDir)
	if err != nil {
		log.Fatalf("Failed to prepare output directory: %v", err)
	}

	runner := scrape.NewRunner(scrape.NewDriver(samgov.NewClient(apiKey)), writer)
	runner.PreviewRows = *previewRows

	if _, _, err := runner.RunAll(context.Background(), profiles); err != nil {
		log.Fatalf("Run failed: %v", err)
	}
}
