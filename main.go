package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/nads2259/deduplicate-leads/dedupe"
	"github.com/nads2259/deduplicate-leads/integrations/leadserver"
)

func main() {
	_ = godotenv.Load()

	input := flag.String("input", getEnv("LEADS_INPUT", "leads.json"), "leads document path, or a lead server base URL")
	output := flag.String("output", getEnv("LEADS_OUTPUT", "deduplicated.json"), "deduplicated document path")
	logPath := flag.String("log", getEnv("LEADS_LOG", "merge.log"), "audit log path")
	level := flag.String("loglevel", getEnv("LEADS_LOGLEVEL", "info"), "log level")
	flag.Parse()

	if err := setupLogging(*level); err != nil {
		slog.Error("could not init logging", "err", err)
		os.Exit(1)
	}

	if err := run(*input, *output, *logPath); err != nil {
		slog.Error("dedup failed", "err", err)
		os.Exit(1)
	}
}

func run(input, output, logPath string) error {
	eng, err := newEngine(input, logPath)
	if err != nil {
		return err
	}
	defer eng.Close()

	if err := eng.Run(); err != nil {
		return err
	}
	return eng.SaveOutput(output)
}

func newEngine(input, logPath string) (*dedupe.Engine, error) {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		client, err := leadserver.NewClient(input)
		if err != nil {
			return nil, err
		}
		doc, err := client.FetchLeads(context.Background())
		if err != nil {
			return nil, err
		}
		return dedupe.NewFromBytes(doc, logPath)
	}
	return dedupe.New(input, logPath)
}

func setupLogging(level string) error {
	var logLevel slog.Level
	err := logLevel.UnmarshalText([]byte(level))
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	slog.SetDefault(slog.New(h))
	return err
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
