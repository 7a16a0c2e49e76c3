// Command goseq runs a declarative query over a JSON array of records and prints the result as JSON.
//
// Usage:
//
//	goseq [--config config.yml] [--env-file .env] [--input records.json] [--pretty] [--log-level debug]
//
// The query itself is read from the config file; see internal/query.Spec.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/deadlyengineer/goseq/internal/config"
	"github.com/deadlyengineer/goseq/internal/logging"
	"github.com/deadlyengineer/goseq/internal/query"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "goseq:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	flags := pflag.NewFlagSet("goseq", pflag.ContinueOnError)
	configFile := flags.String("config", "", "path to the YAML config file")
	envFile := flags.String("env-file", "", "path to a .env file")
	flags.String("input", "", `path to the JSON input, or "-" for stdin`)
	flags.Bool("pretty", false, "indent the JSON output")
	flags.String("log-level", "", "log level (trace, debug, info, warn, error, disabled)")
	flags.String("log-format", "", "log format (console, json)")

	if err := flags.Parse(args); err != nil {
		return err
	}

	opts := []config.LoaderOption{config.WithFlags(flags)}
	if *configFile != "" {
		opts = append(opts, config.WithConfigFile(*configFile))
	}
	if *envFile != "" {
		opts = append(opts, config.WithEnvFile(*envFile))
	}

	cfg, err := config.Load(opts...)
	if err != nil {
		return err
	}

	log := logging.New(cfg.Log).With(logging.FieldRunID, uuid.NewString())

	records, err := readRecords(cfg.Input, stdin)
	if err != nil {
		return err
	}

	log.Info().Str("name", cfg.Name).Int(logging.FieldCount, len(records)).Msg("records loaded")

	result, err := query.NewRunner(log).Run(ctx, records, cfg.Query)
	if err != nil {
		log.Error().Err(err).Msg("query failed")
		return err
	}

	enc := json.NewEncoder(stdout)
	if cfg.Pretty {
		enc.SetIndent("", "  ")
	}

	return enc.Encode(result)
}

// readRecords decodes a JSON array of objects from path, or from stdin if path is "-".
func readRecords(path string, stdin io.Reader) ([]query.Record, error) {
	r := stdin

	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()

		r = f
	}

	records := []query.Record{}
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode input: %w", err)
	}

	return records, nil
}
