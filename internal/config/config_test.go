package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
	"github.com/spf13/pflag"
)

const configYAML = `
name: cats
input: cats.json
log:
  level: debug
  format: json
query:
  where:
    - field: age
      op: gt
      value: 2
  order_by:
    - field: color
    - field: age
      descending: true
  take: 2
`

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestLoad_File(t *testing.T) {
	is := is.New(t)

	cfg, err := Load(WithConfigFile(writeFile(t, "config.yml", configYAML)))
	is.NoErr(err)

	is.Equal(cfg.Name, "cats")
	is.Equal(cfg.Input, "cats.json")
	is.Equal(cfg.Log.Level, "debug")
	is.Equal(cfg.Log.Format, "json")
	is.Equal(cfg.Log.Output, "stderr")

	is.Equal(len(cfg.Query.Where), 1)
	is.Equal(cfg.Query.Where[0].Field, "age")
	is.Equal(cfg.Query.Where[0].Op, "gt")
	is.Equal(cfg.Query.Where[0].Value, 2)

	is.Equal(len(cfg.Query.OrderBy), 2)
	is.True(cfg.Query.OrderBy[1].Descending)
	is.Equal(cfg.Query.Take, 2)
}

func TestLoad_Defaults(t *testing.T) {
	is := is.New(t)

	cfg, err := Load()
	is.NoErr(err)

	is.Equal(cfg.Name, "goseq")
	is.Equal(cfg.Input, "-")
	is.Equal(cfg.Log.Level, "info")
	is.Equal(cfg.Log.Format, "console")
}

func TestLoad_Env(t *testing.T) {
	is := is.New(t)

	t.Setenv("GOSEQ_LOG_LEVEL", "warn")

	cfg, err := Load(WithConfigFile(writeFile(t, "config.yml", configYAML)))
	is.NoErr(err)

	is.Equal(cfg.Log.Level, "warn")
}

func TestLoad_EnvFile(t *testing.T) {
	is := is.New(t)

	t.Setenv("GOSEQ_INPUT", "")
	os.Unsetenv("GOSEQ_INPUT")

	cfg, err := Load(WithEnvFile(writeFile(t, ".env", "GOSEQ_INPUT=dogs.json\n")))
	is.NoErr(err)

	is.Equal(cfg.Input, "dogs.json")
}

func TestLoad_Flags(t *testing.T) {
	is := is.New(t)

	flags := pflag.NewFlagSet("goseq", pflag.ContinueOnError)
	flags.String("input", "", "")
	flags.String("log-level", "", "")
	is.NoErr(flags.Parse([]string{"--input", "birds.json", "--log-level", "error"}))

	cfg, err := Load(WithConfigFile(writeFile(t, "config.yml", configYAML)), WithFlags(flags))
	is.NoErr(err)

	is.Equal(cfg.Input, "birds.json")
	is.Equal(cfg.Log.Level, "error")
}

func TestLoad_Invalid(t *testing.T) {
	is := is.New(t)

	const invalid = `
query:
  where:
    - field: age
      op: between
`

	_, err := Load(WithConfigFile(writeFile(t, "config.yml", invalid)))
	is.True(err != nil)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	is := is.New(t)

	t.Setenv("GOSEQ_LOG_LEVEL", "loud")

	_, err := Load()
	is.True(err != nil)
}

func TestLoad_MissingFile(t *testing.T) {
	is := is.New(t)

	_, err := Load(WithConfigFile(filepath.Join(t.TempDir(), "missing.yml")))
	is.True(err != nil)
}
