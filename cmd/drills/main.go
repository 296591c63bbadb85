package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/ib-77/drills/internal/config"
	"github.com/ib-77/drills/internal/logging"
)

var version = "dev"

// CLI is the top-level command structure for drills.
type CLI struct {
	Version   kong.VersionFlag `help:"Show version." short:"V"`
	Config    string           `help:"Path to the YAML config file." default:"drills.yaml"`
	EnvFile   string           `help:"Dotenv file loaded before environment overrides." default:".env" name:"env-file"`
	LogLevel  string           `help:"Log level (debug, info, warn, error). Overrides config."`
	LogFormat string           `help:"Log format (console, json). Overrides config."`

	Length LengthCmd `cmd:"" help:"Print the number of characters in a text."`
	Append AppendCmd `cmd:"" help:"Append a suffix to a text and print the result and its length."`
	Greet  GreetCmd  `cmd:"" help:"Greet as a person or an email contact."`
	Divide DivideCmd `cmd:"" help:"Divide the length of an optional text by a divisor."`
	Names  NamesCmd  `cmd:"" help:"Keep long enough names and print them upper-cased."`
	Count  CountCmd  `cmd:"" help:"Count occurrences of a character in a text."`
}

// env is bound into every command's Run.
type env struct {
	out io.Writer
	log zerolog.Logger
	cfg *config.Config
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("drills"),
		kong.Description("Small text drills: lengths, greetings, safe division and name filtering."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)
	if err := run(ctx, &cli, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func run(ctx *kong.Context, cli *CLI, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}

	log, err := logging.New(stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	log.Debug().Str("command", ctx.Command()).Str("config", cli.Config).Msg("starting")

	return ctx.Run(&env{out: stdout, log: log, cfg: cfg})
}

func loadConfig(cli *CLI) (*config.Config, error) {
	if err := config.LoadEnvFile(cli.EnvFile); err != nil {
		return nil, err
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if cli.LogLevel != "" {
		cfg.Log.Level = cli.LogLevel
	}
	if cli.LogFormat != "" {
		cfg.Log.Format = cli.LogFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
