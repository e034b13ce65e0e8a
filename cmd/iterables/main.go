package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/tokenring-ai/iterables"
	"github.com/tokenring-ai/iterables/providers"
)

// Config is the optional TOML configuration for the CLI.
type Config struct {
	DataFile string `toml:"data_file"`
	LogsDir  string `toml:"logs_dir"`
	Verbose  bool   `toml:"verbose"`
}

func usage() {
	fmt.Fprintf(os.Stderr, `iterables - define named data sources and run a templated action per item

Usage: %s <command> [options]

Commands:
  define     Create or replace an iterable definition
  list       List all definitions
  show       Show one definition
  delete     Delete a definition
  import     Import definitions from a YAML file
  providers  List registered provider types
  run        Run a batch: iterables run "@<name> <template>"

Run '%s <command> -h' for command options.
`, os.Args[0], os.Args[0])
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "define":
		err = runDefine(args)
	case "list":
		err = runList(args)
	case "show":
		err = runShow(args)
	case "delete":
		err = runDelete(args)
	case "import":
		err = runImport(args)
	case "providers":
		err = runProviders(args)
	case "run":
		err = runBatch(args)
	case "-h", "--help", "help":
		usage()
		return
	default:
		color.Red("Error: unknown command %q", command)
		usage()
		os.Exit(2)
	}
	if err != nil {
		if iterables.IsErrorType(err, iterables.ErrorTypeUsage) {
			color.Red("Usage error: %v", err)
			os.Exit(2)
		}
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

// loadConfig reads the TOML config file, falling back to defaults when it
// does not exist.
func loadConfig(path string) (*Config, error) {
	config := &Config{}
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(homeDir, ".tokenring", "iterables", "config.toml")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return config, nil
		}
	}
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return config, nil
}

func addCommonFlags(fs *flag.FlagSet) (*string, *bool) {
	configPath := fs.String("config", "", "Path to a TOML config file")
	verbose := fs.Bool("verbose", false, "Enable verbose logging")
	return configPath, verbose
}

type environment struct {
	config   *Config
	logger   *slog.Logger
	registry *iterables.Registry
	store    *iterables.DefinitionStore
	service  *iterables.Service
}

// setup builds the registry, store and service shared by all commands.
func setup(ctx context.Context, configPath string, verbose bool) (*environment, error) {
	config, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	level := slog.LevelError
	if verbose || config.Verbose {
		level = slog.LevelInfo
	}
	logger := iterables.NewLogger(level)

	registry := iterables.NewRegistry()
	if err := providers.RegisterAll(registry); err != nil {
		return nil, err
	}
	persister, err := iterables.NewFileDefinitionPersister(config.DataFile)
	if err != nil {
		return nil, err
	}
	store, err := iterables.NewDefinitionStore(ctx, iterables.DefinitionStoreOptions{
		Registry:  registry,
		Persister: persister,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}
	service, err := iterables.NewService(iterables.ServiceOptions{
		Registry: registry,
		Store:    store,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}
	return &environment{
		config:   config,
		logger:   logger,
		registry: registry,
		store:    store,
		service:  service,
	}, nil
}

// stringSlice collects repeatable flag values.
type stringSlice []string

func (s *stringSlice) String() string {
	return strings.Join(*s, ", ")
}

func (s *stringSlice) Set(value string) error {
	*s = append(*s, value)
	return nil
}

// parseSpecFlags turns repeated key=value flags into a spec map. Values are
// parsed as JSON when possible, otherwise used as strings.
func parseSpecFlags(pairs []string) (map[string]any, error) {
	spec := map[string]any{}
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, iterables.NewUsageError("invalid spec flag %q, use key=value", pair)
		}
		var parsed any
		if err := json.Unmarshal([]byte(value), &parsed); err != nil {
			parsed = value
		}
		spec[key] = parsed
	}
	return spec, nil
}

func runDefine(args []string) error {
	fs := flag.NewFlagSet("define", flag.ExitOnError)
	configPath, verbose := addCommonFlags(fs)
	name := fs.String("name", "", "Unique name for the iterable (required)")
	typeKey := fs.String("type", "", "Provider type (required; see 'iterables providers')")
	description := fs.String("description", "", "Optional description")
	var specFlags stringSlice
	fs.Var(&specFlags, "spec", "Provider spec entry in key=value form (repeatable)")
	fs.Parse(args)

	if *name == "" || *typeKey == "" {
		return iterables.NewUsageError("-name and -type are required")
	}
	spec, err := parseSpecFlags(specFlags)
	if err != nil {
		return err
	}

	ctx := context.Background()
	env, err := setup(ctx, *configPath, *verbose)
	if err != nil {
		return err
	}
	def, err := env.service.Define(ctx, *name, *typeKey, spec, *description)
	if err != nil {
		return err
	}
	color.Green("Defined %q (type %s)", def.Name, def.Type)
	return nil
}

func runList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	configPath, verbose := addCommonFlags(fs)
	asJSON := fs.Bool("json", false, "Output as JSON")
	fs.Parse(args)

	env, err := setup(context.Background(), *configPath, *verbose)
	if err != nil {
		return err
	}
	definitions := env.service.List()
	if *asJSON {
		data, err := json.MarshalIndent(definitions, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}
	if len(definitions) == 0 {
		color.Blue("No iterables defined")
		return nil
	}
	for _, def := range definitions {
		line := fmt.Sprintf("%s  (%s)", color.CyanString(def.Name), def.Type)
		if def.Description != "" {
			line += "  " + def.Description
		}
		fmt.Println(line)
	}
	return nil
}

func runShow(args []string) error {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	configPath, verbose := addCommonFlags(fs)
	fs.Parse(args)
	if fs.NArg() != 1 {
		return iterables.NewUsageError("usage: iterables show <name>")
	}

	env, err := setup(context.Background(), *configPath, *verbose)
	if err != nil {
		return err
	}
	def, err := env.service.Get(fs.Arg(0))
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(def, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func runDelete(args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	configPath, verbose := addCommonFlags(fs)
	fs.Parse(args)
	if fs.NArg() != 1 {
		return iterables.NewUsageError("usage: iterables delete <name>")
	}

	ctx := context.Background()
	env, err := setup(ctx, *configPath, *verbose)
	if err != nil {
		return err
	}
	deleted, err := env.service.Delete(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	if deleted {
		color.Green("Deleted %q", fs.Arg(0))
	} else {
		color.Yellow("No iterable named %q", fs.Arg(0))
	}
	return nil
}

func runImport(args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	configPath, verbose := addCommonFlags(fs)
	file := fs.String("file", "", "YAML file holding a 'definitions' list (required)")
	fs.Parse(args)
	if *file == "" {
		return iterables.NewUsageError("-file is required")
	}

	definitions, err := iterables.LoadDefinitionsFile(*file)
	if err != nil {
		return err
	}
	ctx := context.Background()
	env, err := setup(ctx, *configPath, *verbose)
	if err != nil {
		return err
	}
	if err := env.store.Import(ctx, definitions); err != nil {
		return err
	}
	color.Green("Imported %d definitions", len(definitions))
	return nil
}

func runProviders(args []string) error {
	fs := flag.NewFlagSet("providers", flag.ExitOnError)
	configPath, verbose := addCommonFlags(fs)
	fs.Parse(args)

	env, err := setup(context.Background(), *configPath, *verbose)
	if err != nil {
		return err
	}
	for _, typeKey := range env.registry.Types() {
		provider, _ := env.registry.Get(typeKey)
		fmt.Printf("%s  %s\n", color.CyanString("%-8s", typeKey), provider.Description())
		for _, arg := range provider.Arguments() {
			required := ""
			if arg.Required {
				required = " (required)"
			}
			fmt.Printf("    %s (%s)%s  %s\n", arg.Name, arg.Type, required, arg.Description)
		}
	}
	return nil
}

func runBatch(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	configPath, verbose := addCommonFlags(fs)
	shell := fs.Bool("shell", false, "Execute each interpolated prompt as a shell command instead of printing it")
	logsDir := fs.String("logs", "", "Directory for per-item JSONL logs (optional)")
	fs.Parse(args)
	if fs.NArg() == 0 {
		return iterables.NewUsageError("usage: iterables run \"@<name> <template>\"")
	}
	input := strings.Join(fs.Args(), " ")

	ctx := context.Background()
	env, err := setup(ctx, *configPath, *verbose)
	if err != nil {
		return err
	}

	var runner iterables.ActionRunner
	if *shell {
		runner = iterables.NewActionRunnerFunc(func(ctx context.Context, text string) (any, error) {
			output, err := exec.CommandContext(ctx, "sh", "-c", text).CombinedOutput()
			os.Stdout.Write(output)
			return string(output), err
		})
	} else {
		runner = iterables.NewActionRunnerFunc(func(ctx context.Context, text string) (any, error) {
			fmt.Println(text)
			return text, nil
		})
	}

	var batchLogger iterables.BatchLogger
	if dir := firstNonEmpty(*logsDir, env.config.LogsDir); dir != "" {
		batchLogger = iterables.NewFileBatchLogger(dir)
	} else {
		batchLogger = iterables.NewNullBatchLogger()
	}

	executor, err := iterables.NewBatchExecutor(iterables.BatchExecutorOptions{
		Service:          env.service,
		Runner:           runner,
		ExecutionContext: iterables.NewVariableContext(nil),
		Logger:           env.logger,
		BatchLogger:      batchLogger,
		Formatter:        iterables.NewConsoleBatchFormatter(os.Stdout),
	})
	if err != nil {
		return err
	}

	result, err := executor.Run(ctx, input)
	if err != nil {
		return err
	}
	for _, failure := range result.Failures {
		color.Red("%v", failure.Error)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
