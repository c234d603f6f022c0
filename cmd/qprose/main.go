// qprose generates grammar-templated sentences whose every random choice is
// driven by bytes from a quantum RNG service, with a seeded local fallback
// when the service is unreachable.
package main

import (
	"fmt"
	"os"

	"qprose/internal/config"
	"qprose/internal/entropy"
	"qprose/internal/grammar"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = "1.0.0"

var (
	// Global flags
	configPath  string
	wordlistDir string
	verbose     bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command. Without arguments it starts the
// interactive prompt loop.
var rootCmd = &cobra.Command{
	Use:   "qprose",
	Short: "Quantum-random grammar-aware sentence generator",
	Long: `qprose builds templated sentences where the template, every word,
comma placement, modifier order, punctuation, and batch size are all decided
by bytes from the ANU QRNG service. When the service is unreachable, a seeded
local generator takes over so generation never stalls.

Run without arguments for the interactive prompt loop.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapCfg := zap.NewProductionConfig()
		zapCfg.OutputPaths = []string{"stderr"}
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

// versionCmd prints the version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the qprose version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("qprose %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "qprose.yaml", "path to config file")
	rootCmd.PersistentFlags().StringVar(&wordlistDir, "wordlist-dir", "", "directory holding the four word list files (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads and validates configuration, applying flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if wordlistDir != "" {
		cfg.Generator.WordlistDir = wordlistDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// buildCluster wires the full generation stack: word lists, QRNG client,
// retry-and-fallback source, byte cache, engine, cluster controller.
func buildCluster(cfg *config.Config) (*grammar.Cluster, *entropy.Cache, grammar.Lists, error) {
	lists, err := grammar.LoadLists(cfg.Generator.WordlistDir)
	if err != nil {
		return nil, nil, grammar.Lists{}, err
	}

	seed, err := entropy.NewSeed()
	if err != nil {
		return nil, nil, grammar.Lists{}, fmt.Errorf("failed to seed fallback generator: %w", err)
	}

	source := entropy.NewSource(
		entropy.NewClient(cfg.Entropy.Endpoint, cfg.GetTimeout()),
		entropy.NewFallback(seed),
		entropy.WithRetries(cfg.Entropy.Retries),
		entropy.WithRetryDelay(cfg.GetRetryDelay()),
		entropy.WithLogger(logger),
	)
	cache := entropy.NewCache(source, cfg.Entropy.ChunkSize)

	engine, err := grammar.NewEngine(lists, cache)
	if err != nil {
		return nil, nil, grammar.Lists{}, err
	}

	cluster, err := grammar.NewCluster(engine, cache, cfg.Generator.ClusterMin, cfg.Generator.ClusterMax)
	if err != nil {
		return nil, nil, grammar.Lists{}, err
	}

	return cluster, cache, lists, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}
