package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var generateCount int

// generateCmd produces one cluster (or a fixed number of sentences) without
// the prompt loop, for piping into other tools.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one cluster of sentences and exit",
	Long: `Generates a QRNG-sized cluster of sentences and prints one per line.
With --count the cluster sizing byte is skipped and exactly that many
sentences are produced.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 0, "generate exactly this many sentences instead of a QRNG-sized cluster")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cluster, _, _, err := buildCluster(cfg)
	if err != nil {
		return err
	}

	emit := func(sentence string) {
		fmt.Println(sentence)
	}

	if generateCount > 0 {
		cluster.Emit(ctx, generateCount, emit)
		return nil
	}

	n := cluster.Run(ctx, emit)
	logger.Debug("cluster complete", zap.Int("sentences", n))
	return nil
}
