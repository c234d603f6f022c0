// Interactive prompt loop: "yes" generates one cluster, "q" quits, anything
// else reprompts.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"qprose/internal/entropy"
)

// promptAnswer classifies one line of prompt input.
type promptAnswer int

const (
	answerGenerate promptAnswer = iota
	answerQuit
	answerUnknown
)

// parseAnswer maps free-text input onto a prompt answer.
func parseAnswer(input string) promptAnswer {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "yes":
		return answerGenerate
	case "q", "quit":
		return answerQuit
	default:
		return answerUnknown
	}
}

// runInteractive drives the prompt loop until quit or EOF.
func runInteractive() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		cancel()
	}()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cluster, cache, lists, err := buildCluster(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Loaded %d nouns, %d verbs, %d adjectives, %d adverbs.\n\n",
		len(lists.Nouns), len(lists.Verbs), len(lists.Adjectives), len(lists.Adverbs))
	fmt.Println(bannerStyle.Render("Quantum-random grammar-aware sentence generator."))
	fmt.Println(noticeStyle.Render("Type 'yes' to generate a cluster, 'q' to quit."))
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	for {
		if ctx.Err() != nil {
			fmt.Println("\nInterrupted.")
			return nil
		}

		fmt.Print(promptStyle.Render("Generate next cluster? (yes/q): "))
		input, err := reader.ReadString('\n')
		if err != nil {
			// EOF on stdin ends the session.
			fmt.Println()
			return nil
		}

		switch parseAnswer(input) {
		case answerQuit:
			fmt.Println("Goodbye!")
			return nil

		case answerGenerate:
			size := cluster.Size(ctx)
			fmt.Println(noticeStyle.Render(fmt.Sprintf("Cluster size decided by QRNG: %d sentences", size)))
			fmt.Println()
			cluster.Emit(ctx, size, func(sentence string) {
				fmt.Println(sentenceStyle.Render(sentence))
			})
			if origin, ok := cache.Origin(); ok && origin == entropy.OriginFallback {
				fmt.Println(warnStyle.Render("note: QRNG unreachable, using local fallback randomness"))
			}
			fmt.Println()

		default:
			fmt.Println(warnStyle.Render("Please type 'yes' to generate or 'q' to quit."))
		}
	}
}
