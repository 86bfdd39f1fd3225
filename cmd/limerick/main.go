// Command limerick writes one limerick offline and prints it with its
// scores.
//
// Flags:
//
//	-author      corpus author (empty or unknown picks a random one)
//	-candidates  batch size (default: generation.candidates)
//	-seed        non-zero makes the run deterministic
//	-save        append the winner to the configured history
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/heartmarshall/inspoet/internal/app"
	"github.com/heartmarshall/inspoet/internal/config"
	"github.com/heartmarshall/inspoet/internal/service/limerick"
)

func main() {
	authorFlag := flag.String("author", "", "corpus author to imitate")
	candidatesFlag := flag.Int("candidates", 0, "number of candidates to compose (0 = config default)")
	seedFlag := flag.Uint64("seed", 0, "random seed (0 = config seed or unseeded)")
	saveFlag := flag.Bool("save", true, "save the winner to the history store")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger, os.Stdout, *authorFlag, *candidatesFlag, *seedFlag, *saveFlag); err != nil {
		logger.Error("generate limerick", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, out io.Writer, author string, candidates int, seed uint64, save bool) error {
	if seed == 0 {
		seed = cfg.Generation.Seed
	}
	var rnd limerick.Random
	if seed != 0 {
		rnd = limerick.NewSeededRandom(seed)
	}

	comps, err := app.BuildComponents(ctx, cfg, logger, app.Options{Random: rnd, DiscardHistory: !save})
	if err != nil {
		return err
	}
	defer comps.Close()

	res, err := comps.Service.Generate(ctx, limerick.GenerateInput{Author: author, Candidates: candidates})
	if err != nil {
		return err
	}

	rec := res.Record
	fmt.Fprintf(out, "%s\n(after %s)\n\n%s\n\n", rec.Title, rec.Author, strings.Join(rec.Lines, "\n"))
	fmt.Fprintf(out, "grammar errors: %d\nsentiment:      %.3f\ncomposite:      %.3f\ncandidates:     %d\n",
		rec.GrammarScore, rec.SentimentScore, res.Composite, len(res.Candidates))
	if save {
		fmt.Fprintf(out, "saved as %s\n", rec.ID)
	}
	return nil
}
