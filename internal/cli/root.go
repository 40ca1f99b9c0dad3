// Package cli holds the cobra commands of the wordle binary.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-cli/internal/config"
	"github.com/robalobadob/wordle/apps/go-cli/internal/console"
	"github.com/robalobadob/wordle/apps/go-cli/internal/daily"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/session"
	"github.com/robalobadob/wordle/apps/go-cli/internal/store"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

// flag values; env provides the defaults, flags win when set.
var (
	flagWords    string
	flagLength   int
	flagAttempts int
	flagLegacy   bool
	flagDaily    bool
	flagNoColor  bool
	flagLogLevel string
	flagStats    string
)

// randomPick draws the target outside daily mode. Tests replace it.
var randomPick game.Picker = words.RandomIndex

var rootCmd = &cobra.Command{
	Use:   "wordle",
	Short: "Guess the hidden word",
	Long: `Guess the hidden word within a limited number of attempts.

After every guess each letter is marked:
  ✓  correct letter, correct position
  ≈  letter is in the word, at another position
  ✗  letter is not in the word`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable coloured output")

	f := rootCmd.Flags()
	f.StringVarP(&flagWords, "words", "w", "", "word list file, one word per line (default: embedded list)")
	f.IntVarP(&flagLength, "length", "l", game.DefaultWordLength, "letters per word")
	f.IntVarP(&flagAttempts, "attempts", "a", 0, "guesses per round (default 6, legacy 5)")
	f.BoolVar(&flagLegacy, "legacy", false, "match-only scoring, no per-letter feedback")
	f.BoolVar(&flagDaily, "daily", false, "play the word of the day")
	f.StringVar(&flagLogLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
	f.StringVar(&flagStats, "stats", config.StatsSQLite, "session history backend (sqlite, memory)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the environment and applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("words") {
		cfg.WordsFile = flagWords
	}
	if f.Changed("length") {
		cfg.WordLength = flagLength
	}
	if f.Changed("attempts") {
		cfg.MaxAttempts = flagAttempts
	}
	if f.Changed("legacy") {
		cfg.Legacy = flagLegacy
	}
	if f.Changed("daily") {
		cfg.Daily = flagDaily
	}
	if f.Changed("no-color") {
		cfg.NoColor = flagNoColor
	}
	if f.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if f.Changed("stats") {
		cfg.StatsBackend = flagStats
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogging sends human-readable logs to w at the configured level.
func setupLogging(w io.Writer, level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen})
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
}

func openStore(ctx context.Context, backend string) (store.Store, error) {
	switch backend {
	case config.StatsMemory:
		return store.NewMemoryStore(), nil
	case config.StatsSQLite:
		return store.OpenSQLite(ctx)
	default:
		return nil, fmt.Errorf("unknown stats backend %q", backend)
	}
}

func runPlay(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	setupLogging(cmd.ErrOrStderr(), cfg.LogLevel)

	list, err := words.Load(cfg.WordsFile, cfg.WordLength)
	if err != nil {
		return err
	}
	head, tail := list.Sample(5)
	log.Debug().Int("words", list.Len()).Strs("first", head).Strs("last", tail).Msg("word list loaded")

	st, err := openStore(ctx, cfg.StatsBackend)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Warn().Err(err).Msg("close store")
		}
	}()

	pick := randomPick
	var opts []session.Option
	if cfg.Daily {
		// one word per day, so one round per run
		pick = daily.Picker(time.Now, cfg.DailySalt)
		opts = append(opts, session.SingleRound())
		log.Info().Str("date", daily.DateKey(time.Now())).Msg("daily word")
	}

	out := cmd.OutOrStdout()
	presenter := console.NewPresenter(out, console.ColorEnabled(out, cfg.NoColor))
	input := console.NewReader(cmd.InOrStdin())

	return session.New(cfg.GameOptions(), list, pick, input, presenter, st, opts...).Run(ctx)
}
