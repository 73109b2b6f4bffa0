package main

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/reversi/app"
	"github.com/lixenwraith/reversi/audio"
	"github.com/lixenwraith/reversi/config"
	"github.com/lixenwraith/reversi/game"
	"github.com/lixenwraith/reversi/render"
	"github.com/lixenwraith/reversi/terminal"
)

var version = "v0.1.0"

// Root builds the reversi command. The terminal is only touched inside RunE
func Root(logger *logrus.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "reversi",
		Short: "Play Reversi in the terminal",
		Long: heredoc.Doc(`
			Two-player Reversi (Othello) on a configurable board.

			Move the cursor with the arrow keys or h/j/k/l, place a piece with
			Enter or Space, toggle legal-move hints with ?, quit with q or Esc.
			A placement must flank at least one line of opposing pieces.
		`),
		Example: heredoc.Doc(`
			$ reversi
			$ reversi --width 10 --height 10 --rule strict
			$ reversi --sound --volume 40 --debug
		`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logger.SetLevel(logrus.TraceLevel)
			}
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if write, _ := cmd.Flags().GetBool("write-config"); write {
				path, _ := cmd.Flags().GetString("config")
				if err := cfg.Save(path); err != nil {
					return fmt.Errorf("write config: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
				return nil
			}

			debug, _ := cmd.Flags().GetBool("debug")
			logFile, err := setupLogging(logger, debug || cmd.Flag("trace").Changed, config.LogFile)
			if err != nil {
				return err
			}
			if logFile != nil {
				defer logFile.Close()
			}

			return play(cfg, logger)
		},
	}

	root.SetVersionTemplate(version + "\n")
	root.Version = version

	flags := root.Flags()
	flags.String("config", config.ConfigFile, "Settings file (YAML)")
	flags.Int("width", 0, "Board width")
	flags.Int("height", 0, "Board height")
	flags.String("rule", "", "End rule: pass or strict")
	flags.String("first", "", "Player moving first: black or white")
	flags.Bool("hints", false, "Show legal moves")
	flags.Bool("sound", false, "Enable sound cues")
	flags.Int("volume", 0, "Sound volume 0-100")
	flags.Bool("write-config", false, "Write the effective settings to --config and exit")

	root.PersistentFlags().BoolP("debug", "d", false, "Write debug log to "+config.LogFile)
	root.PersistentFlags().BoolP("trace", "t", false, "Write trace log (implies --debug)")

	return root
}

// loadConfig reads the config file and applies flags the user set explicitly
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width, _ = flags.GetInt("width")
	}
	if flags.Changed("height") {
		cfg.Height, _ = flags.GetInt("height")
	}
	if flags.Changed("rule") {
		cfg.Rule, _ = flags.GetString("rule")
	}
	if flags.Changed("first") {
		cfg.First, _ = flags.GetString("first")
	}
	if flags.Changed("hints") {
		cfg.Hints, _ = flags.GetBool("hints")
	}
	if flags.Changed("sound") {
		cfg.Sound.Enabled, _ = flags.GetBool("sound")
	}
	if flags.Changed("volume") {
		pct, _ := flags.GetInt("volume")
		cfg.Sound.Volume = float64(pct) / 100.0
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// play builds the game and runs it inside a terminal session
func play(cfg *config.Config, logger *logrus.Logger) error {
	opts, err := cfg.GameOptions()
	if err != nil {
		return err
	}
	glyphs, err := cfg.RenderGlyphs()
	if err != nil {
		return err
	}
	g, err := game.New(opts)
	if err != nil {
		return err
	}

	var sound app.Sounder
	if cfg.Sound.Enabled {
		sm := audio.NewSoundManager(cfg.Sound.Volume)
		if err := sm.Initialize(); err != nil {
			logger.WithError(err).Warn("audio initialization failed, continuing without sound")
		} else {
			defer sm.Cleanup()
			sound = sm
		}
	}

	err = terminal.With(terminal.DefaultFactory, func(screen tcell.Screen) error {
		r := render.NewRenderer(screen, glyphs)
		return app.NewLoop(screen, g, r, sound, logger).Run()
	})
	if err != nil {
		return err
	}

	// The alternate screen is gone; leave the result in the scrollback
	if g.State() == game.GameOver {
		o := g.Outcome()
		fmt.Printf("%s (%c %d, %c %d)\n", glyphs.OutcomeLine(o), glyphs.Black, o.Black, glyphs.White, o.White)
	}
	return nil
}
