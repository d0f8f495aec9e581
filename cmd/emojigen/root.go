package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/emojigen"
	"github.com/gogpu/emojigen/compose"
	"github.com/gogpu/emojigen/internal/config"
)

// app carries state shared by the commands of one invocation.
type app struct {
	v        *viper.Viper
	cfg      config.Config
	composer *compose.Composer
	logClose io.Closer

	now       func() time.Time
	rng       *rand.Rand
	writeClip func(string) error

	cfgFile string
}

func newApp() *app {
	return &app{
		v:         config.New(),
		now:       time.Now,
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		writeClip: clipboard.WriteAll,
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "emojigen",
		Short:         "Turn a prompt into a deterministic emoji card",
		Long:          "emojigen maps the words of a prompt to emoji and lays them out on a gradient card.\nThe same prompt, seed and hue always give the same card.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default "+config.DefaultPath()+")")
	flags.String("keywords", "", "YAML keyword table replacing the built-in one")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-file", "", "log to this file with rotation instead of stderr")
	_ = a.v.BindPFlag("keywords", flags.Lookup("keywords"))
	_ = a.v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("logging.file", flags.Lookup("log-file"))

	root.AddCommand(
		a.renderCmd(),
		a.emojisCmd(),
		a.titleCmd(),
		a.keywordsCmd(),
		a.versionCmd(),
	)
	return root
}

// init loads the configuration, installs the logger and picks the keyword
// table.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, closer, err := newLogger(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.logClose = closer
	emojigen.SetLogger(logger)

	a.composer = compose.Default()
	if cfg.Keywords != "" {
		c, err := compose.LoadFile(cfg.Keywords)
		if err != nil {
			return err
		}
		a.composer = c
		logger.Info("keyword table loaded",
			"path", cfg.Keywords,
			"keywords", len(c.Keywords()))
	}
	return nil
}

// run executes root and then releases the logger. Cobra skips post-run
// hooks when a command fails, so the cleanup lives here.
func (a *app) run(root *cobra.Command) error {
	err := root.Execute()
	if cerr := a.close(); err == nil {
		err = cerr
	}
	return err
}

func (a *app) close() error {
	emojigen.SetLogger(nil)
	if a.logClose == nil {
		return nil
	}
	err := a.logClose.Close()
	a.logClose = nil
	return err
}

func (a *app) copyText(s string) error {
	if err := a.writeClip(s); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// prompt joins positional arguments into a single prompt.
func prompt(args []string) string {
	return strings.Join(args, " ")
}
