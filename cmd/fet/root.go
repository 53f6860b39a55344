package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/earfet/fet/config"
	"github.com/earfet/fet/generator"
	"github.com/earfet/fet/logging"
	"github.com/earfet/fet/midifile"
	"github.com/earfet/fet/version"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	v     *viper.Viper
	fs    afero.Fs
	cfg   *config.Config
	log   *slog.Logger
	runID string
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), fs: afero.NewOsFs()}
	root := &cobra.Command{
		Use:   "fet",
		Short: "Functional ear trainer",
		Long: `fet generates ear training exercises as MIDI files.

Each listening exercise plays a cadence establishing a key and then a set of
notes with distinct scale degrees. File names spell out the answer, e.g.
listening/major/CM_1(60)_b3(63).mid, and are never overwritten, so generating
more exercises only ever adds new ones.`,
		Version:      version.String(),
		SilenceUsage: true,
	}
	flags := root.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is ./fet.yaml or "+config.ConfigDir()+"/fet.yaml)")
	flags.StringP("directory-prefix", "o", ".", "directory the exercise folders are created in")
	flags.String("log-level", "info", "log level: "+strings.Join(config.ValidLogLevels(), ", "))
	flags.String("log-format", "text", "log format: "+strings.Join(config.ValidLogFormats(), ", "))
	a.bind(flags, "directory-prefix", "log-level", "log-format")

	root.AddCommand(newGenerateCmd(a), newScaleCmd(), newVersionCmd())
	return root
}

// bind makes viper read the named flags, under their names with dashes
// replaced by underscores.
func (a *app) bind(flags *pflag.FlagSet, names ...string) {
	for _, name := range names {
		_ = a.v.BindPFlag(strings.ReplaceAll(name, "-", "_"), flags.Lookup(name))
	}
}

// load reads and validates the configuration and sets up logging. It runs
// before every command that needs the configuration.
func (a *app) load(cmd *cobra.Command) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if err := config.Init(a.v, cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.runID = uuid.NewString()
	a.log = logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat).With("run_id", a.runID)
	return nil
}

// generator builds a Generator writing MIDI files with the loaded settings.
func (a *app) generator() (*generator.Generator, error) {
	r, err := a.cfg.PitchRange()
	if err != nil {
		return nil, err
	}
	seed := a.cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	a.log.Debug("creating generator", "seed", seed, "range", r.String(), "prefix", a.cfg.DirectoryPrefix)
	src := rand.New(rand.NewPCG(seed, seed>>32|seed<<32))
	return generator.New(a.fs, midifile.New(), src, generator.Options{
		Range:       r,
		Prefix:      a.cfg.DirectoryPrefix,
		MaxAttempts: a.cfg.MaxAttempts,
		Logger:      a.log,
	}), nil
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%s takes %d arguments, got %d", cmd.CommandPath(), n, len(args))
		}
		return nil
	}
}
