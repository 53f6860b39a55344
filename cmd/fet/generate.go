package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/earfet/fet/generator"
	"github.com/earfet/fet/report"
)

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate exercises",
		Long: `Generate writes exercise MIDI files below the directory prefix. Files that
already exist are never overwritten.`,
	}
	flags := cmd.PersistentFlags()
	flags.IntP("tempo", "t", 120, "tempo in beats per minute")
	flags.StringP("range", "r", "piano", "pitch range preset")
	flags.Int("range-low", 0, "lowest pitch, overrides --range together with --range-high")
	flags.Int("range-high", 0, "highest pitch, overrides --range together with --range-low")
	flags.Bool("list", false, "list the written files in the summary")
	a.bind(flags, "tempo", "range", "range-low", "range-high")

	cmd.AddCommand(newListeningCmd(a), newSingleNoteCmd(a), newSingingCmd(a))
	return cmd
}

func newListeningCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listening",
		Short: "Generate listening exercises",
		Long: `Listening writes the requested number of major and minor exercises. Each one
plays a cadence in a random key followed by notes of distinct degrees, named
in the file name:

  listening/major/EbM_1(51)_5(58)_b7(61).mid

With --all-single-degree it instead writes every single degree exercise of
every key, skipping those that exist already.`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "generate listening", func(g *generator.Generator) error {
				if a.cfg.AllSingleDegree {
					return g.AllSingleDegree(cmd.Context(), a.cfg.Tempo)
				}
				return g.ListeningBatch(cmd.Context(), a.cfg.Exercises, a.cfg.Degrees, a.cfg.Tempo)
			})
		},
	}
	flags := cmd.Flags()
	flags.IntP("degrees", "d", 1, "number of distinct degrees per exercise")
	flags.IntP("exercises", "n", 1, "number of major and of minor exercises")
	flags.Bool("all-single-degree", false, "write every single degree exercise of every key")
	flags.Uint64("seed", 0, "random seed, 0 seeds from the clock")
	flags.Int("max-attempts", 10000, "colliding attempts allowed per exercise, 0 for no limit")
	a.bind(flags, "degrees", "exercises", "all-single-degree", "seed", "max-attempts")
	return cmd
}

func newSingleNoteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "single-note-listening",
		Short: "Generate one file per pitch of the range",
		Long: `Single-note-listening writes a file for every pitch of the range holding just
that note, named after it, e.g. single_note_listening/C#3(61).mid.`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "generate single-note-listening", func(g *generator.Generator) error {
				return g.SingleNotes(cmd.Context(), a.cfg.Tempo)
			})
		},
	}
}

func newSingingCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "singing",
		Short: "Generate singing exercises",
		Long: `Singing writes, for every key and degree, a cadence followed by a pause and
then the degree. Sing the degree during the pause and check it against the
note that follows.`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "generate singing", func(g *generator.Generator) error {
				return g.Singing(cmd.Context(), a.cfg.Tempo, a.cfg.PauseDuration())
			})
		},
	}
	cmd.Flags().IntP("pause", "p", 3, "seconds of silence before the note")
	a.bind(cmd.Flags(), "pause")
	return cmd
}

// run loads the configuration, runs f on a fresh generator and prints the
// summary of what it did, also when f fails part way.
func (a *app) run(cmd *cobra.Command, name string, f func(*generator.Generator) error) error {
	if err := a.load(cmd); err != nil {
		return err
	}
	g, err := a.generator()
	if err != nil {
		return err
	}
	start := time.Now()
	a.log.Info("generating", "command", name, "directory", a.cfg.DirectoryPrefix)
	runErr := f(g)
	a.log.Info("done", "written", g.Stats.Written, "skipped", g.Stats.Skipped, "collisions", g.Stats.Collisions)
	s := report.Summary{
		RunID:      a.runID,
		Command:    name,
		Directory:  a.cfg.DirectoryPrefix,
		Written:    g.Stats.Written,
		Skipped:    g.Stats.Skipped,
		Collisions: g.Stats.Collisions,
		Elapsed:    time.Since(start),
	}
	if list, _ := cmd.Flags().GetBool("list"); list {
		s.Files = g.Stats.Paths
	}
	if err := report.Render(cmd.OutOrStdout(), s); err != nil {
		return err
	}
	if runErr != nil {
		return fmt.Errorf("%s: %w", name, runErr)
	}
	return nil
}
