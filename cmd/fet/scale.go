package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/earfet/fet/theory"
)

// scaleInfo is the spelling of a key, as printed by the scale command.
type scaleInfo struct {
	Root          string            `yaml:"root"`
	Mode          string            `yaml:"mode"`
	RelativeMajor string            `yaml:"relative_major"`
	Scale         []string          `yaml:"scale"`
	Degrees       map[string]string `yaml:"degrees"`
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681")).Width(16)
	cellStyle   = lipgloss.NewStyle().Width(4).Align(lipgloss.Center)
	caser       = cases.Title(language.English)
)

func newScaleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scale ROOT [MODE]",
		Short: "Spell the scale and the degrees of a key",
		Long: `Scale prints the relative major and the diatonic spelling of ROOT in MODE
(major by default), followed by the spelling of all twelve degrees above ROOT.

MODE is one of ` + strings.Join(theory.ModeNames(), ", ") + `.`,
		Example: "  fet scale F# dorian\n  fet scale Bb --yaml",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			modeName := "major"
			if len(args) > 1 {
				modeName = args[1]
			}
			info, err := spellScale(args[0], modeName)
			if err != nil {
				return err
			}
			if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(info); err != nil {
					return err
				}
				return enc.Close()
			}
			return printScale(cmd.OutOrStdout(), info)
		},
	}
	cmd.Flags().Bool("yaml", false, "print YAML instead of a table")
	return cmd
}

func spellScale(root, modeName string) (*scaleInfo, error) {
	mode, err := theory.ParseMode(modeName)
	if err != nil {
		return nil, err
	}
	major, err := theory.RelativeMajor(root, mode)
	if err != nil {
		return nil, err
	}
	scale, err := theory.DiatonicSpelling(root, mode)
	if err != nil {
		return nil, err
	}
	spelled, err := theory.SpellDegrees(root)
	if err != nil {
		return nil, err
	}
	degrees := make(map[string]string, len(spelled))
	for i, name := range theory.DegreeNames() {
		degrees[name] = spelled[i]
	}
	return &scaleInfo{
		Root:          root,
		Mode:          mode.String(),
		RelativeMajor: major,
		Scale:         scale,
		Degrees:       degrees,
	}, nil
}

func printScale(w io.Writer, info *scaleInfo) error {
	row := func(label string, cells []string) string {
		parts := []string{labelStyle.Render(label)}
		for _, c := range cells {
			parts = append(parts, cellStyle.Render(c))
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	names := theory.DegreeNames()
	spelled := make([]string, len(names))
	for i, name := range names {
		spelled[i] = info.Degrees[name]
	}
	out := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(fmt.Sprintf("%s %s", info.Root, caser.String(info.Mode))),
		row("relative major", []string{info.RelativeMajor}),
		row("scale", info.Scale),
		"",
		row("degree", names),
		row("spelled", spelled),
	)
	_, err := fmt.Fprintln(w, out)
	return err
}
