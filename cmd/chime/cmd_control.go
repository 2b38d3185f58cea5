package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"chime/internal/config"
	"chime/internal/pack"
)

func init() {
	rootCmd.AddCommand(pauseCmd, resumeCmd, toggleCmd, statusCmd, packsCmd, packCmd, versionCmd)
}

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Mute sounds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SetPaused(config.BaseDir(), true); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "chime: sounds paused")
		return nil
	},
}

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Unmute sounds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SetPaused(config.BaseDir(), false); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "chime: sounds resumed")
		return nil
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Toggle mute on/off",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := config.BaseDir()
		if config.Paused(dir) {
			if err := config.SetPaused(dir, false); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "chime: sounds resumed")
		} else {
			if err := config.SetPaused(dir, true); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "chime: sounds paused")
		}
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show paused/active state, pack, and volume",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := config.BaseDir()
		cfg := config.Load(dir)
		mode := "active"
		if config.Paused(dir) {
			mode = "paused"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "chime: %s\n", mode)
		fmt.Fprintf(cmd.OutOrStdout(), "  pack: %s  volume: %g\n", cfg.ActivePack, cfg.Volume)
		return nil
	},
}

var packsCmd = &cobra.Command{
	Use:   "packs",
	Short: "List available sound packs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := config.BaseDir()
		cfg := config.Load(dir)
		packs, err := pack.List(dir)
		if err != nil {
			return err
		}
		sort.Slice(packs, func(i, j int) bool { return packs[i].Name < packs[j].Name })
		for _, p := range packs {
			display := p.DisplayName
			if display == "" {
				display = p.Name
			}
			marker := ""
			if p.Name == cfg.ActivePack {
				marker = " *"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  %-24s %s%s\n", p.Name, display, marker)
		}
		return nil
	},
}

var packCmd = &cobra.Command{
	Use:   "pack [name]",
	Short: "Switch to a pack, or cycle to the next one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := config.BaseDir()
		cfg := config.Load(dir)
		packs, err := pack.List(dir)
		if err != nil || len(packs) == 0 {
			return fmt.Errorf("no packs found")
		}

		names := make([]string, len(packs))
		display := make(map[string]string)
		for i, p := range packs {
			names[i] = p.Name
			display[p.Name] = p.DisplayName
		}
		sort.Strings(names)

		var target string
		if len(args) > 0 {
			target = args[0]
			found := false
			for _, n := range names {
				if n == target {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("pack %q not found (available: %v)", target, names)
			}
		} else {
			idx := -1
			for i, n := range names {
				if n == cfg.ActivePack {
					idx = i
					break
				}
			}
			target = names[(idx+1)%len(names)]
		}

		cfg.ActivePack = target
		if err := config.Save(dir, cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		name := display[target]
		if name == "" {
			name = target
		}
		fmt.Fprintf(cmd.OutOrStdout(), "chime: switched to %s (%s)\n", target, name)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "chime %s\n", version)
	},
}
