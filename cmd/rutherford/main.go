package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/rutherford/internal/audio"
	"github.com/san-kum/rutherford/internal/config"
	"github.com/san-kum/rutherford/internal/gui"
	"github.com/san-kum/rutherford/internal/physics"
	"github.com/san-kum/rutherford/internal/sim"
	"github.com/san-kum/rutherford/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	seed       int64
	trail      bool
	withAudio  bool
	frameRate  int
	steps      int
)

// main registers commands and flags and launches the 3D GUI when no
// subcommand is given. Exits with status 1 on command error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "rutherford",
		Short: "interactive charged-particle simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd, nil)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	rootCmd.PersistentFlags().BoolVar(&trail, "trail", false, "record position trails")

	guiCmd := &cobra.Command{
		Use:   "gui [preset]",
		Short: "run with the 3D window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGUI,
	}
	guiCmd.Flags().BoolVar(&withAudio, "audio", false, "sonify the simulation")

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "run with the terminal view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&frameRate, "fps", 60, "frame rate")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run headless and print a summary",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&steps, "steps", 1000, "number of ticks")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list starting scenes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(guiCmd, liveCmd, runCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolve builds the effective configuration: preset, then config file,
// then explicitly set flags, each overriding the previous.
func resolve(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if len(args) > 0 {
		cfg = config.GetPreset(args[0])
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("seed") {
		cfg.Sim.Seed = seed
	}
	if cmd.Flags().Changed("trail") {
		cfg.Sim.Trail.Enabled = trail
	}
	return cfg, nil
}

func buildSim(cfg *config.Config) (*sim.Simulation, error) {
	spawns, err := cfg.SceneSpawns()
	if err != nil {
		return nil, err
	}
	return sim.New(cfg.SimConfig(), spawns), nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolve(cmd, args)
	if err != nil {
		return err
	}
	s, err := buildSim(cfg)
	if err != nil {
		return err
	}

	var proc *audio.Processor
	if withAudio {
		proc = audio.NewProcessor()
		if err := proc.Start(); err != nil {
			// No output device is not fatal; run silent.
			fmt.Fprintf(os.Stderr, "audio unavailable: %v\n", err)
			proc = nil
		} else {
			defer proc.Stop()
		}
	}

	gui.Run(cfg, s, proc)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolve(cmd, args)
	if err != nil {
		return err
	}
	s, err := buildSim(cfg)
	if err != nil {
		return err
	}
	return viz.RunLive(s, frameRate)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolve(cmd, args)
	if err != nil {
		return err
	}
	s, err := buildSim(cfg)
	if err != nil {
		return err
	}

	speeds := make([]float64, 0, steps)
	for i := 0; i < steps; i++ {
		if err := s.Step(); err != nil {
			return err
		}
		speeds = append(speeds, float64(s.MeanSpeed()))
	}

	counts := s.KindCounts()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "ticks\t%d\n", s.Ticks())
	fmt.Fprintf(w, "particles\t%d\n", s.Len())
	fmt.Fprintf(w, "electrons\t%d\n", counts[physics.Electron])
	fmt.Fprintf(w, "protons\t%d\n", counts[physics.Proton])
	fmt.Fprintf(w, "neutrons\t%d\n", counts[physics.Neutron])
	fmt.Fprintf(w, "mean speed\t%.6g\n", s.MeanSpeed())
	w.Flush()

	if len(speeds) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(speeds,
			asciigraph.Height(8), asciigraph.Width(60), asciigraph.Caption("mean speed per tick")))
	}
	return nil
}
