package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"slices"
	"strings"

	"github.com/san-kum/bsviz/internal/audio"
	"github.com/san-kum/bsviz/internal/config"
	"github.com/san-kum/bsviz/internal/logging"
	"github.com/san-kum/bsviz/internal/search"
	"github.com/san-kum/bsviz/internal/trace"
	"github.com/san-kum/bsviz/internal/viz"
	"github.com/spf13/cobra"
)

// options holds the flag values of one command tree.
type options struct {
	configFile string
	preset     string
	size       int
	seed       uint64
	logFile    string
	list       string
	target     string
	theme      string
	mute       bool
	plotWidth  int
	plotHeight int
}

// main launches the interactive visualizer when no subcommand is given.
// It exits with status 1 on error.
func main() {
	if err := newRootCmd(&options{}).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(o *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "bsviz",
		Short:        "binary search step visualizer",
		SilenceUsage: true,
		RunE:         o.runInteractive,
	}

	rootCmd.PersistentFlags().StringVar(&o.configFile, "config", "", "config file path (yaml or toml)")
	rootCmd.PersistentFlags().StringVar(&o.preset, "preset", "", "load a named dataset")
	rootCmd.PersistentFlags().IntVar(&o.size, "size", config.DefaultSize, "number of random values")
	rootCmd.PersistentFlags().Uint64Var(&o.seed, "seed", 0, "random seed (0 picks one)")
	rootCmd.Flags().StringVar(&o.logFile, "log", "", "append logs to this file")
	rootCmd.Flags().StringVar(&o.theme, "theme", config.DefaultTheme,
		"color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	rootCmd.Flags().BoolVar(&o.mute, "mute", false, "start with audio cues off")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "print every step of a search as a table",
		RunE:  o.traceRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot the search window size per step",
		RunE:  o.plotRun,
	}
	plotCmd.Flags().IntVar(&o.plotWidth, "width", 60, "plot width")
	plotCmd.Flags().IntVar(&o.plotHeight, "height", 12, "plot height")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [file]",
		Short: "export the steps of a search to JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.exportRun(cmd, args, trace.WriteJSON)
		},
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [file]",
		Short: "export the steps of a search to CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.exportRun(cmd, args, trace.WriteCSV)
		},
	}

	for _, c := range []*cobra.Command{traceCmd, plotCmd, exportJSONCmd, exportCSVCmd} {
		c.Flags().StringVar(&o.list, "list", "", "comma separated sorted list")
		c.Flags().StringVar(&o.target, "target", "", "value to search for (blank picks one from the list)")
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available datasets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("available presets:")
			for _, name := range config.ListPresets() {
				d, _ := config.GetPreset(name)
				fmt.Printf("  %-12s target %-5s [%s]\n", name, d.Target, d.List)
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "write the default config (format from the extension)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	})

	rootCmd.AddCommand(traceCmd, plotCmd, exportJSONCmd, exportCSVCmd, presetsCmd, configCmd)
	return rootCmd
}

// loadConfig reads the config file, then applies the preset and any
// flags the user actually set.
func (o *options) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if o.configFile != "" {
		var err error
		cfg, err = config.Load(o.configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	if o.preset != "" && !cfg.ApplyPreset(o.preset) {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", o.preset, config.ListPresets())
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Size = o.size
	}
	if flags.Changed("seed") {
		cfg.Seed = o.seed
	}
	if flags.Changed("log") {
		cfg.LogFile = o.logFile
	}
	if flags.Changed("theme") {
		cfg.Theme = o.theme
	}
	if flags.Changed("mute") {
		cfg.Sound = !o.mute
	}
	if flags.Changed("list") {
		cfg.Dataset.List = o.list
	}
	if flags.Changed("target") {
		cfg.Dataset.Target = o.target
	}
	if !slices.Contains(viz.ThemeNames(), cfg.Theme) {
		return nil, fmt.Errorf("unknown theme: %s (available: %v)", cfg.Theme, viz.ThemeNames())
	}
	return cfg, cfg.Validate()
}

func (o *options) runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logger.Close()

	player := audio.NewPlayer()
	if cfg.Sound {
		if err := player.Start(); err != nil {
			logger.Warn("audio unavailable, using terminal bell", "err", err)
		}
		defer player.Stop()
	}

	m := viz.NewModel(viz.Options{Config: cfg, Logger: logger, Sound: player})
	return viz.Run(m)
}

// buildRun produces the search described by the config and flags. Without
// a list it samples cfg.Size random values.
func (o *options) buildRun(cmd *cobra.Command) (*search.Run, error) {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	s := cfg.Seed
	if s == 0 {
		s = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(s, s))

	var data []int
	if cfg.Dataset.List != "" {
		data, err = search.ParseSortedList(cfg.Dataset.List)
	} else {
		data, err = search.RandomSorted(rng, cfg.Size, cfg.ValueMin, cfg.ValueMax)
	}
	if err != nil {
		return nil, err
	}
	t, err := search.ParseTarget(cfg.Dataset.Target, data, rng)
	if err != nil {
		return nil, err
	}
	return search.Generate(data, t), nil
}

func (o *options) traceRun(cmd *cobra.Command, args []string) error {
	run, err := o.buildRun(cmd)
	if err != nil {
		return err
	}
	fmt.Printf("data: %v\n", run.Data)
	fmt.Printf("target: %d\n\n", run.Target)
	if err := trace.WriteTable(os.Stdout, run); err != nil {
		return err
	}
	last := run.Last()
	fmt.Printf("\n%s (%d iterations, at most %d)\n", last.Message, run.Iterations(), search.MaxIterations(len(run.Data)))
	return nil
}

func (o *options) plotRun(cmd *cobra.Command, args []string) error {
	run, err := o.buildRun(cmd)
	if err != nil {
		return err
	}
	fmt.Printf("target: %d  size: %d\n\n", run.Target, len(run.Data))
	fmt.Println(trace.Plot(run, o.plotWidth, o.plotHeight))
	fmt.Printf("\n%s\n", run.Last().Message)
	return nil
}

func (o *options) exportRun(cmd *cobra.Command, args []string, write func(io.Writer, *search.Run) error) error {
	run, err := o.buildRun(cmd)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return write(os.Stdout, run)
	}
	f, err := os.Create(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	if err := write(f, run); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "exported %d steps to %s\n", run.Len(), args[0])
	return nil
}
