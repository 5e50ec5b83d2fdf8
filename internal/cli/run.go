package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mincut/builder"
	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/flow"
	"github.com/katalvlaran/mincut/loader"
	"github.com/katalvlaran/mincut/trial"
)

func createRunCommand(ctx context.Context, input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [graph file]",
		Short: "Run n² contraction trials over an adjacency-list file and report the smallest cut.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  newRunCommand(ctx, input),
	}
	cmd.Flags().IntVarP(&input.trials, "trials", "t", 0, "number of trials (0 = vertices²)")
	cmd.Flags().IntVarP(&input.workers, "workers", "w", 1, "number of concurrent workers")
	cmd.Flags().Int64VarP(&input.seed, "seed", "s", 0, "base random seed (0 = derive from the clock)")
	cmd.Flags().BoolVar(&input.exact, "exact", false, "also compute the exact min cut via max-flow")
	cmd.Flags().StringVarP(&input.output, "output", "o", outputText, "summary format: text or yaml")
	cmd.Flags().BoolVarP(&input.quiet, "quiet", "q", false, "print only the summary")

	return cmd
}

// summary is the YAML form of a run.
type summary struct {
	File       string      `yaml:"file"`
	Seed       int64       `yaml:"seed"`
	Trials     int         `yaml:"trials"`
	Vertices   int         `yaml:"vertices"`
	Edges      int         `yaml:"edges"`
	Components int         `yaml:"components"`
	Min        int         `yaml:"min"`
	MinCount   int         `yaml:"min_count"`
	MinPercent int         `yaml:"min_percent"`
	Mean       float64     `yaml:"mean"`
	StdDev     float64     `yaml:"stddev"`
	Histogram  map[int]int `yaml:"histogram"`
	Sides      [2][]int    `yaml:"sides,flow"`
	Exact      *int        `yaml:"exact,omitempty"`
}

func newRunCommand(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		path := defaultGraphFile
		if input.configPath != "" {
			log.Debugf("Reading config from %s", input.configPath)
			cfg, err := loadConfig(input.configPath)
			if err != nil {
				return err
			}
			if file := cfg.apply(input, cmd.Flags()); file != "" {
				path = file
			}
		}
		if len(args) > 0 {
			path = args[0]
		}
		if input.output != outputText && input.output != outputYAML {
			return fmt.Errorf("unknown output format %q", input.output)
		}
		if input.seed == 0 {
			input.seed = time.Now().UnixNano()
			log.Infof("Using seed %d", input.seed)
		}

		log.Debugf("Loading graph from %s", path)
		nb, err := loader.Load(path)
		if err != nil {
			return err
		}
		g, err := builder.Neighbors(nb)
		if err != nil {
			return err
		}
		log.Debugf("Loaded %d vertices, %d edges", g.VertexCount(), g.EdgeCount())

		out := cmd.OutOrStdout()
		opts := []trial.Option{
			trial.WithSeed(input.seed),
			trial.WithWorkers(input.workers),
			trial.WithTrials(input.trials),
		}
		if !input.quiet && input.output == outputText {
			printGraph(out, g)
			opts = append(opts, trial.WithProgress(func(remaining, _ int) {
				fmt.Fprintln(out, remaining+1)
			}))
		}

		var exact *int
		if input.exact {
			v, err := flow.GlobalMinCut(ctx, g)
			if err != nil {
				return err
			}
			exact = &v
		}

		start := time.Now()
		rep, err := trial.Run(ctx, nb, opts...)
		if err != nil {
			return err
		}
		log.Debugf("%d trials in %s", rep.Trials, time.Since(start))
		if rep.Components > 1 {
			log.Warnf("Graph has %d connected components", rep.Components)
		}
		if exact != nil && rep.Min > *exact {
			log.Warnf("Smallest cut found (%d) is above the exact value (%d); try more trials", rep.Min, *exact)
		}

		if input.output == outputYAML {
			return writeYAML(out, summary{
				File:       path,
				Seed:       input.seed,
				Trials:     rep.Trials,
				Vertices:   rep.Vertices,
				Edges:      rep.Edges,
				Components: rep.Components,
				Min:        rep.Min,
				MinCount:   rep.MinCount(),
				MinPercent: rep.MinPercent(),
				Mean:       rep.Mean(),
				StdDev:     rep.StdDev(),
				Histogram:  rep.Histogram,
				Sides:      rep.Best.Sides,
				Exact:      exact,
			})
		}

		fmt.Fprintf(out, "Min: %d stat: %d%%\n", rep.Min, rep.MinPercent())
		if exact != nil {
			fmt.Fprintf(out, "Exact: %d\n", *exact)
		}
		return nil
	}
}

// printGraph dumps g as "label: neighbor labels", one vertex per line.
func printGraph(w io.Writer, g *core.Graph) {
	fmt.Fprintln(w, "Printing graph")
	for _, row := range g.AdjacencyList() {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%d:", row.Label)
		for _, nb := range row.Neighbors {
			fmt.Fprintf(&sb, " %d", nb)
		}
		fmt.Fprintln(w, sb.String())
	}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
