package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mincut/builder"
	"github.com/katalvlaran/mincut/loader"
)

// topology describes one generate subcommand argument shape.
type topology struct {
	params []string
	build  func(ints []int, p float64) builder.Constructor
}

var topologies = map[string]topology{
	"cycle":     {params: []string{"n"}, build: func(a []int, _ float64) builder.Constructor { return builder.Cycle(a[0]) }},
	"path":      {params: []string{"n"}, build: func(a []int, _ float64) builder.Constructor { return builder.Path(a[0]) }},
	"star":      {params: []string{"n"}, build: func(a []int, _ float64) builder.Constructor { return builder.Star(a[0]) }},
	"wheel":     {params: []string{"n"}, build: func(a []int, _ float64) builder.Constructor { return builder.Wheel(a[0]) }},
	"complete":  {params: []string{"n"}, build: func(a []int, _ float64) builder.Constructor { return builder.Complete(a[0]) }},
	"bipartite": {params: []string{"a", "b"}, build: func(a []int, _ float64) builder.Constructor { return builder.CompleteBipartite(a[0], a[1]) }},
	"grid":      {params: []string{"rows", "cols"}, build: func(a []int, _ float64) builder.Constructor { return builder.Grid(a[0], a[1]) }},
	"barbell":   {params: []string{"k", "bridges"}, build: func(a []int, _ float64) builder.Constructor { return builder.Barbell(a[0], a[1]) }},
	"random":    {params: []string{"n", "p"}, build: func(a []int, p float64) builder.Constructor { return builder.RandomSparse(a[0], p) }},
}

func createGenerateCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <cycle|path|star|wheel|complete|bipartite|grid|barbell|random> [params]",
		Short: "Write a fixture graph in the adjacency-list format.",
		Example: "  mincut generate cycle 8\n" +
			"  mincut generate barbell 6 2 --out barbell.txt\n" +
			"  mincut generate random 200 0.05 --seed 7",
		Args: cobra.MinimumNArgs(1),
		RunE: newGenerateCommand(input),
	}
	cmd.Flags().StringVar(&input.outPath, "out", "", "output file (default stdout)")
	cmd.Flags().Int64VarP(&input.genSeed, "seed", "s", 1, "seed for random topologies")

	return cmd
}

func newGenerateCommand(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		topo, ok := topologies[args[0]]
		if !ok {
			return fmt.Errorf("unknown topology %q", args[0])
		}
		if len(args)-1 != len(topo.params) {
			return fmt.Errorf("%s needs %d parameter(s): %v", args[0], len(topo.params), topo.params)
		}

		ints := make([]int, len(topo.params))
		var p float64
		for i, raw := range args[1:] {
			if topo.params[i] == "p" {
				v, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					return fmt.Errorf("%s: %w", topo.params[i], err)
				}
				p = v
				continue
			}
			v, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("%s: %w", topo.params[i], err)
			}
			ints[i] = v
		}

		bopts := []builder.BuilderOption{builder.WithSeed(input.genSeed)}
		g, err := builder.BuildGraph(nil, bopts, topo.build(ints, p))
		if err != nil {
			return err
		}
		nb, err := g.NeighborArray()
		if err != nil {
			return err
		}
		log.Debugf("Generated %s: %d vertices, %d edges", args[0], g.VertexCount(), g.EdgeCount())

		var w io.Writer = cmd.OutOrStdout()
		if input.outPath != "" {
			f, err := os.Create(input.outPath)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}
		return loader.Write(w, nb)
	}
}
