package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvgraph/bfs"
	"github.com/katalvlaran/lvgraph/builder"
	"github.com/katalvlaran/lvgraph/components"
	"github.com/katalvlaran/lvgraph/converters"
	"github.com/katalvlaran/lvgraph/core"
	"github.com/katalvlaran/lvgraph/dfs"
	"github.com/katalvlaran/lvgraph/dijkstra"
	"github.com/katalvlaran/lvgraph/distance"
	"github.com/katalvlaran/lvgraph/matrix"
	"github.com/katalvlaran/lvgraph/prim_kruskal"
	"github.com/katalvlaran/lvgraph/shortest"
)

// --- info / save ---

type infoReport struct {
	Nodes        int         `yaml:"nodes"`
	Edges        int         `yaml:"edges"`
	MeanDegree   float64     `yaml:"mean_degree"`
	TotalWeight  float64     `yaml:"total_weight"`
	WeightsEqual bool        `yaml:"weights_equal"`
	Degrees      map[int]int `yaml:"degree_distribution"`
	Isolated     []string    `yaml:"isolated"`
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print graph statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(cmd)
			if err != nil {
				return err
			}

			rep := infoReport{
				Nodes:        g.Order(),
				Edges:        g.Size(),
				MeanDegree:   g.MeanDegree(),
				TotalWeight:  g.TotalWeight(),
				WeightsEqual: g.WeightsEqual(),
				Degrees:      g.DegreeDistribution(),
				Isolated:     []string{},
			}
			for _, n := range g.UnconnectedNodes() {
				rep.Isolated = append(rep.Isolated, n.Key())
			}

			var b strings.Builder
			fmt.Fprintf(&b, "nodes: %d\n", rep.Nodes)
			fmt.Fprintf(&b, "edges: %d\n", rep.Edges)
			fmt.Fprintf(&b, "mean degree: %s\n", core.FormatNumber(rep.MeanDegree))
			fmt.Fprintf(&b, "total weight: %s\n", core.FormatNumber(rep.TotalWeight))
			fmt.Fprintf(&b, "weights equal: %t\n", rep.WeightsEqual)
			b.WriteString("degree distribution:\n")
			for _, d := range g.Degrees() {
				fmt.Fprintf(&b, "  %d: %d\n", d, rep.Degrees[d])
			}
			if len(rep.Isolated) > 0 {
				fmt.Fprintf(&b, "isolated: %v\n", rep.Isolated)
			}

			return a.emit(cmd, rep, b.String())
		},
	}
}

func (a *app) saveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Print the graph in its re-loadable report format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(cmd)
			if err != nil {
				return err
			}
			_, err = g.WriteTo(cmd.OutOrStdout())

			return err
		},
	}
}

// --- traversals ---

type traversalReport struct {
	Root      string         `yaml:"root"`
	Order     []string       `yaml:"order"`
	Found     bool           `yaml:"found"`
	Depth     map[string]int `yaml:"depth"`
	TreeEdges int            `yaml:"tree_edges"`
}

func (r traversalReport) text(target bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "root: %s\n", r.Root)
	fmt.Fprintf(&b, "order: %v\n", r.Order)
	if target {
		fmt.Fprintf(&b, "found: %t\n", r.Found)
	}
	fmt.Fprintf(&b, "tree edges: %d\n", r.TreeEdges)

	return b.String()
}

func (a *app) bfsCmd() *cobra.Command {
	var start string
	cmd := &cobra.Command{
		Use:   "bfs [target]",
		Short: "Breadth-first traversal, optionally stopping at target",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd)
			if err != nil {
				return err
			}

			opts := []bfs.Option[string]{bfs.WithOnVisit(func(k string, d int) {
				a.logger.Debug("visit", "algorithm", "bfs", "key", k, "depth", d)
			})}
			if cmd.Flags().Changed("start") {
				opts = append(opts, bfs.WithStart(start))
			}

			var res *bfs.Result[string]
			if len(args) == 1 {
				res, err = bfs.Search(g, args[0], opts...)
			} else {
				res, err = bfs.Explore(g, opts...)
			}
			if err != nil {
				return err
			}

			rep := traversalReport{Root: res.Root, Order: res.Order, Found: res.Found, Depth: res.Depth, TreeEdges: res.Tree.Size()}
			return a.emit(cmd, rep, rep.text(len(args) == 1))
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "root vertex (default: first loaded node)")

	return cmd
}

func (a *app) dfsCmd() *cobra.Command {
	var start string
	cmd := &cobra.Command{
		Use:   "dfs [target]",
		Short: "Depth-first traversal, optionally stopping at target",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd)
			if err != nil {
				return err
			}

			opts := []dfs.Option[string]{dfs.WithOnVisit(func(k string, d int) {
				a.logger.Debug("visit", "algorithm", "dfs", "key", k, "depth", d)
			})}
			if cmd.Flags().Changed("start") {
				opts = append(opts, dfs.WithStart(start))
			}

			var res *dfs.Result[string]
			if len(args) == 1 {
				res, err = dfs.Search(g, args[0], opts...)
			} else {
				res, err = dfs.Explore(g, opts...)
			}
			if err != nil {
				return err
			}

			rep := traversalReport{Root: res.Root, Order: res.Order, Found: res.Found, Depth: res.Depth, TreeEdges: res.Tree.Size()}
			return a.emit(cmd, rep, rep.text(len(args) == 1))
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "root vertex (default: first loaded node)")

	return cmd
}

func (a *app) cycleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cycle",
		Short: "Report one cycle, if the graph has any",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(cmd)
			if err != nil {
				return err
			}
			cycle, ok, err := dfs.DetectCycle(g)
			if err != nil {
				return err
			}

			text := "acyclic\n"
			if ok {
				text = fmt.Sprintf("cycle: %v\n", cycle)
			}
			rep := struct {
				HasCycle bool     `yaml:"has_cycle"`
				Cycle    []string `yaml:"cycle"`
			}{ok, cycle}

			return a.emit(cmd, rep, text)
		},
	}
}

// --- shortest path ---

type pathReport struct {
	From   string   `yaml:"from"`
	To     string   `yaml:"to"`
	Method string   `yaml:"method"`
	Path   []string `yaml:"path"`
	Cost   float64  `yaml:"cost"`
}

func (a *app) pathCmd() *cobra.Command {
	var method, strategy string
	cmd := &cobra.Command{
		Use:   "path <start> <end>",
		Short: "Shortest path between two vertices",
		Long: `Shortest path between two vertices.

--method auto uses BFS when all weights are equal and Dijkstra otherwise.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("strategy") {
				strategy = a.cfg.Path.Strategy
			}

			rep := pathReport{From: args[0], To: args[1]}
			switch method {
			case "auto":
				res, err := shortest.Find(g, args[0], args[1])
				if err != nil {
					return err
				}
				rep.Method, rep.Path = string(res.Method), res.Path
			case "bfs":
				p, _, err := bfs.Path(g, args[0], args[1])
				if err != nil {
					return err
				}
				rep.Method, rep.Path = "bfs", p
			case "dijkstra":
				st, err := parseStrategy(strategy)
				if err != nil {
					return err
				}
				res, err := dijkstra.Dijkstra(g, args[0], args[1], dijkstra.WithStrategy(st))
				if err != nil {
					return err
				}
				rep.Method, rep.Path = "dijkstra", res.Path
			default:
				return fmt.Errorf("invalid --method %q (use: auto, bfs, dijkstra)", method)
			}
			rep.Cost = pathCost(g, rep.Path)
			a.logger.Debug("path computed", "method", rep.Method, "hops", max(len(rep.Path)-1, 0))

			if len(rep.Path) == 0 {
				return a.emit(cmd, rep, fmt.Sprintf("no path from %s to %s\n", rep.From, rep.To))
			}
			text := fmt.Sprintf("path: %v\nmethod: %s\ncost: %s\n", rep.Path, rep.Method, core.FormatNumber(rep.Cost))

			return a.emit(cmd, rep, text)
		},
	}
	cmd.Flags().StringVar(&method, "method", "auto", "algorithm (auto, bfs, dijkstra)")
	cmd.Flags().StringVar(&strategy, "strategy", "scan", "dijkstra vertex selection (scan, heap)")

	return cmd
}

func parseStrategy(s string) (dijkstra.Strategy, error) {
	switch s {
	case "scan":
		return dijkstra.StrategyScan, nil
	case "heap":
		return dijkstra.StrategyHeap, nil
	default:
		return 0, fmt.Errorf("%w: %q", dijkstra.ErrUnknownStrategy, s)
	}
}

// pathCost sums edge weights along p; an empty path costs 0.
func pathCost(g *core.Graph[string], p []string) float64 {
	var sum float64
	for i := 1; i < len(p); i++ {
		sum += g.Weight(p[i-1], p[i])
	}

	return sum
}

// --- mst ---

type edgeReport struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Weight float64 `yaml:"weight"`
}

func (a *app) mstCmd() *cobra.Command {
	var method string
	cmd := &cobra.Command{
		Use:   "mst",
		Short: "Minimum spanning tree (forest) of the graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("method") {
				method = a.cfg.MST.Method
			}

			t, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(method))
			if err != nil {
				return err
			}

			edges := t.Edges()
			rep := struct {
				Method string       `yaml:"method"`
				Total  float64      `yaml:"total"`
				Edges  []edgeReport `yaml:"edges"`
			}{Method: method, Total: t.TotalWeight(), Edges: make([]edgeReport, 0, len(edges))}
			for _, e := range edges {
				rep.Edges = append(rep.Edges, edgeReport{e.From, e.To, e.Weight})
			}

			text := fmt.Sprintf("%s total %s\n", method, core.FormatNumber(rep.Total))
			if len(edges) > 0 {
				text += core.EdgesString(edges) + "\n"
			}

			return a.emit(cmd, rep, text)
		},
	}
	cmd.Flags().StringVar(&method, "method", prim_kruskal.MethodKruskal, "algorithm (kruskal, prim)")

	return cmd
}

// --- connectivity and distances ---

func (a *app) componentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "List connected components, largest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(cmd)
			if err != nil {
				return err
			}
			comps, err := components.Components(g)
			if err != nil {
				return err
			}

			rep := struct {
				Count      int        `yaml:"count"`
				Components [][]string `yaml:"components"`
			}{len(comps), comps}

			return a.emit(cmd, rep, components.Format(comps))
		},
	}
}

func (a *app) distanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distance [source]",
		Short: "Mean distance and diameter, or distances from one source",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				ds, err := distance.Distances(g, args[0])
				if err != nil {
					return err
				}
				ecc, err := distance.Eccentricity(g, args[0])
				if err != nil {
					return err
				}
				rep := struct {
					Source       string `yaml:"source"`
					Distances    []int  `yaml:"distances"`
					Eccentricity int    `yaml:"eccentricity"`
				}{args[0], ds, ecc}
				text := fmt.Sprintf("distances: %v\neccentricity: %d\n", ds, ecc)

				return a.emit(cmd, rep, text)
			}

			mean, err := distance.MeanDistance(g)
			if err != nil {
				return err
			}
			diam, err := distance.Diameter(g)
			if err != nil {
				return err
			}
			rep := struct {
				MeanDistance float64 `yaml:"mean_distance"`
				Diameter     int     `yaml:"diameter"`
			}{mean, diam}
			text := fmt.Sprintf("mean distance: %s\ndiameter: %d\n", core.FormatNumber(mean), diam)

			return a.emit(cmd, rep, text)
		},
	}
}

// --- views ---

type matrixReport struct {
	Kind  string   `yaml:"kind"`
	Keys  []string `yaml:"keys"`
	Edges []string `yaml:"edges,omitempty"`
	Data  any      `yaml:"data"`
}

func (a *app) matrixCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Print an adjacency, incidence or all-pairs distance matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(cmd)
			if err != nil {
				return err
			}

			switch kind {
			case "adjacency":
				m, err := matrix.NewAdjacencyMatrix(g)
				if err != nil {
					return err
				}
				return a.emit(cmd, matrixReport{Kind: kind, Keys: m.Keys, Data: m.Data}, m.String()+"\n")

			case "incidence":
				m, err := matrix.NewIncidenceMatrix(g)
				if err != nil {
					return err
				}
				rep := matrixReport{Kind: kind, Keys: m.Keys, Data: m.Data}
				for _, e := range m.Edges {
					rep.Edges = append(rep.Edges, fmt.Sprintf("%s-%s", e.From, e.To))
				}
				var b strings.Builder
				fmt.Fprintf(&b, "edges: %v\n", rep.Edges)
				for i, k := range m.Keys {
					fmt.Fprintf(&b, "%s: %v\n", k, m.Data[i])
				}
				return a.emit(cmd, rep, b.String())

			case "distance":
				keys, d, err := matrix.AllPairs(g)
				if err != nil {
					return err
				}
				if d == nil {
					return a.emit(cmd, matrixReport{Kind: kind, Keys: keys, Data: [][]float64{}}, "[]\n")
				}
				n, _ := d.Dims()
				rows := make([][]float64, n)
				for i := range rows {
					rows[i] = mat.Row(nil, i, d)
				}
				text := fmt.Sprintf("keys: %v\n%v\n", keys, mat.Formatted(d, mat.Squeeze()))
				return a.emit(cmd, matrixReport{Kind: kind, Keys: keys, Data: rows}, text)

			default:
				return fmt.Errorf("invalid --kind %q (use: adjacency, incidence, distance)", kind)
			}
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "adjacency", "matrix kind (adjacency, incidence, distance)")

	return cmd
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the adjacency list in load order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(cmd)
			if err != nil {
				return err
			}
			rows, err := matrix.AdjacencyList(g)
			if err != nil {
				return err
			}

			type row struct {
				Key       string   `yaml:"key"`
				Neighbors []string `yaml:"neighbors"`
			}
			rep := make([]row, 0, len(rows))
			for _, r := range rows {
				rep = append(rep, row{r.Key, r.Neighbors})
			}

			return a.emit(cmd, rep, matrix.FormatAdjacencyList(rows))
		},
	}
}

func (a *app) exportCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the graph as Graphviz DOT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(cmd)
			if err != nil {
				return err
			}
			b, err := converters.MarshalDOT(g, name)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", b)

			return err
		},
	}
	cmd.Flags().StringVar(&name, "name", "G", "graph name in the DOT header")

	return cmd
}

// --- generation ---

func (a *app) generateCmd() *cobra.Command {
	var (
		seed       int64
		p          float64
		minW, maxW int
		ids        string
	)
	cmd := &cobra.Command{
		Use:   "generate <path|cycle|star|wheel|complete|grid|random> <n> [cols]",
		Short: "Generate a graph and print it in the re-loadable report format",
		Long: `Generate a graph and print it in the re-loadable report format.

grid takes rows and cols; random takes n and uses --p and --seed.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums := make([]int, 0, 2)
			for _, s := range args[1:] {
				v, err := strconv.Atoi(s)
				if err != nil {
					return fmt.Errorf("invalid size %q: %w", s, err)
				}
				nums = append(nums, v)
			}
			n := nums[0]

			var ctor builder.Constructor
			switch args[0] {
			case "path":
				ctor = builder.Path(n)
			case "cycle":
				ctor = builder.Cycle(n)
			case "star":
				ctor = builder.Star(n)
			case "wheel":
				ctor = builder.Wheel(n)
			case "complete":
				ctor = builder.Complete(n)
			case "grid":
				if len(nums) != 2 {
					return fmt.Errorf("grid needs rows and cols")
				}
				ctor = builder.Grid(n, nums[1])
			case "random":
				ctor = builder.RandomSparse(n, p)
			default:
				return fmt.Errorf("unknown topology %q", args[0])
			}

			opts := []builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(minW, maxW)}
			switch ids {
			case "default":
			case "symbol":
				opts = append(opts, builder.WithSymbolIDs())
			case "excel":
				opts = append(opts, builder.WithExcelColumnIDs())
			default:
				return fmt.Errorf("invalid --ids %q (use: default, symbol, excel)", ids)
			}
			if minW < 0 || maxW < minW {
				return fmt.Errorf("invalid weight range [%d, %d]", minW, maxW)
			}

			g, err := builder.BuildGraph(opts, ctor)
			if err != nil {
				return err
			}
			a.logger.Debug("graph generated", "topology", args[0], "nodes", g.Order(), "edges", g.Size())
			_, err = g.WriteTo(cmd.OutOrStdout())

			return err
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().Float64Var(&p, "p", 0.5, "edge probability for random graphs")
	cmd.Flags().IntVar(&minW, "min-weight", 1, "smallest edge weight")
	cmd.Flags().IntVar(&maxW, "max-weight", 1, "largest edge weight")
	cmd.Flags().StringVar(&ids, "ids", "default", "vertex ID scheme (default, symbol, excel)")

	return cmd
}
