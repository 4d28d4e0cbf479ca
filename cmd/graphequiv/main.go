// Command graphequiv compares two graphs and reports whether they are
// structurally equivalent from their comparison root, using one of the
// engine's named strategies. Each side is loaded from an adjacency-list
// file (-a/-b) or generated as a canned topology (-a-shape/-b-shape); the
// two sides may mix sources freely.
//
// File format: one vertex per line, "<id> <neighbor-id> <neighbor-id>...",
// whitespace-separated, in edge order. The first line's vertex is the
// comparison root.
//
// Shape format: "<topology>:<n>", e.g. "cycle:6" or "wheel:9". Supported
// topologies: complete, cycle, path, star, wheel.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/derickeddington/graphequiv/descend/randsrc"
	"github.com/derickeddington/graphequiv/node"
	"github.com/derickeddington/graphequiv/strategy"
)

func main() {
	var (
		pathA         = flag.String("a", "", "path to the first graph's adjacency-list file")
		pathB         = flag.String("b", "", "path to the second graph's adjacency-list file")
		shapeA        = flag.String("a-shape", "", "canned topology for the first graph, e.g. cycle:6 (overrides -a)")
		shapeB        = flag.String("b-shape", "", "canned topology for the second graph, e.g. wheel:9 (overrides -b)")
		strategyName  = flag.String("strategy", "robust", "basic|basic-limited|deep-safe|cycle-safe|cycle-safe-precheck|robust|robust-precheck")
		precheckLimit = flag.Int("precheck-limit", 0, "override the precheck phase's descent limit (0 keeps the package default)")
		seed          = flag.Int64("seed", 0, "seed for the interleave mode's jitter source (0 keeps the package default)")
	)
	flag.Parse()

	rootA, err := resolveSide(*pathA, *shapeA)
	if err != nil {
		log.Fatalf("graphequiv: %v", err)
	}

	rootB, err := resolveSide(*pathB, *shapeB)
	if err != nil {
		log.Fatalf("graphequiv: %v", err)
	}

	opts := strategyOptions(*precheckLimit, *seed)

	equivalent, aborted, err := run(*strategyName, rootA, rootB, opts)
	if err != nil {
		log.Fatalf("graphequiv: unknown strategy %q", *strategyName)
	}

	switch {
	case aborted:
		fmt.Println("aborted: descent limit reached")
		os.Exit(2)
	case equivalent:
		fmt.Println("equivalent")
	default:
		fmt.Println("not-equivalent")
		os.Exit(1)
	}
}

// resolveSide loads a comparison endpoint from a file path, or from a
// "<topology>:<n>" canned-shape spec when shape is non-empty; shape wins
// when both are given.
func resolveSide(path, shape string) (*vertex, error) {
	if shape != "" {
		topology, countStr, ok := strings.Cut(shape, ":")
		if !ok {
			return nil, fmt.Errorf("shape %q must be \"<topology>:<n>\"", shape)
		}

		n, err := strconv.Atoi(countStr)
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", shape, err)
		}

		adj, root, err := buildCanned(topology, n)
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", shape, err)
		}

		return adj.nodeAt(root), nil
	}

	if path == "" {
		return nil, fmt.Errorf("one of a file path or a -*-shape spec is required")
	}

	adj, root, err := loadGraph(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	return adj.nodeAt(root), nil
}

func strategyOptions(precheckLimit int, seed int64) []strategy.Option {
	var opts []strategy.Option

	if precheckLimit > 0 {
		opts = append(opts, strategy.WithPrecheckLimit(int32(precheckLimit)))
	}

	if seed != 0 {
		opts = append(opts, strategy.WithRandSource(randsrc.Default(seed)))
	}

	return opts
}

// run dispatches to the named strategy, reporting aborted=true only for
// basic-limited, the one variant that can return equiv.ErrAborted (run
// here with a limit of math.MaxInt32).
func run(name string, a, b *vertex, opts []strategy.Option) (equivalent, aborted bool, err error) {
	switch name {
	case "basic":
		return strategy.BasicEquiv(a, b), false, nil

	case "basic-limited":
		r, cmpErr := strategy.BasicLimitedEquiv(math.MaxInt32, a, b)
		if cmpErr != nil {
			return false, true, nil
		}

		return r.IsEquivalent(), false, nil

	case "deep-safe":
		return strategy.DeepSafeEquiv(a, b, opts...), false, nil

	case "cycle-safe":
		return strategy.CycleSafeEquiv(a, b, opts...), false, nil

	case "cycle-safe-precheck":
		return strategy.CycleSafePrecheckEquiv(a, b, opts...), false, nil

	case "robust":
		return strategy.RobustEquiv(a, b, opts...), false, nil

	case "robust-precheck":
		return strategy.RobustPrecheckEquiv(a, b, opts...), false, nil

	default:
		return false, false, fmt.Errorf("graphequiv: unrecognized strategy %q", name)
	}
}

// vertex adapts one loaded graph's string-keyed adjacency into node.Node.
type vertex struct {
	id  string
	adj *adjacency
}

// vertexKey identifies a vertex within its own loaded graph, so that
// same-named vertices of the two compared graphs never share an identity.
type vertexKey struct {
	adj *adjacency
	id  string
}

func (v *vertex) ID() vertexKey { return vertexKey{adj: v.adj, id: v.id} }

func (v *vertex) AmountEdges() int { return len(v.adj.neighbors[v.id]) }

func (v *vertex) GetEdge(i int) *vertex {
	return v.adj.nodeAt(v.adj.neighbors[v.id][i])
}

// EquivModuloEdges reports agreement only on edge count: these vertices
// carry no data of their own, so structural shape is everything.
func (v *vertex) EquivModuloEdges(other *vertex) node.Bool {
	return node.Bool(len(v.adj.neighbors[v.id]) == len(other.adj.neighbors[other.id]))
}

// adjacency is a parsed graph file: every vertex's ordered neighbor list.
type adjacency struct {
	neighbors map[string][]string
}

func (a *adjacency) nodeAt(id string) *vertex {
	return &vertex{id: id, adj: a}
}

func loadGraph(path string) (*adjacency, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	adj := &adjacency{neighbors: make(map[string][]string)}

	var root string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if root == "" {
			root = fields[0]
		}

		adj.neighbors[fields[0]] = fields[1:]
	}

	if err := scanner.Err(); err != nil {
		return nil, "", err
	}

	if root == "" {
		return nil, "", fmt.Errorf("graphequiv: %s contains no vertices", path)
	}

	return adj, root, nil
}
