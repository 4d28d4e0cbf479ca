package main

import "fmt"

// buildCanned constructs a named topology as an adjacency, the same
// representation loadGraph produces, so a canned shape and a file-loaded
// graph compare as the same node.Node implementation. Each builder emits
// vertices and a symmetric neighbor list in a stable, deterministic order,
// the convention this CLI's file format also assumes for undirected graphs.
// Supported shapes: complete:N, cycle:N, path:N, star:N, wheel:N.
func buildCanned(shape string, n int) (*adjacency, string, error) {
	switch shape {
	case "complete":
		return buildComplete(n)
	case "cycle":
		return buildCycle(n)
	case "path":
		return buildPath(n)
	case "star":
		return buildStar(n)
	case "wheel":
		return buildWheel(n)
	default:
		return nil, "", fmt.Errorf("unrecognized shape %q", shape)
	}
}

func decimalID(i int) string { return fmt.Sprintf("%d", i) }

func newAdjacency(ids []string) *adjacency {
	adj := &adjacency{neighbors: make(map[string][]string, len(ids))}
	for _, id := range ids {
		adj.neighbors[id] = nil
	}

	return adj
}

// link records an undirected edge: u gains v as a neighbor and vice versa.
func link(adj *adjacency, u, v string) {
	adj.neighbors[u] = append(adj.neighbors[u], v)
	adj.neighbors[v] = append(adj.neighbors[v], u)
}

// buildComplete builds the complete simple graph K_n (n >= 1): every
// unordered pair {i,j}, i<j, gets exactly one edge.
func buildComplete(n int) (*adjacency, string, error) {
	if n < 1 {
		return nil, "", fmt.Errorf("complete:%d needs n >= 1", n)
	}

	ids := make([]string, n)
	for i := range ids {
		ids[i] = decimalID(i)
	}

	adj := newAdjacency(ids)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			link(adj, ids[i], ids[j])
		}
	}

	return adj, ids[0], nil
}

// buildCycle builds an n-vertex simple cycle C_n (n >= 3).
func buildCycle(n int) (*adjacency, string, error) {
	if n < 3 {
		return nil, "", fmt.Errorf("cycle:%d needs n >= 3", n)
	}

	ids := make([]string, n)
	for i := range ids {
		ids[i] = decimalID(i)
	}

	adj := newAdjacency(ids)
	for i := 0; i < n; i++ {
		link(adj, ids[i], ids[(i+1)%n])
	}

	return adj, ids[0], nil
}

// buildPath builds a simple path P_n (n >= 2).
func buildPath(n int) (*adjacency, string, error) {
	if n < 2 {
		return nil, "", fmt.Errorf("path:%d needs n >= 2", n)
	}

	ids := make([]string, n)
	for i := range ids {
		ids[i] = decimalID(i)
	}

	adj := newAdjacency(ids)
	for i := 0; i < n-1; i++ {
		link(adj, ids[i], ids[i+1])
	}

	return adj, ids[0], nil
}

// buildStar builds a star with hub "Center" and n-1 leaves (n >= 2).
func buildStar(n int) (*adjacency, string, error) {
	if n < 2 {
		return nil, "", fmt.Errorf("star:%d needs n >= 2", n)
	}

	ids := make([]string, n)
	ids[0] = "Center"
	for i := 1; i < n; i++ {
		ids[i] = decimalID(i - 1)
	}

	adj := newAdjacency(ids)
	for i := 1; i < n; i++ {
		link(adj, "Center", ids[i])
	}

	return adj, "Center", nil
}

// buildWheel builds a wheel W_n = C_{n-1} + "Center" (n >= 4).
func buildWheel(n int) (*adjacency, string, error) {
	if n < 4 {
		return nil, "", fmt.Errorf("wheel:%d needs n >= 4", n)
	}

	rim := make([]string, n-1)
	for i := range rim {
		rim[i] = decimalID(i)
	}

	adj := newAdjacency(append(append([]string{}, rim...), "Center"))
	for i := range rim {
		link(adj, rim[i], rim[(i+1)%len(rim)])
		link(adj, "Center", rim[i])
	}

	return adj, "Center", nil
}
