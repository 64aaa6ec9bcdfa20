// Package graph models the image dependency DAG and computes build order.
package graph

import (
	"fmt"
	"sort"
	"strings"
)

// Graph is a directed graph where an edge points from a dependent image to
// the image it depends on. It is built once per run and only queried.
type Graph struct {
	deps map[string]map[string]bool
}

func New() *Graph {
	return &Graph{deps: map[string]map[string]bool{}}
}

// AddNode declares a node. Adding an existing node is a no-op.
func (g *Graph) AddNode(name string) {
	if _, ok := g.deps[name]; !ok {
		g.deps[name] = map[string]bool{}
	}
}

// AddEdge records that `from` depends on `to`. Both endpoints become nodes.
func (g *Graph) AddEdge(from, to string) {
	g.AddNode(from)
	g.AddNode(to)
	g.deps[from][to] = true
}

// HasNode reports whether name is a node in the graph.
func (g *Graph) HasNode(name string) bool {
	_, ok := g.deps[name]
	return ok
}

// CycleError is returned when no topological order exists.
type CycleError struct {
	// Nodes that could not be ordered. Every node in here is on, or
	// downstream of, a cycle.
	Nodes []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cycle detected in image dependencies involving: %s", strings.Join(e.Nodes, ", "))
}

// TopologicalOrder returns every node with each dependency placed before its
// dependents. The order among independent siblings is unspecified.
func (g *Graph) TopologicalOrder() ([]string, error) {
	return kahnOrder(g.deps)
}

// SubgraphOrder returns target plus its transitive dependencies in
// topological order. An unknown target yields an empty order and no error;
// the caller decides whether that is a validation failure.
func (g *Graph) SubgraphOrder(target string) ([]string, error) {
	if !g.HasNode(target) {
		return nil, nil
	}

	reachable := map[string]bool{}
	worklist := []string{target}
	for len(worklist) > 0 {
		node := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		if reachable[node] {
			continue
		}
		reachable[node] = true
		for dep := range g.deps[node] {
			worklist = append(worklist, dep)
		}
	}

	sub := map[string]map[string]bool{}
	for node := range reachable {
		sub[node] = g.deps[node]
	}
	return kahnOrder(sub)
}

// kahnOrder is Kahn's algorithm over a dependent→dependency adjacency map.
// Ready nodes are drained in sorted name order so runs are reproducible.
func kahnOrder(deps map[string]map[string]bool) ([]string, error) {
	remaining := map[string]int{}
	dependents := map[string][]string{}
	for node, nodeDeps := range deps {
		count := 0
		for dep := range nodeDeps {
			if _, ok := deps[dep]; ok {
				count++
				dependents[dep] = append(dependents[dep], node)
			}
		}
		remaining[node] = count
	}

	var ready []string
	for node, count := range remaining {
		if count == 0 {
			ready = append(ready, node)
		}
	}
	sort.Strings(ready)

	order := make([]string, 0, len(deps))
	for len(ready) > 0 {
		node := ready[0]
		ready = ready[1:]
		order = append(order, node)
		delete(remaining, node)

		var freed []string
		for _, dependent := range dependents[node] {
			remaining[dependent]--
			if remaining[dependent] == 0 {
				freed = append(freed, dependent)
			}
		}
		sort.Strings(freed)
		ready = append(ready, freed...)
	}

	if len(remaining) > 0 {
		stuck := make([]string, 0, len(remaining))
		for node := range remaining {
			stuck = append(stuck, node)
		}
		sort.Strings(stuck)
		return nil, &CycleError{Nodes: stuck}
	}
	return order, nil
}
