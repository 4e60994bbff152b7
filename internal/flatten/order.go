package flatten

import (
	"fmt"
	"sort"

	"flatten-generator/internal/schema"
)

// DependencyOrder reorders definitions so every flatten target defined in
// the same batch comes before its hosts, letting callers feed unordered
// inputs to a pass. Targets not defined in the batch (e.g., seeded into
// the registry from compiled packages) impose no constraint and are left
// for the pass itself to resolve.
//
// The result is deterministic: among definitions whose dependencies are
// satisfied, input order wins. A reference cycle inside the batch is a
// CycleError naming the blocked definitions.
func DependencyOrder(defs []schema.StructDefinition) ([]schema.StructDefinition, error) {
	index := make(map[string]int, len(defs))
	for i := range defs {
		// First definition wins the name; a duplicate is the pass's
		// problem, not the sorter's.
		if _, seen := index[defs[i].Name]; !seen {
			index[defs[i].Name] = i
		}
	}

	order, blocked, err := topoSort(len(defs), func(i int) []int {
		var deps []int

		for _, target := range defs[i].FlattenTargets() {
			if j, ok := index[target]; ok && j != i {
				deps = append(deps, j)
			}
		}

		return deps
	})
	if err != nil {
		return nil, err
	}

	if len(blocked) > 0 {
		members := make([]string, len(blocked))
		for i, j := range blocked {
			members[i] = defs[j].Name
		}

		return nil, &CycleError{Members: members}
	}

	sorted := make([]schema.StructDefinition, len(order))
	for i, j := range order {
		sorted[i] = defs[j]
	}

	return sorted, nil
}

// topoSort returns node indices in dependency order.
//
// depsFn(i) yields indices that must come before i. When multiple nodes
// are available the smallest index is picked, so ties keep input order.
// Nodes left in a cycle are returned in blocked, sorted by index.
func topoSort(n int, depsFn func(i int) []int) (order, blocked []int, err error) {
	if n <= 0 {
		return nil, nil, nil
	}

	indeg := make([]int, n)
	out := make([][]int, n)

	for i := 0; i < n; i++ {
		for _, d := range depsFn(i) {
			if d < 0 || d >= n {
				return nil, nil, fmt.Errorf("dependency index out of range: %d depends on %d", i, d)
			}

			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	// Deterministic traversal.
	for i := range out {
		sort.Ints(out[i])
	}

	var ready []int

	for i := 0; i < n; i++ {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	sort.Ints(ready)

	order = make([]int, 0, n)

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]

		order = append(order, i)
		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 {
				// Insert while keeping ready sorted.
				k := sort.SearchInts(ready, j)
				ready = append(ready, 0)
				copy(ready[k+1:], ready[k:])
				ready[k] = j
			}
		}
	}

	if len(order) != n {
		for i := 0; i < n; i++ {
			if indeg[i] > 0 {
				blocked = append(blocked, i)
			}
		}
	}

	return order, blocked, nil
}
