package naive

import "github.com/go-graphs/moddecomp/graph"

// ComputeImplicationMatrix builds the n*n implication matrix A:
// A[i][j] (symmetric, zero on the diagonal) holds the
// index of the implication class shared by edge {i,j}, or zero if {i,j}
// is not (yet) assigned one. Class indices start at 1.
//
// Classes are found by BFS over the forcing relation: two edges (u,v)
// and (u,w) belong to the same class whenever v and w are not adjacent
// in the working copy (the neighborhood-difference loops below). Each
// edge is processed at most once; a working copy of the adjacency is
// pruned as edges are consumed so a later outer iteration never
// revisits an already-classified edge.
func ComputeImplicationMatrix(ix *graph.Indexed) [][]int {
	n := ix.N()
	a := make([][]int, n)
	for i := range a {
		a[i] = make([]int, n)
	}

	working := make([]map[int]struct{}, n)
	for i := 0; i < n; i++ {
		working[i] = make(map[int]struct{})
		for _, j := range ix.Neighbors(i) {
			working[i][j] = struct{}{}
		}
	}

	label := 0
	for u := 0; u < n; u++ {
		for _, v := range ix.Neighbors(u) {
			if v <= u || a[u][v] != 0 {
				continue
			}
			label++

			queue := [][2]int{{u, v}}
			var consumed [][2]int
			for len(queue) > 0 {
				pair := queue[0]
				queue = queue[1:]
				x, y := pair[0], pair[1]
				if a[x][y] != 0 {
					continue
				}
				a[x][y], a[y][x] = label, label
				consumed = append(consumed, pair)

				for c := range working[x] {
					if _, ok := working[y][c]; !ok {
						if p, q := orderedPair(x, c); a[p][q] == 0 {
							queue = append(queue, [2]int{p, q})
						}
					}
				}
				for d := range working[y] {
					if _, ok := working[x][d]; !ok {
						if p, q := orderedPair(y, d); a[p][q] == 0 {
							queue = append(queue, [2]int{p, q})
						}
					}
				}
			}

			for _, p := range consumed {
				delete(working[p[0]], p[1])
				delete(working[p[1]], p[0])
			}
		}
	}

	return a
}

func orderedPair(x, y int) (int, int) {
	if x < y {
		return x, y
	}
	return y, x
}
