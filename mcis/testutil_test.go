package mcis

// cycleGraph returns an undirected, unlabelled C_n (n>=3).
func cycleGraph(n int) *Graph {
	adj := make([]uint32, n*n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		adj[i*n+j] = 1
		adj[j*n+i] = 1
	}

	return &Graph{N: n, Adj: adj, Label: make([]uint32, n)}
}

// pathGraph returns an undirected, unlabelled P_n (n>=2).
func pathGraph(n int) *Graph {
	adj := make([]uint32, n*n)
	for i := 0; i < n-1; i++ {
		adj[i*n+(i+1)] = 1
		adj[(i+1)*n+i] = 1
	}

	return &Graph{N: n, Adj: adj, Label: make([]uint32, n)}
}

// completeGraph returns an undirected, unlabelled K_n.
func completeGraph(n int) *Graph {
	adj := make([]uint32, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				adj[i*n+j] = 1
			}
		}
	}

	return &Graph{N: n, Adj: adj, Label: make([]uint32, n)}
}
