package mcis

import "testing"

func TestBuildRootDomains_Unlabelled(t *testing.T) {
	graphs := []*Graph{cycleGraph(4), completeGraph(5)}
	buffers, domains := buildRootDomains(graphs, false)

	if len(domains) != 1 {
		t.Fatalf("expected one root multidomain when VertexLabelled=false, got %d", len(domains))
	}
	md := domains[0]
	if md.isAdjacent {
		t.Fatalf("root multidomain must start with isAdjacent=false")
	}
	if md.length[0] != 4 || md.length[1] != 5 {
		t.Fatalf("unexpected root lengths: %v", md.length)
	}
	if len(buffers[0]) != 4 || len(buffers[1]) != 5 {
		t.Fatalf("unexpected buffer sizes: %v", buffers)
	}
}

func TestBuildRootDomains_VertexLabelled(t *testing.T) {
	a := &Graph{N: 3, Adj: make([]uint32, 9), Label: []uint32{0, 1, 0}}
	b := &Graph{N: 2, Adj: make([]uint32, 4), Label: []uint32{1, 1}}

	buffers, domains := buildRootDomains([]*Graph{a, b}, true)

	// Only label 1 is common to both graphs.
	if len(domains) != 1 {
		t.Fatalf("expected one common-label domain, got %d", len(domains))
	}
	md := domains[0]
	if md.length[0] != 1 || md.length[1] != 2 {
		t.Fatalf("unexpected lengths for label 1: %v", md.length)
	}
	if buffers[0][md.start[0]] != 1 {
		t.Fatalf("expected vertex 1 (the only label-1 vertex in a), got %d", buffers[0][md.start[0]])
	}
}

func TestBuildRootDomains_NoCommonLabel(t *testing.T) {
	a := &Graph{N: 1, Adj: make([]uint32, 1), Label: []uint32{0}}
	b := &Graph{N: 1, Adj: make([]uint32, 1), Label: []uint32{1}}

	_, domains := buildRootDomains([]*Graph{a, b}, true)
	if len(domains) != 0 {
		t.Fatalf("expected no domains when graphs share no label, got %d", len(domains))
	}
}

func TestCloneBuffersAndDomains_Independent(t *testing.T) {
	buffers := [][]int{{0, 1, 2}, {0, 1}}
	clone := cloneBuffers(buffers)
	clone[0][0] = 99
	if buffers[0][0] == 99 {
		t.Fatalf("cloneBuffers aliased the original backing array")
	}

	md := &multidomain{start: []int{0, 0}, length: []int{3, 2}, isAdjacent: true}
	domains := []*multidomain{md}
	cloned := cloneDomains(domains)
	cloned[0].length[0] = 0
	if md.length[0] != 3 {
		t.Fatalf("cloneDomains aliased the original multidomain")
	}
}
