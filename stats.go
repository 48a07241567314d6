package morse

// Stats reports size metrics of a trie.
type Stats struct {
	Nodes    int // all nodes, including the root
	Assigned int // nodes carrying a character
	MaxDepth int // length of the longest code path
}

// FillRatio is the share of nodes which carry a character.
func (s Stats) FillRatio() float64 {
	if s.Nodes == 0 {
		return 0
	}
	return float64(s.Assigned) / float64(s.Nodes)
}

// Stats collects size metrics for t.
func (t *Trie) Stats() Stats {
	var stats Stats
	if t.Empty() {
		return stats
	}
	t.collect(root, 0, &stats)
	return stats
}

func (t *Trie) collect(n int32, depth int, stats *Stats) {
	if n == absent {
		return
	}
	stats.Nodes++
	if t.nodes[n].assigned {
		stats.Assigned++
	}
	stats.MaxDepth = max(stats.MaxDepth, depth)
	t.collect(t.nodes[n].left, depth+1, stats)
	t.collect(t.nodes[n].right, depth+1, stats)
}
