package internal

// ReconstructPath follows parent links from current until isRoot holds and
// returns the visited nodes root-first, the root itself excluded.
func ReconstructPath[NodeType comparable](
	parents map[NodeType]NodeType,
	current NodeType,
	isRoot func(NodeType) bool,
) []NodeType {
	var path []NodeType
	for !isRoot(current) {
		path = append(path, current)
		previousNode, exists := parents[current]
		if !exists {
			break
		}
		current = previousNode
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
