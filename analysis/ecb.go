package analysis

// HasIdenticalBlocks returns true if any block in the buffer appears more than once.
func HasIdenticalBlocks(buf []byte, blockSize int) bool {
	m := make(map[string]bool)
	for _, block := range Subdivide(buf, blockSize) {
		s := string(block)
		if m[s] {
			return true
		}
		m[s] = true
	}
	return false
}

// IdenticalBlockLines returns the indices of the buffers that contain a repeated block.
func IdenticalBlockLines(bufs [][]byte, blockSize int) []int {
	var res []int
	for i, buf := range bufs {
		if HasIdenticalBlocks(buf, blockSize) {
			res = append(res, i)
		}
	}
	return res
}
