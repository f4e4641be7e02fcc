package tables

// matrix is a dense (rows x cols) table of suffix scores.
type matrix struct {
	cols  int
	cells []int32
}

func newMatrix(rows, cols int) matrix {
	return matrix{cols: cols, cells: make([]int32, rows*cols)}
}

func (m matrix) at(a, b int) int32 {
	return m.cells[a*m.cols+b]
}

func (m matrix) set(a, b int, v int32) {
	m.cells[a*m.cols+b] = v
}

// scoreMatrix returns the (m+1)x(n+1) table whose cell (a, b) holds the
// LCS length of s1[a+1:] and s2[b+1:]. The shift by one means a cell
// scores what can still be matched after positions a and b.
func scoreMatrix(s1, s2 []int32) matrix {
	m, n := len(s1), len(s2)
	out := newMatrix(m+1, n+1)
	if m == 0 || n == 0 {
		return out
	}
	for i := m - 2; i >= 0; i-- {
		for j := n - 2; j >= 0; j-- {
			if s1[i+1] == s2[j+1] {
				out.set(i, j, out.at(i+1, j+1)+1)
				continue
			}
			out.set(i, j, max(out.at(i, j+1), out.at(i+1, j)))
		}
	}
	return out
}
