package mirex

// Matrix is a dense row-major score matrix. Dimensions are fixed at
// construction; a matrix with zero rows or columns is valid and represents
// the comparison of empty pattern lists. Indexing is unchecked: all indices
// inside this package come from loop bounds over the matrix's own shape.
type Matrix struct {
	rows, cols int
	data       []float64 // flat row-major buffer, offset = row*cols + col
}

// NewMatrix returns a zero-initialized rows × cols matrix. Negative
// dimensions are clamped to zero.
func NewMatrix(rows, cols int) *Matrix {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}

	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// At returns the entry at (row, col).
func (m *Matrix) At(row, col int) float64 { return m.data[row*m.cols+col] }

// Set writes the entry at (row, col).
func (m *Matrix) Set(row, col int, v float64) { m.data[row*m.cols+col] = v }

// IsEmpty reports whether the matrix has no entries.
func (m *Matrix) IsEmpty() bool { return m.rows == 0 || m.cols == 0 }

// Max returns the largest entry, or 0.0 for an empty matrix.
func (m *Matrix) Max() float64 {
	max := 0.0
	for i, v := range m.data {
		if i == 0 || v > max {
			max = v
		}
	}

	return max
}

// RowMaxes returns the per-row maxima (the best column match for each row).
func (m *Matrix) RowMaxes() []float64 {
	if m.IsEmpty() {
		return nil
	}

	maxes := make([]float64, m.rows)
	for r := 0; r < m.rows; r++ {
		maxes[r] = m.At(r, 0)
		for c := 1; c < m.cols; c++ {
			if v := m.At(r, c); v > maxes[r] {
				maxes[r] = v
			}
		}
	}

	return maxes
}

// ColMaxes returns the per-column maxima (the best row match for each
// column).
func (m *Matrix) ColMaxes() []float64 {
	if m.IsEmpty() {
		return nil
	}

	maxes := make([]float64, m.cols)
	for c := 0; c < m.cols; c++ {
		maxes[c] = m.At(0, c)
		for r := 1; r < m.rows; r++ {
			if v := m.At(r, c); v > maxes[c] {
				maxes[c] = v
			}
		}
	}

	return maxes
}

// mean returns the arithmetic mean of vs, or 0.0 for an empty slice. No
// comparisons exist over an empty axis, so the metric contribution is zero
// rather than NaN.
func mean(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range vs {
		sum += v
	}

	return sum / float64(len(vs))
}

// meanNonZero returns the mean of the non-zero entries of vs, or 0.0 when
// every entry is zero. Zero entries are discarded before averaging: a group
// with no qualifying match contributes nothing, not a zero penalty.
func meanNonZero(vs []float64) float64 {
	sum, n := 0.0, 0
	for _, v := range vs {
		if v != 0 {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}

	return sum / float64(n)
}
