package circls

// LabPixel is one CIE L*a*b* sample: lightness plus the two chroma
// channels used by the symbol detector.
type LabPixel struct {
	L, A, B float64
}

// LabMatrix is a strided view over a flat Lab buffer, replacing the
// original code's raw pointer arithmetic (ptr + row*stride + col) with
// explicit row/element strides so the same buffer can be walked by row,
// by column, or skipping channels, without copying.
type LabMatrix struct {
	data       []LabPixel
	rows, cols int
	rowStride  int // elements between the start of successive rows
	elemStride int // elements between successive columns in a row
}

// NewLabMatrix builds a row-major, densely packed LabMatrix over data,
// which must hold at least rows*cols elements.
func NewLabMatrix(data []LabPixel, rows, cols int) (*LabMatrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, newErr(BadLength, "matrix dimensions must be positive, got %dx%d", rows, cols)
	}
	if len(data) < rows*cols {
		return nil, newErr(BadLength, "matrix data has %d elements, need %d", len(data), rows*cols)
	}
	return &LabMatrix{data: data, rows: rows, cols: cols, rowStride: cols, elemStride: 1}, nil
}

// Rows and Cols report the matrix dimensions.
func (m *LabMatrix) Rows() int { return m.rows }
func (m *LabMatrix) Cols() int { return m.cols }

// At returns the pixel at (row, col).
func (m *LabMatrix) At(row, col int) LabPixel {
	return m.data[row*m.rowStride+col*m.elemStride]
}

// Row returns a view of row r as a strided 1-D sequence, reusing the
// backing array.
func (m *LabMatrix) Row(r int) *LabMatrix {
	start := r * m.rowStride
	return &LabMatrix{
		data:       m.data[start : start+(m.cols-1)*m.elemStride+1],
		rows:       1,
		cols:       m.cols,
		rowStride:  m.rowStride,
		elemStride: m.elemStride,
	}
}

// Col returns a view of column c as a strided 1-D sequence, reusing the
// backing array.
func (m *LabMatrix) Col(c int) *LabMatrix {
	start := c * m.elemStride
	return &LabMatrix{
		data:       m.data[start : start+(m.rows-1)*m.rowStride+1],
		rows:       m.rows,
		cols:       1,
		rowStride:  m.rowStride,
		elemStride: m.elemStride,
	}
}
