package circls

// FlattenAlongRows walks m row by row, left to right, recentering the a
// and b channels (subtracting 128, the neutral-chroma midpoint) so the
// detector's thresholds are symmetric around zero.
func FlattenAlongRows(m *LabMatrix) []LabPixel {
	out := make([]LabPixel, 0, m.Rows()*m.Cols())
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			out = append(out, recenter(m.At(r, c)))
		}
	}
	return out
}

// FlattenAlongCols walks m column by column, top to bottom, with the
// same recentering as FlattenAlongRows.
func FlattenAlongCols(m *LabMatrix) []LabPixel {
	out := make([]LabPixel, 0, m.Rows()*m.Cols())
	for c := 0; c < m.Cols(); c++ {
		for r := 0; r < m.Rows(); r++ {
			out = append(out, recenter(m.At(r, c)))
		}
	}
	return out
}

func recenter(p LabPixel) LabPixel {
	return LabPixel{L: p.L, A: p.A - 128, B: p.B - 128}
}
