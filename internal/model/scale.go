package model

// Scale rescales a batch of optional signal values onto [0,1], preserving
// length and order. Missing values (nil) always map to 0: no evidence, no
// credit. A batch with no spread maps every present value to the neutral
// 0.5 — a flat signal is uninformative, not maximal.
func Scale(values []*float64) []float64 {
	out := make([]float64, len(values))

	var vmin, vmax float64
	clean := 0
	for _, v := range values {
		if v == nil {
			continue
		}
		if clean == 0 || *v < vmin {
			vmin = *v
		}
		if clean == 0 || *v > vmax {
			vmax = *v
		}
		clean++
	}

	if clean == 0 {
		return out
	}

	if vmin == vmax {
		for i, v := range values {
			if v != nil {
				out[i] = 0.5
			}
		}
		return out
	}

	for i, v := range values {
		if v != nil {
			out[i] = (*v - vmin) / (vmax - vmin)
		}
	}
	return out
}
