package bench

// Combinations returns the cartesian product of the given axes as a list
// of argument tuples. The first axis varies slowest and the last axis
// varies fastest, so ([a1 a2], [b1 b2]) yields (a1,b1), (a1,b2), (a2,b1),
// (a2,b2). An empty axis makes the product empty.
func Combinations(axes [][]any) [][]any {
	if len(axes) == 0 {
		return nil
	}
	total := 1
	for _, axis := range axes {
		if len(axis) == 0 {
			return nil
		}
		total *= len(axis)
	}

	out := make([][]any, 0, total)
	idx := make([]int, len(axes))
	for {
		tuple := make([]any, len(axes))
		for i, axis := range axes {
			tuple[i] = axis[idx[i]]
		}
		out = append(out, tuple)

		// Advance the odometer from the last axis.
		i := len(axes) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(axes[i]) {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			break
		}
	}
	return out
}
