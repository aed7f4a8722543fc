package janggi

// 兵：向前一格或横走一格，永远不许后退；
// 打进对方九宫后，站在有斜线的格子上还可以沿斜线前进一格。
func soldierPaths(side Side, from int) []Path {
	row, col := rowOf(from), colOf(from)
	dir := soldierDir(side)

	steps := [][2]int{{dir, 0}, {0, +1}, {0, -1}}
	if diag, ok := soldierDiagDirs[side][from]; ok {
		steps = append(steps, diag...)
	}

	var out []Path
	for _, d := range steps {
		r, c := row+d[0], col+d[1]
		if !onBoard(r, c) {
			continue
		}
		out = append(out, Path{indexOf(r, c)})
	}
	return out
}
