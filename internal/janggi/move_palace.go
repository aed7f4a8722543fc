package janggi

// 将和士走法相同：九宫内横竖一格，站在有斜线的格子上还能沿斜线一格。
// 候选必须同时在盘内且在九宫内。
func palacePaths(from int) []Path {
	row, col := rowOf(from), colOf(from)

	steps := make([][2]int, 0, 8)
	for _, d := range orthoDirs {
		steps = append(steps, d)
	}
	if diag, ok := palaceDiagDirs[from]; ok {
		steps = append(steps, diag...)
	}

	var out []Path
	for _, d := range steps {
		r, c := row+d[0], col+d[1]
		if !onBoard(r, c) || !inPalace(r, c) {
			continue
		}
		out = append(out, Path{indexOf(r, c)})
	}
	return out
}
