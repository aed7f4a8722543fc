package janggi

// 车（和包）：四个直线方向上每个长度各出一条路径，长路径是短路径多一格；
// 校验时按终点挑中那条，路径里自带全部中途格。
// 起点在宫内斜线格上时，还有沿斜线走一格或两格的路径。
func slidePaths(from int) []Path {
	row, col := rowOf(from), colOf(from)
	var out []Path

	for _, d := range orthoDirs {
		var ray Path
		r, c := row+d[0], col+d[1]
		for onBoard(r, c) {
			ray = append(ray, indexOf(r, c))
			out = append(out, append(Path(nil), ray...))
			r += d[0]
			c += d[1]
		}
	}

	for _, d := range palaceDiagDirs[from] {
		r1, c1 := row+d[0], col+d[1]
		s1 := indexOf(r1, c1)
		out = append(out, Path{s1})
		// 宫心出发再走一格就出宫了，只有角上才有两格的斜线
		r2, c2 := r1+d[0], c1+d[1]
		if onBoard(r2, c2) && inPalace(r2, c2) {
			out = append(out, Path{s1, indexOf(r2, c2)})
		}
	}

	return out
}
