package janggi

// 象的 8 条“直一斜二”模板：两个中继格 + 终点
var elephantSteps = [8][3][2]int{
	{{-1, 0}, {-2, +1}, {-3, +2}},
	{{-1, 0}, {-2, -1}, {-3, -2}},
	{{0, +1}, {-1, +2}, {-2, +3}},
	{{0, +1}, {+1, +2}, {+2, +3}},
	{{0, -1}, {-1, -2}, {-2, -3}},
	{{0, -1}, {+1, -2}, {+2, -3}},
	{{+1, 0}, {+2, +1}, {+3, +2}},
	{{+1, 0}, {+2, -1}, {+3, -2}},
}

// 象：直一步再顺向斜两步，三步都要在盘内
func elephantPaths(from int) []Path {
	row, col := rowOf(from), colOf(from)
	var out []Path
	for _, tpl := range elephantSteps {
		p := make(Path, 0, 3)
		ok := true
		for _, d := range tpl {
			r, c := row+d[0], col+d[1]
			if !onBoard(r, c) {
				ok = false
				break
			}
			p = append(p, indexOf(r, c))
		}
		if ok {
			out = append(out, p)
		}
	}
	return out
}
