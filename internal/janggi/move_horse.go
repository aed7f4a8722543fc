package janggi

// 马的 8 条“先直后斜”模板：中继格 + 终点
var horseSteps = [8]struct {
	Mr, Mc int // 中继格
	Dr, Dc int // 终点
}{
	{-1, 0, -2, +1},
	{-1, 0, -2, -1},
	{0, +1, -1, +2},
	{0, +1, +1, +2},
	{0, -1, -1, -2},
	{0, -1, +1, -2},
	{+1, 0, +2, +1},
	{+1, 0, +2, -1},
}

// 马：直一步再斜一步，两步必须都在盘内，走不完整条就整条作废
func horsePaths(from int) []Path {
	row, col := rowOf(from), colOf(from)
	var out []Path
	for _, m := range horseSteps {
		mr, mc := row+m.Mr, col+m.Mc
		dr, dc := row+m.Dr, col+m.Dc
		if !onBoard(mr, mc) || !onBoard(dr, dc) {
			continue
		}
		out = append(out, Path{indexOf(mr, mc), indexOf(dr, dc)})
	}
	return out
}
