package janggi

// Path 是空盘上一条几何可行的走法路径：不含起点，最后一个元素是终点。
// 中途格子是否被占、炮有没有炮架，都留给 findPath 去过滤。
type Path []int

// generatePaths 按兵种生成全部候选路径。七个兵种是封闭集合，不做扩展。
func generatePaths(k PieceKind, side Side, from int) []Path {
	switch k {
	case KindSoldier:
		return soldierPaths(side, from)
	case KindHorse:
		return horsePaths(from)
	case KindElephant:
		return elephantPaths(from)
	case KindGeneral, KindGuard:
		return palacePaths(from)
	case KindChariot, KindCannon:
		// 包的几何和车完全一样，跳吃规则在校验阶段管
		return slidePaths(from)
	}
	return nil
}
