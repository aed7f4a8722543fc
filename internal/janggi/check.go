package janggi

// threat 记录一个正在叫将的敌子：它的位置和它吃到将的整条路径
type threat struct {
	from int
	path Path
}

func (b *Board) generalSquare(side Side) int {
	for sq, pc := range b.Squares {
		if pc != 0 && pc.Side() == side && pc.Kind() == KindGeneral {
			return sq
		}
	}
	return -1
}

// threatsAgainst 用走法模拟找威胁：任何一个敌子能合法走到我方将的格子，就算一个威胁
func (b *Board) threatsAgainst(side Side) []threat {
	gen := b.generalSquare(side)
	if gen < 0 {
		return nil
	}
	var out []threat
	for sq, pc := range b.Squares {
		if pc == 0 || pc.Side() != opposite(side) {
			continue
		}
		if path, err := b.findPath(sq, gen); err == nil {
			out = append(out, threat{from: sq, path: path})
		}
	}
	return out
}

func (b *Board) isInCheck(side Side) bool {
	return len(b.threatsAgainst(side)) > 0
}

// canEscape 逐个试走将的每一步合法去处：在盘面拷贝上落子、看是否仍被将军。
// 真正的盘面从头到尾不动。
func (b *Board) canEscape(side Side) bool {
	gen := b.generalSquare(side)
	if gen < 0 {
		return false
	}
	for _, p := range generatePaths(KindGeneral, side, gen) {
		to := p[len(p)-1]
		if _, err := b.findPath(gen, to); err != nil {
			continue
		}
		nb := b.applied(gen, to)
		if !nb.isInCheck(side) {
			return true
		}
	}
	return false
}

// canCapture 看能否吃掉叫将的子。双将一步只能吃一个，直接判否。
func (b *Board) canCapture(side Side) bool {
	th := b.threatsAgainst(side)
	if len(th) != 1 {
		return false
	}
	target := th[0].from
	for sq, pc := range b.Squares {
		if pc == 0 || pc.Side() != side {
			continue
		}
		if _, err := b.findPath(sq, target); err != nil {
			continue
		}
		nb := b.applied(sq, target)
		if !nb.isInCheck(side) {
			return true
		}
	}
	return false
}

// canBlock 看能否垫子挡路。贴脸将军（路径只剩终点）无从垫；
// 双将一个子挡不住两条路，也判否。垫子本身就把路截断了，
// 所以只要有将以外的己方子能走到路径中途任意一格即可。
func (b *Board) canBlock(side Side) bool {
	th := b.threatsAgainst(side)
	if len(th) != 1 {
		return false
	}
	path := th[0].path
	if len(path) < 2 {
		return false
	}
	between := path[:len(path)-1]
	for sq, pc := range b.Squares {
		if pc == 0 || pc.Side() != side || pc.Kind() == KindGeneral {
			continue
		}
		for _, block := range between {
			if _, err := b.findPath(sq, block); err == nil {
				return true
			}
		}
	}
	return false
}

// isCheckmate 将死 = 被将军，且逃、吃、垫三条路全断
func (b *Board) isCheckmate(side Side) bool {
	if !b.isInCheck(side) {
		return false
	}
	return !b.canEscape(side) && !b.canCapture(side) && !b.canBlock(side)
}
