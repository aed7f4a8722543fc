package janggi

import "sync"

const zobristPieceKinds = 8 // PieceKind 范围 [1..7]，0 留给空位不用

var (
	zobristOnce sync.Once

	zobristPieces [2][zobristPieceKinds][NumSquares]uint64
	zobristSide   uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for side := 0; side < 2; side++ {
			for k := 1; k < zobristPieceKinds; k++ {
				for sq := 0; sq < NumSquares; sq++ {
					zobristPieces[side][k][sq] = next()
				}
			}
		}
		zobristSide = next()
	})
}

func pieceKey(pc Piece, sq int) uint64 {
	if pc == 0 || sq < 0 || sq >= NumSquares {
		return 0
	}
	initZobrist()

	var sideIdx int
	switch pc.Side() {
	case Red:
		sideIdx = 0
	case Blue:
		sideIdx = 1
	default:
		return 0
	}

	k := int(pc.Kind())
	if k <= 0 || k >= zobristPieceKinds {
		return 0
	}
	return zobristPieces[sideIdx][k][sq]
}

// CalculateHash 全量计算当前局面的 Zobrist 哈希；红方走子是基准，轮到蓝方时异或边键。
// RequestMove 里用增量更新维护同一个值。
func (g *Game) CalculateHash() uint64 {
	initZobrist()

	var h uint64
	for sq, pc := range g.Board.Squares {
		if pc == 0 {
			continue
		}
		h ^= pieceKey(pc, sq)
	}
	if g.Turn == Blue {
		h ^= zobristSide
	}
	return h
}
