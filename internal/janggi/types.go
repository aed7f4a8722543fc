package janggi

type Side int8

const (
	NoSide Side = -1
	Red    Side = 0 // 攻方，先手
	Blue   Side = 1 // 守方
)

type PieceKind int8

const (
	KindNone     PieceKind = iota
	KindGeneral            // 将/帅
	KindGuard              // 士
	KindHorse              // 马
	KindElephant           // 象
	KindChariot            // 车
	KindCannon             // 包
	KindSoldier            // 兵/卒
)

type Piece int8 // 0=空；>0 红；<0 蓝；abs=PieceKind

func makePiece(side Side, k PieceKind) Piece {
	if k == KindNone || side == NoSide {
		return 0
	}
	if side == Red {
		return Piece(k)
	}
	return -Piece(k)
}

func (p Piece) Kind() PieceKind {
	if p < 0 {
		return PieceKind(-p)
	}
	return PieceKind(p)
}

func (p Piece) Side() Side {
	if p == 0 {
		return NoSide
	}
	if p > 0 {
		return Red
	}
	return Blue
}

// Outcome 对局结果：一旦分出胜负就不再接受任何走子
type Outcome int8

const (
	Unfinished Outcome = iota
	RedWon
	BlueWon
)

func (o Outcome) Winner() Side {
	switch o {
	case RedWon:
		return Red
	case BlueWon:
		return Blue
	default:
		return NoSide
	}
}
