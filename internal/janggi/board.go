package janggi

import (
	"strings"
	"unicode"
)

const (
	Rows       = 10
	Cols       = 9
	NumSquares = Rows * Cols
)

func indexOf(row, col int) int { return row*Cols + col }
func rowOf(sq int) int         { return sq / Cols }
func colOf(sq int) int         { return sq % Cols }

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

func opposite(side Side) Side {
	if side == Red {
		return Blue
	}
	if side == Blue {
		return Red
	}
	return NoSide
}

// 兵的前进方向：红在上方，向下(+1)；蓝向上(-1)
func soldierDir(side Side) int {
	if side == Red {
		return +1
	}
	if side == Blue {
		return -1
	}
	return 0
}

// 是否在九宫（任意一方的；宫属于格子本身，与盘上棋子无关）
func inPalace(row, col int) bool {
	if col < 3 || col > 5 {
		return false
	}
	return (row >= 0 && row <= 2) || (row >= 7 && row <= 9)
}

var orthoDirs = [4][2]int{{-1, 0}, {+1, 0}, {0, -1}, {0, +1}}

// 宫内画了斜线的格子 → 从该格出发允许的斜向。
// 四个角只能朝宫心走，宫心四个方向都行。将/士/车/包共用这张表。
var palaceDiagDirs = map[int][][2]int{
	indexOf(0, 3): {{+1, +1}}, // d1
	indexOf(0, 5): {{+1, -1}}, // f1
	indexOf(2, 3): {{-1, +1}}, // d3
	indexOf(2, 5): {{-1, -1}}, // f3
	indexOf(7, 3): {{+1, +1}}, // d8
	indexOf(7, 5): {{+1, -1}}, // f8
	indexOf(9, 3): {{-1, +1}}, // d10
	indexOf(9, 5): {{-1, -1}}, // f10
	indexOf(1, 4): {{+1, +1}, {+1, -1}, {-1, +1}, {-1, -1}}, // e2
	indexOf(8, 4): {{+1, +1}, {+1, -1}, {-1, +1}, {-1, -1}}, // e9
}

// 兵过了河打进对方九宫之后，能沿斜线前进的格子（仍然只许向前）
var soldierDiagDirs = [2]map[int][][2]int{
	Red: {
		indexOf(7, 3): {{+1, +1}},           // d8
		indexOf(7, 5): {{+1, -1}},           // f8
		indexOf(8, 4): {{+1, +1}, {+1, -1}}, // e9
	},
	Blue: {
		indexOf(2, 3): {{-1, +1}},           // d3
		indexOf(2, 5): {{-1, -1}},           // f3
		indexOf(1, 4): {{-1, +1}, {-1, -1}}, // e2
	},
}

type Board struct {
	Squares [NumSquares]Piece
}

var letterToPieceKind = map[rune]PieceKind{
	'g': KindGeneral,
	'd': KindGuard,
	'h': KindHorse,
	'e': KindElephant,
	'r': KindChariot,
	'c': KindCannon,
	's': KindSoldier,
}

func pieceToChar(p Piece) rune {
	if p == 0 {
		return '.'
	}
	k := p.Kind()
	var base rune
	for ch, v := range letterToPieceKind {
		if v == k {
			base = ch
			break
		}
	}
	if base == 0 {
		return '.'
	}
	if p.Side() == Red {
		return unicode.ToUpper(base)
	}
	return base
}

// 开局摆法，第一行是红方底线（1 路），最后一行是蓝方底线（10 路）
const initialBoardString = `REHD.DHER
....G....
.C.....C.
S.S.S.S.S
.........
.........
s.s.s.s.s
.c.....c.
....g....
rehd.dher`

func parseInitialBoard() Board {
	var b Board
	lines := make([]string, 0, Rows)
	for _, line := range strings.Split(initialBoardString, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) != Rows {
		panic("initialBoardString 行数不为 10")
	}
	for r := 0; r < Rows; r++ {
		if len(lines[r]) != Cols {
			panic("initialBoardString 列数不为 9")
		}
		for c, ch := range lines[r] {
			if ch == '.' {
				continue
			}
			isUpper := unicode.IsUpper(ch)
			base := unicode.ToLower(ch)
			k, ok := letterToPieceKind[base]
			if !ok {
				panic("unknown piece letter: " + string(ch))
			}
			side := Blue
			if isUpper {
				side = Red
			}
			b.Squares[indexOf(r, c)] = makePiece(side, k)
		}
	}
	return b
}

// applied 在值拷贝上落一步子并返回新盘面，原盘面保持不动。
// 将军/将死分析里所有“假设走一步”都用它，天然保证不会留下半截状态。
func (b Board) applied(from, to int) Board {
	b.Squares[to] = b.Squares[from]
	b.Squares[from] = 0
	return b
}
