package janggi

import (
	"sort"
	"strings"
)

// Game = 盘面 + 轮到谁走 + 胜负；只有 RequestMove 会改它
type Game struct {
	Board   Board
	Turn    Side
	Outcome Outcome
	Hash    uint64
}

// MoveResult 一步被接受之后的回执
type MoveResult struct {
	Pass      bool
	Captured  PieceKind // 被吃子的兵种，没吃子为 KindNone
	Check     bool      // 这步走完对方被将军
	Checkmate bool
	Winner    Side // 非将死时为 NoSide
}

func NewGame() *Game {
	g := &Game{
		Board: parseInitialBoard(),
		Turn:  Red, // 红（攻方）先
	}
	g.Hash = g.CalculateHash()
	return g
}

// RequestMove 唯一的落子入口。start==end 视为停一手。
// 拒绝时盘面、轮次、哈希全都不变。
func (g *Game) RequestMove(start, end string) (MoveResult, error) {
	if g.Outcome != Unfinished {
		return MoveResult{}, ErrGameOver
	}

	from, err := ParseSquare(start)
	if err != nil {
		return MoveResult{}, err
	}
	to, err := ParseSquare(end)
	if err != nil {
		return MoveResult{}, err
	}

	// 停一手：盘面不动只换边，被将军时不许停
	if from == to {
		if g.Board.isInCheck(g.Turn) {
			return MoveResult{}, ErrPassInCheck
		}
		g.Turn = opposite(g.Turn)
		g.Hash ^= zobristSide
		return MoveResult{Pass: true, Winner: NoSide}, nil
	}

	if _, err := g.Board.findPath(from, to); err != nil {
		return MoveResult{}, err
	}
	pc := g.Board.Squares[from]
	if pc.Side() != g.Turn {
		return MoveResult{}, ErrWrongSide
	}

	// 先在拷贝上走：走完自己反被将军就整步作废，真盘面压根没动过
	captured := g.Board.Squares[to]
	nb := g.Board.applied(from, to)
	if nb.isInCheck(g.Turn) {
		return MoveResult{}, ErrSelfCheck
	}

	// 提交：整块赋值，外界看不到中间态
	g.Board = nb
	g.Hash ^= pieceKey(pc, from) ^ pieceKey(pc, to)
	if captured != 0 {
		g.Hash ^= pieceKey(captured, to)
	}

	op := opposite(g.Turn)
	res := MoveResult{Captured: captured.Kind(), Winner: NoSide}
	if g.Board.isCheckmate(op) {
		if g.Turn == Red {
			g.Outcome = RedWon
		} else {
			g.Outcome = BlueWon
		}
		res.Check = true
		res.Checkmate = true
		res.Winner = g.Turn
		// 对局已结束，轮次不再推进
		return res, nil
	}
	res.Check = g.Board.isInCheck(op)
	g.Turn = op
	g.Hash ^= zobristSide
	return res, nil
}

// ---- 查询面：只读，给前端渲染和状态栏用 ----

// Grid 返回盘面快照，row 0 是红方底线
func (g *Game) Grid() [Rows][Cols]Piece {
	var grid [Rows][Cols]Piece
	for sq, pc := range g.Board.Squares {
		grid[rowOf(sq)][colOf(sq)] = pc
	}
	return grid
}

func (g *Game) TurnSide() Side { return g.Turn }

func (g *Game) Result() Outcome { return g.Outcome }

func (g *Game) InCheck(side Side) bool { return g.Board.isInCheck(side) }

// LegalDestinations 返回 square 上棋子此刻真正能走到的所有终点（给前端画提示点）。
// 空格子返回空列表。
func (g *Game) LegalDestinations(square string) ([]string, error) {
	from, err := ParseSquare(square)
	if err != nil {
		return nil, err
	}
	pc := g.Board.Squares[from]
	if pc == 0 {
		return nil, nil
	}
	var out []string
	for _, p := range generatePaths(pc.Kind(), pc.Side(), from) {
		to := p[len(p)-1]
		if _, err := g.Board.findPath(from, to); err == nil {
			out = append(out, Notation(to))
		}
	}
	sort.Strings(out)
	return out, nil
}

// String 控制台盘面，调试用
func (g *Game) String() string {
	var sb strings.Builder
	sb.WriteString("     a b c d e f g h i\n")
	for r := 0; r < Rows; r++ {
		label := rowLabel(r)
		if len(label) == 1 {
			sb.WriteByte(' ')
		}
		sb.WriteString("[" + label + "] ")
		for c := 0; c < Cols; c++ {
			sb.WriteRune(pieceToChar(g.Board.Squares[indexOf(r, c)]))
			if c < Cols-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func rowLabel(r int) string {
	if r == 9 {
		return "10"
	}
	return string(rune('1' + r))
}
