package janggi

import (
	"errors"
	"strings"
	"unicode"
)

// 简化 FEN：10 行用 "/" 隔开、空位数字压缩，空格后 r/b 表示轮到哪方；
// 分出胜负后再跟一个 R/B 表示赢家，没分胜负就没有这一段。
// 前端拿这个字符串渲染，测试里也用它摆局面。

var ErrInvalidFEN = errors.New("invalid FEN")

func (g *Game) Encode() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := g.Board.Squares[indexOf(r, c)]
			if pc == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if g.Turn == Red {
		sb.WriteByte('r')
	} else {
		sb.WriteByte('b')
	}
	switch g.Outcome {
	case RedWon:
		sb.WriteString(" R")
	case BlueWon:
		sb.WriteString(" B")
	}
	return sb.String()
}

// Decode 从 FEN 还原对局，带赢家段的还原成已终局的对局
func Decode(fen string) (*Game, error) {
	parts := strings.Split(fen, " ")
	if len(parts) != 2 && len(parts) != 3 {
		return nil, ErrInvalidFEN
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Rows {
		return nil, ErrInvalidFEN
	}
	var b Board
	for r := 0; r < Rows; r++ {
		c := 0
		for _, ch := range rows[r] {
			if c >= Cols {
				return nil, ErrInvalidFEN
			}
			if ch >= '1' && ch <= '9' {
				c += int(ch - '0')
				continue
			}
			if ch == '.' {
				c++
				continue
			}
			isUpper := unicode.IsUpper(ch)
			base := unicode.ToLower(ch)
			k, ok := letterToPieceKind[base]
			if !ok {
				return nil, ErrInvalidFEN
			}
			side := Blue
			if isUpper {
				side = Red
			}
			b.Squares[indexOf(r, c)] = makePiece(side, k)
			c++
		}
		if c != Cols {
			return nil, ErrInvalidFEN
		}
	}
	turn := Red
	if parts[1] == "b" {
		turn = Blue
	} else if parts[1] != "r" {
		return nil, ErrInvalidFEN
	}
	outcome := Unfinished
	if len(parts) == 3 {
		switch parts[2] {
		case "R":
			outcome = RedWon
		case "B":
			outcome = BlueWon
		default:
			return nil, ErrInvalidFEN
		}
	}
	g := &Game{Board: b, Turn: turn, Outcome: outcome}
	g.Hash = g.CalculateHash()
	return g, nil
}
