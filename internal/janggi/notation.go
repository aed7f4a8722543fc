package janggi

import (
	"errors"
	"strconv"
)

// 对外的坐标写法：列 a–i 在前，行 1–10 在后，例如 "b3"、"e10"
var ErrBadNotation = errors.New("invalid square notation")

func ParseSquare(s string) (int, error) {
	if len(s) < 2 || len(s) > 3 {
		return 0, ErrBadNotation
	}
	ch := s[0]
	if ch >= 'A' && ch <= 'Z' {
		ch += 'a' - 'A'
	}
	col := int(ch) - 'a'
	if col < 0 || col >= Cols {
		return 0, ErrBadNotation
	}
	// 行号只认 "1".."9" 和 "10"，不收符号、前导零这类花写法
	var row int
	switch rest := s[1:]; {
	case len(rest) == 1 && rest[0] >= '1' && rest[0] <= '9':
		row = int(rest[0] - '0')
	case rest == "10":
		row = 10
	default:
		return 0, ErrBadNotation
	}
	return indexOf(row-1, col), nil
}

func Notation(sq int) string {
	return string(rune('a'+colOf(sq))) + strconv.Itoa(rowOf(sq)+1)
}
