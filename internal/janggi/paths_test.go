package janggi

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustSquare(t *testing.T, s string) int {
	t.Helper()
	sq, err := ParseSquare(s)
	if err != nil {
		t.Fatalf("bad square %q: %v", s, err)
	}
	return sq
}

// 按终点收集候选路径，转成排好序的坐标写法，方便断言
func destinations(t *testing.T, k PieceKind, side Side, from string) []string {
	t.Helper()
	var out []string
	for _, p := range generatePaths(k, side, mustSquare(t, from)) {
		out = append(out, Notation(p[len(p)-1]))
	}
	sort.Strings(out)
	return out
}

func TestAllPathsStayOnBoard(t *testing.T) {
	kinds := []PieceKind{KindGeneral, KindGuard, KindHorse, KindElephant, KindChariot, KindCannon, KindSoldier}
	for sq := 0; sq < NumSquares; sq++ {
		for _, k := range kinds {
			for _, side := range []Side{Red, Blue} {
				for _, p := range generatePaths(k, side, sq) {
					if len(p) == 0 {
						t.Fatalf("kind=%d from=%s: empty path", k, Notation(sq))
					}
					for _, step := range p {
						if step < 0 || step >= NumSquares {
							t.Fatalf("kind=%d from=%s: step %d off board", k, Notation(sq), step)
						}
					}
				}
			}
		}
	}
}

func TestGeneralPathsStayInPalace(t *testing.T) {
	for sq := 0; sq < NumSquares; sq++ {
		if !inPalace(rowOf(sq), colOf(sq)) {
			continue
		}
		for _, p := range generatePaths(KindGeneral, Red, sq) {
			to := p[len(p)-1]
			if !inPalace(rowOf(to), colOf(to)) {
				t.Fatalf("general from %s may leave palace to %s", Notation(sq), Notation(to))
			}
		}
	}
}

func TestSoldierPaths(t *testing.T) {
	// 红兵向下走，蓝兵向上走，都不许回头
	if diff := cmp.Diff([]string{"d4", "e5", "f4"}, destinations(t, KindSoldier, Red, "e4")); diff != "" {
		t.Errorf("red soldier e4 (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a6", "b7"}, destinations(t, KindSoldier, Blue, "a7")); diff != "" {
		t.Errorf("blue soldier a7 (-want +got):\n%s", diff)
	}
	// 打进对方宫心后多出两条斜线
	if diff := cmp.Diff([]string{"d10", "d9", "e10", "f10", "f9"}, destinations(t, KindSoldier, Red, "e9")); diff != "" {
		t.Errorf("red soldier e9 (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"d1", "d2", "e1", "f1", "f2"}, destinations(t, KindSoldier, Blue, "e2")); diff != "" {
		t.Errorf("blue soldier e2 (-want +got):\n%s", diff)
	}
}

func TestHorsePathsDiscardPartialJumps(t *testing.T) {
	if diff := cmp.Diff([]string{"b3", "c2"}, destinations(t, KindHorse, Red, "a1")); diff != "" {
		t.Errorf("horse a1 (-want +got):\n%s", diff)
	}
	// 盘心 8 条全在
	if got := len(generatePaths(KindHorse, Red, mustSquare(t, "e5"))); got != 8 {
		t.Errorf("horse e5: want 8 paths, got %d", got)
	}
}

func TestElephantPathsDiscardPartialJumps(t *testing.T) {
	if diff := cmp.Diff([]string{"c4", "d3"}, destinations(t, KindElephant, Red, "a1")); diff != "" {
		t.Errorf("elephant a1 (-want +got):\n%s", diff)
	}
	for _, p := range generatePaths(KindElephant, Red, mustSquare(t, "e5")) {
		if len(p) != 3 {
			t.Fatalf("elephant path must have 3 steps, got %d", len(p))
		}
	}
}

func TestPalacePaths(t *testing.T) {
	// 宫心能走满 8 个方向
	if diff := cmp.Diff([]string{"d1", "d2", "d3", "e1", "e3", "f1", "f2", "f3"},
		destinations(t, KindGeneral, Red, "e2")); diff != "" {
		t.Errorf("general e2 (-want +got):\n%s", diff)
	}
	// 角上只有两条直线加一条朝宫心的斜线
	if diff := cmp.Diff([]string{"d2", "e1", "e2"}, destinations(t, KindGuard, Red, "d1")); diff != "" {
		t.Errorf("guard d1 (-want +got):\n%s", diff)
	}
}

func TestChariotSlideFamilies(t *testing.T) {
	paths := generatePaths(KindChariot, Red, mustSquare(t, "d1"))
	// 右 5 + 左 3 + 下 9 + 斜线 2
	if len(paths) != 19 {
		t.Fatalf("chariot d1: want 19 paths, got %d", len(paths))
	}
	// 两格斜线路径要带上中继格
	var diag Path
	for _, p := range paths {
		if p[len(p)-1] == mustSquare(t, "f3") {
			diag = p
		}
	}
	want := Path{mustSquare(t, "e2"), mustSquare(t, "f3")}
	if diff := cmp.Diff(want, diag); diff != "" {
		t.Errorf("chariot d1->f3 path (-want +got):\n%s", diff)
	}
}

func TestCannonGeometryMatchesChariot(t *testing.T) {
	for _, s := range []string{"b3", "e2", "i10", "a5"} {
		sq := mustSquare(t, s)
		if diff := cmp.Diff(generatePaths(KindChariot, Red, sq), generatePaths(KindCannon, Red, sq)); diff != "" {
			t.Errorf("cannon geometry differs from chariot at %s:\n%s", s, diff)
		}
	}
}
