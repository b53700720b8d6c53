package domain_test

import (
	"testing"

	"zenpod/internal/modules/progress/domain"
)

func TestFractionHandlesDegenerateHeights(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name           string
		offset, height int
		want           float64
	}{
		{"zero height", 10, 0, 0},
		{"negative height", 10, -5, 0},
		{"zero offset", 0, 100, 0},
		{"negative offset", -3, 100, 0},
		{"halfway", 50, 100, 0.5},
		{"offset beyond height clamps", 150, 100, 1},
	}
	for _, tc := range cases {
		if got := domain.Fraction(tc.offset, tc.height); got != tc.want {
			t.Fatalf("%s: Fraction(%d, %d) = %v, want %v", tc.name, tc.offset, tc.height, got, tc.want)
		}
	}
}

func TestClampPositionBounds(t *testing.T) {
	t.Parallel()
	if got := domain.ClampPosition(-0.2); got != 0 {
		t.Fatalf("negative clamps to 0, got %v", got)
	}
	if got := domain.ClampPosition(1.7); got != 1 {
		t.Fatalf("overshoot clamps to 1, got %v", got)
	}
	if got := domain.ClampPosition(0.33); got != 0.33 {
		t.Fatalf("in-range position must pass through, got %v", got)
	}
}

func TestResolvePicksStoredChapterOnlyWhenItStillExists(t *testing.T) {
	t.Parallel()
	chapters := []int{11, 12, 13}

	id, restore := domain.Resolve(domain.Record{ScriptureID: 3, ChapterID: 12}, 3, chapters)
	if id != 12 || !restore {
		t.Fatalf("matching record must resume at its chapter, got %d restore=%v", id, restore)
	}

	id, restore = domain.Resolve(domain.Record{ScriptureID: 9, ChapterID: 12}, 3, chapters)
	if id != 11 || restore {
		t.Fatalf("record for another scripture falls back to chapter one, got %d restore=%v", id, restore)
	}

	id, restore = domain.Resolve(domain.Record{ScriptureID: 3, ChapterID: 99}, 3, chapters)
	if id != 11 || restore {
		t.Fatalf("vanished chapter falls back to chapter one, got %d restore=%v", id, restore)
	}

	id, restore = domain.Resolve(domain.Record{}, 3, nil)
	if id != 0 || restore {
		t.Fatalf("no chapters means nothing to open, got %d restore=%v", id, restore)
	}
}
