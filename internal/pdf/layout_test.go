package pdf

import (
	"math"
	"testing"
)

func TestPlanPageCountFormula(t *testing.T) {
	l := DocumentLayout
	headerPad := l.HeaderOffset - l.TopMargin
	capacity := l.BreakAt - l.TopMargin

	for n := 0; n <= 120; n++ {
		plan := l.Plan(uniformHeights(n, RowCompact))
		want := int(math.Ceil((headerPad + float64(n)*RowCompact) / capacity))
		if want < 1 {
			want = 1
		}
		if plan.PageCount() != want {
			t.Fatalf("n=%d: got %d pages, want %d", n, plan.PageCount(), want)
		}
		if plan.RowCount() != n {
			t.Fatalf("n=%d: plan dropped rows, got %d", n, plan.RowCount())
		}
	}
}

func TestPlanNeverSplitsRows(t *testing.T) {
	l := DocumentLayout
	heights := append(uniformHeights(20, RowWithImage), uniformHeights(15, RowCompact)...)
	plan := l.Plan(heights)

	next := 0
	for pageIdx, rows := range plan.Pages {
		cursor := l.TopMargin
		if pageIdx == 0 {
			cursor = l.HeaderOffset
		}
		for _, idx := range rows {
			if idx != next {
				t.Fatalf("page %d: rows out of order, got %d want %d", pageIdx, idx, next)
			}
			cursor += heights[idx]
			if cursor > l.BreakAt {
				t.Fatalf("page %d: row %d crosses the break at cursor %.1f", pageIdx, idx, cursor)
			}
			next++
		}
	}
	if next != len(heights) {
		t.Fatalf("plan placed %d of %d rows", next, len(heights))
	}
}

func TestPlanZeroRowsStillHasHeaderPage(t *testing.T) {
	plan := DocumentLayout.Plan(nil)
	if plan.PageCount() != 1 {
		t.Fatalf("got %d pages, want 1", plan.PageCount())
	}
	if len(plan.Pages[0]) != 0 {
		t.Fatalf("empty plan has phantom rows: %v", plan.Pages[0])
	}
}

func TestPlanImageRowsBreakEarlier(t *testing.T) {
	compact := DocumentLayout.Plan(uniformHeights(20, RowCompact))
	withImages := DocumentLayout.Plan(uniformHeights(20, RowWithImage))
	if withImages.PageCount() <= compact.PageCount() {
		t.Fatalf("image rows should need more pages: compact=%d images=%d",
			compact.PageCount(), withImages.PageCount())
	}
}
