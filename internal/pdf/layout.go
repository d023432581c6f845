// Package pdf renders quotations and delivery notes as paginated PDF
// documents. Pagination is decided by a pure planner so the page layout is
// deterministic and testable independently of the PDF backend.
package pdf

// Row heights and page geometry in millimetres, matching the A4 portrait
// canvas the documents are drawn on.
const (
	// RowCompact is the table row height without thumbnails.
	RowCompact = 10.0
	// RowWithImage is the taller row reserving space for a product thumbnail.
	RowWithImage = 30.0
)

// Layout describes the vertical geometry of a document's item table.
// The cursor starts at HeaderOffset on the first page (below the header and
// client blocks) and at TopMargin on continuation pages. A row whose bottom
// would cross BreakAt moves to the next page; rows are never split.
type Layout struct {
	TopMargin    float64
	HeaderOffset float64
	BreakAt      float64
}

// DocumentLayout is the geometry shared by quotations and delivery notes.
var DocumentLayout = Layout{TopMargin: 20, HeaderOffset: 130, BreakAt: 270}

// TablePlan assigns item row indices to pages.
type TablePlan struct {
	Pages [][]int
}

func (p TablePlan) PageCount() int { return len(p.Pages) }

func (p TablePlan) RowCount() int {
	n := 0
	for _, rows := range p.Pages {
		n += len(rows)
	}
	return n
}

// Plan walks the rows with a running cursor and breaks strictly between rows.
// Zero rows still yield one page: the document always has its header page.
func (l Layout) Plan(rowHeights []float64) TablePlan {
	plan := TablePlan{Pages: [][]int{{}}}
	cursor := l.HeaderOffset
	for i, h := range rowHeights {
		if cursor+h > l.BreakAt {
			plan.Pages = append(plan.Pages, []int{})
			cursor = l.TopMargin
		}
		last := len(plan.Pages) - 1
		plan.Pages[last] = append(plan.Pages[last], i)
		cursor += h
	}
	return plan
}

// uniformHeights builds the row height slice for n rows of height h.
func uniformHeights(n int, h float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = h
	}
	return out
}
