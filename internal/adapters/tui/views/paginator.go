package views

// Paginator pages a flat list of rows by screen lines. Rows that open a
// group cost an extra line for the group header, and a page that starts
// mid-group repeats that header, so grouped listings never overflow the
// height they are given.
type Paginator struct {
	height int
	rows   []int  // lines each row needs
	opens  []bool // row starts a group
	pages  []int  // first row of each page
	cursor int
}

// NewPaginator creates a paginator fitting height lines per page
func NewPaginator(height int) *Paginator {
	if height <= 0 {
		height = 10
	}
	return &Paginator{height: height}
}

// SetPageSize changes the lines available per page, keeping the cursor
func (p *Paginator) SetPageSize(height int) {
	if height <= 0 || height == p.height {
		return
	}
	p.height = height
	p.layout()
}

// SetTotal lays out total ungrouped rows of one line each
func (p *Paginator) SetTotal(total int) {
	p.SetRows(total, 1, nil)
}

// SetRows lays out total rows of lines each. opens, when set, marks the
// rows that start a new group and therefore carry a header line.
func (p *Paginator) SetRows(total, lines int, opens []bool) {
	p.rows = p.rows[:0]
	for i := 0; i < total; i++ {
		p.rows = append(p.rows, max(1, lines))
	}
	p.opens = opens
	p.layout()
}

func (p *Paginator) grouped() bool { return p.opens != nil }

func (p *Paginator) opensAt(i int) bool { return i < len(p.opens) && p.opens[i] }

func (p *Paginator) layout() {
	p.pages = p.pages[:0]
	used := 0
	for i, cost := range p.rows {
		start := len(p.pages) == 0
		if p.grouped() && (start || p.opensAt(i)) {
			cost++
		}
		if !start && used+cost > p.height {
			used = 0
			cost = p.rows[i]
			if p.grouped() {
				cost++
			}
			start = true
		}
		if start {
			p.pages = append(p.pages, i)
		}
		used += cost
	}
	p.SetCursor(p.cursor)
}

// Total returns the number of rows
func (p *Paginator) Total() int { return len(p.rows) }

// Cursor returns the absolute index of the selected row
func (p *Paginator) Cursor() int { return p.cursor }

// SetCursor moves the selection, clamped to the rows
func (p *Paginator) SetCursor(pos int) {
	p.cursor = max(0, min(pos, len(p.rows)-1))
}

func (p *Paginator) CursorUp() bool {
	if p.cursor == 0 {
		return false
	}
	p.cursor--
	return true
}

func (p *Paginator) CursorDown() bool {
	if p.cursor >= len(p.rows)-1 {
		return false
	}
	p.cursor++
	return true
}

// page returns the index of the page holding the cursor
func (p *Paginator) page() int {
	pg := 0
	for i, first := range p.pages {
		if first <= p.cursor {
			pg = i
		}
	}
	return pg
}

// VisibleRange returns the rows [start, end) of the cursor's page
func (p *Paginator) VisibleRange() (start, end int) {
	if len(p.pages) == 0 {
		return 0, 0
	}
	pg := p.page()
	start = p.pages[pg]
	end = len(p.rows)
	if pg+1 < len(p.pages) {
		end = p.pages[pg+1]
	}
	return start, end
}

// StartsGroup reports whether row i is drawn under a group header, either
// because it opens its group or because it heads the page.
func (p *Paginator) StartsGroup(i int) bool {
	if !p.grouped() || i < 0 || i >= len(p.rows) {
		return false
	}
	start, _ := p.VisibleRange()
	return p.opensAt(i) || i == start
}

func (p *Paginator) TotalPages() int { return max(1, len(p.pages)) }

// CurrentPage returns the cursor's page, 1-based
func (p *Paginator) CurrentPage() int { return p.page() + 1 }

// NextPage jumps to the first row of the next page
func (p *Paginator) NextPage() bool {
	pg := p.page()
	if pg+1 >= len(p.pages) {
		return false
	}
	p.cursor = p.pages[pg+1]
	return true
}

// PrevPage jumps to the first row of the previous page
func (p *Paginator) PrevPage() bool {
	pg := p.page()
	if pg == 0 || len(p.pages) == 0 {
		return false
	}
	p.cursor = p.pages[pg-1]
	return true
}
