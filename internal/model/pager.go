package model

// FirstPage is the lowest page number the remote listing accepts
const FirstPage = 1

// Pager tracks the current page of the remote listing. It never goes below
// FirstPage and has no upper bound.
type Pager struct {
	page int
}

// NewPager creates a pager positioned on the first page
func NewPager() *Pager {
	return &Pager{page: FirstPage}
}

// Current returns the current page number
func (p *Pager) Current() int {
	return p.page
}

// Next advances to the following page and returns it
func (p *Pager) Next() int {
	p.page++
	return p.page
}

// Prev steps back one page, staying on FirstPage when already there
func (p *Pager) Prev() int {
	if p.page > FirstPage {
		p.page--
	}
	return p.page
}
