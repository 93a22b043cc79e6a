package ui

import "carousel/internal/domain"

// SetItemsMsg replaces the carousel's item list
type SetItemsMsg struct {
	Items []domain.Item
}

// GoToPageMsg asks the running carousel to jump to a page. Use it from
// outside the Bubble Tea loop via Program.Send so the view refreshes.
type GoToPageMsg struct {
	Page int
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}
