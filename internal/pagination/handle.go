package pagination

// Operations are the bound navigation calls of a Handle. An engine hands
// out the same *Operations until its page count changes, so consumers can
// compare pointers to detect churn.
type Operations struct {
	totalPages int

	NextPage func()
	PrevPage func()
	GoToPage func(page int)
}

// Handle is a read view of the page state plus the navigation calls.
// It is a snapshot: read a new one after navigating.
type Handle struct {
	CurrentPage int
	TotalPages  int
	*Operations
}

// Handle returns a snapshot of the engine's navigation surface
func (e *Engine) Handle() Handle {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ops == nil || e.ops.totalPages != e.state.TotalPages {
		e.ops = &Operations{
			totalPages: e.state.TotalPages,
			NextPage:   e.NextPage,
			PrevPage:   e.PrevPage,
			GoToPage:   e.GoToPage,
		}
	}

	return Handle{
		CurrentPage: e.state.CurrentPage,
		TotalPages:  e.state.TotalPages,
		Operations:  e.ops,
	}
}

// HasPrev reports whether PrevPage would move
func (h Handle) HasPrev() bool {
	return h.CurrentPage > 0
}

// HasNext reports whether NextPage would move
func (h Handle) HasNext() bool {
	return h.CurrentPage < h.TotalPages-1
}
