package views

import (
	"fmt"
	"strings"

	"carousel/internal/pagination"
)

// maxDots is the page count above which the indicator drops the dots
const maxDots = 24

// RenderIndicator draws the page dots and a "current/total" counter
func RenderIndicator(styles *Styles, h pagination.Handle) string {
	if h.TotalPages == 0 {
		return styles.Dim.Render("no pages")
	}

	counter := styles.Indicator.Render(fmt.Sprintf("%d/%d", h.CurrentPage+1, h.TotalPages))
	if h.TotalPages > maxDots {
		return counter
	}

	var b strings.Builder
	for i := 0; i < h.TotalPages; i++ {
		if i == h.CurrentPage {
			b.WriteString(styles.IndicatorActive.Render("●"))
		} else {
			b.WriteString(styles.Indicator.Render("○"))
		}
		b.WriteString(" ")
	}
	b.WriteString(" ")
	b.WriteString(counter)
	return b.String()
}
