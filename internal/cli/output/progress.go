// Package output provides output formatting for the uebridge CLI.
package output

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// ProgressBar displays dispatch progress for multi-actor builds.
type ProgressBar struct {
	w       io.Writer
	title   string
	total   int
	current int
	width   int
	mu      sync.Mutex
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(w io.Writer, title string) *ProgressBar {
	return &ProgressBar{
		w:     w,
		title: title,
		width: 40,
	}
}

// Update sets the current position and total.
func (p *ProgressBar) Update(current, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = current
	p.total = total
	p.render()
}

// Increment adds to current progress.
func (p *ProgressBar) Increment(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current += n
	p.render()
}

// Finish completes the progress bar.
func (p *ProgressBar) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = p.total
	p.render()
	fmt.Fprintln(p.w)
}

func (p *ProgressBar) render() {
	if p.total <= 0 {
		fmt.Fprintf(p.w, "\r%s %d", p.title, p.current)
		return
	}

	percent := float64(p.current) / float64(p.total)
	if percent > 1 {
		percent = 1
	}

	filled := int(float64(p.width) * percent)
	empty := p.width - filled

	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	percentStr := fmt.Sprintf("%3.0f%%", percent*100)

	fmt.Fprintf(p.w, "\r%s [%s] %s (%d/%d)",
		p.title,
		bar,
		percentStr,
		p.current,
		p.total,
	)
}
