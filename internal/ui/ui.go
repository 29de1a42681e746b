package ui

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/papapumpkin/roster/internal/view"
)

// ANSI color codes.
const (
	reset   = "\033[0m"
	bold    = "\033[1m"
	dim     = "\033[2m"
	blue    = "\033[34m"
	yellow  = "\033[33m"
	green   = "\033[32m"
	red     = "\033[31m"
	cyan    = "\033[36m"
	magenta = "\033[35m"
)

type Printer struct{}

func New() *Printer {
	return &Printer{}
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(os.Stderr, red+bold+"error: "+reset+"%s\n", msg)
}

func (p *Printer) Warn(msg string) {
	fmt.Fprintf(os.Stderr, yellow+"warning: "+reset+"%s\n", msg)
}

func (p *Printer) Info(msg string) {
	fmt.Fprintf(os.Stderr, dim+"%s"+reset+"\n", msg)
}

// ChampionList renders a filtered champion list. Completed champions get a
// green check, incomplete ones a dim dot. Lane roles render after the name.
func (p *Printer) ChampionList(items []view.Item, filters view.Filters, total int) {
	for _, it := range items {
		marker := dim + "·" + reset
		if it.Completed {
			marker = green + "✓" + reset
		}
		var roles string
		if len(it.LaneRoles) > 0 {
			roles = " " + magenta + "[" + strings.Join(it.LaneRoles, ",") + "]" + reset
		}
		var stamp string
		if it.Completed && it.CompletedAt != "" {
			stamp = " " + dim + it.CompletedAt + reset
		}
		fmt.Fprintf(os.Stdout, "  %s %-16s "+dim+"%-24s"+reset+"%s%s\n", marker, it.Name, it.Title, roles, stamp)
	}
	if n := filters.Active(); n > 0 {
		fmt.Fprintf(os.Stderr, dim+"%d of %d champions (%d filter(s) active)"+reset+"\n", len(items), total, n)
	} else {
		fmt.Fprintf(os.Stderr, dim+"%d champions"+reset+"\n", len(items))
	}
}

// Stats renders the aggregate progress panel.
func (p *Printer) Stats(s view.Stats) {
	fmt.Fprintf(os.Stdout, bold+cyan+"progress:"+reset+" %d/%d played "+dim+"(%.1f%%)"+reset+"\n",
		s.Completed, s.Total, s.Percentage)
	fmt.Fprintf(os.Stdout, "  incomplete: %d\n", s.Incomplete)

	printGroup := func(label string, counts map[string]view.Count) {
		if len(counts) == 0 {
			return
		}
		keys := make([]string, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprintf(os.Stdout, bold+"%s:"+reset+"\n", label)
		for _, k := range keys {
			c := counts[k]
			fmt.Fprintf(os.Stdout, "  %-12s %d/%d\n", k, c.Completed, c.Total)
		}
	}
	printGroup("by tag", s.ByTag)
	printGroup("by lane role", s.ByLaneRole)
	printGroup("by resource", s.ByResourceType)
}

// RandomPick renders a randomly selected incomplete champion.
func (p *Printer) RandomPick(it view.Item) {
	fmt.Fprintf(os.Stdout, blue+bold+"▶ %s"+reset+" — %s\n", it.Name, it.Title)
	if len(it.Tags) > 0 {
		fmt.Fprintf(os.Stdout, dim+"  %s | difficulty %d"+reset+"\n", strings.Join(it.Tags, ", "), it.Difficulty)
	}
}

// NoRandomPick reports that no incomplete champion matched the restriction.
func (p *Printer) NoRandomPick() {
	fmt.Fprintln(os.Stderr, yellow+"no incomplete champions match"+reset)
}

// ImportOutcome renders the result of a document import.
func (p *Printer) ImportOutcome(mode string, imported int) {
	fmt.Fprintf(os.Stderr, green+bold+"✓ import complete"+reset+" (%s) — %d newly played\n", mode, imported)
}

// SyncOutcome renders the result of a match-history sync.
func (p *Printer) SyncOutcome(summoner string, scanned, imported int) {
	fmt.Fprintf(os.Stderr, green+bold+"✓ sync complete"+reset+" — %s: %d match(es) scanned, %d champion(s) imported\n",
		summoner, scanned, imported)
}

// ProgressBarLine formats the in-place progress line (without ANSI escapes).
// Exported for testing.
func ProgressBarLine(completed, total int) string {
	return fmt.Sprintf("[roster] %d/%d played", completed, total)
}

// ProgressBar writes a carriage-return-overwritten progress line to stderr.
// It uses \r to overwrite the current line so the bar updates in place.
func (p *Printer) ProgressBar(completed, total int) {
	line := ProgressBarLine(completed, total)
	fmt.Fprintf(os.Stderr, "\r"+cyan+"%s"+reset+"   ", line)
}

// ProgressBarDone writes a final newline after the progress bar so
// subsequent output doesn't overwrite it.
func (p *Printer) ProgressBarDone() {
	fmt.Fprintln(os.Stderr)
}
