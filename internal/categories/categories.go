// Package categories provides the per-kind category suggestion lists
// shown by the consumer surface. They are plain suggestions: the core
// never validates a transaction's category against them.
package categories

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"moneytracker/internal/core"
)

var defaultOutflow = []string{
	"🍔 Food & Drinks",
	"🚗 Transport",
	"🎮 Entertainment",
	"📱 Phone & Internet",
	"👕 Fashion & Shopping",
	"💊 Health",
	"📚 Education",
	"🏠 Rent",
	"💳 Other",
}

var defaultInflow = []string{
	"💰 Salary/Allowance",
	"💼 Freelance",
	"🛍️ Online Sales",
	"🎁 Gift/Bonus",
	"💵 Other",
}

// Suggestions holds the suggestion lists for both kinds.
type Suggestions struct {
	outflow []string
	inflow  []string
}

func New(outflow, inflow []string) *Suggestions {
	return &Suggestions{outflow: dedupe(outflow), inflow: dedupe(inflow)}
}

// NewFromFiles loads suggestion lists from seed files under base,
// falling back to the built-in defaults when a file is missing or empty.
func NewFromFiles(base string) *Suggestions {
	outflow := readLines(filepath.Join(base, "seed_outflow_categories.txt"))
	inflow := readLines(filepath.Join(base, "seed_inflow_categories.txt"))
	if len(outflow) == 0 {
		outflow = defaultOutflow
	}
	if len(inflow) == 0 {
		inflow = defaultInflow
	}
	return New(outflow, inflow)
}

// ForKind returns a copy of the suggestion list for the given kind.
func (s *Suggestions) ForKind(kind core.Kind) []string {
	switch kind {
	case core.KindInflow:
		return append([]string(nil), s.inflow...)
	default:
		return append([]string(nil), s.outflow...)
	}
}

func readLines(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return dedupe(out)
}

func dedupe(in []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
