// Package sliptext provides the deterministic cleanup applied to raw slip text
// before any line is classified or parsed
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFKC normalization
// 3 Remove zero-width and format chars
// 4 Width fold fullwidth digits and punctuation to ASCII
// 5 Fold decorative separators to their plain forms eg star variants to *
// 6 Collapse runs of spaces and tabs inside a line, trim each line
package sliptext

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		// order matters and mirrors the documented pipeline
		return transform.Chain(
			norm.NFKC,
			runes.Remove(runes.In(unicode.Cf)), // ZWJ ZWNJ FEFF etc
			width.Fold,                         // fullwidth forms to ASCII
		)
	},
}

// decorative characters seen in real slips, folded to the plain separator set
var decoFold = strings.NewReplacer(
	"★", "*",
	"✱", "*",
	"✳", "*",
	"•", "*",
	"–", "-",
	"—", "-",
	"−", "-",
)

// Clean returns the normalized form of one raw slip blob following the
// pipeline described above. Line breaks are preserved; everything else is
// per-line cleanup.
func Clean(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err == nil {
		s = ns
	}

	s = decoFold.Replace(s)

	// normalize line endings, then tidy each line
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		lines[i] = collapseSpaces(ln)
	}
	return strings.Join(lines, "\n")
}

// Lines cleans s and splits it into trimmed, non-empty lines in input order.
func Lines(s string) []string {
	cleaned := Clean(s)
	if cleaned == "" {
		return nil
	}
	var out []string
	for _, ln := range strings.Split(cleaned, "\n") {
		if ln == "" {
			continue
		}
		out = append(out, ln)
	}
	return out
}

// CountLines reports how many non-empty lines s contains after cleanup.
// Callers use it to enforce the submission line ceiling before parsing.
func CountLines(s string) int { return len(Lines(s)) }

func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if r == ' ' || r == '\t' || unicode.IsSpace(r) && r != '\n' {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}
