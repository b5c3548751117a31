// Package render formats snapshots as plain text for terminal output.
package render

import (
	"fmt"
	"strings"

	"github.com/hn770123/sum-puzzle1/internal/domain"
)

// Text renders the masked puzzle with its sum rails: each row ends in
// "| rowSum", and the column sums appear under a rule. Blanks show as
// a middle dot.
func Text(s *domain.Snapshot) string {
	var sb strings.Builder
	for r := 0; r < s.Size; r++ {
		for c := 0; c < s.Size; c++ {
			sb.WriteString(cell(s.Puzzle[r][c]))
		}
		fmt.Fprintf(&sb, " | %3d\n", s.RowSums[r])
	}
	sb.WriteString(strings.Repeat("-", 3*s.Size+6))
	sb.WriteByte('\n')
	for c := 0; c < s.Size; c++ {
		fmt.Fprintf(&sb, "%3d", s.ColSums[c])
	}
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "difficulty: %s (score %d)\n", s.Label, s.Score)
	return sb.String()
}

// Solution renders the answer key without rails.
func Solution(s *domain.Snapshot) string {
	var sb strings.Builder
	for r := 0; r < s.Size; r++ {
		for c := 0; c < s.Size; c++ {
			sb.WriteString(cell(s.Solution[r][c]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cell(v int) string {
	if v == domain.Blank {
		return "  ·"
	}
	return fmt.Sprintf("%3d", v)
}
