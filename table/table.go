// SPDX-License-Identifier: MIT

// Package table renders a factor as a text table: one row per table entry in
// encoding order, one column per scope variable (its label) and a final
// probability column.
//
// Two renderers are provided:
//   - Render / String - fixed-width, centered columns, stable for golden tests
//     and log output.
//   - Styled          - the same rows framed with lipgloss borders for terminals.
//
// Example (plain, WithPrecision(2)):
//
//	table representation of factor(Rain, Sprinkler):
//	  Rain    | Sprinkler |   prob
//	==========|===========|==========
//	   r0     |    s0     |   0.36
//	   r1     |    s0     |   0.04
//	   ...
package table

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/lvfactor/factor"
)

// ErrNilFactor is returned when a nil factor is rendered.
var ErrNilFactor = errors.New("table: nil factor")

// Defaults (single source of truth).
const (
	// DefaultPrecision is the number of decimals of the probability column.
	DefaultPrecision = 6

	// DefaultMinWidth is the minimal column width in plain output.
	DefaultMinWidth = 5

	// DefaultProbHeader is the header of the probability column.
	DefaultProbHeader = "prob"
)

const (
	panicPrecisionInvalid = "table: WithPrecision: p must be in [0, 17]"
	panicMinWidthInvalid  = "table: WithMinWidth: w must be >= 1"
)

// Option configures rendering.
type Option func(*options)

type options struct {
	precision int
	minWidth  int
	header    string
	title     bool
}

// WithPrecision sets the number of decimals printed for probabilities.
// Panics when p is outside [0, 17].
func WithPrecision(p int) Option {
	if p < 0 || p > 17 {
		panic(panicPrecisionInvalid)
	}

	return func(o *options) { o.precision = p }
}

// WithMinWidth sets the minimal column width of plain output. Panics when w < 1.
func WithMinWidth(w int) Option {
	if w < 1 {
		panic(panicMinWidthInvalid)
	}

	return func(o *options) { o.minWidth = w }
}

// WithProbHeader replaces the "prob" column header.
func WithProbHeader(h string) Option {
	return func(o *options) { o.header = h }
}

// WithoutTitle omits the "table representation of ..." line.
func WithoutTitle() Option {
	return func(o *options) { o.title = false }
}

func gatherOptions(user ...Option) options {
	o := options{
		precision: DefaultPrecision,
		minWidth:  DefaultMinWidth,
		header:    DefaultProbHeader,
		title:     true,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// rows returns the header and the body cells of f.
func rows(f *factor.Factor, o options) ([]string, [][]string, error) {
	scope := f.Scope()
	card := f.Card()
	prob := f.Prob()

	header := make([]string, 0, len(scope)+1)
	for _, v := range scope {
		header = append(header, v.Name())
	}
	header = append(header, o.header)

	body := make([][]string, len(prob))
	for i, p := range prob {
		a, err := factor.IndexToAssignment(i, card)
		if err != nil {
			return nil, nil, fmt.Errorf("table: row %d: %w", i, err)
		}
		row := make([]string, 0, len(scope)+1)
		for k, d := range a {
			row = append(row, scope[k].Label(d))
		}
		row = append(row, strconv.FormatFloat(p, 'f', o.precision, 64))
		body[i] = row
	}

	return header, body, nil
}

// title returns "table representation of factor(A, B):".
func title(f *factor.Factor) string {
	return "table representation of " + f.String() + ":"
}

// Render writes the plain table of f to w.
// All columns share one width: the longest header, label or number, but at
// least the configured minimum. Cells are centered; when the padding is odd
// the extra space goes to the right.
func Render(w io.Writer, f *factor.Factor, opts ...Option) error {
	if f == nil {
		return ErrNilFactor
	}
	o := gatherOptions(opts...)
	header, body, err := rows(f, o)
	if err != nil {
		return err
	}

	width := o.minWidth
	for _, h := range header {
		width = max(width, len([]rune(h)))
	}
	for _, r := range body {
		for _, c := range r {
			width = max(width, len([]rune(c)))
		}
	}

	var sb strings.Builder
	if o.title {
		sb.WriteString(title(f))
		sb.WriteByte('\n')
	}
	writeRow(&sb, header, width)
	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = strings.Repeat("=", width)
	}
	sb.WriteString(strings.Join(sep, "=|="))
	sb.WriteByte('\n')
	for _, r := range body {
		writeRow(&sb, r, width)
	}

	_, err = io.WriteString(w, sb.String())

	return err
}

// String returns the plain table of f, or the error text for a nil factor.
func String(f *factor.Factor, opts ...Option) string {
	var sb strings.Builder
	if err := Render(&sb, f, opts...); err != nil {
		return err.Error()
	}

	return sb.String()
}

func writeRow(sb *strings.Builder, cells []string, width int) {
	for i, c := range cells {
		if i > 0 {
			sb.WriteString(" | ")
		}
		sb.WriteString(center(c, width))
	}
	sb.WriteByte('\n')
}

// center pads s to width runes, favoring the right side on odd padding.
func center(s string, width int) string {
	pad := width - len([]rune(s))
	if pad <= 0 {
		return s
	}
	left := pad / 2

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// Styled renders f framed with rounded lipgloss borders, a bold header and
// right-aligned probabilities. Intended for interactive terminals.
func Styled(f *factor.Factor, opts ...Option) (string, error) {
	if f == nil {
		return "", ErrNilFactor
	}
	o := gatherOptions(opts...)
	header, body, err := rows(f, o)
	if err != nil {
		return "", err
	}

	probCol := len(header) - 1
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	numStyle := cellStyle.Align(lipgloss.Right)

	t := ltable.New().
		Border(lipgloss.RoundedBorder()).
		Headers(header...).
		Rows(body...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == ltable.HeaderRow:
				return headerStyle
			case col == probCol:
				return numStyle
			default:
				return cellStyle
			}
		})

	out := t.String()
	if o.title {
		out = title(f) + "\n" + out
	}

	return out, nil
}
