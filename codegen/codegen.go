// SPDX-License-Identifier: MIT
// Package: rexpr/codegen
//
// codegen.go — deterministic emission of pattern text from a tree.
// Escaping rules live in escape.go.

package codegen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/rexpr/pattern"
)

// ErrUnknownNode indicates a node or count outside the closed variant
// set reached the generator: an internal defect (corrupted/extended
// tree), never a user input error.
// Usage: if errors.Is(err, ErrUnknownNode) { /* report a bug */ }.
var ErrUnknownNode = errors.New("codegen: unrecognized pattern node")

// Generate renders p to its textual pattern form. It assumes p already
// passed rexpr/validate and fails only on a closed-variant breach.
//
// Complexity: O(output length) time and space.
func Generate(p pattern.Pattern) (string, error) {
	var sb strings.Builder
	if err := emit(&sb, p); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// emit appends the rendering of p to sb.
func emit(sb *strings.Builder, p pattern.Pattern) error {
	switch n := p.(type) {
	case pattern.Text:
		sb.WriteString(escapeText(n.Value))
	case pattern.CharSet:
		sb.WriteByte('[')
		sb.WriteString(escapeCharSet(n.Chars))
		sb.WriteByte(']')
	case pattern.Digit:
		sb.WriteString(`\d`)
	case pattern.Sequence:
		if err := emit(sb, n.Left); err != nil {
			return err
		}

		return emit(sb, n.Right)
	case pattern.Repeat:
		return emitRepeat(sb, n)
	case pattern.Capture:
		sb.WriteString("(?<")
		sb.WriteString(n.Name)
		sb.WriteByte('>')
		if err := emit(sb, n.Inner); err != nil {
			return err
		}
		sb.WriteByte(')')
	case pattern.Match:
		sb.WriteByte('^')
		if err := emit(sb, n.Inner); err != nil {
			return err
		}
		sb.WriteByte('$')
	default:
		return fmt.Errorf("%w: %T", ErrUnknownNode, p)
	}

	return nil
}

// emitRepeat renders the inner pattern — grouped only when it is not
// self-delimiting — followed by the minimal quantifier token.
func emitRepeat(sb *strings.Builder, r pattern.Repeat) error {
	quant, err := quantifier(r.Count)
	if err != nil {
		return err
	}

	if selfDelimiting(r.Inner) {
		if err = emit(sb, r.Inner); err != nil {
			return err
		}
	} else {
		// Without the group the quantifier would bind to the last
		// element of the inner rendering only.
		sb.WriteString("(?:")
		if err = emit(sb, r.Inner); err != nil {
			return err
		}
		sb.WriteByte(')')
	}

	sb.WriteString(quant)

	return nil
}

// selfDelimiting reports whether p renders as a single indivisible unit
// that a quantifier binds to without grouping.
func selfDelimiting(p pattern.Pattern) bool {
	switch p.(type) {
	case pattern.Text, pattern.Digit, pattern.CharSet, pattern.Capture:
		return true
	default:
		return false
	}
}

// quantifier selects the minimal token for c. Exact(0) and Exact(1) emit
// no token at all.
func quantifier(c pattern.Count) (string, error) {
	switch n := c.(type) {
	case pattern.Exact:
		if n.N <= 1 {
			return "", nil
		}

		return "{" + strconv.Itoa(n.N) + "}", nil
	case pattern.Range:
		return rangeQuantifier(n), nil
	case pattern.ZeroOrOne:
		return "?", nil
	case pattern.OneOrMany:
		return "+", nil
	case pattern.ZeroOrMany:
		return "*", nil
	default:
		return "", fmt.Errorf("%w: count %T", ErrUnknownNode, c)
	}
}

// rangeQuantifier maps a Range onto its shortest equivalent token.
func rangeQuantifier(r pattern.Range) string {
	switch {
	case r.Min == 0 && r.Max == 1:
		return "?"
	case r.Min == 1 && r.Max == pattern.Unbounded:
		return "+"
	case r.Min == 0 && r.Max == pattern.Unbounded:
		return "*"
	case r.Min == r.Max:
		return "{" + strconv.Itoa(r.Min) + "}"
	case r.Max == pattern.Unbounded:
		return "{" + strconv.Itoa(r.Min) + ",}"
	default:
		return "{" + strconv.Itoa(r.Min) + "," + strconv.Itoa(r.Max) + "}"
	}
}
