package mdq

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// matchAllQuery is the conventional Spotlight catch-all comparison; the
// grammar does not accept a bare `*`.
const matchAllQuery = `kMDItemFSName == "*"`

// Compile serializes a predicate into the native Spotlight query string.
//
// The compiled string must lex back to exactly the intended literals, so
// string quoting escapes backslashes, quotes, and the `*`/`?` wildcards.
// Group nodes are parenthesized whenever grouping is not implied by position,
// so the output never relies on the native grammar's default associativity.
func Compile(p Pred) (string, error) {
	return compileNode(p, groupNone)
}

// groupNone marks a node with no parent combinator.
const groupNone GroupKind = -1

func compileNode(p Pred, parent GroupKind) (string, error) {
	switch n := p.(type) {
	case MatchAll:
		return matchAllQuery, nil
	case Cmp:
		return compileCmp(n)
	case Group:
		return compileGroup(n, parent)
	case nil:
		return "", &CompileError{Reason: "nil predicate node"}
	default:
		return "", &CompileError{Reason: fmt.Sprintf("unknown predicate node %T", p)}
	}
}

func compileGroup(g Group, parent GroupKind) (string, error) {
	if g.Kind == GroupNot {
		if len(g.Preds) != 1 {
			return "", &CompileError{Reason: fmt.Sprintf("not group needs exactly one child, has %d", len(g.Preds))}
		}
		child, err := compileNode(g.Preds[0], groupNone)
		if err != nil {
			return "", err
		}
		return "!(" + child + ")", nil
	}

	if len(g.Preds) == 0 {
		return "", &CompileError{Reason: "empty " + g.Kind.String() + " group"}
	}

	sep := " && "
	if g.Kind == GroupOr {
		sep = " || "
	}

	parts := make([]string, len(g.Preds))
	for i, child := range g.Preds {
		s, err := compileNode(child, g.Kind)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}

	joined := strings.Join(parts, sep)
	if len(g.Preds) > 1 || (parent != groupNone && parent != g.Kind) {
		return "(" + joined + ")", nil
	}
	return joined, nil
}

func compileCmp(c Cmp) (string, error) {
	dom := DomainOf(c.Key)
	if err := checkCmp(c, dom); err != nil {
		return "", err
	}

	if c.Op.substring() {
		s, _ := c.Value.String()
		return fmt.Sprintf("%s == %s", c.Key, patternLiteral(s, c.Op, c.Mod)), nil
	}

	lit, err := literal(c.Value, c.Mod)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s %s", c.Key, c.Op, lit), nil
}

// checkCmp re-validates operator/domain/literal compatibility. The builder
// performs the same check at Build time; this one catches hand-assembled
// predicates.
func checkCmp(c Cmp, dom Domain) error {
	if reason := cmpProblem(c, dom); reason != "" {
		return &CompileError{Reason: reason}
	}
	return nil
}

// cmpProblem reports why a comparison is invalid, or "" if it is fine.
// Shared between builder validation (BuildError) and the compiler's own
// re-check (CompileError).
func cmpProblem(c Cmp, dom Domain) string {
	if c.Value.IsAbsent() {
		return fmt.Sprintf("comparison on %s has no literal", c.Key)
	}
	if c.Op.ordering() && dom != DomainNumber && dom != DomainDate {
		return fmt.Sprintf("operator %s requires a number or date key, %s is %s", c.Op, c.Key, dom)
	}
	if c.Op.substring() {
		if dom != DomainString {
			return fmt.Sprintf("operator %s requires a string key, %s is %s", c.Op, c.Key, dom)
		}
		if c.Value.Kind() != ValueString {
			return fmt.Sprintf("operator %s requires a string literal, have %s", c.Op, c.Value.Kind())
		}
		return ""
	}
	if !literalCompatible(c.Value.Kind(), dom) {
		return fmt.Sprintf("%s literal is not comparable to %s key %s", c.Value.Kind(), dom, c.Key)
	}
	return ""
}

// literalCompatible reports whether a literal of kind k can be compared
// against a key of domain dom. List keys compare element-wise against a
// string literal in the native grammar.
func literalCompatible(k ValueKind, dom Domain) bool {
	switch dom {
	case DomainString, DomainList:
		return k == ValueString
	case DomainNumber:
		return k == ValueNumber
	case DomainDate:
		return k == ValueDate
	case DomainBool:
		return k == ValueBool
	}
	return false
}

func literal(v Value, mod CmpMod) (string, error) {
	switch v.Kind() {
	case ValueString:
		s, _ := v.String()
		return quote(s) + modSuffix(mod), nil
	case ValueNumber:
		n, _ := v.Number()
		return strconv.FormatFloat(n, 'f', -1, 64), nil
	case ValueDate:
		t, _ := v.Date()
		return fmt.Sprintf("$time.iso(%s)", t.Format(time.RFC3339)), nil
	case ValueBool:
		b, _ := v.Bool()
		if b {
			return "1", nil
		}
		return "0", nil
	default:
		return "", &CompileError{Reason: fmt.Sprintf("cannot render %s literal", v.Kind())}
	}
}

// patternLiteral renders the wildcard-equality form the substring operators
// lower to: contains `"*s*"`, begins-with `"s*"`, ends-with `"*s"`.
func patternLiteral(s string, op Op, mod CmpMod) string {
	esc := escapeString(s)
	switch op {
	case OpBeginsWith:
		esc = esc + "*"
	case OpEndsWith:
		esc = "*" + esc
	default:
		esc = "*" + esc + "*"
	}
	return `"` + esc + `"` + modSuffix(mod)
}

func quote(s string) string {
	return `"` + escapeString(s) + `"`
}

// escapeString escapes a literal for a double-quoted native string.
// Backslash first, then the quote, then the wildcard metacharacters.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, `*`, `\*`)
	s = strings.ReplaceAll(s, `?`, `\?`)
	return s
}

func modSuffix(mod CmpMod) string {
	if mod == 0 {
		return ""
	}
	var b strings.Builder
	if mod&ModCaseInsensitive != 0 {
		b.WriteByte('c')
	}
	if mod&ModDiacriticInsensitive != 0 {
		b.WriteByte('d')
	}
	if mod&ModWordBased != 0 {
		b.WriteByte('w')
	}
	return b.String()
}
