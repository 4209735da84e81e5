package mdq

import (
	"fmt"
	"time"
)

// UTI content types used by the builder shortcuts.
const (
	typeFolder    = "public.folder"
	typeAppBundle = "com.apple.application-bundle"
)

// Builder accumulates filter criteria for a metadata query.
//
// The zero value is an empty builder. Criterion methods mutate the builder
// and return it for chaining; an invalid criterion does not panic but is
// latched and reported by Build. Build is the only terminal operation. The
// builder never touches the search backend.
//
//	q, err := mdq.NewBuilder().
//		NameLike("report").
//		Extension("pdf").
//		Size(mdq.OpGt, 1<<20).
//		Build([]mdq.Scope{mdq.ScopeHome}, 50)
type Builder struct {
	preds []Pred
	err   string
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) add(p Pred) *Builder {
	b.preds = append(b.preds, p)
	return b
}

func (b *Builder) fail(reason string) *Builder {
	if b.err == "" {
		b.err = reason
	}
	return b
}

// NameLike matches items whose display name contains name. The match is
// case-insensitive and word-based (the index also matches transliterations,
// e.g. Pinyin).
func (b *Builder) NameLike(name string) *Builder {
	return b.add(Cmp{
		Key:   KeyDisplayName,
		Op:    OpContains,
		Value: StringValue(name),
		Mod:   ModCaseInsensitive | ModWordBased,
	})
}

// NameIs matches items whose display name equals name, case-insensitively.
func (b *Builder) NameIs(name string) *Builder {
	return b.add(Cmp{
		Key:   KeyDisplayName,
		Op:    OpEq,
		Value: StringValue(name),
		Mod:   ModCaseInsensitive,
	})
}

// Extension matches items whose filesystem name has the given extension
// (without the leading dot).
func (b *Builder) Extension(ext string) *Builder {
	return b.add(Cmp{
		Key:   KeyFSName,
		Op:    OpEndsWith,
		Value: StringValue("." + ext),
		Mod:   ModCaseInsensitive,
	})
}

// ContentType matches items with the given content type UTI.
func (b *Builder) ContentType(uti string) *Builder {
	return b.add(Cmp{Key: KeyContentType, Op: OpEq, Value: StringValue(uti)})
}

// ContentTypeTree matches items whose content type conforms to uti
// (membership in the item's type tree).
func (b *Builder) ContentTypeTree(uti string) *Builder {
	return b.add(Cmp{Key: KeyContentTypeTree, Op: OpEq, Value: StringValue(uti)})
}

// IsDir filters by whether items are plain folders. App bundles and other
// package directories do not count as folders.
func (b *Builder) IsDir(value bool) *Builder {
	op := OpEq
	if !value {
		op = OpNeq
	}
	return b.add(Cmp{Key: KeyContentType, Op: op, Value: StringValue(typeFolder)})
}

// IsApp matches application bundles.
func (b *Builder) IsApp() *Builder {
	return b.ContentType(typeAppBundle)
}

// Time adds a comparison against a date key.
func (b *Builder) Time(key Key, op Op, t time.Time) *Builder {
	if DomainOf(key) != DomainDate {
		return b.fail(fmt.Sprintf("key %s is not a date key", key))
	}
	return b.add(Cmp{Key: key, Op: op, Value: DateValue(t)})
}

// ModifiedAfter matches items modified after t.
func (b *Builder) ModifiedAfter(t time.Time) *Builder {
	return b.Time(KeyContentModificationDate, OpGt, t)
}

// ModifiedBefore matches items modified before t.
func (b *Builder) ModifiedBefore(t time.Time) *Builder {
	return b.Time(KeyContentModificationDate, OpLt, t)
}

// Size adds a file size comparison, in bytes.
func (b *Builder) Size(op Op, bytes int64) *Builder {
	return b.add(Cmp{Key: KeyFSSize, Op: op, Value: NumberValue(float64(bytes))})
}

// Where adds an arbitrary attribute comparison.
func (b *Builder) Where(key Key, op Op, value Value) *Builder {
	return b.add(Cmp{Key: key, Op: op, Value: value})
}

// Not adds an inverted predicate.
func (b *Builder) Not(p Pred) *Builder {
	return b.add(Not(p))
}

// AnyOf adds a group where at least one predicate must match.
func (b *Builder) AnyOf(preds ...Pred) *Builder {
	if len(preds) == 0 {
		return b.fail("AnyOf needs at least one predicate")
	}
	return b.add(Or(preds...))
}

// AllOf adds a group where every predicate must match.
func (b *Builder) AllOf(preds ...Pred) *Builder {
	if len(preds) == 0 {
		return b.fail("AllOf needs at least one predicate")
	}
	return b.add(And(preds...))
}

// Build validates the accumulated criteria and finalizes them into an
// immutable Query. At least one scope is required; limit 0 means no result
// cap. A builder with no criteria builds into the always-true predicate.
// Build performs no backend interaction; compilation happens at execution.
func (b *Builder) Build(scopes []Scope, limit int) (*Query, error) {
	if b.err != "" {
		return nil, &BuildError{Reason: b.err}
	}
	if len(scopes) == 0 {
		return nil, &BuildError{Reason: "no search scopes supplied"}
	}
	if limit < 0 {
		return nil, &BuildError{Reason: "negative result limit"}
	}
	for _, p := range b.preds {
		if reason := predProblem(p); reason != "" {
			return nil, &BuildError{Reason: reason}
		}
	}

	var pred Pred
	switch len(b.preds) {
	case 0:
		pred = MatchAll{}
	case 1:
		pred = b.preds[0]
	default:
		preds := make([]Pred, len(b.preds))
		copy(preds, b.preds)
		pred = Group{Kind: GroupAnd, Preds: preds}
	}

	sc := make([]Scope, len(scopes))
	copy(sc, scopes)
	return &Query{pred: pred, scopes: sc, limit: limit}, nil
}

// predProblem walks a predicate tree and reports the first structural or
// type-compatibility problem, or "" if the tree is valid.
func predProblem(p Pred) string {
	switch n := p.(type) {
	case MatchAll:
		return ""
	case Cmp:
		return cmpProblem(n, DomainOf(n.Key))
	case Group:
		if n.Kind == GroupNot && len(n.Preds) != 1 {
			return fmt.Sprintf("not group needs exactly one child, has %d", len(n.Preds))
		}
		if len(n.Preds) == 0 {
			return "empty " + n.Kind.String() + " group"
		}
		for _, child := range n.Preds {
			if reason := predProblem(child); reason != "" {
				return reason
			}
		}
		return ""
	case nil:
		return "nil predicate node"
	default:
		return fmt.Sprintf("unknown predicate node %T", p)
	}
}
