package mdq

// Pred is a node in a predicate expression: either a comparison leaf or a
// boolean combination of child nodes.
type Pred interface {
	predNode()
}

// Op is a comparison operator.
type Op int

const (
	OpEq  Op = iota // == (equals)
	OpNeq           // !=
	OpLt            // <
	OpGt            // >
	OpLte           // <=
	OpGte           // >=
	OpContains
	OpBeginsWith
	OpEndsWith
)

func (op Op) String() string {
	switch op {
	case OpNeq:
		return "!="
	case OpLt:
		return "<"
	case OpGt:
		return ">"
	case OpLte:
		return "<="
	case OpGte:
		return ">="
	case OpContains:
		return "contains"
	case OpBeginsWith:
		return "begins-with"
	case OpEndsWith:
		return "ends-with"
	default:
		return "=="
	}
}

// ordering reports whether op requires an ordered (number or date) domain.
func (op Op) ordering() bool {
	switch op {
	case OpLt, OpGt, OpLte, OpGte:
		return true
	}
	return false
}

// substring reports whether op is a string pattern operator. These lower to
// wildcard equality in the compiled grammar.
func (op Op) substring() bool {
	switch op {
	case OpContains, OpBeginsWith, OpEndsWith:
		return true
	}
	return false
}

// CmpMod is a set of string-comparison modifiers appended to compiled
// string literals, mirroring the native grammar's `"…"cdw` suffixes.
type CmpMod uint8

const (
	// ModCaseInsensitive folds case when comparing.
	ModCaseInsensitive CmpMod = 1 << iota
	// ModDiacriticInsensitive folds diacritics when comparing.
	ModDiacriticInsensitive
	// ModWordBased matches on word boundaries (also enables transliterated
	// matching, e.g. Pinyin, in the native index).
	ModWordBased
)

// Cmp compares one attribute against a literal value.
type Cmp struct {
	Key   Key
	Op    Op
	Value Value
	Mod   CmpMod
}

func (Cmp) predNode() {}

// GroupKind selects how a Group combines its children.
type GroupKind int

const (
	GroupAnd GroupKind = iota
	GroupOr
	GroupNot
)

func (k GroupKind) String() string {
	switch k {
	case GroupOr:
		return "or"
	case GroupNot:
		return "not"
	default:
		return "and"
	}
}

// Group combines child predicates with a boolean operator.
// GroupNot takes exactly one child; GroupAnd and GroupOr take one or more,
// combined left to right.
type Group struct {
	Kind  GroupKind
	Preds []Pred
}

func (Group) predNode() {}

// MatchAll is the trivial always-true predicate. A builder with no criteria
// builds into it.
type MatchAll struct{}

func (MatchAll) predNode() {}

// Compare builds a comparison leaf.
func Compare(key Key, op Op, value Value) Pred {
	return Cmp{Key: key, Op: op, Value: value}
}

// And combines predicates so every one must match.
func And(preds ...Pred) Pred {
	return Group{Kind: GroupAnd, Preds: preds}
}

// Or combines predicates so at least one must match.
func Or(preds ...Pred) Pred {
	return Group{Kind: GroupOr, Preds: preds}
}

// Not inverts a predicate.
func Not(p Pred) Pred {
	return Group{Kind: GroupNot, Preds: []Pred{p}}
}
