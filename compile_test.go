package mdq

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestCompileLeaf(t *testing.T) {
	mod := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		pred Pred
		want string
	}{
		{
			name: "string equality",
			pred: Cmp{Key: KeyContentType, Op: OpEq, Value: StringValue("public.folder")},
			want: `kMDItemContentType == "public.folder"`,
		},
		{
			name: "case insensitive exact name",
			pred: Cmp{Key: KeyDisplayName, Op: OpEq, Value: StringValue("Safari"), Mod: ModCaseInsensitive},
			want: `kMDItemDisplayName == "Safari"c`,
		},
		{
			name: "contains lowers to wildcard equality",
			pred: Cmp{Key: KeyDisplayName, Op: OpContains, Value: StringValue("report"), Mod: ModCaseInsensitive | ModWordBased},
			want: `kMDItemDisplayName == "*report*"cw`,
		},
		{
			name: "begins with",
			pred: Cmp{Key: KeyFSName, Op: OpBeginsWith, Value: StringValue("draft-")},
			want: `kMDItemFSName == "draft-*"`,
		},
		{
			name: "ends with",
			pred: Cmp{Key: KeyFSName, Op: OpEndsWith, Value: StringValue(".pdf"), Mod: ModCaseInsensitive},
			want: `kMDItemFSName == "*.pdf"c`,
		},
		{
			name: "numeric comparison",
			pred: Cmp{Key: KeyFSSize, Op: OpGt, Value: NumberValue(1048576)},
			want: `kMDItemFSSize > 1048576`,
		},
		{
			name: "date comparison",
			pred: Cmp{Key: KeyContentModificationDate, Op: OpLte, Value: DateValue(mod)},
			want: `kMDItemContentModificationDate <= $time.iso(2024-06-01T12:30:00Z)`,
		},
		{
			name: "bool comparison",
			pred: Cmp{Key: KeyHasAlphaChannel, Op: OpEq, Value: BoolValue(true)},
			want: `kMDItemHasAlphaChannel == 1`,
		},
		{
			name: "list membership",
			pred: Cmp{Key: KeyContentTypeTree, Op: OpEq, Value: StringValue("public.image")},
			want: `kMDItemContentTypeTree == "public.image"`,
		},
		{
			name: "match all",
			pred: MatchAll{},
			want: `kMDItemFSName == "*"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compile(tt.pred)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompileGroups(t *testing.T) {
	ext := Cmp{Key: KeyFSName, Op: OpEndsWith, Value: StringValue(".pdf")}
	size := Cmp{Key: KeyFSSize, Op: OpGt, Value: NumberValue(1000)}
	name := Cmp{Key: KeyDisplayName, Op: OpEq, Value: StringValue("a")}

	tests := []struct {
		name string
		pred Pred
		want string
	}{
		{
			name: "and of two, order preserved",
			pred: And(ext, size),
			want: `(kMDItemFSName == "*.pdf" && kMDItemFSSize > 1000)`,
		},
		{
			name: "or of two",
			pred: Or(ext, size),
			want: `(kMDItemFSName == "*.pdf" || kMDItemFSSize > 1000)`,
		},
		{
			name: "or nested under and is grouped",
			pred: And(Or(ext, name), size),
			want: `((kMDItemFSName == "*.pdf" || kMDItemDisplayName == "a") && kMDItemFSSize > 1000)`,
		},
		{
			name: "single child same kind stays flat",
			pred: And(And(size)),
			want: `kMDItemFSSize > 1000`,
		},
		{
			name: "single child different kind is grouped",
			pred: And(Or(size), ext),
			want: `((kMDItemFSSize > 1000) && kMDItemFSName == "*.pdf")`,
		},
		{
			name: "not always parenthesizes its child",
			pred: Not(size),
			want: `!(kMDItemFSSize > 1000)`,
		},
		{
			name: "not of a group",
			pred: Not(And(ext, size)),
			want: `!((kMDItemFSName == "*.pdf" && kMDItemFSSize > 1000))`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compile(tt.pred)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// unescapeLiteral reverses the compiler's string escaping, the way the
// native lexer would when reading a double-quoted literal.
func unescapeLiteral(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func TestCompileEscapingRoundTrip(t *testing.T) {
	literals := []string{
		`a"b`,
		`back\slash`,
		`star*and?mark`,
		`plain`,
		`"" and \\`,
	}

	for _, lit := range literals {
		t.Run(lit, func(t *testing.T) {
			got, err := Compile(Cmp{Key: KeyDisplayName, Op: OpEq, Value: StringValue(lit)})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			prefix := `kMDItemDisplayName == "`
			if !strings.HasPrefix(got, prefix) || !strings.HasSuffix(got, `"`) {
				t.Fatalf("unexpected shape: %q", got)
			}
			quoted := got[len(prefix) : len(got)-1]
			if un := unescapeLiteral(quoted); un != lit {
				t.Errorf("round trip: got %q, want %q", un, lit)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name string
		pred Pred
	}{
		{
			name: "contains against numeric key",
			pred: Cmp{Key: KeyFSSize, Op: OpContains, Value: StringValue("1")},
		},
		{
			name: "ordering against string key",
			pred: Cmp{Key: KeyDisplayName, Op: OpGt, Value: StringValue("a")},
		},
		{
			name: "number literal against string key",
			pred: Cmp{Key: KeyDisplayName, Op: OpEq, Value: NumberValue(1)},
		},
		{
			name: "missing literal",
			pred: Cmp{Key: KeyDisplayName, Op: OpEq},
		},
		{
			name: "empty and group",
			pred: Group{Kind: GroupAnd},
		},
		{
			name: "not with two children",
			pred: Group{Kind: GroupNot, Preds: []Pred{MatchAll{}, MatchAll{}}},
		},
		{
			name: "nil node",
			pred: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.pred)
			var cerr *CompileError
			if !errors.As(err, &cerr) {
				t.Fatalf("expected CompileError, got %v", err)
			}
		})
	}
}
