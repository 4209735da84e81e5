package spotlight

import (
	"reflect"
	"testing"
	"time"
)

func TestParseRawValue(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want any
		ok   bool
	}{
		{"null", "(null)\n", nil, false},
		{"empty", "", nil, false},
		{"string", "Safari\n", "Safari", true},
		{"quoted string", `"public.folder"`, "public.folder", true},
		{"number", "2048\n", float64(2048), true},
		{"float", "12.5", 12.5, true},
		{
			"date",
			"2024-06-01 12:30:00 +0000\n",
			time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC),
			true,
		},
		{
			"list",
			"(\n    \"alice\",\n    \"bob\"\n)",
			[]any{"alice", "bob"},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := parseRawValue(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tt.ok {
				t.Fatalf("ok: got %v, want %v", ok, tt.ok)
			}
			if !tt.ok {
				return
			}
			if tt.name == "date" {
				if !got.(time.Time).Equal(tt.want.(time.Time)) {
					t.Errorf("got %v, want %v", got, tt.want)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParseAttributeNames(t *testing.T) {
	out := `kMDItemContentType                 = "public.plain-text"
kMDItemFSSize                      = 1357
kMDItemAuthors                     = (
    "alice",
    "bob"
)
kMDItemTextContent                 = (null)
kMDItemContentModificationDate     = 2024-06-01 12:30:00 +0000
`
	got := parseAttributeNames(out)
	want := []string{
		"kMDItemContentType",
		"kMDItemFSSize",
		"kMDItemAuthors",
		"kMDItemContentModificationDate",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOnlyinDir(t *testing.T) {
	tests := []struct {
		root     string
		restrict bool
		dir      string // empty means "don't check the exact value"
	}{
		{"kMDQueryScopeComputer", false, ""},
		{"kMDQueryScopeAllIndexed", false, ""},
		{"kMDQueryScopeComputerIndexed", false, ""},
		{"kMDQueryScopeNetwork", true, "/Network"},
		{"kMDQueryScopeNetworkIndexed", true, "/Network"},
		{"/Users/shared/docs", true, "/Users/shared/docs"},
	}

	for _, tt := range tests {
		t.Run(tt.root, func(t *testing.T) {
			dir, restrict, err := onlyinDir(tt.root)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if restrict != tt.restrict {
				t.Errorf("restrict: got %v, want %v", restrict, tt.restrict)
			}
			if tt.dir != "" && dir != tt.dir {
				t.Errorf("dir: got %q, want %q", dir, tt.dir)
			}
		})
	}
}
