// Package mdq builds typed metadata queries, compiles them to the Spotlight
// query grammar, and executes them against a search backend.
//
// A Builder accumulates filter criteria, Build produces an immutable Query,
// and an Executor submits the compiled predicate to a Backend (the real
// Spotlight index via the spotlight package, or an in-memory fake from
// mdqtest). Result items expose metadata attributes lazily.
package mdq

import "sync"

// Key identifies a metadata attribute by its native name.
type Key string

// Well-known attribute keys.
const (
	KeyDisplayName             Key = "kMDItemDisplayName"
	KeyFSName                  Key = "kMDItemFSName"
	KeyPath                    Key = "kMDItemPath"
	KeyContentType             Key = "kMDItemContentType"
	KeyContentTypeTree         Key = "kMDItemContentTypeTree"
	KeyKind                    Key = "kMDItemKind"
	KeyTextContent             Key = "kMDItemTextContent"
	KeyAuthors                 Key = "kMDItemAuthors"
	KeyFSSize                  Key = "kMDItemFSSize"
	KeyPixelWidth              Key = "kMDItemPixelWidth"
	KeyPixelHeight             Key = "kMDItemPixelHeight"
	KeyDurationSeconds         Key = "kMDItemDurationSeconds"
	KeyHasAlphaChannel         Key = "kMDItemHasAlphaChannel"
	KeyContentModificationDate Key = "kMDItemContentModificationDate"
	KeyContentCreationDate     Key = "kMDItemContentCreationDate"
	KeyFSCreationDate          Key = "kMDItemFSCreationDate"
	KeyFSContentChangeDate     Key = "kMDItemFSContentChangeDate"
	KeyLastUsedDate            Key = "kMDItemLastUsedDate"
	KeyDateAdded               Key = "kMDItemDateAdded"
)

// Domain classifies the values an attribute key can hold.
type Domain int

const (
	DomainString Domain = iota
	DomainNumber
	DomainDate
	DomainBool
	DomainList
)

func (d Domain) String() string {
	switch d {
	case DomainNumber:
		return "number"
	case DomainDate:
		return "date"
	case DomainBool:
		return "bool"
	case DomainList:
		return "list"
	default:
		return "string"
	}
}

var (
	keyDomainsMu sync.RWMutex
	keyDomains   = map[Key]Domain{
		KeyDisplayName:             DomainString,
		KeyFSName:                  DomainString,
		KeyPath:                    DomainString,
		KeyContentType:             DomainString,
		KeyKind:                    DomainString,
		KeyTextContent:             DomainString,
		KeyContentTypeTree:         DomainList,
		KeyAuthors:                 DomainList,
		KeyFSSize:                  DomainNumber,
		KeyPixelWidth:              DomainNumber,
		KeyPixelHeight:             DomainNumber,
		KeyDurationSeconds:         DomainNumber,
		KeyHasAlphaChannel:         DomainBool,
		KeyContentModificationDate: DomainDate,
		KeyContentCreationDate:     DomainDate,
		KeyFSCreationDate:          DomainDate,
		KeyFSContentChangeDate:     DomainDate,
		KeyLastUsedDate:            DomainDate,
		KeyDateAdded:               DomainDate,
	}
)

// DomainOf reports the declared value domain for key.
// Keys not present in the registry are treated as strings.
func DomainOf(k Key) Domain {
	keyDomainsMu.RLock()
	defer keyDomainsMu.RUnlock()
	if d, ok := keyDomains[k]; ok {
		return d
	}
	return DomainString
}

// RegisterKey declares the value domain for a custom attribute key so that
// builder and compiler validation apply to it. Registering a well-known key
// overrides its declared domain.
func RegisterKey(k Key, d Domain) {
	keyDomainsMu.Lock()
	defer keyDomainsMu.Unlock()
	keyDomains[k] = d
}
