// Package msgcat provides read-optimized catalogs of localized messages,
// resolving numeric message IDs to their content parts at render time.
//
// A serving process typically holds one Catalog per locale, so the
// representation is tuned for memory first: two parallel sorted arrays
// plus binary search instead of a hash table, and message views that are
// reconstructed on demand rather than stored.
package msgcat

import (
	"errors"
	"fmt"
	"iter"
	"sort"

	"golang.org/x/text/language"
)

// AltIDNone marks a message without an alternate ID. Any negative AltID
// is treated as unset.
const AltIDNone = -1

// Construction errors. NewCatalog wraps these with the offending message
// ID; match with errors.Is.
var (
	ErrLocaleMismatch      = errors.New("message locale differs from catalog locale")
	ErrAltIDUnsupported    = errors.New("alternate message IDs are not supported")
	ErrDuplicateMsgID      = errors.New("duplicate message ID")
	ErrPlrselInconsistency = errors.New("plural/select flag does not match message parts")
)

// Msg is a single localized message. It serves both as the input record
// handed to NewCatalog and as the view returned by lookups; returned
// views are built fresh on every query and borrow their Parts slice from
// the catalog.
type Msg struct {
	// ID uniquely names the message within one catalog.
	ID int64
	// LocaleString is the message's locale, or "" if not yet assigned.
	LocaleString string
	// AltID is a secondary lookup ID used by richer catalog variants.
	// Must be AltIDNone here.
	AltID int64
	// Plrsel records whether the message contains a plural or select
	// construct. Must agree with HasPlrselPart(Parts).
	Plrsel bool
	Parts  []Part
}

// Catalog holds the renderable messages of one locale. It is immutable
// once built: any number of goroutines may query and enumerate it
// concurrently without synchronization.
//
// Message IDs are kept in a flat sorted []int64 that is binary searched,
// with the part lists in a parallel array. Compared to a map this avoids
// per-entry key/value headers and empty buckets, at the price of O(log n)
// lookups.
type Catalog struct {
	localeString string
	locale       language.Tag
	hasLocale    bool
	rtl          bool

	// ids is sorted ascending with no duplicates; values[i] holds the
	// parts for ids[i].
	ids    []int64
	values [][]Part
}

// NewCatalog builds a catalog for localeString ("" for messages freshly
// extracted from source, before a locale is assigned) from a finite set
// of messages. Construction is all or nothing: on any error no catalog
// is returned.
func NewCatalog(localeString string, msgs []Msg) (*Catalog, error) {
	byID := make(map[int64][]Part, len(msgs))
	for _, m := range msgs {
		if m.LocaleString != localeString {
			return nil, fmt.Errorf("%w: message %d has locale %q, want %q",
				ErrLocaleMismatch, m.ID, m.LocaleString, localeString)
		}
		if m.AltID >= 0 {
			return nil, fmt.Errorf("%w: message %d has alternate ID %d",
				ErrAltIDUnsupported, m.ID, m.AltID)
		}
		if _, seen := byID[m.ID]; seen {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateMsgID, m.ID)
		}
		if HasPlrselPart(m.Parts) != m.Plrsel {
			// Upstream extraction bug, not bad user input.
			return nil, fmt.Errorf("%w: message %d", ErrPlrselInconsistency, m.ID)
		}
		byID[m.ID] = m.Parts
	}

	// Flatten into the parallel arrays in ascending ID order. The map is
	// discarded; only the flat arrays are retained.
	ids := make([]int64, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	values := make([][]Part, len(ids))
	for i, id := range ids {
		values[i] = byID[id]
	}

	locale, hasLocale := resolveLocale(localeString)
	return &Catalog{
		localeString: localeString,
		locale:       locale,
		hasLocale:    hasLocale,
		rtl:          hasLocale && rtlScript(locale),
		ids:          ids,
		values:       values,
	}, nil
}

// LocaleString returns the catalog's locale, or "" if unassigned.
func (c *Catalog) LocaleString() string {
	return c.localeString
}

// Locale returns the parsed locale tag. ok is false iff the catalog was
// built without a locale.
func (c *Catalog) Locale() (tag language.Tag, ok bool) {
	return c.locale, c.hasLocale
}

// IsRTL reports whether the catalog's locale is written right to left.
// It is computed once at construction from the locale string alone.
func (c *Catalog) IsRTL() bool {
	return c.rtl
}

// Len returns the number of messages in the catalog.
func (c *Catalog) Len() int {
	return len(c.ids)
}

// Message returns the message with the given ID, rebuilt from the
// compact storage. ok is false if the ID is not in the catalog; a miss
// is not an error.
func (c *Catalog) Message(id int64) (msg Msg, ok bool) {
	i, ok := c.search(id)
	if !ok {
		return Msg{}, false
	}
	return c.resurrect(i), true
}

// Parts returns the content parts of the message with the given ID, or
// an empty slice if the ID is not in the catalog. The result is borrowed
// from the catalog and must not be modified. Callers that need to
// distinguish a missing message from one with no parts should use
// Message.
func (c *Catalog) Parts(id int64) []Part {
	i, ok := c.search(id)
	if !ok {
		return nil
	}
	return c.values[i]
}

// Messages returns an iterator over all messages in ascending ID order.
// Each ranging of the returned sequence is an independent traversal, and
// each step rebuilds its Msg from the compact storage.
func (c *Catalog) Messages() iter.Seq[Msg] {
	return func(yield func(Msg) bool) {
		for i := range c.ids {
			if !yield(c.resurrect(i)) {
				return
			}
		}
	}
}

func (c *Catalog) search(id int64) (idx int, ok bool) {
	idx = sort.Search(len(c.ids), func(i int) bool {
		return c.ids[i] >= id
	})
	if idx < len(c.ids) && c.ids[idx] == id {
		return idx, true
	}
	return 0, false
}

// resurrect brings a message back to life from its storage slot.
func (c *Catalog) resurrect(i int) Msg {
	parts := c.values[i]
	return Msg{
		ID:           c.ids[i],
		LocaleString: c.localeString,
		AltID:        AltIDNone,
		Plrsel:       HasPlrselPart(parts),
		Parts:        parts,
	}
}
