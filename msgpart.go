package msgcat

// Part is one unit of localized message content. The set of kinds is
// closed: a raw text run, a named placeholder, a plural construct or a
// select construct. Code that inspects parts should type switch over
// exactly these four types.
type Part interface {
	isPart()
}

// RawTextPart is a literal run of translated text.
type RawTextPart struct {
	Text string
}

// PlaceholderPart stands in for a value substituted at render time.
type PlaceholderPart struct {
	Name string
}

// PluralCase is one alternative of a plural construct. Spec is either an
// explicit value ("=1") or a plural category ("one", "other").
type PluralCase struct {
	Spec  string
	Parts []Part
}

// PluralPart chooses between alternative renderings based on the value of
// a numeric variable.
type PluralPart struct {
	VarName string
	Cases   []PluralCase
}

// SelectCase is one alternative of a select construct.
type SelectCase struct {
	Spec  string
	Parts []Part
}

// SelectPart chooses between alternative renderings based on the value of
// a string variable.
type SelectPart struct {
	VarName string
	Cases   []SelectCase
}

func (RawTextPart) isPart()     {}
func (PlaceholderPart) isPart() {}
func (PluralPart) isPart()      {}
func (SelectPart) isPart()      {}

// HasPlrselPart reports whether parts contains a plural or select
// construct at the top level. Record producers must keep a message's
// Plrsel flag consistent with this scan.
func HasPlrselPart(parts []Part) bool {
	for _, part := range parts {
		switch part.(type) {
		case PluralPart, SelectPart:
			return true
		case RawTextPart, PlaceholderPart:
			// plain content
		}
	}
	return false
}
