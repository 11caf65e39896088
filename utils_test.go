package msgcat

import (
	"reflect"
	"testing"
)

func assertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func assertDeepEqual(t *testing.T, got, want interface{}) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

// textMsg builds a plain-text message record.
func textMsg(id int64, locale string, texts ...string) Msg {
	parts := make([]Part, len(texts))
	for i, text := range texts {
		parts[i] = RawTextPart{Text: text}
	}
	return Msg{
		ID:           id,
		LocaleString: locale,
		AltID:        AltIDNone,
		Parts:        parts,
	}
}

// pluralMsg builds a message record with a single plural construct.
func pluralMsg(id int64, locale, varName string) Msg {
	return Msg{
		ID:           id,
		LocaleString: locale,
		AltID:        AltIDNone,
		Plrsel:       true,
		Parts: []Part{
			PluralPart{
				VarName: varName,
				Cases: []PluralCase{
					{Spec: "=1", Parts: []Part{RawTextPart{Text: "one"}}},
					{Spec: "other", Parts: []Part{RawTextPart{Text: "many"}}},
				},
			},
		},
	}
}
