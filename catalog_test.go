package msgcat

import "testing"

func TestCatalogLookup(t *testing.T) {
	catalog, err := NewCatalog("en", []Msg{
		textMsg(5, "en", "A"),
		textMsg(2, "en", "B"),
	})
	if err != nil {
		t.Fatal(err)
	}

	assertEqual(t, catalog.Len(), 2)
	assertEqual(t, catalog.LocaleString(), "en")

	msg, ok := catalog.Message(5)
	assertEqual(t, ok, true)
	assertEqual(t, msg.ID, int64(5))
	assertEqual(t, msg.LocaleString, "en")
	assertEqual(t, msg.AltID, int64(AltIDNone))
	assertEqual(t, msg.Plrsel, false)
	assertDeepEqual(t, msg.Parts, []Part{RawTextPart{Text: "A"}})

	_, ok = catalog.Message(3)
	assertEqual(t, ok, false)
}

func TestPartsMissingIsEmpty(t *testing.T) {
	catalog, err := NewCatalog("en", []Msg{textMsg(2, "en", "B")})
	if err != nil {
		t.Fatal(err)
	}
	// A miss yields an empty slice, deliberately indistinguishable from
	// a present-but-empty message.
	assertEqual(t, len(catalog.Parts(99)), 0)
	assertDeepEqual(t, catalog.Parts(2), []Part{RawTextPart{Text: "B"}})
}

func TestEnumerationAscending(t *testing.T) {
	catalog, err := NewCatalog("en", []Msg{
		textMsg(30, "en", "c"),
		textMsg(10, "en", "a"),
		textMsg(20, "en", "b"),
		textMsg(5, "en", "z"),
	})
	if err != nil {
		t.Fatal(err)
	}

	var ids []int64
	for msg := range catalog.Messages() {
		ids = append(ids, msg.ID)
	}
	assertDeepEqual(t, ids, []int64{5, 10, 20, 30})
	assertEqual(t, len(ids), catalog.Len())
}

func TestEnumerationRestartable(t *testing.T) {
	catalog, err := NewCatalog("en", []Msg{
		textMsg(1, "en", "a"),
		textMsg(2, "en", "b"),
	})
	if err != nil {
		t.Fatal(err)
	}

	seq := catalog.Messages()
	for range 2 {
		n := 0
		for msg := range seq {
			n++
			if _, ok := catalog.Message(msg.ID); !ok {
				t.Errorf("enumerated message %d not found by lookup", msg.ID)
			}
		}
		assertEqual(t, n, 2)
	}
}

func TestEnumerationEarlyBreak(t *testing.T) {
	catalog, err := NewCatalog("en", []Msg{
		textMsg(1, "en", "a"),
		textMsg(2, "en", "b"),
		textMsg(3, "en", "c"),
	})
	if err != nil {
		t.Fatal(err)
	}

	var first []int64
	for msg := range catalog.Messages() {
		first = append(first, msg.ID)
		if len(first) == 2 {
			break
		}
	}
	assertDeepEqual(t, first, []int64{1, 2})
}

func TestPlrselRecomputed(t *testing.T) {
	catalog, err := NewCatalog("fr", []Msg{pluralMsg(7, "fr", "count")})
	if err != nil {
		t.Fatal(err)
	}

	msg, ok := catalog.Message(7)
	assertEqual(t, ok, true)
	assertEqual(t, msg.Plrsel, true)
}

func TestEmptyCatalog(t *testing.T) {
	catalog, err := NewCatalog("en", nil)
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, catalog.Len(), 0)
	_, ok := catalog.Message(1)
	assertEqual(t, ok, false)
	n := 0
	for range catalog.Messages() {
		n++
	}
	assertEqual(t, n, 0)
}

func TestUnassignedLocale(t *testing.T) {
	// Catalogs built straight from extraction output have no locale yet.
	catalog, err := NewCatalog("", []Msg{textMsg(1, "", "a")})
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, catalog.LocaleString(), "")
	_, ok := catalog.Locale()
	assertEqual(t, ok, false)
	assertEqual(t, catalog.IsRTL(), false)

	msg, ok := catalog.Message(1)
	assertEqual(t, ok, true)
	assertEqual(t, msg.LocaleString, "")
}
