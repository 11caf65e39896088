package msgcat

import (
	"strings"

	"golang.org/x/text/language"
)

// rtlScripts is the set of scripts written right to left, keyed by
// ISO 15924 code.
var rtlScripts = map[string]bool{
	"Adlm": true, // Adlam
	"Arab": true, // Arabic
	"Aran": true, // Nastaliq
	"Hebr": true, // Hebrew
	"Mand": true, // Mandaic
	"Nkoo": true, // N'Ko
	"Rohg": true, // Hanifi Rohingya
	"Samr": true, // Samaritan
	"Syrc": true, // Syriac
	"Thaa": true, // Thaana
	"Yezi": true, // Yezidi
}

// resolveLocale parses a locale string into a language tag. ok is false
// only for the empty string; parsing itself never fails, mirroring how
// message files may carry POSIX-style tags ("en_US") alongside BCP 47.
func resolveLocale(localeString string) (tag language.Tag, ok bool) {
	if localeString == "" {
		return language.Und, false
	}
	return language.Make(strings.ReplaceAll(localeString, "_", "-")), true
}

// rtlScript reports whether the tag's likely script is right to left.
// For tags without an explicit script ("ar", "he") the script is
// inferred from likely-subtag data.
func rtlScript(tag language.Tag) bool {
	script, _ := tag.Script()
	return rtlScripts[script.String()]
}
