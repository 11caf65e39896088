package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/pelletier/go-toml/v2"

	msgcat "github.com/templatekit/go-msgcat"
)

type options struct {
	ID *int64 `short:"i" long:"id" value-name:"ID" description:"print only the message with this ID"`

	Quiet bool `short:"q" long:"quiet" description:"only validate the record files, print nothing"`
}

// recordFile is the TOML shape produced by the message extraction
// tooling.
type recordFile struct {
	Locale   string   `toml:"locale"`
	Messages []record `toml:"message"`
}

type record struct {
	ID     int64        `toml:"id"`
	AltID  *int64       `toml:"alt_id"`
	Plrsel *bool        `toml:"plrsel"`
	Parts  []partRecord `toml:"part"`
}

type partRecord struct {
	Text        *string       `toml:"text"`
	Placeholder *string       `toml:"placeholder"`
	Plural      *choiceRecord `toml:"plural"`
	Select      *choiceRecord `toml:"select"`
}

type choiceRecord struct {
	Var   string `toml:"var"`
	Cases []struct {
		Spec  string       `toml:"spec"`
		Parts []partRecord `toml:"part"`
	} `toml:"case"`
}

func main() {
	var opts options
	args, err := flags.ParseArgs(&opts, os.Args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
	if len(args) < 2 {
		log.Fatalf("no record files given")
	}

	for _, file := range args[1:] {
		catalog, err := loadCatalog(file)
		if err != nil {
			log.Fatalf("cannot load %v: %v", file, err)
		}
		if opts.Quiet {
			continue
		}
		if opts.ID != nil {
			msg, ok := catalog.Message(*opts.ID)
			if !ok {
				log.Fatalf("%v: no message with ID %d", file, *opts.ID)
			}
			fmt.Printf("%d\t%s\n", msg.ID, formatParts(msg.Parts))
			continue
		}
		dir := "ltr"
		if catalog.IsRTL() {
			dir = "rtl"
		}
		fmt.Printf("# %s: locale=%q dir=%s messages=%d\n",
			file, catalog.LocaleString(), dir, catalog.Len())
		for msg := range catalog.Messages() {
			fmt.Printf("%d\t%s\n", msg.ID, formatParts(msg.Parts))
		}
	}
}

func loadCatalog(path string) (*msgcat.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	locale, msgs, err := decodeRecords(data)
	if err != nil {
		return nil, err
	}
	return msgcat.NewCatalog(locale, msgs)
}

func decodeRecords(data []byte) (locale string, msgs []msgcat.Msg, err error) {
	var file recordFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return "", nil, err
	}

	for _, rec := range file.Messages {
		parts, err := decodeParts(rec.Parts)
		if err != nil {
			return "", nil, fmt.Errorf("message %d: %v", rec.ID, err)
		}
		msg := msgcat.Msg{
			ID:           rec.ID,
			LocaleString: file.Locale,
			AltID:        msgcat.AltIDNone,
			Plrsel:       msgcat.HasPlrselPart(parts),
			Parts:        parts,
		}
		if rec.AltID != nil {
			msg.AltID = *rec.AltID
		}
		if rec.Plrsel != nil {
			msg.Plrsel = *rec.Plrsel
		}
		msgs = append(msgs, msg)
	}
	return file.Locale, msgs, nil
}

func decodeParts(recs []partRecord) ([]msgcat.Part, error) {
	var parts []msgcat.Part
	for _, rec := range recs {
		switch {
		case rec.Text != nil:
			parts = append(parts, msgcat.RawTextPart{Text: *rec.Text})
		case rec.Placeholder != nil:
			parts = append(parts, msgcat.PlaceholderPart{Name: *rec.Placeholder})
		case rec.Plural != nil:
			cases := make([]msgcat.PluralCase, 0, len(rec.Plural.Cases))
			for _, cs := range rec.Plural.Cases {
				body, err := decodeParts(cs.Parts)
				if err != nil {
					return nil, err
				}
				cases = append(cases, msgcat.PluralCase{Spec: cs.Spec, Parts: body})
			}
			parts = append(parts, msgcat.PluralPart{VarName: rec.Plural.Var, Cases: cases})
		case rec.Select != nil:
			cases := make([]msgcat.SelectCase, 0, len(rec.Select.Cases))
			for _, cs := range rec.Select.Cases {
				body, err := decodeParts(cs.Parts)
				if err != nil {
					return nil, err
				}
				cases = append(cases, msgcat.SelectCase{Spec: cs.Spec, Parts: body})
			}
			parts = append(parts, msgcat.SelectPart{VarName: rec.Select.Var, Cases: cases})
		default:
			return nil, fmt.Errorf("part has none of text, placeholder, plural, select")
		}
	}
	return parts, nil
}

// formatParts renders parts in a compact single-line form for dumping.
func formatParts(parts []msgcat.Part) string {
	var sb strings.Builder
	for _, part := range parts {
		switch p := part.(type) {
		case msgcat.RawTextPart:
			sb.WriteString(p.Text)
		case msgcat.PlaceholderPart:
			fmt.Fprintf(&sb, "{%s}", p.Name)
		case msgcat.PluralPart:
			fmt.Fprintf(&sb, "{plural %s", p.VarName)
			for _, cs := range p.Cases {
				fmt.Fprintf(&sb, " %s[%s]", cs.Spec, formatParts(cs.Parts))
			}
			sb.WriteByte('}')
		case msgcat.SelectPart:
			fmt.Fprintf(&sb, "{select %s", p.VarName)
			for _, cs := range p.Cases {
				fmt.Fprintf(&sb, " %s[%s]", cs.Spec, formatParts(cs.Parts))
			}
			sb.WriteByte('}')
		}
	}
	return sb.String()
}
