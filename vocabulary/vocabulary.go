package vocabulary

import (
	"strings"

	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"
)

// New builds a vocabulary from entries. Names must be non-empty and unique
// (case-insensitively) across all kinds; every violation is reported.
func New(entries ...Entry) (*Vocabulary, error) {
	v := &Vocabulary{
		byName: make(map[string]Entry, len(entries)),
		byKind: make(map[Kind][]Entry),
	}

	var err error
	for _, e := range entries {
		e.Name = strings.TrimSpace(e.Name)
		if e.Name == "" {
			err = multierr.Append(err, errors.Errorf("%s with empty name", e.Kind))
			continue
		}

		key := strings.ToUpper(e.Name)
		if prev, ok := v.byName[key]; ok {
			if prev.Kind == e.Kind {
				err = multierr.Append(err, errors.Errorf("duplicate %s %q", e.Kind, e.Name))
			} else {
				err = multierr.Append(err, errors.Errorf("%q is declared as both %s and %s", e.Name, prev.Kind, e.Kind))
			}
			continue
		}

		v.byName[key] = e
		v.byKind[e.Kind] = append(v.byKind[e.Kind], e)
	}

	if err != nil {
		return nil, errors.Errorf("invalid vocabulary: %w", err)
	}
	return v, nil
}

// Lookup finds an entry by name, ignoring case.
func (v *Vocabulary) Lookup(name string) (Entry, bool) {
	e, ok := v.byName[strings.ToUpper(strings.TrimSpace(name))]
	return e, ok
}

// Entries returns the entries of one kind in declaration order.
func (v *Vocabulary) Entries(kind Kind) []Entry {
	return append([]Entry(nil), v.byKind[kind]...)
}

// All returns every entry grouped by kind: mnemonics, registers, directives
// and macro keywords.
func (v *Vocabulary) All() []Entry {
	all := make([]Entry, 0, len(v.byName))
	for _, k := range kindOrder {
		all = append(all, v.byKind[k]...)
	}
	return all
}

func (v *Vocabulary) Len() int {
	return len(v.byName)
}
