package gear

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies a gear type.
type Kind string

const (
	KindSpur    Kind = "spur"
	KindHelical Kind = "helical"
	KindRing    Kind = "ring"
	KindWorm    Kind = "worm"
	KindBevel   Kind = "bevel"
)

// Entry associates a gear type with its display label and calculator.
type Entry struct {
	Key        Kind
	Label      string
	Calculator Calculator
}

// ErrUnknownKind is returned by ParseKind for unregistered gear types.
var ErrUnknownKind = errors.New("unknown gear type")

// entries is in display order.
var entries = [...]Entry{
	{Key: KindSpur, Label: "Spur", Calculator: Spur{}},
	{Key: KindHelical, Label: "Helical", Calculator: Helical{}},
	{Key: KindRing, Label: "Ring (Internal)", Calculator: Ring{}},
	{Key: KindWorm, Label: "Worm", Calculator: Worm{}},
	{Key: KindBevel, Label: "Bevel", Calculator: Bevel{}},
}

var registry = initRegistry()

func initRegistry() map[Kind]Entry {
	m := make(map[Kind]Entry, len(entries))
	for _, e := range entries {
		m[e.Key] = e
	}
	return m
}

// Lookup returns the registry entry for k. It panics if k is not
// one of the declared kinds.
func Lookup(k Kind) Entry {
	e, ok := registry[k]
	if !ok {
		panic("gear: unregistered kind " + string(k))
	}
	return e
}

// List returns every registered gear type in declaration order.
func List() []Entry {
	list := make([]Entry, len(entries))
	copy(list, entries[:])
	return list
}

// ParseKind returns the Kind matching s by key or label, case-insensitive.
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	for _, e := range entries {
		if strings.EqualFold(s, string(e.Key)) || strings.EqualFold(s, e.Label) {
			return e.Key, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownKind, s)
}

// String returns the display label of k.
func (k Kind) String() string {
	if e, ok := registry[k]; ok {
		return e.Label
	}
	return string(k)
}
