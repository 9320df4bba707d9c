// Package day05 solves "If You Give A Seed A Fertilizer": seeds are pushed
// through a chain of range-mapping sections.
package day05

import (
	"strconv"
	"strings"
)

// Almanac is the parsed puzzle input.
type Almanac struct {
	Seeds    []uint64
	Sections []Section
}

// Section is one "<heading> map:" table.
type Section struct {
	Heading string
	Entries []MapEntry
}

// MapEntry maps [Source, Source+Length) onto [Dest, Dest+Length).
type MapEntry struct {
	Dest   uint64
	Source uint64
	Length uint64
}

// Location follows seed through every section in order.
func (a *Almanac) Location(seed uint64) uint64 {
	v := seed
	for i := range a.Sections {
		v = a.Sections[i].Translate(v)
	}
	return v
}

// Translate maps v through the first entry covering it, or returns v
// unchanged.
func (s *Section) Translate(v uint64) uint64 {
	for _, e := range s.Entries {
		if out, ok := e.Translate(v); ok {
			return out
		}
	}
	return v
}

func (e MapEntry) Translate(v uint64) (uint64, bool) {
	if v >= e.Source && v-e.Source < e.Length {
		return e.Dest + (v - e.Source), true
	}
	return 0, false
}

// String renders the almanac in its canonical input form.
func (a *Almanac) String() string {
	var b strings.Builder
	b.WriteString("seeds:")
	for _, s := range a.Seeds {
		b.WriteString(" " + strconv.FormatUint(s, 10))
	}
	for _, sec := range a.Sections {
		b.WriteString("\n\n" + sec.Heading + " map:")
		for _, e := range sec.Entries {
			b.WriteString("\n" + strconv.FormatUint(e.Dest, 10) +
				" " + strconv.FormatUint(e.Source, 10) +
				" " + strconv.FormatUint(e.Length, 10))
		}
	}
	return b.String()
}
