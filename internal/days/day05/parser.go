package day05

import (
	"fmt"
	"math"
	"strings"

	"github.com/dgallion1/aoc2023/internal/parse"
)

var almanac = func() parse.Parser[Almanac] {
	num := parse.Uint[uint64]()
	space := parse.Tag(" ")
	nl := parse.Tag("\n")
	blank := parse.Tag("\n\n")

	seeds := parse.Preceded(parse.Tag("seeds: "), parse.SeparatedList1(space, num))

	// A heading is one whole line ending in " map:".
	line := parse.TakeWhile1("section heading", func(r rune) bool { return r != '\n' })
	heading := parse.MapErr(line, func(s string) (string, error) {
		h, ok := strings.CutSuffix(s, " map:")
		if !ok || h == "" {
			return "", fmt.Errorf("heading %q does not end in \" map:\"", s)
		}
		return h, nil
	})
	entry := parse.Verify(parse.Seq5(num, space, num, space, num,
		func(dest uint64, _ string, source uint64, _ string, length uint64) MapEntry {
			return MapEntry{Dest: dest, Source: source, Length: length}
		}), "map range runs past uint64", func(e MapEntry) bool {
		return e.Length == 0 || (e.Length-1 <= math.MaxUint64-e.Dest && e.Length-1 <= math.MaxUint64-e.Source)
	})
	section := parse.Seq3(heading, nl, parse.SeparatedList1(nl, entry),
		func(h string, _ string, entries []MapEntry) Section {
			return Section{Heading: h, Entries: entries}
		})

	doc := parse.SeparatedPair(seeds, blank, parse.SeparatedList1(blank, section))
	return parse.Map(doc, func(p parse.Pair[[]uint64, []Section]) Almanac {
		return Almanac{Seeds: p.First, Sections: p.Second}
	})
}()

// Parse parses a complete almanac.
func Parse(data string) (Almanac, error) {
	return parse.Parse("almanac", almanac, data)
}
