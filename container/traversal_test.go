package container

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// TestTraversalGolden snapshots all three traversal orders for a set of
// stores. Regenerate with: go test ./container -run TestTraversalGolden -update
func TestTraversalGolden(t *testing.T) {
	t.Parallel()

	fixtures := []struct {
		name   string
		values []int
	}{
		{name: "odd", values: []int{5, 3, 1, 4, 2}},
		{name: "even", values: []int{7, 3, 1, 9}},
		{name: "duplicates", values: []int{2, 2, 4, 3, 3, -5}},
		{name: "negatives", values: []int{-7, -1, 0, 1, 13, 17}},
		{name: "single", values: []int{11}},
		{name: "empty", values: nil},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, fx := range fixtures {
		t.Run(fx.name, func(t *testing.T) {
			t.Parallel()

			s := newStore(t)
			for _, v := range fx.values {
				s.Add(v)
			}

			var buf bytes.Buffer

			fmt.Fprintf(&buf, "store: %v\n", s)
			fmt.Fprintf(&buf, "%s: %v\n", kindAscending, drain(t, NewAscendingCursor(s)))
			fmt.Fprintf(&buf, "%s: %v\n", kindCross, drain(t, NewCrossCursor(s)))
			fmt.Fprintf(&buf, "%s: %v\n", kindPrime, drain(t, NewPrimeCursor(s)))

			g.Assert(t, fx.name, buf.Bytes())
		})
	}
}
