// File: gridgraph/components_test.go
package gridgraph

import (
	"reflect"
	"sort"
	"testing"
)

// TestRegions_Simple4 tests Regions on a simple 4×3 grid with orthogonal
// connectivity (Conn4).
//
// Grid (# = obstacle):
//
//	# . . #
//	. . # #
//	# # . ~
//
// Expected: 2 regions of sizes 4 and 2.
//
// Complexity: O(W·H·4) time, O(W·H) memory.
func TestRegions_Simple4(t *testing.T) {
	g, err := Parse([]string{
		"#..#",
		"..##",
		"##.~",
	}, DefaultGridOptions())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	regions := g.Regions(Conn4)
	if len(regions) != 2 {
		t.Fatalf("got %d regions; want 2", len(regions))
	}

	sizes := []int{len(regions[0]), len(regions[1])}
	sort.Ints(sizes)
	want := []int{2, 4}
	if !reflect.DeepEqual(sizes, want) {
		t.Errorf("region sizes = %v; want %v", sizes, want)
	}
}

// TestRegions_Diagonal8 uses diagonal connectivity (Conn8) to catch
// "touching corners" regions.
//
// Grid:
//
//	. # # # .
//	# . # . #
//	# # . # #
//	# . # . #
//	. # # # .
//
// With Conn8, all 9 open cells connect through diagonal hops into one region.
func TestRegions_Diagonal8(t *testing.T) {
	g, err := Parse([]string{
		".###.",
		"#.#.#",
		"##.##",
		"#.#.#",
		".###.",
	}, DefaultGridOptions())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if n := len(g.Regions(Conn8)); n != 1 {
		t.Fatalf("Conn8: got %d regions; want 1", n)
	}
	if n := len(g.Regions(Conn4)); n != 9 {
		t.Fatalf("Conn4: got %d regions; want 9", n)
	}
}

// TestRegionLabels_EmptyAndAllBlocked tests edge cases:
//   - completely blocked grid → zero regions, all labels -1
//   - single open cell → one region of size 1
func TestRegionLabels_EmptyAndAllBlocked(t *testing.T) {
	g1, _ := Parse([]string{"##", "##"}, DefaultGridOptions())
	if n := len(g1.Regions(Conn4)); n != 0 {
		t.Errorf("all-blocked: got %d regions; want 0", n)
	}
	for i, l := range g1.RegionLabels(Conn4) {
		if l != -1 {
			t.Errorf("label[%d] = %d; want -1", i, l)
		}
	}

	g2, _ := Parse([]string{"#."}, DefaultGridOptions())
	regions := g2.Regions(Conn4)
	if len(regions) != 1 || len(regions[0]) != 1 || regions[0][0] != 1 {
		t.Errorf("single open cell: got %v; want [[1]]", regions)
	}
}
