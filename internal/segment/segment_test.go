package segment

import (
	"reflect"
	"sort"
	"testing"

	"github.com/joseph-ayodele/posteingang/constants"
	"github.com/joseph-ayodele/posteingang/internal/entity"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want constants.PageLabel
	}{
		{"T", constants.PageSeparator},
		{"  T \n\n", constants.PageSeparator},
		{"\u00a0T\u00a0", constants.PageSeparator},
		{"t", constants.PageContent},
		{"TT", constants.PageContent},
		{"T.", constants.PageContent},
		{"", constants.PageBlank},
		{" \n\t\f ", constants.PageBlank},
		{"Amtsgericht Köln", constants.PageContent},
	}
	for _, tt := range tests {
		if got := Classify(tt.text); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestSegmentExample(t *testing.T) {
	pages := ClassifyPages([]string{"A", "T", "B", "C", "", "T", "D"})
	segs := Segment(pages)

	want := [][]int{{1}, {3, 4}, {7}}
	if len(segs) != len(want) {
		t.Fatalf("got %d segments, want %d", len(segs), len(want))
	}
	for i, s := range segs {
		if !reflect.DeepEqual(s.Pages, want[i]) {
			t.Errorf("segment %d pages = %v, want %v", i+1, s.Pages, want[i])
		}
		if s.Number != i+1 {
			t.Errorf("segment %d numbered %d", i+1, s.Number)
		}
	}
	if got := segs[1].Texts; !reflect.DeepEqual(got, []string{"B", "C"}) {
		t.Errorf("segment 2 texts = %v", got)
	}
	if segs[1].FirstPage() != 3 || segs[1].LastPage() != 4 {
		t.Errorf("segment 2 range = %d..%d", segs[1].FirstPage(), segs[1].LastPage())
	}
}

func TestSegmentNoEmptySegments(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		want  int
	}{
		{"only separators", []string{"T", "T", "T"}, 0},
		{"leading and trailing separators", []string{"T", "A", "T", "T", "B", "T"}, 2},
		{"blank runs never split", []string{"A", "", "", "B", "", "C"}, 1},
		{"blank between separators", []string{"A", "T", "", "T", "B"}, 2},
		{"nothing", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := Segment(ClassifyPages(tt.texts))
			if len(segs) != tt.want {
				t.Fatalf("got %d segments, want %d", len(segs), tt.want)
			}
			for _, s := range segs {
				if len(s.Pages) == 0 {
					t.Fatal("empty segment emitted")
				}
			}
		})
	}
}

func TestSegmentPageCoverage(t *testing.T) {
	texts := []string{"", "T", "A", "", "B", "T", "T", "C", "t", "", "T"}
	pages := ClassifyPages(texts)
	segs := Segment(pages)

	var seen []int
	for _, s := range segs {
		seen = append(seen, s.Pages...)
	}
	for _, p := range pages {
		if p.Label != constants.PageContent {
			seen = append(seen, p.Index)
		}
	}
	sort.Ints(seen)

	for i, p := range seen {
		if p != i+1 {
			t.Fatalf("page coverage broken at %d: %v", i, seen)
		}
	}
	if len(seen) != len(texts) {
		t.Fatalf("covered %d pages, want %d", len(seen), len(texts))
	}

	stats := Count(pages)
	if stats.Separators != 4 || stats.Blanks != 3 || stats.Content != 4 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestSegmentKeepsPageObjectsUntouched(t *testing.T) {
	pages := []entity.Page{
		{Index: 10, Text: "x", Label: constants.PageContent},
		{Index: 11, Text: "T", Label: constants.PageSeparator},
		{Index: 12, Text: "y", Label: constants.PageContent},
	}
	segs := Segment(pages)
	if len(segs) != 2 || segs[0].Pages[0] != 10 || segs[1].Pages[0] != 12 {
		t.Fatalf("unexpected segments %+v", segs)
	}
}
