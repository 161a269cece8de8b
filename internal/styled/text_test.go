package styled

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var bold = Attrs{AttrBold: On}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantLen  int
		wantRuns []Run
	}{
		{name: "empty", in: "", wantLen: 0, wantRuns: []Run{}},
		{name: "ascii", in: "hello", wantLen: 5, wantRuns: []Run{{Start: 0, Len: 5}}},
		{name: "multibyte", in: "héllo 世", wantLen: 7, wantRuns: []Run{{Start: 0, Len: 7}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txt := New(tt.in)
			if txt.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", txt.Len(), tt.wantLen)
			}
			if txt.String() != tt.in {
				t.Errorf("String() = %q, want %q", txt.String(), tt.in)
			}
			if diff := cmp.Diff(tt.wantRuns, txt.Runs()); diff != "" {
				t.Errorf("Runs() mismatch (-want +got):\n%s", diff)
			}
			if err := txt.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}

func TestFromSegmentsMergesEqualRuns(t *testing.T) {
	txt := FromSegments(
		Segment{Text: "a "},
		Segment{Text: "b", Attrs: bold},
		Segment{Text: "c", Attrs: Attrs{AttrBold: On}},
		Segment{Text: "", Attrs: Attrs{AttrItalic: On}},
		Segment{Text: " d", Attrs: Attrs{}},
	)
	want := []Run{
		{Start: 0, Len: 2},
		{Start: 2, Len: 2, Attrs: bold},
		{Start: 4, Len: 2},
	}
	if diff := cmp.Diff(want, txt.Runs()); diff != "" {
		t.Errorf("Runs() mismatch (-want +got):\n%s", diff)
	}
	if err := txt.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestAttrsAtReturnsCopy(t *testing.T) {
	txt := FromSegments(Segment{Text: "ab", Attrs: bold})
	got := txt.AttrsAt(1)
	got[AttrItalic] = On
	if txt.AttrsAt(1).Has(AttrItalic) {
		t.Errorf("mutating AttrsAt result changed the text")
	}
	if v, ok := txt.Attr(0, AttrBold); !ok || v != On {
		t.Errorf("Attr(0, bold) = %q, %v", v, ok)
	}
}

func TestEqualAndClone(t *testing.T) {
	a := FromSegments(Segment{Text: "x"}, Segment{Text: "y", Attrs: bold})
	b := a.Clone()
	if !a.Equal(b) {
		t.Fatalf("clone not equal to original")
	}
	if err := b.Insert(2, "z", nil); err != nil {
		t.Fatal(err)
	}
	if a.Equal(b) {
		t.Errorf("texts equal after editing the clone")
	}
	if a.String() != "xy" {
		t.Errorf("original changed to %q", a.String())
	}

	c := FromSegments(Segment{Text: "x"}, Segment{Text: "y", Attrs: Attrs{AttrItalic: On}})
	if a.Equal(c) {
		t.Errorf("texts with different attributes compare equal")
	}
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name     string
		pos      int
		s        string
		attrs    Attrs
		wantText string
		wantDump string
	}{
		{"inherits from previous character", 2, "!", nil, "ab!c", "0+1{} 1+2{bold=true} 3+1{}"},
		{"at start has no attributes", 0, ">", nil, ">abc", "0+2{} 2+1{bold=true} 3+1{}"},
		{"explicit attributes", 3, "?", Attrs{AttrCode: On}, "abc?", "0+1{} 1+1{bold=true} 2+1{} 3+1{code=true}"},
		{"empty string", 1, "", nil, "abc", "0+1{} 1+1{bold=true} 2+1{}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txt := FromSegments(Segment{Text: "a"}, Segment{Text: "b", Attrs: bold}, Segment{Text: "c"})
			if err := txt.Insert(tt.pos, tt.s, tt.attrs); err != nil {
				t.Fatalf("Insert() error = %v", err)
			}
			if txt.String() != tt.wantText {
				t.Errorf("text = %q, want %q", txt.String(), tt.wantText)
			}
			if got := txt.Dump(); got != tt.wantDump {
				t.Errorf("Dump() = %q, want %q", got, tt.wantDump)
			}
			if err := txt.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}

func TestInsertAfterAttachmentDropsIt(t *testing.T) {
	txt := FromSegments(Segment{Text: string(ObjectReplacement), Attrs: Attrs{AttrAttachment: "smile", AttrBold: On}})
	if err := txt.Insert(1, "x", nil); err != nil {
		t.Fatal(err)
	}
	if txt.AttrsAt(1).Has(AttrAttachment) {
		t.Errorf("typed character inherited the attachment: %v", txt.AttrsAt(1))
	}
	if !txt.AttrsAt(1).Has(AttrBold) {
		t.Errorf("typed character lost bold: %v", txt.AttrsAt(1))
	}
}

func TestInsertOutOfBounds(t *testing.T) {
	txt := New("abc")
	if err := txt.Insert(4, "x", nil); err == nil {
		t.Errorf("Insert past end succeeded")
	}
	if err := txt.Insert(-1, "x", nil); err == nil {
		t.Errorf("Insert at -1 succeeded")
	}
}

func TestDelete(t *testing.T) {
	txt := FromSegments(Segment{Text: "a"}, Segment{Text: "bc", Attrs: bold}, Segment{Text: "d"})
	if err := txt.Delete(1, 3); err != nil {
		t.Fatal(err)
	}
	if txt.String() != "ad" {
		t.Errorf("text = %q, want ad", txt.String())
	}
	if got, want := txt.Dump(), "0+2{}"; got != want {
		t.Errorf("Dump() = %q, want %q (plain runs must merge)", got, want)
	}
	if err := txt.Delete(2, 1); err == nil {
		t.Errorf("Delete with start > end succeeded")
	}
	if err := txt.Delete(0, 3); err == nil {
		t.Errorf("Delete past end succeeded")
	}
}

func TestBuilderCopyRestyle(t *testing.T) {
	src := FromSegments(Segment{Text: "ab"}, Segment{Text: "cd", Attrs: bold})
	var b Builder
	b.Copy(src, 1, 3, func(a Attrs) Attrs { return a.With(Attrs{AttrItalic: On}) })
	b.AppendString("e", Attrs{AttrItalic: On})
	got := b.Text()

	if got.String() != "bce" {
		t.Errorf("text = %q, want bce", got.String())
	}
	if want := "0+1{italic=true} 1+1{bold=true italic=true} 2+1{italic=true}"; got.Dump() != want {
		t.Errorf("Dump() = %q, want %q", got.Dump(), want)
	}
	if b.Len() != 0 {
		t.Errorf("builder not reset after Text()")
	}
}

func TestAttrsWith(t *testing.T) {
	a := Attrs{AttrBold: On, AttrSyntax: "keyword"}
	got := a.With(Attrs{AttrCode: On}, AttrSyntax)
	if diff := cmp.Diff(Attrs{AttrBold: On, AttrCode: On}, got); diff != "" {
		t.Errorf("With() mismatch (-want +got):\n%s", diff)
	}
	if !a.Has(AttrSyntax) {
		t.Errorf("With() modified the receiver")
	}
	if a.With(nil, AttrBold, AttrSyntax) != nil {
		t.Errorf("clearing every key should yield nil")
	}
	if !Attrs(nil).Equal(Attrs{}) {
		t.Errorf("nil and empty Attrs should be equal")
	}
}
