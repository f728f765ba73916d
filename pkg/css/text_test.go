package css

import "testing"

func TestParseWhiteSpaceKeywords(t *testing.T) {
	cases := []struct {
		in   string
		want WhiteSpace
	}{
		{"normal", WhiteSpace{Wrap: TextWrapWrap, Collapse: WhiteSpaceCollapseCollapse}},
		{"nowrap", WhiteSpace{Wrap: TextWrapNoWrap, Collapse: WhiteSpaceCollapseCollapse}},
		{"pre", WhiteSpace{Wrap: TextWrapNoWrap, Collapse: WhiteSpaceCollapsePreserve}},
		{"pre-wrap", WhiteSpace{Wrap: TextWrapWrap, Collapse: WhiteSpaceCollapsePreserve}},
		{"pre-line", WhiteSpace{Wrap: TextWrapWrap, Collapse: WhiteSpaceCollapsePreserveBreaks}},
	}
	for _, c := range cases {
		got, err := ParseWhiteSpace(c.in)
		if err != nil {
			t.Fatalf("ParseWhiteSpace(%q) returned error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseWhiteSpace(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
	if _, err := ParseWhiteSpace("bogus"); err == nil {
		t.Fatalf("expected an error for an unknown white-space keyword")
	}
}

func TestParseTextAlignKeywords(t *testing.T) {
	cases := map[string]TextAlign{
		"left":    TextAlignLeft,
		"start":   TextAlignLeft,
		"right":   TextAlignRight,
		"end":     TextAlignRight,
		"center":  TextAlignCenter,
		"justify": TextAlignJustify,
	}
	for in, want := range cases {
		got, err := ParseTextAlign(in)
		if err != nil {
			t.Fatalf("ParseTextAlign(%q) returned error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseTextAlign(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseTextOverflowKeywords(t *testing.T) {
	got, err := ParseTextOverflow("ellipsis")
	if err != nil || got != TextOverflowEllipsis {
		t.Fatalf("ParseTextOverflow(ellipsis) = %v, err=%v", got, err)
	}
	got, err = ParseTextOverflow("clip")
	if err != nil || got != TextOverflowClip {
		t.Fatalf("ParseTextOverflow(clip) = %v, err=%v", got, err)
	}
	if _, err := ParseTextOverflow("truncate"); err == nil {
		t.Fatalf("expected an error for an unknown text-overflow keyword")
	}
}

func TestParseLineClampNoneAndInteger(t *testing.T) {
	none, err := ParseLineClamp("none")
	if err != nil || none.HasLimit {
		t.Fatalf("ParseLineClamp(none) = %+v, err=%v", none, err)
	}
	limited, err := ParseLineClamp("3")
	if err != nil {
		t.Fatalf("ParseLineClamp(3) returned error: %v", err)
	}
	if !limited.HasLimit || limited.Lines != 3 {
		t.Fatalf("ParseLineClamp(3) = %+v, want HasLimit=true Lines=3", limited)
	}
}

func TestParseTextDecorationLineMask(t *testing.T) {
	mask, err := ParseTextDecorationLine("underline line-through")
	if err != nil {
		t.Fatalf("ParseTextDecorationLine returned error: %v", err)
	}
	want := TextDecorationUnderline | TextDecorationLineThrough
	if mask != want {
		t.Fatalf("mask = %v, want %v", mask, want)
	}
	if mask&TextDecorationOverline != 0 {
		t.Fatalf("did not expect overline in mask %v", mask)
	}
}
