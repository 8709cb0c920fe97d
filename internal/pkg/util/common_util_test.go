package util

import (
	"strings"
	"testing"
)

func TestCalcReadingTime(t *testing.T) {
	cases := []struct {
		name  string
		words int
		want  int
	}{
		{"single word", 1, 1},
		{"exactly one minute", 200, 1},
		{"one word over", 201, 2},
		{"two minutes", 400, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := strings.TrimSpace(strings.Repeat("word ", tc.words))
			if got := CalcReadingTime(body); got != tc.want {
				t.Errorf("CalcReadingTime(%d words) = %d, want %d", tc.words, got, tc.want)
			}
		})
	}
}

func TestCalcReadingTime_EmptyBody(t *testing.T) {
	if got := CalcReadingTime(""); got != 0 {
		t.Errorf("CalcReadingTime(\"\") = %d, want 0", got)
	}
	if got := CalcReadingTime("  \n\t "); got != 0 {
		t.Errorf("CalcReadingTime(whitespace) = %d, want 0", got)
	}
}

func TestCalcReadingTime_WhitespaceRuns(t *testing.T) {
	// 连续空白只分隔一次，不虚增词数
	if got := CalcReadingTime("one   two\n\nthree\tfour"); got != 1 {
		t.Errorf("CalcReadingTime = %d, want 1", got)
	}
}

func TestSplitTags(t *testing.T) {
	got := SplitTags(" go , web,, backend ,")
	want := []string{"go", "web", "backend"}
	if len(got) != len(want) {
		t.Fatalf("SplitTags returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tag[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSplitTags_Empty(t *testing.T) {
	if got := SplitTags(""); len(got) != 0 {
		t.Errorf("SplitTags(\"\") = %v, want empty", got)
	}
}

func TestStrVal(t *testing.T) {
	if got := StrVal(nil); got != "" {
		t.Errorf("StrVal(nil) = %q, want empty", got)
	}
	s := "hello"
	if got := StrVal(&s); got != "hello" {
		t.Errorf("StrVal(&s) = %q, want %q", got, "hello")
	}
}
