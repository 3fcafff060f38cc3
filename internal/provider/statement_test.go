package provider

import "testing"

func TestStatement_Find(t *testing.T) {
	st := &Statement{
		CorpCode: "00126380",
		Year:     2025,
		Items: []LineItem{
			{Name: "I. 매출액", Amount: 300_000_000},
			{Name: "영업이익(손실)", Amount: 45_000_000},
			{Name: "당기순이익", Amount: 30_000_000},
			{Name: "자본총계", Amount: 500_000_000},
		},
	}

	// Exact match after whitespace stripping.
	if v, ok := st.Find("당기순이익"); !ok || v != 30_000_000 {
		t.Errorf("exact match failed: %v %v", v, ok)
	}

	// Spaced-out query still matches.
	if v, ok := st.Find("당기 순이익"); !ok || v != 30_000_000 {
		t.Errorf("whitespace-stripped match failed: %v %v", v, ok)
	}

	// Substring fallback reaches prefixed and suffixed account names.
	if v, ok := st.Find("매출액"); !ok || v != 300_000_000 {
		t.Errorf("substring match failed: %v %v", v, ok)
	}
	if v, ok := st.Find("영업이익"); !ok || v != 45_000_000 {
		t.Errorf("substring match failed: %v %v", v, ok)
	}

	if _, ok := st.Find("부채총계"); ok {
		t.Error("missing account must not match")
	}
	if _, ok := st.Find(""); ok {
		t.Error("empty query must not match")
	}
	if _, ok := st.Find("   "); ok {
		t.Error("whitespace-only query must not match")
	}
}

func TestStatement_FindExactBeforeSubstring(t *testing.T) {
	st := &Statement{
		Items: []LineItem{
			{Name: "매출액및기타수익", Amount: 1},
			{Name: "매출액", Amount: 2},
		},
	}
	// An exact-normalized name wins over an earlier substring candidate.
	if v, _ := st.Find("매출액"); v != 2 {
		t.Errorf("exact match should win, got %v", v)
	}
}

func TestStatement_FindAny(t *testing.T) {
	st := &Statement{
		Items: []LineItem{{Name: "영업수익", Amount: 7}},
	}
	if v, ok := st.FindAny("매출액", "수익(매출액)", "영업수익"); !ok || v != 7 {
		t.Errorf("FindAny = %v %v", v, ok)
	}
	if _, ok := st.FindAny("매출액", "수익(매출액)"); ok {
		t.Error("FindAny with no resolvable name must miss")
	}
}
