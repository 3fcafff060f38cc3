package refdata

import "testing"

func sample() *Directory {
	return New([]Entry{
		{Ticker: "AAPL", Name: "Apple", Sector: "technology", Aliases: []string{"애플"}},
		{Ticker: "005930.KS", Name: "Samsung Electronics", Sector: "semiconductor", Aliases: []string{"삼성전자", "samsung"}},
		{Ticker: "TSLA", Name: "Tesla", Sector: "automotive"},
	})
}

func TestResolve(t *testing.T) {
	d := sample()

	if e, ok := d.Resolve("AAPL"); !ok || e.Name != "Apple" {
		t.Errorf("ticker lookup failed: %+v %v", e, ok)
	}
	if e, ok := d.Resolve("aapl"); !ok || e.Name != "Apple" {
		t.Error("ticker lookup must be case-insensitive")
	}
	if e, ok := d.Resolve("삼성전자"); !ok || e.Ticker != "005930.KS" {
		t.Errorf("alias lookup failed: %+v %v", e, ok)
	}
	if e, ok := d.Resolve("Samsung Electronics"); !ok || e.Ticker != "005930.KS" {
		t.Error("display-name lookup failed")
	}
	if e, ok := d.Resolve("samsungelectronics"); !ok || e.Ticker != "005930.KS" {
		t.Error("whitespace-insensitive name lookup failed")
	}
	if _, ok := d.Resolve("NVDA"); ok {
		t.Error("unmapped ticker must not resolve")
	}
}

func TestNameOf_FallsBackToRawInput(t *testing.T) {
	d := sample()
	if got := d.NameOf("TSLA"); got != "Tesla" {
		t.Errorf("NameOf(TSLA) = %s", got)
	}
	if got := d.NameOf("UNKNOWN"); got != "UNKNOWN" {
		t.Errorf("unmapped ticker should fall back to itself, got %s", got)
	}
}

func TestSectorOf(t *testing.T) {
	d := sample()
	if got := d.SectorOf("005930.KS"); got != "semiconductor" {
		t.Errorf("SectorOf = %s", got)
	}
	if got := d.SectorOf("UNKNOWN"); got != "" {
		t.Errorf("unmapped sector should be empty, got %s", got)
	}
}

func TestSearch(t *testing.T) {
	d := sample()

	if got := d.Search("sam"); len(got) != 1 || got[0].Ticker != "005930.KS" {
		t.Errorf("Search(sam) = %+v", got)
	}
	if got := d.Search("애플"); len(got) != 1 || got[0].Ticker != "AAPL" {
		t.Errorf("alias search failed: %+v", got)
	}
	if got := d.Search("a"); len(got) < 2 {
		t.Errorf("broad search should hit several entries, got %+v", got)
	}
	if got := d.Search(""); got != nil {
		t.Errorf("empty query must match nothing, got %+v", got)
	}
	if got := d.Search("zzz"); got != nil {
		t.Errorf("no-hit query must return nil, got %+v", got)
	}
}

func TestNew_IgnoresDuplicates(t *testing.T) {
	d := New([]Entry{
		{Ticker: "AAPL", Name: "Apple"},
		{Ticker: "aapl", Name: "Impostor"},
	})
	if e, _ := d.Resolve("AAPL"); e.Name != "Apple" {
		t.Errorf("first entry should win, got %s", e.Name)
	}
}
