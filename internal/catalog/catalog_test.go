package catalog_test

import (
	"slices"
	"testing"

	"github.com/JaimeStill/design-lab/internal/catalog"
)

type link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

func TestSection(t *testing.T) {
	links, err := catalog.Section[link](catalog.QuickLinks)
	if err != nil {
		t.Fatalf("Section() error = %v", err)
	}
	if len(links) == 0 {
		t.Fatal("Section() returned no quick links")
	}
	for _, l := range links {
		if l.Text == "" {
			t.Errorf("quick link without text: %+v", l)
		}
	}
}

func TestSection_FreshCopy(t *testing.T) {
	first, err := catalog.Section[link](catalog.QuickLinks)
	if err != nil {
		t.Fatalf("Section() error = %v", err)
	}
	first[0].Text = "mutated"

	second, err := catalog.Section[link](catalog.QuickLinks)
	if err != nil {
		t.Fatalf("Section() error = %v", err)
	}
	if second[0].Text == "mutated" {
		t.Error("Section() shares state between calls")
	}
}

func TestSection_Missing(t *testing.T) {
	items, err := catalog.Section[link]("does_not_exist")
	if err != nil {
		t.Fatalf("Section() error = %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("Section() = %v, want empty non-nil slice", items)
	}
}

func TestSection_EmptyInterview(t *testing.T) {
	items, err := catalog.Section[map[string]any](catalog.PlaybookInterview)
	if err != nil {
		t.Fatalf("Section() error = %v", err)
	}
	if items == nil {
		t.Error("Section() = nil, want empty slice")
	}
}

func TestKeys(t *testing.T) {
	keys, err := catalog.Keys()
	if err != nil {
		t.Fatalf("Keys() error = %v", err)
	}

	for _, want := range []string{
		catalog.Playday, catalog.PlaybookUsecase, catalog.PlaybookTrend,
		catalog.PlaybookPrompt, catalog.PlaybookHAI, catalog.PlaybookTeams,
		catalog.PlaybookInterview, catalog.Activity, catalog.Notices,
		catalog.Schedules, catalog.QuickLinks,
	} {
		if !slices.Contains(keys, want) {
			t.Errorf("Keys() missing %q", want)
		}
	}
}
