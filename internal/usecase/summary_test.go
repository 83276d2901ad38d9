package usecase

import (
	"testing"

	"FinModels/pkg/config"
)

func testBridge() *SummaryBridge {
	return NewSummaryBridge(&config.Config{}, nil, nil)
}

func TestMapEntryHeadlineKey(t *testing.T) {
	entry, err := testBridge().MapEntry("asset/dda", map[string]interface{}{
		"final_figure":       117.28,
		"total_depreciation": 900.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Model != "FM-DDA" || entry.Series != "Asset & Depreciation" {
		t.Fatalf("unexpected mapping: %+v", entry)
	}
	if entry.HeadlineAmount != 117.28 {
		t.Fatalf("headline: expected 117.28, got %v", entry.HeadlineAmount)
	}
	if entry.Currency != "KRW" {
		t.Fatalf("currency: expected KRW, got %q", entry.Currency)
	}
}

func TestMapEntryFallbackKey(t *testing.T) {
	entry, err := testBridge().MapEntry("expense/bdm", map[string]interface{}{
		"interest_cost": 50.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.HeadlineAmount != 50 {
		t.Fatalf("fallback headline: expected 50, got %v", entry.HeadlineAmount)
	}
}

func TestMapEntryTrimsSlashes(t *testing.T) {
	entry, err := testBridge().MapEntry("/risk/farex/", map[string]interface{}{
		"final_figure": -12.5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Model != "FM-FAREX" {
		t.Fatalf("expected FM-FAREX, got %q", entry.Model)
	}
}

func TestMapEntryUnknownEndpoint(t *testing.T) {
	_, err := testBridge().MapEntry("asset/unknown", map[string]interface{}{"final_figure": 1.0})
	if err == nil {
		t.Fatal("expected error for unregistered endpoint")
	}
}

func TestMapEntryMissingHeadline(t *testing.T) {
	_, err := testBridge().MapEntry("asset/dda", map[string]interface{}{"stages": []string{}})
	if err == nil {
		t.Fatal("expected error when both headline keys are missing")
	}
}

func TestMapEntryIntegerHeadline(t *testing.T) {
	entry, err := testBridge().MapEntry("analysis/tct-beam", map[string]interface{}{
		"final_figure": 200,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.HeadlineAmount != 200 {
		t.Fatalf("headline: expected 200, got %v", entry.HeadlineAmount)
	}
}

func TestRegisteredEndpoints(t *testing.T) {
	endpoints := RegisteredEndpoints()
	if len(endpoints) != 14 {
		t.Fatalf("expected 14 registered endpoints, got %d", len(endpoints))
	}
	for i := 1; i < len(endpoints); i++ {
		if endpoints[i-1] >= endpoints[i] {
			t.Fatalf("endpoints not sorted: %q before %q", endpoints[i-1], endpoints[i])
		}
	}
}
