package usecase

import (
	"testing"
)

func TestTargetingSummaryCategoryOrder(t *testing.T) {
	// Both categories match; sports/fitness must come before luxury/premium.
	got := targetingSummary("Luxury sports equipment for discerning athletes")
	want := "Sports and fitness enthusiasts, Luxury and premium audiences"
	if got != want {
		t.Fatalf("targetingSummary order: got %q, want %q", got, want)
	}
}

func TestTargetingSummary(t *testing.T) {
	cases := []struct {
		name  string
		brief string
		want  string
	}{
		{
			name:  "politics and news",
			brief: "Bread products targeting politics and news enthusiasts",
			want:  "Politics and news enthusiasts",
		},
		{
			name:  "premium adds luxury category",
			brief: "Premium bread products targeting politics and news enthusiasts",
			want:  "Politics and news enthusiasts, Luxury and premium audiences",
		},
		{
			name:  "mobile",
			brief: "App install campaign for commuters",
			want:  "Mobile-first users",
		},
		{
			name:  "all four in fixed order",
			brief: "premium sports news app",
			want:  "Politics and news enthusiasts, Sports and fitness enthusiasts, Luxury and premium audiences, Mobile-first users",
		},
		{
			name:  "no match",
			brief: "Dog food for picky eaters",
			want:  "General audience",
		},
		{
			name:  "case insensitive",
			brief: "LUXURY travel experiences",
			want:  "Luxury and premium audiences",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := targetingSummary(tc.brief); got != tc.want {
				t.Fatalf("targetingSummary(%q) = %q, want %q", tc.brief, got, tc.want)
			}
		})
	}
}

func TestTargetingSummaryDeterministic(t *testing.T) {
	brief := "premium fitness app for news readers"
	first := targetingSummary(brief)
	for i := 0; i < 10; i++ {
		if got := targetingSummary(brief); got != first {
			t.Fatalf("classifier not deterministic: %q vs %q", got, first)
		}
	}
}

func TestDeriveOverlay(t *testing.T) {
	overlay := deriveOverlay("Premium sports coverage", []string{"US"})
	if len(overlay.GeoCountryAnyOf) != 1 || overlay.GeoCountryAnyOf[0] != "US" {
		t.Fatalf("unexpected countries: %v", overlay.GeoCountryAnyOf)
	}
	if len(overlay.DeviceTypeAnyOf) != 2 {
		t.Fatalf("expected mobile and desktop, got %v", overlay.DeviceTypeAnyOf)
	}
	want := []string{"sports", "fitness", "luxury"}
	if len(overlay.ContentCatAnyOf) != len(want) {
		t.Fatalf("unexpected content categories: %v", overlay.ContentCatAnyOf)
	}
	for i, cat := range want {
		if overlay.ContentCatAnyOf[i] != cat {
			t.Fatalf("content category %d: got %q, want %q", i, overlay.ContentCatAnyOf[i], cat)
		}
	}
}

func TestDeriveOverlayMobileFirst(t *testing.T) {
	overlay := deriveOverlay("Mobile app launch", []string{"US"})
	if len(overlay.DeviceTypeAnyOf) != 1 || overlay.DeviceTypeAnyOf[0] != "mobile" {
		t.Fatalf("expected mobile only, got %v", overlay.DeviceTypeAnyOf)
	}
}
