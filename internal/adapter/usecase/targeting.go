package usecase

import (
	"strings"

	"github.com/tescoboy/sales-agent2/internal/core/domain"
)

// generalAudience is reported when no category keyword matches the brief.
const generalAudience = "General audience"

// audienceCategory binds brief keywords to a targeting-summary label and the
// content categories fed into the media-buy overlay.
type audienceCategory struct {
	keywords    []string
	summary     string
	contentCats []string
	mobileFirst bool
}

// audienceCategories is evaluated in order; every matching category
// contributes to the summary, so the order here fixes the output order.
var audienceCategories = []audienceCategory{
	{
		keywords:    []string{"politics", "news"},
		summary:     "Politics and news enthusiasts",
		contentCats: []string{"news", "politics"},
	},
	{
		keywords:    []string{"sports", "fitness"},
		summary:     "Sports and fitness enthusiasts",
		contentCats: []string{"sports", "fitness"},
	},
	{
		keywords:    []string{"luxury", "premium"},
		summary:     "Luxury and premium audiences",
		contentCats: []string{"luxury"},
	},
	{
		keywords:    []string{"mobile", "app"},
		summary:     "Mobile-first users",
		contentCats: []string{"technology"},
		mobileFirst: true,
	},
}

func (c audienceCategory) matches(brief string) bool {
	for _, kw := range c.keywords {
		if strings.Contains(brief, kw) {
			return true
		}
	}
	return false
}

// targetingSummary classifies the brief into audience categories. All
// matching categories are appended in fixed order and comma-joined;
// an unmatched brief yields "General audience".
func targetingSummary(brief string) string {
	lower := strings.ToLower(brief)
	var matched []string
	for _, cat := range audienceCategories {
		if cat.matches(lower) {
			matched = append(matched, cat.summary)
		}
	}
	if len(matched) == 0 {
		return generalAudience
	}
	return strings.Join(matched, ", ")
}

// deriveOverlay builds the media-buy targeting overlay from the brief and
// the configured country scope. Device types default to mobile plus desktop
// and narrow to mobile only when the brief reads mobile-first.
func deriveOverlay(brief string, countries []string) domain.TargetingOverlay {
	lower := strings.ToLower(brief)
	overlay := domain.TargetingOverlay{
		GeoCountryAnyOf: countries,
		DeviceTypeAnyOf: []string{"mobile", "desktop"},
	}
	for _, cat := range audienceCategories {
		if !cat.matches(lower) {
			continue
		}
		overlay.ContentCatAnyOf = append(overlay.ContentCatAnyOf, cat.contentCats...)
		if cat.mobileFirst {
			overlay.DeviceTypeAnyOf = []string{"mobile"}
		}
	}
	return overlay
}
