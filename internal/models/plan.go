package models

import "fmt"

type PlanTier string

const (
	PlanBasic    PlanTier = "basic"
	PlanStandard PlanTier = "standard"
	PlanPremium  PlanTier = "premium"
)

// PlanQuotas is the deliverable quota a plan grants per calendar month.
type PlanQuotas struct {
	Posts        int `json:"posts"`
	Videos       int `json:"videos"`
	Infographics int `json:"infographics"`
	Newsletters  int `json:"newsletters"`
	Podcasts     int `json:"podcasts"`
}

var planCatalog = map[PlanTier]PlanQuotas{
	PlanBasic:    {Posts: 8, Videos: 2},
	PlanStandard: {Posts: 12, Videos: 4},
	PlanPremium:  {Posts: 20, Videos: 8, Infographics: 4, Newsletters: 2, Podcasts: 1},
}

// QuotasForPlan looks up the quota table for a plan tier. An unknown tier is a
// configuration error, never a user-facing condition.
func QuotasForPlan(tier PlanTier) (PlanQuotas, error) {
	quotas, ok := planCatalog[tier]
	if !ok {
		return PlanQuotas{}, fmt.Errorf("unknown plan tier %q", tier)
	}
	return quotas, nil
}

// ForCategory returns the quota for a single deliverable category.
func (q PlanQuotas) ForCategory(category TaskCategory) int {
	switch category {
	case CategoryPost:
		return q.Posts
	case CategoryVideo:
		return q.Videos
	case CategoryInfographic:
		return q.Infographics
	case CategoryNewsletter:
		return q.Newsletters
	case CategoryPodcast:
		return q.Podcasts
	default:
		return 0
	}
}

// Total is the number of deliverables across all categories.
func (q PlanQuotas) Total() int {
	return q.Posts + q.Videos + q.Infographics + q.Newsletters + q.Podcasts
}
