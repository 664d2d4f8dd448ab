package crm

// Percent returns num/den as a percentage. A zero (or negative) denominator
// yields 0 so widgets never show NaN or Inf.
func Percent(num, den int) float64 {
	if den <= 0 {
		return 0
	}
	return float64(num) / float64(den) * 100
}

// CampaignSummary holds the four headline numbers of the campaigns page.
type CampaignSummary struct {
	TotalLeads      int
	SuccessfulLeads int
	ResponseRate    float64
	Active          int
}

// SummarizeCampaigns totals leads across campaigns and counts the active ones.
func SummarizeCampaigns(campaigns []Campaign) CampaignSummary {
	var s CampaignSummary
	for _, c := range campaigns {
		s.TotalLeads += c.TotalLeads
		s.SuccessfulLeads += c.SuccessfulLeads
		if c.Status == CampaignActive {
			s.Active++
		}
	}
	s.ResponseRate = Percent(s.SuccessfulLeads, s.TotalLeads)
	return s
}

// StatusCount is one row of a status breakdown.
type StatusCount[S ~string] struct {
	Status  S
	Count   int
	Percent float64
}

// LeadStatusBreakdown counts leads per status, in LeadStatuses order.
func LeadStatusBreakdown(leads []Lead) []StatusCount[LeadStatus] {
	counts := make(map[LeadStatus]int, len(LeadStatuses()))
	for _, l := range leads {
		counts[l.Status]++
	}
	out := make([]StatusCount[LeadStatus], 0, len(counts))
	for _, st := range LeadStatuses() {
		out = append(out, StatusCount[LeadStatus]{
			Status:  st,
			Count:   counts[st],
			Percent: Percent(counts[st], len(leads)),
		})
	}
	return out
}

// CampaignStatusBreakdown counts campaigns per status, in CampaignStatuses order.
func CampaignStatusBreakdown(campaigns []Campaign) []StatusCount[CampaignStatus] {
	counts := make(map[CampaignStatus]int, len(CampaignStatuses()))
	for _, c := range campaigns {
		counts[c.Status]++
	}
	out := make([]StatusCount[CampaignStatus], 0, len(counts))
	for _, st := range CampaignStatuses() {
		out = append(out, StatusCount[CampaignStatus]{
			Status:  st,
			Count:   counts[st],
			Percent: Percent(counts[st], len(campaigns)),
		})
	}
	return out
}

// Usage returns the share of an account's request budget already spent.
func (a Account) Usage() float64 {
	return Percent(a.Requests, a.TotalRequests)
}

// SuccessRate returns the share of a campaign's leads that converted.
func (c Campaign) SuccessRate() float64 {
	return Percent(c.SuccessfulLeads, c.TotalLeads)
}

// LeadsInCampaign returns the leads whose campaign name matches name.
func LeadsInCampaign(leads []Lead, name string) []Lead {
	var out []Lead
	for _, l := range leads {
		if l.Campaign == name {
			out = append(out, l)
		}
	}
	return out
}
