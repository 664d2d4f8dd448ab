package crm

import (
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

// leadSource adapts a lead slice to fuzzy.Source.
type leadSource []Lead

func (s leadSource) Len() int { return len(s) }
func (s leadSource) String(i int) string {
	l := s[i]
	return l.Name + " " + l.Email + " " + l.Company + " " + l.Campaign + " " + string(l.Status)
}

type campaignSource []Campaign

func (s campaignSource) Len() int            { return len(s) }
func (s campaignSource) String(i int) string { return s[i].Name + " " + string(s[i].Status) }

// FilterLeads returns the leads fuzzily matching query, keeping their order.
// An empty query returns leads unchanged.
func FilterLeads(leads []Lead, query string) []Lead {
	return filter(leads, leadSource(leads), query)
}

// FilterCampaigns returns the campaigns fuzzily matching query, keeping their order.
func FilterCampaigns(campaigns []Campaign, query string) []Campaign {
	return filter(campaigns, campaignSource(campaigns), query)
}

func filter[T any](items []T, src fuzzy.Source, query string) []T {
	query = strings.TrimSpace(query)
	if query == "" {
		return items
	}
	matches := fuzzy.FindFrom(query, src)
	idx := make([]int, len(matches))
	for i, m := range matches {
		idx[i] = m.Index
	}
	slices.Sort(idx)
	out := make([]T, len(idx))
	for i, j := range idx {
		out[i] = items[j]
	}
	return out
}
