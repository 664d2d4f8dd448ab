package crm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterLeads_EmptyQueryReturnsAll(t *testing.T) {
	leads := []Lead{{ID: "1", Name: "Ada"}, {ID: "2", Name: "Grace"}}
	assert.Equal(t, leads, FilterLeads(leads, ""))
	assert.Equal(t, leads, FilterLeads(leads, "   "))
}

func TestFilterLeads_KeepsInputOrder(t *testing.T) {
	leads := []Lead{
		{ID: "1", Name: "Ada Lovelace", Company: "Analytical"},
		{ID: "2", Name: "Grace Hopper", Company: "Navy"},
		{ID: "3", Name: "Adam Smith", Company: "Wealth"},
	}
	got := FilterLeads(leads, "ada")
	ids := make([]string, len(got))
	for i, l := range got {
		ids[i] = l.ID
	}
	assert.Equal(t, []string{"1", "3"}, ids)
}

func TestFilterLeads_MatchesCampaignAndStatus(t *testing.T) {
	leads := []Lead{
		{ID: "1", Name: "x", Campaign: "Campaign 4", Status: LeadSent},
		{ID: "2", Name: "y", Campaign: "Campaign 1", Status: LeadDoNotContact},
	}
	got := FilterLeads(leads, "Do Not")
	if assert.Len(t, got, 1) {
		assert.Equal(t, "2", got[0].ID)
	}
}

func TestFilterCampaigns_NoMatch(t *testing.T) {
	campaigns := []Campaign{{Name: "Campaign 1", Status: CampaignActive}}
	assert.Empty(t, FilterCampaigns(campaigns, "zzzz"))
}
