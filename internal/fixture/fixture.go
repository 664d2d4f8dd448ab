// Package fixture builds the synthetic records the dashboard renders.
//
// Every builder is eager: it returns the complete slice at once. The shape of
// each record is fixed while values are drawn at random within the bounds the
// views expect. A non-zero seed makes the output reproducible, which the tests
// rely on; the application passes zero for a fresh dataset each run.
package fixture

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"linkbird/internal/crm"
)

// Default dataset sizes, matching the dashboard mockup.
const (
	DefaultLeadCount     = 100
	DefaultCampaignCount = 50
	DefaultAccountCount  = 8
	DefaultActivityCount = 12

	// leadCampaigns is how many distinct "Campaign N" names leads are spread over.
	leadCampaigns = 5
)

var accountNamespace = uuid.MustParse("6f1b4c1e-93a4-4a51-9d84-2c1a6d0c7e55")

// Generator produces randomized records. Not safe for concurrent use.
type Generator struct {
	faker *gofakeit.Faker
	now   func() time.Time
}

// New returns a generator. seed 0 picks a random seed; now defaults to time.Now.
func New(seed uint64, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{faker: gofakeit.New(seed), now: now}
}

// between returns a random int in [min, max].
func (g *Generator) between(min, max int) int {
	return g.faker.Number(min, max)
}

// Leads builds n leads with ids lead-1..lead-n.
func (g *Generator) Leads(n int) []crm.Lead {
	now := g.now()
	statuses := crm.LeadStatuses()
	leads := make([]crm.Lead, n)
	for i := range leads {
		first, last := g.faker.FirstName(), g.faker.LastName()
		contact := now.Add(-time.Duration(g.between(1, 23)) * time.Hour)
		leads[i] = crm.Lead{
			ID:              fmt.Sprintf("lead-%d", i+1),
			Name:            first + " " + last,
			Email:           emailFor(first, last, i+1),
			Company:         g.faker.Company(),
			Campaign:        fmt.Sprintf("Campaign %d", g.between(1, leadCampaigns)),
			Status:          statuses[g.between(0, len(statuses)-1)],
			LastContact:     contact,
			LastContactText: "Sent " + humanize.RelTime(contact, now, "ago", "from now"),
			Title:           g.faker.JobTitle(),
			Location:        g.faker.City() + ", " + g.faker.State(),
			History:         history(first, contact),
		}
	}
	return leads
}

// Campaigns builds n campaigns named "Campaign 1".."Campaign n".
func (g *Generator) Campaigns(n int) []crm.Campaign {
	now := g.now()
	statuses := crm.CampaignStatuses()
	campaigns := make([]crm.Campaign, n)
	for i := range campaigns {
		campaigns[i] = crm.Campaign{
			ID:              fmt.Sprintf("campaign-%d", i+1),
			Name:            fmt.Sprintf("Campaign %d", i+1),
			Status:          statuses[g.between(0, len(statuses)-1)],
			TotalLeads:      g.between(100, 599),
			SuccessfulLeads: g.between(0, 99),
			Progress:        g.between(0, 99),
			CreatedAt:       now.AddDate(0, 0, -g.between(0, 89)),
			Steps:           Sequence(),
			Settings: crm.CampaignSettings{
				DailyLimit:          g.between(20, 100),
				Autopilot:           g.faker.Bool(),
				PersonalizeMessages: g.faker.Bool(),
				SendOnWeekends:      g.faker.Bool(),
			},
		}
	}
	return campaigns
}

// Accounts builds n sender accounts. IDs are stable UUIDs derived from the index.
func (g *Generator) Accounts(n int) []crm.Account {
	statuses := crm.AccountStatuses()
	accounts := make([]crm.Account, n)
	for i := range accounts {
		first, last := g.faker.FirstName(), g.faker.LastName()
		total := g.between(20, 100)
		accounts[i] = crm.Account{
			ID:            uuid.NewSHA1(accountNamespace, []byte(fmt.Sprintf("account-%d", i+1))).String(),
			Name:          first + " " + last,
			Email:         emailFor(first, last, i+1),
			Status:        statuses[g.between(0, len(statuses)-1)],
			Requests:      g.between(0, total),
			TotalRequests: total,
		}
	}
	return accounts
}

// Activity builds n recent interactions across made-up leads, newest first.
func (g *Generator) Activity(n int) []crm.Activity {
	now := g.now()
	kinds := crm.ActivityKinds()
	out := make([]crm.Activity, n)
	for i := range out {
		first := g.faker.FirstName()
		kind := kinds[g.between(0, len(kinds)-1)]
		out[i] = crm.Activity{
			Kind:    kind,
			Message: personalize(templates[kind], first),
			At:      now.Add(-time.Duration(g.between(1, 24*60)) * time.Minute),
			Lead:    first + " " + g.faker.LastName(),
		}
	}
	slices.SortFunc(out, func(a, b crm.Activity) int { return b.At.Compare(a.At) })
	return out
}

var templates = map[crm.ActivityKind]string{
	crm.ActivityInvitation:       "Hi {{firstName}}, I'm building consultative AI...",
	crm.ActivityConnectionStatus: "Check connection status",
	crm.ActivityAcceptance:       "Awesome to connect, {{firstName}}!",
	crm.ActivityFollowUp:         "Hey, did you get a chance to go through...",
}

var stepDelays = map[crm.ActivityKind]time.Duration{
	crm.ActivityInvitation:       0,
	crm.ActivityConnectionStatus: 24 * time.Hour,
	crm.ActivityAcceptance:       0,
	crm.ActivityFollowUp:         72 * time.Hour,
}

// Sequence returns the outreach sequence every generated campaign uses.
func Sequence() []crm.SequenceStep {
	kinds := crm.ActivityKinds()
	steps := make([]crm.SequenceStep, len(kinds))
	for i, k := range kinds {
		steps[i] = crm.SequenceStep{Kind: k, Delay: stepDelays[k], Template: templates[k]}
	}
	return steps
}

// history is the fixed four-step conversation ending at the last contact.
func history(firstName string, lastContact time.Time) []crm.Activity {
	offsets := []time.Duration{60 * time.Minute, 55 * time.Minute, 50 * time.Minute, 0}
	kinds := crm.ActivityKinds()
	out := make([]crm.Activity, len(kinds))
	for i, k := range kinds {
		out[i] = crm.Activity{
			Kind:    k,
			Message: personalize(templates[k], firstName),
			At:      lastContact.Add(-offsets[i]),
		}
	}
	return out
}

func personalize(tmpl, firstName string) string {
	return strings.ReplaceAll(tmpl, "{{firstName}}", firstName)
}

func emailFor(first, last string, n int) string {
	local := strings.ToLower(strings.Join(strings.Fields(first+" "+last), "."))
	return fmt.Sprintf("%s%d@example.com", local, n)
}
