package crm

import "time"

// Activity is a single interaction with a lead.
type Activity struct {
	Kind    ActivityKind
	Message string
	At      time.Time
	Lead    string // lead name, empty when attached to the lead itself
}

// Lead is a prospect being worked by a campaign.
// Campaign holds the campaign name only; it is not checked against real campaigns.
type Lead struct {
	ID              string
	Name            string
	Email           string
	Company         string
	Campaign        string
	Status          LeadStatus
	LastContact     time.Time
	LastContactText string

	Title    string
	Location string
	History  []Activity
}

// SequenceStep is one message in a campaign's outreach sequence.
type SequenceStep struct {
	Kind     ActivityKind
	Delay    time.Duration // wait after the previous step
	Template string
}

// CampaignSettings are the per-campaign toggles shown on the Settings tab.
type CampaignSettings struct {
	DailyLimit          int
	Autopilot           bool
	PersonalizeMessages bool
	SendOnWeekends      bool
}

// Campaign is an outreach campaign and its running totals.
type Campaign struct {
	ID              string
	Name            string
	Status          CampaignStatus
	TotalLeads      int
	SuccessfulLeads int
	Progress        int // 0..100
	CreatedAt       time.Time

	Steps    []SequenceStep
	Settings CampaignSettings
}

// Account is a sender account and its connection-request usage.
type Account struct {
	ID            string
	Name          string
	Email         string
	Status        AccountStatus
	Requests      int
	TotalRequests int
}
