package crm

// LeadStatus is where a lead sits in the outreach funnel.
type LeadStatus string

const (
	LeadPendingApproval LeadStatus = "Pending Approval"
	LeadSent            LeadStatus = "Sent"
	LeadConnected       LeadStatus = "Connected"
	LeadDoNotContact    LeadStatus = "Do Not Contact"
	LeadFollowup        LeadStatus = "Followup"
)

// LeadStatuses lists every lead status in funnel order.
func LeadStatuses() []LeadStatus {
	return []LeadStatus{LeadPendingApproval, LeadSent, LeadConnected, LeadDoNotContact, LeadFollowup}
}

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "Draft"
	CampaignActive    CampaignStatus = "Active"
	CampaignPaused    CampaignStatus = "Paused"
	CampaignCompleted CampaignStatus = "Completed"
)

// CampaignStatuses lists every campaign status.
func CampaignStatuses() []CampaignStatus {
	return []CampaignStatus{CampaignDraft, CampaignActive, CampaignPaused, CampaignCompleted}
}

// AccountStatus is the connection state of a sender account.
type AccountStatus string

const (
	AccountConnected    AccountStatus = "Connected"
	AccountDisconnected AccountStatus = "Disconnected"
	AccountWarmingUp    AccountStatus = "Warming Up"
)

// AccountStatuses lists every account status.
func AccountStatuses() []AccountStatus {
	return []AccountStatus{AccountConnected, AccountDisconnected, AccountWarmingUp}
}

// ActivityKind labels one step of an outreach conversation.
type ActivityKind string

const (
	ActivityInvitation       ActivityKind = "Invitation Request"
	ActivityConnectionStatus ActivityKind = "Connection Status"
	ActivityAcceptance       ActivityKind = "Connection Acceptance Message"
	ActivityFollowUp         ActivityKind = "Follow-Up 1"
)

// ActivityKinds lists the steps in the order a sequence sends them.
func ActivityKinds() []ActivityKind {
	return []ActivityKind{ActivityInvitation, ActivityConnectionStatus, ActivityAcceptance, ActivityFollowUp}
}
