// Package crm defines the records shown by the LinkBird dashboard: leads,
// campaigns, sender accounts and their activity, plus the small amount of
// arithmetic the dashboard widgets need (summaries and percentages).
package crm
