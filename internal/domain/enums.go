package domain

// Role is the access level of a team member.
type Role string

const (
	RoleAnalyst Role = "analyst"
	RolePartner Role = "partner"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleAnalyst, RolePartner, RoleAdmin:
		return true
	}
	return false
}

// CanManageReferenceData reports whether the role may edit stages, industries,
// deal sources and the rejection taxonomy, and invite new members.
func (r Role) CanManageReferenceData() bool {
	return r == RoleAdmin || r == RolePartner
}

// CompanyRound is the financing round a company is raising.
type CompanyRound string

const (
	RoundPreSeed     CompanyRound = "Pre-Seed"
	RoundSeed        CompanyRound = "Seed"
	RoundPreSeriesA  CompanyRound = "Pre-Series A"
	RoundSeriesA     CompanyRound = "Series A"
	RoundSeriesB     CompanyRound = "Series B"
	RoundSeriesC     CompanyRound = "Series C"
	RoundSeriesDPlus CompanyRound = "Series D+"
	RoundPreIPO      CompanyRound = "Pre-IPO"
	RoundIPO         CompanyRound = "IPO"
)

var roundRank = map[CompanyRound]int{
	RoundPreSeed:     1,
	RoundSeed:        2,
	RoundPreSeriesA:  3,
	RoundSeriesA:     4,
	RoundSeriesB:     5,
	RoundSeriesC:     6,
	RoundSeriesDPlus: 7,
	RoundPreIPO:      8,
	RoundIPO:         9,
}

func (r CompanyRound) String() string { return string(r) }

func (r CompanyRound) IsValid() bool {
	_, ok := roundRank[r]
	return ok
}

// Rank orders rounds from earliest to latest. Unknown rounds rank 0.
func (r CompanyRound) Rank() int { return roundRank[r] }

// Priority is the deal-team priority of a company.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

func (p Priority) String() string { return string(p) }

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank orders priorities Low < Medium < High. Unknown values rank 0.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	}
	return 0
}

// DealSourceType is the channel a deal arrived through.
type DealSourceType string

const (
	DealSourceFounderNetwork   DealSourceType = "Founder Network"
	DealSourceInvestmentBanker DealSourceType = "Investment Banker"
	DealSourceFriendsFamily    DealSourceType = "Friends & Family"
	DealSourceVCPE             DealSourceType = "VC & PE"
)

func (d DealSourceType) String() string { return string(d) }

func (d DealSourceType) IsValid() bool {
	switch d {
	case DealSourceFounderNetwork, DealSourceInvestmentBanker, DealSourceFriendsFamily, DealSourceVCPE:
		return true
	}
	return false
}

// ShareType distinguishes primary issuance from secondary sale.
type ShareType string

const (
	ShareTypePrimary   ShareType = "Primary"
	ShareTypeSecondary ShareType = "Secondary"
)

func (s ShareType) String() string { return string(s) }

func (s ShareType) IsValid() bool {
	return s == ShareTypePrimary || s == ShareTypeSecondary
}

// CommunicationMethod records how a rejection was (or will be) communicated.
type CommunicationMethod string

const (
	CommunicationEmail    CommunicationMethod = "Email"
	CommunicationVerbal   CommunicationMethod = "Verbal"
	CommunicationWhatsApp CommunicationMethod = "WhatsApp"
	CommunicationCall     CommunicationMethod = "Call"
	CommunicationNotYet   CommunicationMethod = "Not Yet Communicated"
)

func (c CommunicationMethod) String() string { return string(c) }

func (c CommunicationMethod) IsValid() bool {
	switch c {
	case CommunicationEmail, CommunicationVerbal, CommunicationWhatsApp, CommunicationCall, CommunicationNotYet:
		return true
	}
	return false
}

// TerminalStatus is an end state that removes a company from active views.
type TerminalStatus string

const (
	TerminalPortfolio         TerminalStatus = "Portfolio"
	TerminalRejected          TerminalStatus = "Rejected"
	TerminalAwaitingResponse  TerminalStatus = "Awaiting Response"
	TerminalBlocker           TerminalStatus = "Blocker"
	TerminalNextRoundAnalysis TerminalStatus = "Next Round Analysis"
)

// AllTerminalStatuses lists terminal statuses in display order.
var AllTerminalStatuses = []TerminalStatus{
	TerminalPortfolio,
	TerminalRejected,
	TerminalAwaitingResponse,
	TerminalBlocker,
	TerminalNextRoundAnalysis,
}

func (t TerminalStatus) String() string { return string(t) }

func (t TerminalStatus) IsValid() bool {
	switch t {
	case TerminalPortfolio, TerminalRejected, TerminalAwaitingResponse, TerminalBlocker, TerminalNextRoundAnalysis:
		return true
	}
	return false
}

// NotificationType classifies inbox notifications.
type NotificationType string

const (
	NotificationAssignment  NotificationType = "assignment"
	NotificationOverdue     NotificationType = "overdue"
	NotificationStageChange NotificationType = "stage_change"
	NotificationNewCompany  NotificationType = "new_company"
	NotificationComment     NotificationType = "comment"
)

func (n NotificationType) String() string { return string(n) }

func (n NotificationType) IsValid() bool {
	switch n {
	case NotificationAssignment, NotificationOverdue, NotificationStageChange, NotificationNewCompany, NotificationComment:
		return true
	}
	return false
}

// ActivityAction is the verb recorded in the activity log.
type ActivityAction string

const (
	ActivityCreated     ActivityAction = "created"
	ActivityStageChange ActivityAction = "stage_change"
	ActivityAssigned    ActivityAction = "assigned"
	ActivityRejected    ActivityAction = "rejected"
	ActivityUpdated     ActivityAction = "updated"
)

func (a ActivityAction) String() string { return string(a) }

func (a ActivityAction) IsValid() bool {
	switch a {
	case ActivityCreated, ActivityStageChange, ActivityAssigned, ActivityRejected, ActivityUpdated:
		return true
	}
	return false
}
