package constants

type MembershipStatus int

const (
	StatusPendingDetails MembershipStatus = iota
	StatusPendingBranchReview
	StatusActive
	StatusRejected
	StatusUnknown
)

func (s MembershipStatus) String() string {
	switch s {
	case StatusPendingDetails:
		return "pending_details"
	case StatusPendingBranchReview:
		return "pending_branch_review"
	case StatusActive:
		return "active"
	case StatusRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

var membershipStatusMap = map[string]MembershipStatus{
	"pending_details":       StatusPendingDetails,
	"pending_branch_review": StatusPendingBranchReview,
	"active":                StatusActive,
	"rejected":              StatusRejected,
}

func ParseMembershipStatus(s string) MembershipStatus {
	if status, ok := membershipStatusMap[s]; ok {
		return status
	}
	return StatusUnknown
}

// IsTerminal reports whether no further status transition is defined from s.
func (s MembershipStatus) IsTerminal() bool {
	return s == StatusActive || s == StatusRejected
}
