package constants

// MaxBulkTargets is the largest number of target ids a single bulk request may carry.
const MaxBulkTargets = 100

type BulkMemberAction int

const (
	BulkMemberDelete BulkMemberAction = iota
	BulkMemberActivate
	BulkMemberDeactivate
	BulkMemberActionUnknown
)

func (a BulkMemberAction) String() string {
	switch a {
	case BulkMemberDelete:
		return "delete"
	case BulkMemberActivate:
		return "activate"
	case BulkMemberDeactivate:
		return "deactivate"
	default:
		return "unknown"
	}
}

var bulkMemberActionMap = map[string]BulkMemberAction{
	"delete":     BulkMemberDelete,
	"activate":   BulkMemberActivate,
	"deactivate": BulkMemberDeactivate,
}

func ParseBulkMemberAction(s string) BulkMemberAction {
	if action, ok := bulkMemberActionMap[s]; ok {
		return action
	}
	return BulkMemberActionUnknown
}

// IsDestructive reports whether the action removes or disables the target account.
func (a BulkMemberAction) IsDestructive() bool {
	return a == BulkMemberDelete || a == BulkMemberDeactivate
}

type BulkPostAction int

const (
	BulkPostDelete BulkPostAction = iota
	BulkPostPublish
	BulkPostUnpublish
	BulkPostActionUnknown
)

func (a BulkPostAction) String() string {
	switch a {
	case BulkPostDelete:
		return "delete"
	case BulkPostPublish:
		return "publish"
	case BulkPostUnpublish:
		return "unpublish"
	default:
		return "unknown"
	}
}

var bulkPostActionMap = map[string]BulkPostAction{
	"delete":    BulkPostDelete,
	"publish":   BulkPostPublish,
	"unpublish": BulkPostUnpublish,
}

func ParseBulkPostAction(s string) BulkPostAction {
	if action, ok := bulkPostActionMap[s]; ok {
		return action
	}
	return BulkPostActionUnknown
}
