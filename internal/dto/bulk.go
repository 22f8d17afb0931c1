package dto

import "github.com/EmreNP/sendikaapp-sub000/internal/models"

func NewBulkMemberRequest(actor *models.Member, action string, targetUIDs []string) *BulkMemberRequest {
	return &BulkMemberRequest{
		actor:      actor,
		action:     action,
		targetUIDs: targetUIDs,
	}
}

type BulkMemberRequest struct {
	actor      *models.Member
	action     string
	targetUIDs []string
}

func (r BulkMemberRequest) Actor() *models.Member { return r.actor }
func (r BulkMemberRequest) Action() string        { return r.action }
func (r BulkMemberRequest) TargetUIDs() []string  { return r.targetUIDs }

func NewBulkPostRequest(actor *models.Member, action string, targetIDs []string) *BulkPostRequest {
	return &BulkPostRequest{
		actor:     actor,
		action:    action,
		targetIDs: targetIDs,
	}
}

type BulkPostRequest struct {
	actor     *models.Member
	action    string
	targetIDs []string
}

func (r BulkPostRequest) Actor() *models.Member { return r.actor }
func (r BulkPostRequest) Action() string        { return r.action }
func (r BulkPostRequest) TargetIDs() []string   { return r.targetIDs }

// BulkItemError records one failed target of a bulk request.
type BulkItemError struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// BulkResult summarizes a bulk run. SuccessCount + FailureCount always equals
// the number of submitted targets.
type BulkResult struct {
	SuccessCount int             `json:"success_count"`
	FailureCount int             `json:"failure_count"`
	Errors       []BulkItemError `json:"errors,omitempty"`
}

// Partial reports whether the run had both successes and failures.
func (r *BulkResult) Partial() bool {
	return r.SuccessCount > 0 && r.FailureCount > 0
}

// AllFailed reports whether no target succeeded.
func (r *BulkResult) AllFailed() bool {
	return r.SuccessCount == 0 && r.FailureCount > 0
}
