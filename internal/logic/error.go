package logic

import "errors"

var (
	ErrMemberNotFound    = errors.New("member not found")
	ErrBranchNotFound    = errors.New("branch not found")
	ErrBranchInactive    = errors.New("branch is not active")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrNationalIDTaken   = errors.New("national id already registered")
	ErrDuplicateMember   = errors.New("member already registered")
)
