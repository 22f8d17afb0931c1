package mongodb

const (
	CollectionMembers    = "members"
	CollectionBranches   = "branches"
	CollectionAuditLogs  = "audit_logs"
	CollectionPosts      = "posts"
	CollectionIdentities = "identities"
)

// MaxBatchOps is the store's per-batch write ceiling. A single BulkWrite may
// carry at most this many operations; larger mutations are split into
// sequential batches by the callers.
const MaxBatchOps = 500
