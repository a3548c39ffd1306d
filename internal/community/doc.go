// Package community implements the social feed: a membership set, an ordered
// list of posts with likes and comments, and an observer channel that reports
// membership and post changes.
//
// Preconditions that are not met (a non-member posting, removing someone who
// is not a member, deleting an unknown post) are silent no-ops signalled only
// through the return values. Observer failures are returned to the caller of
// the mutating operation after the mutation has been applied.
package community
