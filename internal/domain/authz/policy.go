// Package authz is the single authorization policy consulted by every
// mutation. Role checks live here instead of being copied into each route.
package authz

import "github.com/worktrack-hq/worktrack-backend-go/internal/domain/user"

type Action string

const (
	ActionTaskCreate   Action = "task.create"
	ActionTaskRead     Action = "task.read"
	ActionTaskUpdate   Action = "task.update"
	ActionTaskSanction Action = "task.sanction"
	ActionUserList     Action = "user.list"
)

// Permits decides whether the actor may perform the action against a record
// owned by ownerID. Stateless: the decision is a function of its inputs only.
//
// Admins may do everything. Employees may read and update only records they
// own, and may never create tasks, sanction work, or list users.
func Permits(actor user.Actor, action Action, ownerID string) bool {
	if actor.IsAdmin() {
		return true
	}

	switch action {
	case ActionTaskRead, ActionTaskUpdate:
		return ownerID != "" && ownerID == actor.ID
	default:
		return false
	}
}
