package api

import (
	"tasktrackr/internal/domain"
)

// Wire representations. Task and user records carry arbitrary
// client-supplied fields, so responses are built as maps: the opaque
// fields go in first and the interpreted fields are set last, keeping
// id, owner, and order authoritative.

// taskToResponse converts a domain.Task to its wire form.
func taskToResponse(task *domain.Task) map[string]any {
	resp := make(map[string]any, len(task.Fields)+4)
	for k, v := range task.Fields {
		resp[k] = v
	}
	resp["id"] = task.ID.String()
	resp["addedBy"] = task.AddedBy
	resp["order"] = task.Order
	resp["timestamp"] = task.Timestamp
	return resp
}

// tasksToResponse converts a task list, mapping nil to an empty array
// so clients always receive JSON "[]" rather than "null".
func tasksToResponse(tasks []*domain.Task) []map[string]any {
	resp := make([]map[string]any, 0, len(tasks))
	for _, task := range tasks {
		resp = append(resp, taskToResponse(task))
	}
	return resp
}

// userToResponse converts a domain.User to its wire form.
func userToResponse(user *domain.User) map[string]any {
	resp := make(map[string]any, len(user.Profile)+3)
	for k, v := range user.Profile {
		resp[k] = v
	}
	resp["id"] = user.ID.String()
	resp["email"] = user.Email
	resp["createdAt"] = user.CreatedAt
	return resp
}

// usersToResponse converts a user list, mapping nil to an empty array.
func usersToResponse(users []*domain.User) []map[string]any {
	resp := make([]map[string]any, 0, len(users))
	for _, user := range users {
		resp = append(resp, userToResponse(user))
	}
	return resp
}
