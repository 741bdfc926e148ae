package controller

import (
	"errors"

	"github.com/teamboard/teamboard/internal/models"
	"github.com/teamboard/teamboard/internal/session"
)

// ErrForbidden is raised before any network call when a role-gated action
// is attempted by an ineligible role. Client-side only: the backend remains
// the authority, this just keeps a hidden-but-reachable control from firing.
var ErrForbidden = errors.New("insufficient role for this action")

// CanManageProjects reports whether the session may create, edit or delete
// projects.
func CanManageProjects(sess session.Session) bool {
	return sess.IsPrivileged()
}

// CanManageEmployees reports whether the session may read or write the
// employees collection. The list endpoint itself is privileged, so this
// gates the read path too.
func CanManageEmployees(sess session.Session) bool {
	return sess.IsPrivileged()
}

// CanCreateTasks reports whether the session may create tasks.
func CanCreateTasks(sess session.Session) bool {
	return sess.IsPrivileged()
}

// CanEditTask reports whether the session may change anything on the given
// task: PM edits all fields, an employee only a task assigned to them (and
// then only its status).
func CanEditTask(sess session.Session, task models.Task) bool {
	if sess.IsPrivileged() {
		return true
	}
	return sess.Role == models.RoleEmployee && task.AssignedTo(sess.SubjectID)
}
