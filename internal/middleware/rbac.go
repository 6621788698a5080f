package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classora/classora-backend/internal/model"
	"github.com/classora/classora-backend/internal/response"
)

// Resource names an API resource in the authorization policy.
type Resource string

const (
	ResourceStudents   Resource = "students"
	ResourceTeachers   Resource = "teachers"
	ResourceClasses    Resource = "classes"
	ResourceAttendance Resource = "attendance"
	ResourceUsers      Resource = "users"
)

// Operation names an action on a resource.
type Operation string

const (
	OpList   Operation = "list"
	OpRead   Operation = "read"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

var anyRole = []model.Role{model.RoleSuperAdmin, model.RoleSchoolAdmin, model.RoleTeacher, model.RoleStudent}
var adminOnly = []model.Role{model.RoleSuperAdmin, model.RoleSchoolAdmin}
var adminAndTeacher = []model.Role{model.RoleSuperAdmin, model.RoleSchoolAdmin, model.RoleTeacher}

// policy is the single declarative map of (resource, operation) to the role
// set allowed to perform it. Every protected route goes through Authorize, so
// a missing entry here denies by default and is easy to spot in review.
var policy = map[Resource]map[Operation][]model.Role{
	ResourceStudents: {
		OpList:   anyRole,
		OpRead:   anyRole,
		OpCreate: adminAndTeacher,
		OpUpdate: adminAndTeacher,
		OpDelete: adminOnly,
	},
	ResourceTeachers: {
		OpList:   anyRole,
		OpRead:   anyRole,
		OpCreate: adminOnly,
		OpUpdate: adminOnly,
		OpDelete: adminOnly,
	},
	ResourceClasses: {
		OpList:   anyRole,
		OpRead:   anyRole,
		OpCreate: adminOnly,
		OpUpdate: adminOnly,
		OpDelete: adminOnly,
	},
	ResourceAttendance: {
		OpList:   anyRole,
		OpRead:   anyRole,
		OpCreate: adminAndTeacher,
		OpUpdate: adminAndTeacher,
		OpDelete: adminOnly,
	},
	ResourceUsers: {
		OpList:   adminOnly,
		OpCreate: adminOnly,
	},
}

// Allowed reports whether a role may perform an operation on a resource.
func Allowed(role model.Role, resource Resource, op Operation) bool {
	ops, ok := policy[resource]
	if !ok {
		return false
	}
	for _, allowed := range ops[op] {
		if role == allowed {
			return true
		}
	}
	return false
}

// Authorize is the role gate: it checks the identity's role against the
// policy table. Must run after RequireAuth.
func Authorize(resource Resource, op Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			response.AbortFail(c, http.StatusUnauthorized, "Missing token")
			return
		}

		if !Allowed(identity.Role, resource, op) {
			response.AbortFail(c, http.StatusForbidden, "Insufficient role")
			return
		}
		c.Next()
	}
}
