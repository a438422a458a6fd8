package domain

import (
	"fmt"
	"strings"
)

// Role of the current user
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSupervisor Role = "supervisor"
	RoleStudent    Role = "student"
)

func ParseRole(s string) (Role, error) {
	switch role := Role(strings.ToLower(strings.TrimSpace(s))); role {
	case RoleAdmin, RoleSupervisor, RoleStudent:
		return role, nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalidInput, s)
	}
}

// Action guarded by the access policy
type Action string

const (
	ActionRequestBooking  Action = "request_booking"
	ActionDecideBooking   Action = "decide_booking"
	ActionManageSettings  Action = "manage_settings"
	ActionManageEquipment Action = "manage_equipment"
	ActionViewReports     Action = "view_reports"
	ActionViewAllBookings Action = "view_all_bookings"
	ActionViewSupervisors Action = "view_supervisors"
)

var permissions = map[Role]map[Action]bool{
	RoleAdmin: {
		ActionManageSettings:  true,
		ActionManageEquipment: true,
		ActionViewReports:     true,
		ActionViewAllBookings: true,
		ActionViewSupervisors: true,
	},
	RoleSupervisor: {
		ActionDecideBooking: true,
		ActionViewReports:   true,
	},
	RoleStudent: {
		ActionRequestBooking: true,
	},
}

// CanManage is the single role check of the service.
// Admins do not decide bookings; only the assigned supervisor does.
func CanManage(role Role, action Action) bool {
	return permissions[role][action]
}

// Actor identity of the caller, trusted from the transport layer
type Actor struct {
	ID         string
	Name       string
	Role       Role
	Department string
}

// Can is a shortcut for CanManage(a.Role, action)
func (a *Actor) Can(action Action) bool {
	return a != nil && CanManage(a.Role, action)
}
