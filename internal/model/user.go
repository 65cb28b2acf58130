// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines domain constants shared by the services and handlers.
package model

import "strings"

// User roles. The role is shown in the UI but never checked for access.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// RoleLabel returns the display label for role.
func RoleLabel(role string) string {
	switch role {
	case RoleAdmin:
		return "Administrator"
	case RoleStaff:
		return "Staf"
	case "":
		return "-"
	default:
		return strings.ToUpper(role[:1]) + role[1:]
	}
}
