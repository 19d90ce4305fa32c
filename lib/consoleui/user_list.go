// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"strconv"

	"github.com/tessera-admin/tessera/lib/api"
)

func newUserListScreen(app *App) *listScreen[api.User] {
	return newListScreen(app, listConfig[api.User]{
		entity: "user",
		columns: []listColumn[api.User]{
			{title: "ID", field: "id", width: 6,
				value: func(u api.User) string { return strconv.FormatInt(u.ID, 10) }},
			{title: "Username", field: "username", width: 18,
				value: func(u api.User) string { return u.Username }},
			{title: "Email", field: "email", width: 28,
				value: func(u api.User) string { return u.Email }},
			{title: "Role", width: 8,
				value: func(u api.User) string { return u.Role }},
			{title: "Status", width: 8,
				value: func(u api.User) string { return u.Status }},
		},
		fetch:    app.backend.ListUsers,
		remove:   app.backend.DeleteUser,
		id:       func(u api.User) int64 { return u.ID },
		newPath:  PathUserNew,
		editPath: EditUserPath,

		deletedNotice:  "User deleted successfully",
		confirmMessage: "Are you sure you want to delete this user?",
	})
}
