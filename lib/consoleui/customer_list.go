// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"strconv"

	"github.com/tessera-admin/tessera/lib/api"
)

func newCustomerListScreen(app *App) *listScreen[api.Customer] {
	return newListScreen(app, listConfig[api.Customer]{
		entity: "customer",
		columns: []listColumn[api.Customer]{
			{title: "ID", field: "id", width: 6,
				value: func(c api.Customer) string { return strconv.FormatInt(c.ID, 10) }},
			{title: "First Name", field: "firstName", width: 14,
				value: func(c api.Customer) string { return c.FirstName }},
			{title: "Last Name", field: "lastName", width: 14,
				value: func(c api.Customer) string { return c.LastName }},
			{title: "Email", field: "email", width: 26,
				value: func(c api.Customer) string { return c.Email }},
			{title: "Mobile", field: "mobile", width: 12,
				value: func(c api.Customer) string { return c.Mobile }},
			{title: "Gender", width: 8,
				value: func(c api.Customer) string { return c.Gender }},
			{title: "Age", width: 4,
				value: func(c api.Customer) string { return strconv.Itoa(c.Age) }},
		},
		fetch:      app.backend.ListCustomers,
		remove:     app.backend.DeleteCustomer,
		id:         func(c api.Customer) int64 { return c.ID },
		searchable: true,
		newPath:    PathCustomerNew,
		editPath:   EditCustomerPath,

		deletedNotice:  "Customer deleted successfully",
		confirmMessage: "Are you sure you want to delete this customer?",
	})
}
