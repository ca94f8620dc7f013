// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

// Messages carried in the meta of envelopes written by this package.
const (
	msgSomethingWentWrong = "Something went wrong!"
	msgInvalidIdentity    = "Please provide valid userId!"
	msgInvalidUserID      = "Please Provide user id!"
	msgRouteNotFound      = "Route not found!"
	msgMethodNotAllowed   = "Method not allowed!"
	msgTooManyRequests    = "Too many requests!"
	msgInvalidGzip        = "Invalid gzip data!"

	msgUserCreated = "User created successfully!"
	msgUserUpdated = "Record Updated Successfully!"
	msgUserDeleted = "Record deleted Successfully!"
	msgSuccess     = "Success"

	dataTodoCreated = "Todo created!"
	dataTodoUpdated = "Todo updated!"
)

func msgUserNotFound(id int64) string {
	return "User not found with id " + formatID(id) + "..."
}

func msgTodoNotFound(id int64) string {
	return "Todo with id:" + formatID(id) + " is not exists in database!"
}

func dataTodoDeleted(id int64) string {
	return "Todo Deleted with id " + formatID(id) + "!"
}
