// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NullData is the literal placed in the data field of every error envelope.
const NullData = "null"

// Response is the envelope returned by every endpoint.
type Response struct {
	// Data carries the payload: a message, a record, a list of records or
	// the literal "null" on failure.
	Data any `json:"data"`

	// Meta carries either a human-readable message or totals.
	Meta any `json:"meta"`
}

// MessageMeta is the meta object holding a human-readable message.
type MessageMeta struct {
	Data string `json:"data"`
}

// TotalMeta is the meta object of list responses.
type TotalMeta struct {
	TotalData int64 `json:"total_data"`
}

// NewErrorResponse builds the standard failure envelope.
func NewErrorResponse(message string) Response {
	return Response{
		Data: NullData,
		Meta: MessageMeta{Data: message},
	}
}

// NewMessageResponse builds a success envelope with the given payload and message.
func NewMessageResponse(data any, message string) Response {
	return Response{
		Data: data,
		Meta: MessageMeta{Data: message},
	}
}

// NewListResponse builds a list envelope with the total count in meta.
func NewListResponse(data any, total int64) Response {
	return Response{
		Data: data,
		Meta: TotalMeta{TotalData: total},
	}
}
