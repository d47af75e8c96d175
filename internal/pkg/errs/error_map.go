/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct, used to standardize
HTTP responses and internal error handling.
*/
package errs

import "net/http"

// errorMap stores the detailed CustomError struct corresponding to every application error code.
// The key is the error code (int), and the value contains the user message and HTTP status code.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:         {Code: ErrInvalidParams, Message: "Invalid request parameters.", Status: http.StatusBadRequest},
	ErrUnsupportedMediaType:  {Code: ErrUnsupportedMediaType, Message: "Unsupported request format.", Status: http.StatusUnsupportedMediaType},
	ErrInvalidJSONFormat:     {Code: ErrInvalidJSONFormat, Message: "Unsupported request format.", Status: http.StatusBadRequest},
	ErrExtraContentInBody:    {Code: ErrExtraContentInBody, Message: "Request contains unexpected data.", Status: http.StatusBadRequest},
	ErrRequestEntityTooLarge: {Code: ErrRequestEntityTooLarge, Message: "Request size is too large.", Status: http.StatusRequestEntityTooLarge},
	ErrValidation:            {Code: ErrValidation, Message: "Validation failed", Status: http.StatusBadRequest},

	// 3xxx: Authentication and Account Errors
	ErrInvalidCredentials: {Code: ErrInvalidCredentials, Message: "Invalid Credentials", Status: http.StatusBadRequest},
	ErrDuplicateNickname:  {Code: ErrDuplicateNickname, Message: "This NickName is already registered", Status: http.StatusBadRequest},
	ErrUnauthorized:       {Code: ErrUnauthorized, Message: "Please sign in to continue.", Status: http.StatusUnauthorized},

	// 4xxx: Lookup Errors
	ErrFollowersNotFound: {Code: ErrFollowersNotFound, Message: "Followers not found", Status: http.StatusNotFound},
	ErrUserNotFound:      {Code: ErrUserNotFound, Message: "User not found", Status: http.StatusNotFound},
	ErrNoPosts:           {Code: ErrNoPosts, Message: "User has no posts", Status: http.StatusNoContent},
	ErrNoPostsOnDate:     {Code: ErrNoPostsOnDate, Message: "No posts found on this date", Status: http.StatusNoContent},

	// 5xxx: Internal System Errors
	ErrUnknown:            {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
	ErrStorageUnavailable: {Code: ErrStorageUnavailable, Message: "Media storage is not configured.", Status: http.StatusServiceUnavailable},
}
