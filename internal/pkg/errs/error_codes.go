/*
Package errs provides custom error types and application-level error code constants.

These error codes identify business and system failures both inside the server
and in the response envelope returned to clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that a path or query parameter could not be parsed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request header Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON format is incorrect (e.g., syntax error).
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates that the request body contained extra content after valid JSON data.
	ErrExtraContentInBody = 1004

	// ErrRequestEntityTooLarge indicates that the request body size exceeded the server limit.
	ErrRequestEntityTooLarge = 1006

	// ErrValidation indicates that one or more request fields failed validation.
	// The offending fields are listed in the error Data.
	ErrValidation = 1008
)

// 3xxx: Authentication and Account Errors
const (
	// ErrInvalidCredentials is returned for both an unknown nickname and a wrong password.
	ErrInvalidCredentials = 3001

	// ErrDuplicateNickname indicates that the nickname is already registered.
	ErrDuplicateNickname = 3002

	// ErrUnauthorized indicates that the request carries no valid identity.
	ErrUnauthorized = 3003
)

// 4xxx: Lookup Errors
const (
	// ErrFollowersNotFound indicates that the user whose followers were requested does not exist.
	ErrFollowersNotFound = 4001

	// ErrUserNotFound indicates that the referenced user does not exist.
	ErrUserNotFound = 4002

	// ErrNoPosts signals that the user exists but has no posts.
	ErrNoPosts = 4101

	// ErrNoPostsOnDate signals that none of the user's posts match the requested date.
	ErrNoPostsOnDate = 4102
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000

	// ErrStorageUnavailable indicates that media storage is not configured on this server.
	ErrStorageUnavailable = 5002
)
