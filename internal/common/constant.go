package common

// AuthorizationHeaderName is the HTTP header used to carry the bearer token
// on outbound requests.
const AuthorizationHeaderName = "Authorization"

// RequestIDHeaderName carries a client-generated id used to correlate a
// request with its log entries.
const RequestIDHeaderName = "X-Request-Id"
