// Package common contains shared constants and sentinel errors used across
// farmauth components.
package common

// SessionCookieName is the cookie that carries the signed session token
// between the browser and the server.
const SessionCookieName = "session-token"
