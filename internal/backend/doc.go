// Package backend implements the module API's account and navigation
// collaborators against the chat backend's socket.io gateway.
//
// Each operation opens a short-lived connection, emits one request event,
// and waits for the matching response or error event. The wire protocol
// beyond that exchange is the backend's concern, not the module API's; this
// package only satisfies the collaborator interfaces the facade consumes.
package backend
