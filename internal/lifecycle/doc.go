// Package lifecycle implements the typed publish/subscribe bus modules use
// to hook into host lifecycle moments.
//
// Events form a closed enum. New events are additive only: an event tag is
// never renumbered or removed, so modules compiled against an older host
// keep working. The only event today is EventWrapper, broadcast when the
// host resolves which component wraps the client shell.
//
// Broadcast is synchronous and single-threaded from the host's perspective:
// listeners run in registration order, all sharing the same mutable payload.
// A panicking listener is isolated, reported through the context logger, and
// the broadcast continues with the next listener.
package lifecycle
