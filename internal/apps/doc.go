// Package apps tracks which embeddable apps (widgets) sit in which UI
// container, per room.
//
// The registry is one of the two process-wide stateful components of the
// module API (the other is the translation registry). It is initialized at
// host startup, lives for the process, and guards its maps with an RWMutex
// so every read after a move sees the new placement.
//
// The core invariant: an app occupies exactly one container per room at a
// time. MoveAppToContainer is the sole mutator of placement and implicitly
// removes the app from whatever container it previously occupied in that
// room.
package apps
