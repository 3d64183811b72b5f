// Package modapi is the stable API surface the host exposes to extension
// modules.
//
// The host constructs exactly one API instance per process and hands it to
// every module at load time. The API owns nothing itself: it is a thin,
// stateless router composing the lifecycle bus, translation registry,
// dialog broker, config accessor, and app registry, plus the narrow
// collaborator interfaces (account session, navigation) the host wires in.
// Modules therefore all share the same registries and must cooperate; no
// per-module isolation is provided beyond config namespacing.
//
// This surface is the compatibility contract between host and module:
// internal host refactors must not change its semantics, and additions are
// backward compatible.
package modapi
