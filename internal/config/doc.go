// Package config defines the host configuration document and the
// namespace-scoped, read-only view modules get over it.
//
// The document is an arbitrary nested key-value tree loaded once before any
// module runs and treated as immutable for the process lifetime. Modules
// never see the whole tree: every read goes through a namespace, and
// top-level keys outside any namespace are unreachable by design. That is
// the isolation boundary keeping one module out of another's (and the
// host's own) configuration.
//
// Loading is format-agnostic behind the Loader interface; the concrete
// adapters live in the hcl_adapter and viper_adapter packages.
package config
