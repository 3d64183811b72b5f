// Package hcl_adapter loads the host configuration document from an HCL
// file.
//
// The expected shape is one labelled block per module namespace:
//
//	namespace "io.chat.jitsi" {
//	  preferred_domain = "meet.chat.local"
//	  use_e2e          = true
//	}
//
// Block bodies decode into nested map[string]any values; any top-level
// attributes outside a namespace block land at the document root, where the
// accessor keeps them out of modules' reach.
package hcl_adapter
