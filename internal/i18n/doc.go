// Package i18n implements the process-wide translation registry modules use
// to overlay their own strings onto the host's UI language.
//
// The registry is an overlay store: registering a table merges it into the
// existing state per (key, language) pair, so two modules can translate the
// same key into disjoint languages without clobbering each other. A repeat
// registration for the same pair replaces the earlier value in call order.
//
// Lookup never fails. Resolution falls back from the active language to the
// host default language, and finally to the raw key itself, so a missing
// translation degrades to readable (if untranslated) text.
package i18n
