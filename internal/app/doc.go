// Package app wires the host together: logger, configuration document,
// the registries behind the module API, the backend collaborators, and the
// bundled modules.
//
// Construction order matters and is the host's startup contract: the
// configuration document is loaded before any module runs, the registries
// are created once and live for the process, and every module receives the
// same facade instance.
package app
