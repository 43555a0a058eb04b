// Package modules contains all self-contained application features.
//
// Each subdirectory is a module that implements `module.Module`; modules that
// contribute a block to the home page also implement `module.Section`.
// Modules are listed in `internal/app/modules.go` and are loaded by the
// application at startup.
package modules
