// Package engine embeds the go.starlark.net interpreter behind Eval and Exec.
//
// A Starlark instance owns its globals, predeclared modules, print and load
// hooks and dialect Options. Every call runs on a fresh starlark.Thread and
// every failure is returned as a bridged exception from package bridge.
//
// Calls on one instance are serialized. Scripts that should run concurrently
// need one instance each.
package engine
