// Package textfmt parses and serializes the line-oriented textual
// configuration and action formats described in the reconfiguration
// core's external interface. It works exclusively against io.Reader,
// io.Writer and string — it never touches the filesystem, leaving file
// I/O to external collaborators, per the core's stated scope.
package textfmt
