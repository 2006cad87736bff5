// Package textutil provides small text helpers shared by the converters and
// the importer: filename sanitization for profile ids and newline escaping
// for INI-style values.
package textutil
