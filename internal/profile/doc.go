// Package profile defines the vendor-neutral OpenPrint3D profile model and the
// loader that reads profile documents from a library directory.
//
// Three profile kinds exist: printer, filament, and process. Each is an
// immutable snapshot parsed from a JSON document; nothing in this repository
// writes a profile back after load. Documents carry opaque vendor extension
// buckets (x_prusaslicer, x_cura, x_orca, x_bambu) that are preserved without
// interpretation.
package profile
