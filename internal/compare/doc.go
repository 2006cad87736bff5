// Package compare diffs two profile documents setting by setting.
//
// Documents are flattened to dot-notation keys ("nozzle.recommended",
// "speed.outer_wall") so nested structure differences show up as individual
// settings rather than opaque blobs.
package compare
