// Package importer converts PrusaSlicer .ini profile exports into neutral
// profile documents.
//
// A single export can carry [printer], [filament], and [print] sections;
// each recognized section becomes one document. Keys without a neutral
// equivalent are preserved verbatim in the x_prusaslicer extension bucket so
// nothing is lost on import.
package importer
