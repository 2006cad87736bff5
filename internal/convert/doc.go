// Package convert maps neutral profile documents onto slicer configuration
// formats.
//
// Conversion is a pure function from one document and a target format to a
// text blob: an OrcaSlicer/Bambu Studio preset JSON, a PrusaSlicer config
// bundle INI section, a Cura 5.x sectioned cfg, or a direct YAML/JSON dump of
// the neutral model. Every optional source field has an inline fallback, so
// conversion never fails for a structurally valid document, and identical
// input always produces byte-identical output.
package convert
