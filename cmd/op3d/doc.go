// Command op3d manages a library of vendor-neutral 3D printing profiles:
// listing and searching the catalog, validating documents, converting them
// to slicer-native formats, importing PrusaSlicer exports, and serving the
// catalog over HTTP.
package main
