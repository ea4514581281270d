// Package instgen supplies the "instance source" external collaborator of
// spec.md §6: producers of core.Instance values for cmd/ksline to feed into
// package simulate. Two concrete sources are provided behind one interface —
// RandomInstanceSource (uniform request positions, grounded on
// src/instance_generator.rs) and FileInstanceSource (JSON-loaded
// instances) — mirroring how src/cli.rs's variants evolved from a single
// generator to a choice of sources.
package instgen
