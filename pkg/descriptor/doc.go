// Package descriptor exposes the data model for ACF authoring artifacts
// (field groups, fields, block manifests) plus the public contracts for the
// loader and parser stages. Implementations live under internal/descriptor to
// keep decoding dependencies hidden from consumers.
package descriptor
