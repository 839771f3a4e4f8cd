// Package validate checks ACF descriptors against the schema registry. The
// validator is fail-slow: it walks the whole descriptor tree and returns every
// finding in document order instead of stopping at the first defect. All
// checks are pure functions of their input; nothing is cached between calls.
package validate
