// Package schema is the registry of ACF field types: which attributes each
// type requires, which it accepts, and the value domain every attribute must
// stay inside. The validator resolves field types here; callers can register
// additional types (custom ACF field plugins) on their own registry instance.
package schema
