// Package kernel contains the shared value objects of the domain model:
// identifiers, quantities, and confirmation codes. All types in this package
// are immutable, validated at construction, and safe to pass by value.
//
// The zero value of every kernel type is invalid; instances must be created
// through the provided constructor functions, and Validate() can be used to
// detect improperly constructed values when reconstructing state from
// persistence or external input.
package kernel
