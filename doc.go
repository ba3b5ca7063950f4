// Package typemeta provides type metadata descriptors with hierarchy
// enumeration and inheritance-aware field resolution. Descriptors can be
// supplied externally or derived from Go struct types, in which case fields
// are bound to runtime accessors that can break visibility on request.
package typemeta
