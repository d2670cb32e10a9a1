// Package profile loads printing rules from YAML files.
//
// A profile is the declarative form of a printing.Config: the same rules,
// written down once and shared between programs.
//
// # Schema Overview
//
//	version: "1"
//	cycle_marker: "<loop to %s>"
//	exclude:
//	  types: [uuid.UUID]        # a single name is accepted too
//	  members: Person.Age
//	types:
//	  - type: float64
//	    culture: de              # BCP 47 tag
//	  - type: int
//	    format: "%X"             # fmt verb applied to the value
//	members:
//	  - member: Person.Name
//	    trim: 5
//	  - member: Person.Height
//	    format: "%.1f m"
//
// # Name Resolution
//
// Type names are resolved against the types reachable from the printer's
// root type plus the built-in final types. A type can be written by its
// bare name ("Person"), its package-qualified name ("uuid.UUID") or its
// import-path-qualified name ("github.com/google/uuid.UUID"). Bare names
// shared by several types must be qualified.
//
// Members are written "Type.Field", where Type follows the same rules.
package profile
