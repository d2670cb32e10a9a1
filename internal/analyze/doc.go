// Package analyze describes Go types at runtime for the printer.
//
// It uses reflect to enumerate the readable members of struct types
// and to identify them independently of their values.
//
// Key types:
//   - TypeID: package import path + type name
//   - MemberID: owner struct type + field name, the key for member rules
//   - FieldInfo: describes field name, declared type, and index path
//   - TypeGraph: named types reachable from a root type, looked up by name
package analyze
