/*
Package model defines the GEDCOM data model: the record types built from a
parsed file and the GedcomData container holding them in file order.

Records are plain data. All exported fields carry JSON tags, so the finished
model serializes with encoding/json without an extra adapter layer. Pointer
relations between records are Link values: a Link starts out as a raw
cross-reference id and is stamped with the target's record kind once the
resolver (package xref) has seen the whole file.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 The gedgo authors

*/
package model
