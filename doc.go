/*
Package gedgo is a parser for the GEDCOM genealogical data exchange format.

GEDCOM files encode a tree of records (individuals, families, sources,
repositories, submitters, multimedia) using per-line nesting levels instead
of closing markers, and relate records to each other through symbolic
cross-reference ids. gedgo reconstructs that tree and resolves the
cross-references into a navigable in-memory model. Package structure is
as follows:

■ scanner: Package scanner splits GEDCOM text into line tokens and folds
CONT/CONC continuation lines into the values they extend.

■ builder: Package builder consumes the token stream, maintains the stack of
open records, and dispatches each tag to the field it populates.

■ xref: Package xref keeps the symbol table of declared cross-reference ids
and rewrites pointer-valued fields into typed links after the scan.

■ model: Package model defines the record types and the GedcomData container
returned to callers.

■ date: Package date interprets GEDCOM date values (modifiers, ranges,
calendar months).

■ ged: Package ged is the parse entry point, wiring the stages together. Its
nested command gedcli is a small CLI for inspecting parsed files.

The base package contains data types which are used throughout all the
other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 The gedgo authors

*/
package gedgo
