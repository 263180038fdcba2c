// Package kas implements KAS, a write-once, read-many key–array store.
//
// A KAS file maps short byte-string keys to typed, homogeneous numeric
// arrays in a single fixed-layout, self-describing container. The
// descriptor table is sorted by key so readers can binary-search it, and
// array data is 8-byte aligned so a reader may memory-map the file and
// hand back array views with no copy and no per-value decode.
//
// Write mode buffers all items in memory and emits the file in one pass
// at Close. Read mode ingests the whole file at Open (by mapping or by
// copy) and answers Get from memory afterward. A store is not safe for
// concurrent use; distinct stores over distinct files are independent.
package kas
