// Package tag implements a registry of named, typed tags bound to
// caller-owned memory cells.
//
// # Tags
//
// A Tag binds a name and an integer alias to a typed cell in the caller's
// program (a pointer such as *int32, *string or *value.Buffer). The tag
// owns two value snapshots - current and previous - and detects changes
// when read: the first read always reports a change, later reads consult
// the tag's comparison strategy. Deadband and report-by-exception policies
// live entirely in that strategy; the engine itself is comparison-agnostic.
//
// The cell is never owned by the tag. It must stay valid for the tag's
// registered lifetime, and its type must match the tag's data type; a
// mismatched cell makes reads observe null and writes fail.
//
// # Registry
//
// Registry owns tag identity and lifetime. Tags are created through a
// Registry, looked up by name, alias, position or predicate, and removed
// with DeleteTag. Alias uniqueness is advisory: a colliding alias is
// silently reassigned to NextAlias rather than rejected; use AliasValid to
// check first if that matters to you.
//
// # Concurrency
//
// Registries and tags are not synchronized. All access must happen from a
// single goroutine or be serialized externally. Creating or deleting tags
// from inside Each, Find or an on-change callback is not allowed: it
// mutates the structure being traversed. Positional indices obtained
// before a create or delete are invalid afterwards.
package tag
