// Package entity models individual filesystem objects as in-memory records.
//
// A File mirrors one regular file's metadata at the moment it was built;
// a Dir aggregates recursive and single-level statistics for one directory.
// How much metadata a File carries is controlled by a Tier:
//   - TierFast: path-derived fields only, no stat calls
//   - TierRegular: adds size and the three timestamps
//   - TierSlow: adds a full-content hash
//
// Records are snapshots. Disk-mutating operations (Rename, Delete, CopyTo)
// touch the disk first and mirror the result into the record only on success,
// so a record never describes a path state that disk does not.
package entity
