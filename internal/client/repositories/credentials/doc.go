// Package credentials persists the session token and the cached user record
// between runs of the client.
//
// Three backends implement Repository:
//   - SQLiteRepository: a local database file (default), schema managed by
//     goose migrations from the migrations package.
//   - ValkeyRepository: keys under a prefix in a valkey server.
//   - MemoryRepository: process-lifetime only.
//
// Open selects a backend from configuration. All backend failures surface as
// *StorageError, which matches ErrStorage.
package credentials
