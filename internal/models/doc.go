// Package models defines domain entities and persistence interfaces for the game collection client.
//
// The package contains two categories of types:
//
// 1. Data Transfer Objects (DTOs): structs mirroring the catalog backend's JSON
//   - [Collection] : Named, user-owned grouping of game records
//   - [CollectionDetail] : Collection with its contained video games
//   - [VideoGame] : A game record inside a collection
//   - [GameSearchResult] : External (IGDB) game metadata from the search proxy
//
// 2. Persistent Entities: locally cached records backed by SQLite
//   - [SearchRecord] : Cached search responses keyed by query
//   - [ScanRecord] : Barcode scan history entries
//
// Persistent entities implement the Model interface providing ID access, timestamps
// and validation. The Repository[T] interface defines standard CRUD operations for
// local database access.
package models
