// Package catalog maintains a searchable SQLite index over the profile
// library plus user favorites.
//
// The index is a cache: the JSON files in the library remain the source of
// truth, and `op3d index` rebuilds the database from them. Favorites are the
// only state owned by the catalog itself and survive rebuilds.
package catalog
