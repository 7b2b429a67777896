// Package playlist holds the in-memory playlist store and its JSON file
// persistence. The file is a single object mapping playlist names to arrays of
// video records; names keep their creation order.
package playlist
