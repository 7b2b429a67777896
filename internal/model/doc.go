package model

// Package model defines domain data structures used across the app: video
// records as served by the remote API, named playlists, the page counter and
// notice kinds. Structures carry JSON tags matching the API and the playlists
// file.
