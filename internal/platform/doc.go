package platform

// Package platform contains OS/platform integration and external tooling glue:
// data-file helpers, revealing files in the system file manager, and YouTube
// playlist import via github.com/ytget/ytdlp.
