package model

import "strings"

// SearchVideos returns the videos whose title contains query, ignoring case.
// An empty query matches everything. Input order is preserved.
func SearchVideos(videos []Video, query string) []Video {
	needle := strings.ToLower(query)
	result := make([]Video, 0, len(videos))
	for _, video := range videos {
		if strings.Contains(strings.ToLower(video.Title()), needle) {
			result = append(result, video)
		}
	}
	return result
}
