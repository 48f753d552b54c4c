package film

import (
	"net/url"
	"strings"
)

// ExtractYouTubeID returns the video id of a youtu.be, watch, embed or
// shorts URL.
func ExtractYouTubeID(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", false
	}
	host := strings.ToLower(u.Hostname())

	var id string
	switch {
	case strings.Contains(host, "youtu.be"):
		id = firstSegment(u.Path)
	case strings.Contains(host, "youtube.com"):
		switch {
		case u.Path == "/watch":
			id = u.Query().Get("v")
		case strings.HasPrefix(u.Path, "/embed/"):
			id = firstSegment(strings.TrimPrefix(u.Path, "/embed/"))
		case strings.HasPrefix(u.Path, "/shorts/"):
			id = firstSegment(strings.TrimPrefix(u.Path, "/shorts/"))
		}
	}
	return id, id != ""
}

func firstSegment(p string) string {
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			return s
		}
	}
	return ""
}

// WatchURL is the canonical watch page for id, which mpv's ytdl hook can
// resolve.
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + url.QueryEscape(id)
}

// EmbedURL is the iframe-embeddable URL for id.
func EmbedURL(id string) string {
	if id == "" {
		return ""
	}
	return "https://www.youtube.com/embed/" + url.PathEscape(id)
}

// Normalize returns the canonical watch URL for any recognised YouTube URL,
// and raw unchanged otherwise.
func Normalize(raw string) string {
	if id, ok := ExtractYouTubeID(raw); ok {
		return WatchURL(id)
	}
	return raw
}
