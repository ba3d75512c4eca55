// Package links builds outbound links: maps, share targets and video embeds.
package links

import (
	"bhzdravlje-service/internal/pkg/constvars"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

const (
	googleMapsDirectionsURL = "https://www.google.com/maps/dir/?api=1&destination="
	googleMapsSearchURL     = "https://www.google.com/maps/search/?api=1&query="
	youTubeEmbedBaseURL     = "https://www.youtube-nocookie.com/embed/"
)

var youTubeIDPattern = regexp.MustCompile(constvars.RegexYouTubeVideoID)

// Directions prefers coordinates and falls back to an address search. It
// returns "" when there is nothing to point at.
func Directions(latitude, longitude *float64, address, city string) string {
	if latitude != nil && longitude != nil && validCoordinates(*latitude, *longitude) {
		destination := strconv.FormatFloat(*latitude, 'f', -1, 64) + "," + strconv.FormatFloat(*longitude, 'f', -1, 64)
		return googleMapsDirectionsURL + url.QueryEscape(destination)
	}

	parts := make([]string, 0, 3)
	for _, part := range []string{address, city} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	parts = append(parts, "Bosna i Hercegovina")
	return googleMapsSearchURL + url.QueryEscape(strings.Join(parts, ", "))
}

func validCoordinates(latitude, longitude float64) bool {
	if latitude == 0 && longitude == 0 {
		return false
	}
	return latitude >= -90 && latitude <= 90 && longitude >= -180 && longitude <= 180
}

type ShareLinks struct {
	Facebook string `json:"facebook"`
	WhatsApp string `json:"whatsapp"`
	Viber    string `json:"viber"`
	X        string `json:"x"`
	Email    string `json:"email"`
	Copy     string `json:"copy"`
}

// Share builds share targets for an absolute page URL. Copy is the plain URL
// for the clipboard button.
func Share(pageURL, title string) ShareLinks {
	text := strings.TrimSpace(title + " " + pageURL)
	return ShareLinks{
		Facebook: "https://www.facebook.com/sharer/sharer.php?u=" + url.QueryEscape(pageURL),
		WhatsApp: "https://wa.me/?text=" + url.QueryEscape(text),
		Viber:    "viber://forward?text=" + url.QueryEscape(text),
		X:        "https://x.com/intent/post?url=" + url.QueryEscape(pageURL) + "&text=" + url.QueryEscape(title),
		Email:    "mailto:?subject=" + url.PathEscape(title) + "&body=" + url.PathEscape(pageURL),
		Copy:     pageURL,
	}
}

// YouTubeEmbed converts watch, shorts, embed and youtu.be URLs into a
// privacy-enhanced embed URL. ok is false for anything else.
func YouTubeEmbed(raw string) (embedURL string, ok bool) {
	videoID := YouTubeVideoID(raw)
	if videoID == "" {
		return "", false
	}
	return youTubeEmbedBaseURL + videoID, true
}

func YouTubeVideoID(raw string) string {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return ""
	}

	host := strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")
	host = strings.TrimPrefix(host, "m.")
	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")

	var videoID string
	switch host {
	case "youtu.be":
		videoID = segments[0]
	case "youtube.com", "youtube-nocookie.com", "music.youtube.com":
		switch {
		case segments[0] == "watch":
			videoID = parsed.Query().Get("v")
		case len(segments) >= 2 && (segments[0] == "shorts" || segments[0] == "embed" || segments[0] == "live" || segments[0] == "v"):
			videoID = segments[1]
		}
	}

	if !youTubeIDPattern.MatchString(videoID) {
		return ""
	}
	return videoID
}
