// Package dashboard holds the presentation logic shared by the HTML and
// terminal dashboards: display lookups, the mock player clock, and the local
// incident board with optimistic resolution.
package dashboard

import (
	"strings"

	"github.com/Princegupta101/instinctive/internal/models"
)

type Display struct {
	Icon     string
	Color    string // hex, used by the terminal dashboard
	CSSClass string // used by the HTML dashboard
}

var defaultDisplay = Display{Icon: "⚠", Color: "#9CA3AF", CSSClass: "type-default"}

var incidentDisplay = map[string]Display{
	models.IncidentGunThreat:          {Icon: "⚠", Color: "#F87171", CSSClass: "type-gun-threat"},
	models.IncidentUnauthorizedAccess: {Icon: "⛨", Color: "#FB923C", CSSClass: "type-unauthorized-access"},
	models.IncidentFaceRecognized:     {Icon: "◉", Color: "#60A5FA", CSSClass: "type-face-recognized"},
	models.IncidentSuspiciousActivity: {Icon: "∿", Color: "#4ADE80", CSSClass: "type-suspicious-activity"},
}

// DisplayFor returns the display attributes for an incident type. Types without
// an entry, including Motion Detection, use the neutral default.
func DisplayFor(incidentType string) Display {
	if d, ok := incidentDisplay[incidentType]; ok {
		return d
	}
	return defaultDisplay
}

const DefaultFeed = "/videos/main-player.svg"

var cameraFeeds = []struct {
	match string
	feed  string
}{
	{"shop floor", "/videos/shop-floor-feed.html"},
	{"vault", "/videos/vault-feed.html"},
	{"entrance", "/videos/entrance-feed.html"},
}

// FeedFor picks the mock video feed for a camera by name.
func FeedFor(cameraName string) string {
	name := strings.ToLower(cameraName)
	for _, f := range cameraFeeds {
		if strings.Contains(name, f.match) {
			return f.feed
		}
	}
	return DefaultFeed
}

// IsLiveFeed reports whether the feed is an embedded page rather than a still.
func IsLiveFeed(feed string) bool {
	return strings.HasSuffix(feed, ".html")
}
