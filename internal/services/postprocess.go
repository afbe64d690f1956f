package services

import (
	"log"
	"regexp"
	"strings"
	"time"

	"alfredoptarigan/cv-parser/internal/models"
)

var dateFormats = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"January 2006",
	"2006",
}

// parseFlexibleDate tries the date formats résumés commonly use. Unparseable
// values fall back to the current time, matching lenient shaping over a hard
// failure for a single bad date.
func parseFlexibleDate(dateStr string) *time.Time {
	trimmed := strings.TrimSpace(dateStr)
	if trimmed == "" {
		return nil
	}

	for _, format := range dateFormats {
		if t, err := time.Parse(format, trimmed); err == nil {
			return &t
		}
	}

	log.Printf("⚠️  Could not parse date %q, using current date\n", dateStr)
	now := time.Now()
	return &now
}

// processDateAndOngoing maps "present"-style end dates to a nil date plus an
// ongoing flag.
func processDateAndOngoing(dateStr string) (*time.Time, bool) {
	lower := strings.ToLower(strings.TrimSpace(dateStr))
	if lower == "" || lower == "present" || lower == "current" || lower == "ongoing" {
		return nil, true
	}
	return parseFlexibleDate(dateStr), false
}

var (
	bulletRe   = regexp.MustCompile(`(?m)^\s*[-•*]\s+(.+)$`)
	listItemRe = regexp.MustCompile(`(<li>.*?</li>\n?)+`)
	boldRe     = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe   = regexp.MustCompile(`\*(.*?)\*`)
)

// convertToHTML turns plain text summaries/descriptions into simple HTML:
// line breaks, bullet lists, bold and italic markers.
func convertToHTML(text string) string {
	if text == "" {
		return ""
	}

	text = bulletRe.ReplaceAllString(text, "<li>$1</li>")
	text = listItemRe.ReplaceAllString(text, "<ul>$0</ul>")
	text = boldRe.ReplaceAllString(text, "<strong>$1</strong>")
	text = italicRe.ReplaceAllString(text, "<em>$1</em>")
	text = strings.ReplaceAll(text, "\n", "<br>")

	return text
}

var socialIcons = map[string]string{
	"github.com":        "github",
	"linkedin.com":      "linkedin",
	"facebook.com":      "facebook",
	"twitter.com":       "twitter",
	"instagram.com":     "instagram",
	"youtube.com":       "youtube",
	"medium.com":        "medium",
	"dev.to":            "dev",
	"stackoverflow.com": "stackoverflow",
	"behance.net":       "behance",
	"dribbble.com":      "dribbble",
	"gitlab.com":        "gitlab",
	"bitbucket.org":     "bitbucket",
}

var protocolRe = regexp.MustCompile(`^https?://(www\.)?`)

// socialIcon maps a profile URL to a known platform icon name. Unknown
// domains return an empty icon and keep the link.
func socialIcon(link string) string {
	if link == "" {
		return ""
	}

	cleanLink := protocolRe.ReplaceAllString(strings.ToLower(link), "")

	for domain, icon := range socialIcons {
		if strings.Contains(cleanLink, domain) {
			return icon
		}
	}

	return ""
}

func shapeSocials(raw []rawSocial) []models.Social {
	socials := make([]models.Social, 0, len(raw))

	for _, s := range raw {
		link := s.Link
		if link == "" {
			// Some model replies stuff the URL into the icon field
			link = s.Icon
		}
		if link == "" {
			continue
		}

		socials = append(socials, models.Social{
			Icon: socialIcon(link),
			Link: link,
		})
	}

	return socials
}
