package utils

import "strings"

// BookingLinks builds outbound search links for an activity. The query keeps
// the original "%20" space encoding expected by the frontend.
func BookingLinks(placeName, city string) map[string]string {
	searchQuery := strings.ReplaceAll(placeName+" "+city, " ", "%20")

	return map[string]string{
		"viator":       "https://www.viator.com/searchResults/all?text=" + searchQuery,
		"getyourguide": "https://www.getyourguide.com/s/?q=" + searchQuery,
		"expedia":      "https://www.expedia.com/things-to-do/search?location=" + searchQuery,
		"tripadvisor":  "https://www.tripadvisor.com/Search?q=" + searchQuery,
	}
}
