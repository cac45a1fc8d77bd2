// Package barista holds the barista lookup entity referenced by recipes.
package barista

// SocialLink is one outbound profile link for a barista
type SocialLink struct {
	Platform string
	URL      string
}

// Barista is the author reference resolved at the response boundary
type Barista struct {
	ID          int64
	Name        string
	Affiliation string
	SocialLinks []SocialLink
}
