package tmdb

// PosterURL returns the full-size image URL for posterPath, or "" when the
// record has no poster.
func (c *Client) PosterURL(posterPath string) string {
	if posterPath == "" {
		return ""
	}
	return c.imageBaseURL + posterPath
}

// ProfileURL returns the thumbnail URL for a cast member's profile path.
func (c *Client) ProfileURL(profilePath string) string {
	if profilePath == "" {
		return ""
	}
	return c.profileBaseURL + profilePath
}
