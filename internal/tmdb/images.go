package tmdb

// ImageBaseURL is the provider's image CDN.
const ImageBaseURL = "https://image.tmdb.org/t/p"

// Image sizes used by the views.
// Size can be: w92, w154, w185, w342, w500, w780, w1280, original
const (
	PosterSize   = "w342"
	BackdropSize = "w1280"
	ProfileSize  = "w185"
)

// ImageURL returns the full image URL for a provider path, or "" when path is empty.
func ImageURL(path, size string) string {
	if path == "" {
		return ""
	}
	return ImageBaseURL + "/" + size + path
}

// PosterURL returns the poster URL at the default poster size.
func PosterURL(path string) string { return ImageURL(path, PosterSize) }

// BackdropURL returns the backdrop URL at the default backdrop size.
func BackdropURL(path string) string { return ImageURL(path, BackdropSize) }

// ProfileURL returns a cast profile URL.
func ProfileURL(path string) string { return ImageURL(path, ProfileSize) }
