// Package songs holds the song record shared by the album and artist
// services.
package songs

type Song struct {
	ID       int64  `json:"id,omitempty"`       // Unique identifier for the song
	Title    string `json:"title,omitempty"`    // Song title
	Duration int    `json:"duration,omitempty"` // Duration in seconds
	AlbumID  int64  `json:"album_id,omitempty"` // Album the song belongs to
	ArtistID int64  `json:"artist_id,omitempty"`
}
