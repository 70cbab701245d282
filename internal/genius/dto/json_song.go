package dto

// JSONArtist represents an artist in Genius API responses.
type JSONArtist struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// JSONSong represents a song in Genius API responses.
type JSONSong struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	URL           string     `json:"url"`
	LyricsState   string     `json:"lyrics_state"`
	Instrumental  bool       `json:"instrumental"`
	PrimaryArtist JSONArtist `json:"primary_artist"`
}

// HasLyricsPage reports whether the song page is expected to carry lyrics.
func (s *JSONSong) HasLyricsPage() bool {
	return s.LyricsState == "complete" && !s.Instrumental
}

// JSONArtistSongs is the body of GET /artists/:id/songs.
type JSONArtistSongs struct {
	Response struct {
		Songs    []JSONSong `json:"songs"`
		NextPage *int       `json:"next_page"`
	} `json:"response"`
}
