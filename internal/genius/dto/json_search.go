package dto

import "strings"

// JSONSearch is the body of GET /search.
type JSONSearch struct {
	Response struct {
		Hits []JSONHit `json:"hits"`
	} `json:"response"`
}

// JSONHit is one search hit. Only song hits are returned by /search.
type JSONHit struct {
	Type   string   `json:"type"`
	Result JSONSong `json:"result"`
}

// PrimaryArtist returns the artist the search is most likely about.
//
// The primary artist of the first hit whose artist name equals name
// (case-insensitively) wins. Otherwise the first hit's primary artist is
// used. The second return value is false when there are no hits.
func (s *JSONSearch) PrimaryArtist(name string) (JSONArtist, bool) {
	hits := s.Response.Hits
	if len(hits) == 0 {
		return JSONArtist{}, false
	}

	for _, hit := range hits {
		if strings.EqualFold(strings.TrimSpace(hit.Result.PrimaryArtist.Name), strings.TrimSpace(name)) {
			return hit.Result.PrimaryArtist, true
		}
	}

	return hits[0].Result.PrimaryArtist, true
}
