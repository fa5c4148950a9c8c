package nova

// Song is a single entry of the station's recently played list. Time holds
// the station-local "HH:MM" broadcast time until it is localized.
type Song struct {
	Artist string `json:"artist"`
	Title  string `json:"title"`
	Time   string `json:"time"`
}

// Song fields as they are tracked while a record is being extracted.
const (
	fieldArtist = "artist"
	fieldTitle  = "title"
	fieldTime   = "time"
)

// isCompleteSong reports whether a partial record has a non-empty artist,
// title and time.
func isCompleteSong(raw map[string]string) bool {
	for _, field := range []string{fieldArtist, fieldTitle, fieldTime} {
		if raw[field] == "" {
			return false
		}
	}
	return true
}

// songFromRecord builds a Song from a complete partial record.
func songFromRecord(raw map[string]string) Song {
	return Song{
		Artist: raw[fieldArtist],
		Title:  raw[fieldTitle],
		Time:   raw[fieldTime],
	}
}
