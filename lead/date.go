package lead

import "time"

// entryDate is usually RFC 3339 with an offset, e.g.
// "2014-05-07T17:30:20+00:00". The fallbacks cover feeds that drop the
// offset or the time component.
var entryDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseEntryDate parses an entryDate field value. The returned error is
// the one from the last layout tried.
func ParseEntryDate(s string) (time.Time, error) {
	var err error
	for _, layout := range entryDateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
