package lead

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEntryDateRFC3339(t *testing.T) {
	got, err := ParseEntryDate("2014-05-07T17:30:20+00:00")
	assert.Nil(t, err)
	assert.Equal(t, time.Date(2014, 5, 7, 17, 30, 20, 0, time.UTC), got.UTC())
}

func TestParseEntryDateWithOffset(t *testing.T) {
	got, err := ParseEntryDate("2014-05-07T17:30:20-05:00")
	assert.Nil(t, err)
	assert.Equal(t, time.Date(2014, 5, 7, 22, 30, 20, 0, time.UTC), got.UTC())
}

func TestParseEntryDateNoOffset(t *testing.T) {
	got, err := ParseEntryDate("2014-05-07T17:30:20")
	assert.Nil(t, err)
	assert.Equal(t, 2014, got.Year())
}

func TestParseEntryDateDateOnly(t *testing.T) {
	got, err := ParseEntryDate("2014-05-07")
	assert.Nil(t, err)
	assert.Equal(t, time.May, got.Month())
}

func TestParseEntryDateInvalid(t *testing.T) {
	_, err := ParseEntryDate("not-a-date")
	assert.NotNil(t, err)
}

func TestParseEntryDateEmpty(t *testing.T) {
	_, err := ParseEntryDate("")
	assert.NotNil(t, err)
}
