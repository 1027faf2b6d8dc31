// Package dedupe collapses lead records that share an _id or an email
// into a single winning record chosen by recency, logging every
// field-level change each collapse causes.
package dedupe

import (
	"fmt"
	"time"

	"github.com/nads2259/deduplicate-leads/auditlog"
	"github.com/nads2259/deduplicate-leads/lead"
)

const (
	ReasonMissingFields = "Missing required fields (_id, email, or entryDate)"
	ReasonBadEntryDate  = "Invalid entryDate format"
)

// active is the current winner for some set of collision keys. Both
// indexes hold the same *active so a replace repoints them together.
type active struct {
	rec  lead.Record
	date time.Time
}

// Result is the outcome of one dedup run.
type Result struct {
	Records []lead.Record // winners, final-set order
	Merged  int           // records that displaced an earlier winner
	Dropped int           // records that lost the recency comparison
	Skipped int           // records rejected by validation
}

// Deduplicate folds records left to right, collapsing id/email
// collisions into the most recent record. Change and Skip entries go
// to sink as they happen; a sink write failure aborts the run.
//
// A colliding record replaces the current winner when its entryDate is
// newer or exactly equal: on a tie the later input wins. Strictly
// older records are discarded without a log entry.
func Deduplicate(records []lead.Record, sink *auditlog.Writer) (*Result, error) {
	byID := make(map[string]*active)
	byEmail := make(map[string]*active)
	final := newFinalSet()
	res := &Result{}

	for _, rec := range records {
		id, email, entry := rec.ID(), rec.Email(), rec.EntryDate()
		if id == "" || email == "" || entry == "" {
			if err := sink.Skip(rec.AppendJSON(nil), ReasonMissingFields); err != nil {
				return nil, fmt.Errorf("%w: audit log: %v", lead.ErrWrite, err)
			}
			res.Skipped++
			continue
		}

		date, err := lead.ParseEntryDate(entry)
		if err != nil {
			if err := sink.Skip(rec.AppendJSON(nil), ReasonBadEntryDate); err != nil {
				return nil, fmt.Errorf("%w: audit log: %v", lead.ErrWrite, err)
			}
			res.Skipped++
			continue
		}

		// The id lookup wins; email is only consulted when the id has
		// never been seen.
		target := byID[id]
		if target == nil {
			target = byEmail[email]
		}

		if target == nil {
			// first sighting, no log entry
			a := &active{rec: rec, date: date}
			byID[id] = a
			byEmail[email] = a
			final.put(id, a)
			continue
		}

		if date.Before(target.date) {
			res.Dropped++
			continue
		}

		changes := diff(target.rec, rec)
		if err := sink.Change(target.rec.AppendJSON(nil), rec.AppendJSON(nil), changes); err != nil {
			return nil, fmt.Errorf("%w: audit log: %v", lead.ErrWrite, err)
		}

		// The replacement absorbs the displaced record's keys so both
		// indexes keep resolving to the same winner.
		displaced := target.rec
		a := &active{rec: rec, date: date}
		byID[displaced.ID()] = a
		byID[id] = a
		byEmail[displaced.Email()] = a
		byEmail[email] = a

		if oldID := displaced.ID(); oldID != id {
			final.remove(oldID)
		}
		final.put(id, a)
		res.Merged++
	}

	res.Records = final.records()
	return res, nil
}

// finalSet is the ordered id → winner mapping behind Result.Records.
// A same-id replace keeps the id's original position; a cross-key
// replace removes the displaced id and appends the new one.
type finalSet struct {
	order []string
	recs  map[string]*active
}

func newFinalSet() *finalSet {
	return &finalSet{recs: make(map[string]*active)}
}

func (s *finalSet) put(id string, a *active) {
	if _, in := s.recs[id]; !in {
		s.order = append(s.order, id)
	}
	s.recs[id] = a
}

func (s *finalSet) remove(id string) {
	if _, in := s.recs[id]; !in {
		return
	}
	delete(s.recs, id)
	for i, k := range s.order {
		if k == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *finalSet) records() []lead.Record {
	out := make([]lead.Record, len(s.order))
	for i, id := range s.order {
		out[i] = s.recs[id].rec
	}
	return out
}
