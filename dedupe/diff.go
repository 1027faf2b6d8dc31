package dedupe

import (
	"github.com/nads2259/deduplicate-leads/auditlog"
	"github.com/nads2259/deduplicate-leads/lead"
)

// missingValue stands in for a field one side does not have.
const missingValue = "N/A"

// diff compares the displaced record against its replacement over the
// union of both field sets: the displaced record's fields in document
// order, then fields only the replacement has. Only fields whose
// values differ are reported.
func diff(displaced, replacement lead.Record) []auditlog.FieldChange {
	var changes []auditlog.FieldChange

	visited := make(map[string]struct{})
	for _, k := range displaced.Fields() {
		visited[k] = struct{}{}
		if fieldsEqual(displaced, replacement, k) {
			continue
		}
		from, _ := displaced.FieldText(k)
		to, ok := replacement.FieldText(k)
		if !ok {
			to = missingValue
		}
		changes = append(changes, auditlog.FieldChange{Field: k, From: from, To: to})
	}

	for _, k := range replacement.Fields() {
		if _, in := visited[k]; in {
			continue
		}
		to, _ := replacement.FieldText(k)
		changes = append(changes, auditlog.FieldChange{Field: k, From: missingValue, To: to})
	}

	return changes
}

// fieldsEqual compares the compact JSON of the field on both sides, so
// representation differences (string "5" vs number 5) still count as a
// change.
func fieldsEqual(a, b lead.Record, key string) bool {
	av, aok := a.FieldRaw(key)
	bv, bok := b.FieldRaw(key)
	return aok == bok && av == bv
}
