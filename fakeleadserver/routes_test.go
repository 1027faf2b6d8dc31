package main

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLeadsEnvelope(t *testing.T) {
	s := newServer()
	s.populateLeads(20, 0.5)
	s.setupRoutes()

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest("GET", "/leads", nil))
	require.Equal(t, 200, w.Code)

	var doc leadsDoc
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Len(t, doc.Leads, 20)
	for _, l := range doc.Leads {
		assert.NotEmpty(t, l.ID)
		assert.NotEmpty(t, l.Email)
		assert.NotEmpty(t, l.EntryDate)
	}
}

func TestPopulateLeadsSeedsCollisions(t *testing.T) {
	s := newServer()
	s.populateLeads(200, 0.5)

	ids := make(map[string]int)
	emails := make(map[string]int)
	for _, l := range s.leads {
		ids[l.ID]++
		emails[l.Email]++
	}
	assert.True(t, len(ids) < 200 || len(emails) < 200, "expected at least one seeded collision")
}

func TestGetLeadUnknownId(t *testing.T) {
	s := newServer()
	s.populateLeads(1, 0)
	s.setupRoutes()

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest("GET", "/leads/definitely-not-an-id", nil))
	assert.Equal(t, 404, w.Code)
}

func TestOpenAPIDocServes(t *testing.T) {
	s := newServer()
	s.setupRoutes()

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest("GET", "/openapi.json", nil))
	require.Equal(t, 200, w.Code)

	var doc map[string]any
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.0", doc["openapi"])
}
