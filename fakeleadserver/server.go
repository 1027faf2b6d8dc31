package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type server struct {
	router *mux.Router
	leads  []lead
}

func newServer() server {
	return server{
		router: mux.NewRouter(),
		leads:  make([]lead, 0),
	}
}

type lead struct {
	ID        string `json:"_id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	EntryDate string `json:"entryDate"`
}

type leadsDoc struct {
	Leads []lead `json:"leads"`
}

var (
	firstNames = []string{"John", "Jane", "Mae", "Ed", "Bill", "Frank", "Carol", "Tana"}
	lastNames  = []string{"Smith", "Jobs", "Johnson", "West", "Gad", "George"}
	streets    = []string{"Dean St", "First St", "Pawnee St", "Course Ave", "Arcade Ave"}
)

// populateLeads seeds n leads. Roughly dup of them reuse an earlier
// lead's _id or email with a shifted entryDate, so a dedup run over
// the served document has real collisions to collapse.
func (s *server) populateLeads(n int, dup float64) {
	base := time.Date(2014, 5, 7, 17, 30, 20, 0, time.UTC)

	for i := 0; i < n; i++ {
		l := lead{
			ID:        uuid.NewString(),
			FirstName: firstNames[rand.Intn(len(firstNames))],
			LastName:  lastNames[rand.Intn(len(lastNames))],
			Address:   fmt.Sprintf("%d %s", 100+rand.Intn(900), streets[rand.Intn(len(streets))]),
			EntryDate: base.Add(time.Duration(rand.Intn(86400)) * time.Second).Format(time.RFC3339),
		}
		l.Email = fmt.Sprintf("%s%d@bar.com", l.FirstName, rand.Intn(100))

		if i > 0 && rand.Float64() < dup {
			prev := s.leads[rand.Intn(len(s.leads))]
			if rand.Intn(2) == 0 {
				l.ID = prev.ID
			} else {
				l.Email = prev.Email
			}
		}

		s.leads = append(s.leads, l)
		leadsGenerated.Inc()
	}
}
