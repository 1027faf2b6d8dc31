package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/negroni"
)

var (
	requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fakeleadserver_requests_total",
		Help: "Requests served, by route.",
	}, []string{"route"})

	leadsGenerated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "fakeleadserver_leads_generated_total",
		Help: "Leads generated since startup.",
	})
)

func init() {
	prometheus.MustRegister(requestsTotal, leadsGenerated)
}

func (s *server) setupRoutes() {
	s.router.HandleFunc("/", s.handleRoot())
	s.router.HandleFunc("/leads", s.handleGetLeads()).Methods("GET")
	s.router.HandleFunc("/leads", s.handleCreateLead()).Methods("POST")
	s.router.HandleFunc("/leads/{id}", s.handleGetLead()).Methods("GET")
	s.router.HandleFunc("/openapi.json", s.handleOpenAPI()).Methods("GET")
	s.router.Handle("/metrics", promhttp.Handler())
	s.router.Use(logMiddleware)
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := negroni.NewResponseWriter(w)
		next.ServeHTTP(ww, r)
		log.Println(r.Method, r.RequestURI, r.Proto, "->", ww.Status(), http.StatusText(ww.Status()))
	})
}

func (*server) handleRoot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "fake lead server; try /leads")
	}
}

func (s *server) handleGetLeads() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestsTotal.WithLabelValues("/leads").Inc()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(leadsDoc{Leads: s.leads})
	}
}

func (s *server) handleGetLead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestsTotal.WithLabelValues("/leads/{id}").Inc()
		leadID := mux.Vars(r)["id"]

		for _, l := range s.leads {
			if l.ID == leadID {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(l)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	}
}

func (s *server) handleCreateLead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestsTotal.WithLabelValues("/leads").Inc()

		var newLead lead
		reqBody, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if err := json.Unmarshal(reqBody, &newLead); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		s.leads = append(s.leads, newLead)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(newLead)
	}
}

func (s *server) handleOpenAPI() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(apiDoc())
	}
}
