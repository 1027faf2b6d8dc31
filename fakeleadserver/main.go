package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	host := flag.String("h", "", "the host to listen on")
	port := flag.String("p", "8080", "the port to listen on")
	count := flag.Int("n", 50, "number of leads to generate")
	dup := flag.Float64("dup", 0.3, "fraction of leads colliding with an earlier lead")
	flag.Parse()

	addr := fmt.Sprintf("%s:%s", *host, *port)
	log.Println("Listening at", addr)

	s := newServer()
	s.populateLeads(*count, *dup)
	s.setupRoutes()

	return http.ListenAndServe(addr, s.router)
}
