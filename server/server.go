package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/metronav/metronav/planner"
	"github.com/metronav/metronav/transit"
)

var (
	routeRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "metronav_route_requests_total",
		Help: "Route planning requests by outcome.",
	}, []string{"outcome"})

	routeDuration = prometheus.NewSummary(prometheus.SummaryOpts{
		Name: "metronav_route_duration_seconds",
		Help: "Latency of route planning requests.",
	})
)

func init() {
	prometheus.MustRegister(routeRequests, routeDuration)
}

// Server serves one immutable transit network. transferCost is the
// default penalty applied when a request does not override it.
type Server struct {
	graph        *transit.Graph
	transferCost int64
	router       *mux.Router
}

// New builds a Server for g with the given default transfer penalty.
func New(g *transit.Graph, transferCost int64) *Server {
	s := &Server{
		graph:        g,
		transferCost: transferCost,
		router:       mux.NewRouter(),
	}
	s.routes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.HandleFunc("/api/stations", s.handleStations).Methods("GET")
	s.router.HandleFunc("/api/stations/{name}", s.handleStation).Methods("GET")
	s.router.HandleFunc("/api/route", s.handleRoute).Methods("GET")
	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")
	s.router.Handle("/metrics", promhttp.Handler()).Methods("GET")
}

type edgeView struct {
	To   string `json:"to"`
	Cost int64  `json:"cost"`
	Line string `json:"line"`
}

type stationView struct {
	Name  string     `json:"name"`
	Edges []edgeView `json:"edges"`
}

type hopView struct {
	Station string `json:"station"`
	Line    string `json:"line,omitempty"`
}

type routeView struct {
	Reachable bool      `json:"reachable"`
	Cost      int64     `json:"cost"`
	Transfers int       `json:"transfers"`
	Path      []hopView `json:"path"`
}

func (s *Server) handleStations(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]interface{}{
		"stations": s.graph.Stations(),
	})
}

func (s *Server) handleStation(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if !s.graph.HasStation(name) {
		http.Error(w, "station not found", http.StatusNotFound)
		return
	}

	view := stationView{Name: name, Edges: []edgeView{}}
	for _, e := range s.graph.Neighbors(name) {
		view.Edges = append(view.Edges, edgeView{To: e.To, Cost: e.Cost, Line: e.Line})
	}
	writeJSON(w, view)
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	reqStart := time.Now()
	defer func() { routeDuration.Observe(time.Since(reqStart).Seconds()) }()

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	fare := s.transferCost
	if raw := r.URL.Query().Get("transfer_cost"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			routeRequests.WithLabelValues("bad_request").Inc()
			http.Error(w, "transfer_cost must be a non-negative integer", http.StatusBadRequest)
			return
		}
		fare = parsed
	}

	route, err := planner.Plan(s.graph, from, to, fare)
	if err != nil {
		routeRequests.WithLabelValues("bad_request").Inc()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	outcome := "found"
	if !route.Reachable {
		outcome = "not_found"
	}
	routeRequests.WithLabelValues(outcome).Inc()

	view := routeView{
		Reachable: route.Reachable,
		Cost:      route.Cost,
		Transfers: route.Transfers(),
		Path:      []hopView{},
	}
	for _, h := range route.Hops {
		view.Path = append(view.Path, hopView{Station: h.Station, Line: h.Line})
	}
	writeJSON(w, view)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
