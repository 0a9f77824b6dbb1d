package previewserver

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Server is the HTTP front-end for the preview hub: one route to open
// a viewer WebSocket for a run, routed with gorilla/mux as the teacher
// does for its own HTTP surface.
type Server struct {
	hub     *Hub
	handler *Handler
	router  *mux.Router
}

// NewServer builds a Server around hub with its routes registered.
func NewServer(hub *Hub) *Server {
	s := &Server{hub: hub, handler: NewHandler(hub)}
	s.router = mux.NewRouter()
	s.router.HandleFunc("/runs/{runID}/watch", s.handleWatch)
	return s
}

// Hub returns the server's update hub, so the PCD driver can publish
// captures as they are produced.
func (s *Server) Hub() *Hub { return s.hub }

func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	runID := mux.Vars(r)["runID"]
	s.handler.ServeRun(w, r, runID)
}

// ServeHTTP lets Server be used directly as an http.Handler (e.g. with
// http.ListenAndServe).
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
