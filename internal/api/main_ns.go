package api

import "net/http"

type statusResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleMainGet(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Status: "Got new data"})
}

func (s *Server) handleMainPost(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Status: "Posted new data"})
}
