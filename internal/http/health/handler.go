package health

import (
	"encoding/json"
	"net/http"
)

// StatusOK is the only status the endpoint reports.
const StatusOK = "ok"

// Response is the payload for the health endpoint.
type Response struct {
	Status string `json:"status"`
}

// Handler is a plain HTTP handler for the liveness check. It consults no
// dependencies and always answers 200.
func Handler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(Response{Status: StatusOK})
}
