package routestojourneys

import (
	"encoding/json"
	"net/http"

	"github.com/theoremus-urban-solutions/routes-to-journeys/config"
)

type healthResponse struct {
	Status     string `json:"status"`
	ServiceURL string `json:"route_service_url"`
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := healthResponse{
		Status:     "ok",
		ServiceURL: config.Config.Service.BaseURL,
	}
	_ = json.NewEncoder(w).Encode(resp)
}
