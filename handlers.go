package routestojourneys

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/theoremus-urban-solutions/routes-to-journeys/category"
	"github.com/theoremus-urban-solutions/routes-to-journeys/config"
	"github.com/theoremus-urban-solutions/routes-to-journeys/directory"
	"github.com/theoremus-urban-solutions/routes-to-journeys/formatter"
	"github.com/theoremus-urban-solutions/routes-to-journeys/normalizer"
	"github.com/theoremus-urban-solutions/routes-to-journeys/notify"
	"github.com/theoremus-urban-solutions/routes-to-journeys/optimizer"
	"github.com/theoremus-urban-solutions/routes-to-journeys/search"
	"github.com/theoremus-urban-solutions/routes-to-journeys/store"
)

// locationDirectory is shared across requests so a remote station list is
// fetched at most once per process.
var locationDirectory directory.Directory

func initDirectory() {
	if config.Config.Directory.Source == "remote" && config.Config.Directory.URL != "" {
		locationDirectory = directory.NewRemote(config.Config.Directory.URL)
		return
	}
	locationDirectory = directory.Static()
}

func handleSearchJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	params := map[string]string{}
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}

	q, err := parseAndValidateSearch(params)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write(buildErrorPayload(err.Error()))
		return
	}

	// One store and one orchestration per request; the facade is stateless
	// between searches.
	client := optimizer.NewClient(config.Config.Service.BaseURL,
		time.Duration(config.Config.Service.TimeoutMS)*time.Millisecond)
	st := store.NewResultStore()
	orch := search.NewOrchestrator(client, st, notify.LogNotifier{})

	if _, err := orch.Submit(r.Context(), q.request); err != nil {
		var verr *search.ValidationError
		if errors.As(err, &verr) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write(buildErrorPayload(verr.Msg))
			return
		}
		var serr *normalizer.SchemaError
		if errors.As(err, &serr) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write(buildErrorPayload("Could not read the routes the service returned."))
			return
		}
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write(buildErrorPayload(err.Error()))
		return
	}

	if q.hasMode {
		st.SetDisplayMode(q.mode)
	}
	if q.category != "" {
		st.SetCategoryFilter(category.Classify(q.category))
	}

	view := formatter.BuildView(st, locationDirectory)
	_, _ = w.Write(formatter.NewResponseBuilder().BuildJSON(view))
}

func handleStationsJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	query := r.URL.Query().Get("query")
	stations := locationDirectory.Search(query)
	if stations == nil {
		stations = []directory.Station{}
	}
	b, _ := json.Marshal(stations)
	_, _ = w.Write(b)
}
