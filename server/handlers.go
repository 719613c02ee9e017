// SPDX-License-Identifier: MIT
package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/katalvlaran/topsix/dataset"
	"github.com/katalvlaran/topsix/decision"
	"github.com/katalvlaran/topsix/pipeline"
	"github.com/katalvlaran/topsix/weights"
)

// maxUploadBytes bounds the in-memory part of a matrix upload.
const maxUploadBytes = 4 << 20

// handleWelcome reports the service name and its routes.
func (s *Server) handleWelcome(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "topsix",
		"routes": map[string]string{
			"POST /rank":     "rank a CSV decision matrix",
			"GET /dashboard": "interactive upload form",
		},
	})
}

// rankRequest is the decoded form of a POST /rank call.
type rankRequest struct {
	matrix  *decision.Matrix
	impacts decision.Impacts
	cfg     pipeline.Config
}

// handleRank accepts a multipart upload (file field "matrix" holding the
// CSV, plus "impacts", "weights", "method" and optional "v" form fields)
// and responds with the pipeline result as JSON.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRankRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	p, err := pipeline.New(req.cfg)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	res, err := p.Run(req.matrix, req.impacts)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func decodeRankRequest(r *http.Request) (*rankRequest, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, err
	}

	f, _, err := r.FormFile("matrix")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := dataset.ReadMatrixCSV(f)
	if err != nil {
		return nil, err
	}

	imp, err := decision.ParseImpactString(r.FormValue("impacts"))
	if err != nil {
		return nil, err
	}

	cfg := pipeline.Config{}
	if v := r.FormValue("method"); v != "" {
		if cfg.Method, err = pipeline.ParseMethod(v); err != nil {
			return nil, err
		}
	}
	if cfg.Weights, err = parseWeightsField(r.FormValue("weights")); err != nil {
		return nil, err
	}
	if v := r.FormValue("v"); v != "" {
		val, perr := strconv.ParseFloat(v, 64)
		if perr != nil {
			return nil, perr
		}
		cfg.V = pipeline.StrategyWeight(val)
	}

	return &rankRequest{matrix: m, impacts: imp, cfg: cfg}, nil
}

// parseWeightsField maps the "weights" form field onto a weight spec:
// a strategy name ("equal", "entropy") or a comma-separated fixed vector.
// An empty field means equal weights.
func parseWeightsField(field string) (weights.Spec, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return weights.Spec{Method: weights.Uniform}, nil
	}

	if method, err := weights.ParseMethod(field); err == nil {
		return weights.Spec{Method: method}, nil
	}

	parts := strings.Split(field, ",")
	fixed := make([]float64, len(parts))
	for i := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return weights.Spec{}, err
		}
		fixed[i] = v
	}

	return weights.Spec{Method: weights.Fixed, Fixed: fixed}, nil
}

// handleDashboard serves a minimal HTML page that posts to /rank.
func (s *Server) handleDashboard(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(dashboardHTML))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

const dashboardHTML = `<!DOCTYPE html>
<html>
<head><title>topsix dashboard</title></head>
<body>
<h1>topsix</h1>
<form action="/rank" method="post" enctype="multipart/form-data">
  <p>Decision matrix (CSV, labels in the first column):
     <input type="file" name="matrix" required></p>
  <p>Impacts (e.g. <code>+,-,+</code>):
     <input type="text" name="impacts" required></p>
  <p>Weights (<code>equal</code>, <code>entropy</code>, or comma-separated):
     <input type="text" name="weights" value="equal"></p>
  <p>Method:
     <select name="method">
       <option value="topsis">TOPSIS</option>
       <option value="vikor">VIKOR</option>
     </select></p>
  <p><button type="submit">Rank</button></p>
</form>
</body>
</html>
`
