package web

import (
	"bytes"
	"net/http"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/skanda-m/estatedesk/internal/domain"
)

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := s.listings.Stats(r.Context())
	if err != nil {
		s.logger.Error("dashboard stats failed", "error", err)
		http.Error(w, "failed to load dashboard", http.StatusInternalServerError)
		return
	}

	sess := sessionFrom(r)
	data := map[string]any{
		"Session":   sess,
		"ActiveNav": "dashboard",
		"Stats":     stats,
		"Notice":    r.URL.Query().Get("notice"),
	}
	if err := s.renderPage(w, data,
		"templates/base.html", "templates/pages/dashboard.html", "templates/partials/sidebar.html",
	); err != nil {
		s.logger.Error("render dashboard failed", "error", err)
	}
}

var chartStatuses = []domain.LeadStatus{domain.LeadHot, domain.LeadWarm, domain.LeadCold}

// handleLeadStatusChart renders lead counts per triage status as a PNG bar
// chart for the dashboard.
func (s *Server) handleLeadStatusChart(w http.ResponseWriter, r *http.Request) {
	stats, err := s.listings.Stats(r.Context())
	if err != nil {
		s.logger.Error("lead chart stats failed", "error", err)
		http.Error(w, "failed to load chart", http.StatusInternalServerError)
		return
	}

	bars := make([]chart.Value, 0, len(chartStatuses))
	var maxVal int64
	for _, status := range chartStatuses {
		v := stats.LeadsByStatus[status]
		if v > maxVal {
			maxVal = v
		}
		bars = append(bars, chart.Value{Value: float64(v), Label: string(status)})
	}

	// go-chart rejects a zero data range; force a non-empty axis.
	yMax := float64(maxVal)
	if yMax <= 0 {
		yMax = 1
	}

	graph := chart.BarChart{
		Width:    640,
		Height:   360,
		BarWidth: 72,
		Background: chart.Style{Padding: chart.Box{
			Top:    32,
			Left:   16,
			Right:  16,
			Bottom: 0,
		}},
		YAxis: chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: yMax}},
		Bars:  bars,
	}

	buf := bytes.NewBuffer(nil)
	if err := graph.Render(chart.PNG, buf); err != nil {
		s.logger.Error("lead chart render failed", "error", err)
		http.Error(w, "failed to render chart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}
