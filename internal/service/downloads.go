package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"

	"github.com/mmynk/kleurenwiezen/internal/chart"
	"github.com/mmynk/kleurenwiezen/internal/export"
	"github.com/mmynk/kleurenwiezen/internal/middleware"
	"github.com/mmynk/kleurenwiezen/internal/storage"
)

// Export formats.
const (
	FormatTSV  = "tsv"
	FormatXLSX = "xlsx"
)

const (
	contentTypeTSV  = "text/tab-separated-values; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePNG  = "image/png"
)

// Downloads serves export files and charts of the caller's group as plain
// HTTP, so browsers can follow a link.
type Downloads struct {
	store   storage.Store
	palette chart.Palette
}

func NewDownloads(store storage.Store) *Downloads {
	return &Downloads{store: store, palette: chart.DefaultPalette}
}

// Routes mounts under /download. Every route needs a join code.
func (d *Downloads) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequireGroupHTTP(d.store))
	r.Get("/export.tsv", d.exportFile(FormatTSV, contentTypeTSV))
	r.Get("/export.xlsx", d.exportFile(FormatXLSX, contentTypeXLSX))
	r.Get("/overview.png", d.overviewPNG)
	r.Get("/sessions/{id}.png", d.sessionPNG)
	return r
}

func (d *Downloads) exportFile(format, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID := middleware.GetGroupID(r.Context())

		var buf bytes.Buffer
		if err := ExportGroup(r.Context(), d.store, groupID, format, &buf); err != nil {
			slog.Error("Export failed", "group_id", groupID, "format", format, "error", err)
			http.Error(w, "export failed", http.StatusInternalServerError)
			return
		}

		filename := fmt.Sprintf("kleurenwiezen-%s.%s", time.Now().Format(dateLayout), format)
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		buf.WriteTo(w)
	}
}

func (d *Downloads) overviewPNG(w http.ResponseWriter, r *http.Request) {
	groupID := middleware.GetGroupID(r.Context())

	data, err := loadGroupData(r.Context(), d.store, groupID)
	if err != nil {
		slog.Error("Overview chart failed", "group_id", groupID, "error", err)
		http.Error(w, "chart failed", http.StatusInternalServerError)
		return
	}

	c := data.sessionChart(data.overview())
	d.writePNG(w, func(out io.Writer) error {
		return chart.RenderPNG(out, c, playerNames(data.players), "Totaal per avond", d.palette)
	})
}

func (d *Downloads) sessionPNG(w http.ResponseWriter, r *http.Request) {
	groupID := middleware.GetGroupID(r.Context())
	sessionID := chi.URLParam(r, "id")

	session, err := findGroupSession(r.Context(), d.store, groupID, sessionID)
	if err != nil {
		if connect.CodeOf(err) == connect.CodeNotFound {
			http.NotFound(w, r)
			return
		}
		slog.Error("Session chart failed", "session_id", sessionID, "error", err)
		http.Error(w, "chart failed", http.StatusInternalServerError)
		return
	}

	view, err := loadSessionView(r.Context(), d.store, session)
	if err != nil {
		slog.Error("Session chart failed", "session_id", sessionID, "error", err)
		http.Error(w, "chart failed", http.StatusInternalServerError)
		return
	}

	d.writePNG(w, func(out io.Writer) error {
		return chart.RenderPNG(out, view.chart, playerNames(view.players), session.Title, d.palette)
	})
}

func (d *Downloads) writePNG(w http.ResponseWriter, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		slog.Error("Chart render failed", "error", err)
		http.Error(w, "chart failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentTypePNG)
	w.Header().Set("Cache-Control", "no-store")
	buf.WriteTo(w)
}

// ExportGroup writes every session of a group, oldest first, in the given
// format.
func ExportGroup(ctx context.Context, store storage.Store, groupID, format string, w io.Writer) error {
	data, err := loadGroupData(ctx, store, groupID)
	if err != nil {
		return err
	}
	grid := exportGrid(data)

	switch format {
	case FormatTSV:
		return export.WriteTSV(w, grid)
	case FormatXLSX:
		return export.WriteXLSX(w, grid)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

func exportGrid(data *groupData) [][]string {
	players := make([]export.Player, len(data.players))
	for i, p := range data.players {
		players[i] = export.Player{ID: p.ID, Name: p.Name}
	}

	points := make(map[string]map[string]int, len(data.rounds))
	for _, sc := range data.scores {
		if points[sc.RoundID] == nil {
			points[sc.RoundID] = make(map[string]int)
		}
		points[sc.RoundID][sc.PlayerID] = sc.Points
	}

	// Rounds arrive ordered by session and round number.
	rounds := make(map[string][]export.Round, len(data.sessions))
	for _, r := range data.rounds {
		rounds[r.SessionID] = append(rounds[r.SessionID], export.Round{
			Bid:        r.BidKind,
			Overtricks: r.Overtricks,
			Multiplier: r.Multiplier,
			Points:     points[r.ID],
		})
	}

	sessions := make([]export.Session, len(data.sessions))
	for i, s := range data.sessions {
		sessions[i] = export.Session{Date: s.Date, Title: s.Title, Rounds: rounds[s.ID]}
	}
	return export.Grid(players, sessions)
}
