package service

import (
	"bytes"
	"image/png"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mmynk/kleurenwiezen/internal/export"
	"github.com/mmynk/kleurenwiezen/internal/middleware"
)

func download(t *testing.T, env *testEnv, path, code string) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, env.server.URL+"/download"+path, nil)
	require.NoError(t, err)
	if code != "" {
		req.Header.Set(middleware.JoinCodeHeader, code)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestDownloads_ExportTSV(t *testing.T) {
	env := setupTestServer(t)
	code, players := seedGroup(t, env)
	session := createSession(t, env, code, "2025-01-09")
	addRound(t, env, code, session.Id, single(players, players[2], 1))

	resp, body := download(t, env, "/export.tsv", code)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, contentTypeTSV, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".tsv")

	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t,
		"date\ttitle\trounds\tr1_bid\tr1_overtricks\tr1_multiplier\tr1_Ann\tr1_Bart\tr1_Chris\tr1_Dirk",
		lines[0])
	assert.Equal(t,
		"2025-01-09\tAvond 2025-01-09\t1\tSINGLE\t1\t1\t-3\t-3\t9\t-3",
		lines[1])
}

func TestDownloads_ExportTSV_QueryCode(t *testing.T) {
	env := setupTestServer(t)
	code, _ := seedGroup(t, env)

	resp, body := download(t, env, "/export.tsv?code="+code, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "date\ttitle\trounds\n", string(body))
}

func TestDownloads_ExportXLSX(t *testing.T) {
	env := setupTestServer(t)
	code, players := seedGroup(t, env)
	session := createSession(t, env, code, "2025-01-09")
	addRound(t, env, code, session.Id, single(players, players[0], 0))

	resp, body := download(t, env, "/export.xlsx", code)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, contentTypeXLSX, resp.Header.Get("Content-Type"))

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	bid, err := f.GetCellValue(export.SheetName, "D2")
	require.NoError(t, err)
	assert.Equal(t, "SINGLE", bid)

	ann, err := f.GetCellValue(export.SheetName, "G2")
	require.NoError(t, err)
	assert.Equal(t, "6", ann)
}

func TestDownloads_Charts(t *testing.T) {
	env := setupTestServer(t)
	code, players := seedGroup(t, env)
	session := createSession(t, env, code, "2025-01-09")
	addRound(t, env, code, session.Id, single(players, players[1], 0))

	for _, path := range []string{"/overview.png", "/sessions/" + session.Id + ".png"} {
		t.Run(path, func(t *testing.T) {
			resp, body := download(t, env, path, code)
			require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
			assert.Equal(t, contentTypePNG, resp.Header.Get("Content-Type"))

			_, err := png.Decode(bytes.NewReader(body))
			assert.NoError(t, err)
		})
	}
}

func TestDownloads_Errors(t *testing.T) {
	env := setupTestServer(t)
	code, _ := seedGroup(t, env)
	other, _ := seedGroup(t, env)
	session := createSession(t, env, code, "2025-01-09")

	tests := []struct {
		name string
		path string
		code string
		want int
	}{
		{name: "missing join code", path: "/export.tsv", want: http.StatusUnauthorized},
		{name: "unknown join code", path: "/export.tsv", code: "onbekend", want: http.StatusNotFound},
		{name: "unknown session", path: "/sessions/nope.png", code: code, want: http.StatusNotFound},
		{name: "session of other group", path: "/sessions/" + session.Id + ".png", code: other, want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := download(t, env, tt.path, tt.code)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
