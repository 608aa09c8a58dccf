package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"github.com/heartmarshall/dealflow-backend/internal/transport/dataloader"
	"github.com/heartmarshall/dealflow-backend/pkg/ctxutil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newRequest builds a request. A string body is sent verbatim, anything
// else is JSON-encoded.
func newRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	return httptest.NewRequest(method, target, rd)
}

// asUser attaches a resolved identity with role to r.
func asUser(r *http.Request, role domain.Role) (*http.Request, uuid.UUID) {
	id := uuid.New()
	ctx := ctxutil.WithIdentity(r.Context(), id, "member@fund.example", string(role))
	return r.WithContext(ctx), id
}

func withPath(r *http.Request, name string, id uuid.UUID) *http.Request {
	r.SetPathValue(name, id.String())
	return r
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out), "body: %s", rec.Body.String())
	return out
}

type staticProfiles []domain.Profile

func (s staticProfiles) GetByIDs(_ context.Context, ids []uuid.UUID) ([]domain.Profile, error) {
	var out []domain.Profile
	for _, p := range s {
		if slices.Contains(ids, p.ID) {
			out = append(out, p)
		}
	}
	return out, nil
}

type staticStages []domain.PipelineStage

func (s staticStages) GetByIDs(_ context.Context, ids []uuid.UUID) ([]domain.PipelineStage, error) {
	var out []domain.PipelineStage
	for _, st := range s {
		if slices.Contains(ids, st.ID) {
			out = append(out, st)
		}
	}
	return out, nil
}

func withLoaders(r *http.Request, profiles staticProfiles, stages staticStages) *http.Request {
	loaders := dataloader.NewLoaders(&dataloader.Repos{Profile: profiles, Stage: stages})
	return r.WithContext(dataloader.WithLoaders(r.Context(), loaders))
}
