package remote

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/recitation/internal/config"
	"github.com/heartmarshall/recitation/internal/domain"
	"github.com/heartmarshall/recitation/internal/service/recording"
	"github.com/heartmarshall/recitation/internal/service/text"
	"github.com/heartmarshall/recitation/pkg/ctxutil"
)

func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(config.RemoteConfig{BaseURL: srv.URL + "/", Timeout: 5 * time.Second},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func writeEnvelope(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}

func writeFailure(w http.ResponseWriter, status int, code, message string, fields ...map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body := map[string]any{"code": code, "message": message}
	if len(fields) > 0 {
		body["fields"] = fields
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": body})
}

func TestTextClient_CreateText(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	var gotBody map[string]string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/texts", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeEnvelope(w, http.StatusCreated, map[string]any{
			"id": id, "title": "Ozymandias", "author": "Shelley",
			"content": "I met a traveller from an antique land", "isCustom": true,
			"createdAt": "2024-05-01T00:00:00Z",
		})
	}))

	got, err := c.Texts().CreateText(context.Background(), text.CreateTextInput{
		Title: "Ozymandias", Author: "Shelley", Content: "I met a traveller from an antique land",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ozymandias", gotBody["title"])
	assert.Equal(t, id, got.ID)
	assert.True(t, got.IsCustom)
	assert.Equal(t, domain.Preview(got.Content), got.Preview)
	assert.True(t, got.UpdatedAt.Equal(got.CreatedAt))
}

func TestTextClient_UpdateText_OmitsUnsetFields(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	var gotBody map[string]any
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/texts/"+id.String(), r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeEnvelope(w, http.StatusOK, map[string]any{"id": id, "title": "New", "content": "0123456789", "isCustom": true})
	}))

	title := "New"
	_, err := c.Texts().UpdateText(context.Background(), text.UpdateTextInput{TextID: id, Title: &title})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"title": "New"}, gotBody)
}

func TestTextClient_ListOverview(t *testing.T) {
	t.Parallel()

	recorded := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, []map[string]any{
			{"id": uuid.New(), "title": "A", "hasRecording": true, "recordedAt": recorded},
			{"id": uuid.New(), "title": "B", "hasRecording": false, "recordedAt": nil},
		})
	}))

	got, err := c.Texts().ListOverview(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.True(t, got[0].HasRecording)
	require.NotNil(t, got[0].RecordedAt)
	assert.True(t, got[0].RecordedAt.Equal(recorded))
	assert.False(t, got[1].HasRecording)
	assert.Nil(t, got[1].RecordedAt)

	texts, err := c.Texts().ListTexts(context.Background())
	require.NoError(t, err)
	assert.Len(t, texts, 2)
}

func TestClient_ErrorEnvelopeMapsToSentinel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		code     string
		sentinel error
	}{
		{"not found", http.StatusNotFound, domain.KindNotFound, domain.ErrNotFound},
		{"forbidden", http.StatusForbidden, domain.KindForbidden, domain.ErrForbidden},
		{"conflict", http.StatusConflict, domain.KindConflict, domain.ErrConflict},
		{"storage", http.StatusInternalServerError, domain.KindStorage, domain.ErrStorage},
		{"data loss", http.StatusInternalServerError, domain.KindDataLoss, domain.ErrDataLoss},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeFailure(w, tt.status, tt.code, "failed")
			}))

			err := c.Texts().DeleteText(context.Background(), uuid.New())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.Equal(t, tt.code, domain.Kind(err))

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
		})
	}
}

func TestClient_ValidationFieldsSurvive(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeFailure(w, http.StatusBadRequest, domain.KindValidation, "the request is invalid",
			map[string]string{"field": "title", "message": "required"})
	}))

	_, err := c.Texts().CreateText(context.Background(), text.CreateTextInput{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Errors, 1)
	assert.Equal(t, "title", ve.Errors[0].Field)
	assert.Contains(t, domain.Message(err), "title")
}

func TestClient_NonEnvelopeErrorIsStorage(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))

	_, err := c.Texts().GetText(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestClient_UnreachableServerIsStorage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(config.RemoteConfig{BaseURL: url, Timeout: time.Second}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := c.Texts().ListOverview(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.Error(t, c.Ping(context.Background()))
}

func TestClient_CanceledContextPassesThrough(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, nil)
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Texts().ListOverview(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domain.ErrStorage)
}

func TestRecordingClient_SaveRecording(t *testing.T) {
	t.Parallel()

	textID, recID := uuid.New(), uuid.New()
	recordedAt := time.Date(2024, 5, 3, 12, 0, 0, 500_000_000, time.UTC)

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/recordings", r.URL.Path)
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		assert.Equal(t, textID.String(), r.FormValue("textId"))
		assert.Equal(t, "7.25", r.FormValue("duration"))
		assert.Equal(t, "2024-05-03T12:00:00.5Z", r.FormValue("recordedAt"))

		file, header, err := r.FormFile("audioFile")
		if !assert.NoError(t, err) {
			return
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		assert.Equal(t, "opus-bytes", string(data))
		assert.Equal(t, "audio/ogg;codecs=opus", header.Header.Get("Content-Type"))
		assert.Equal(t, "recording.ogg", header.Filename)

		writeEnvelope(w, http.StatusCreated, map[string]any{
			"id": recID, "textId": textID, "duration": 7.25, "fileSize": len(data),
			"mimeType": "audio/ogg;codecs=opus", "recordedAt": recordedAt, "createdAt": recordedAt,
		})
	}))

	got, err := c.Recordings().SaveRecording(context.Background(), recording.SaveRecordingInput{
		TextID:     textID,
		Audio:      []byte("opus-bytes"),
		MimeType:   "audio/ogg;codecs=opus",
		Duration:   7.25,
		RecordedAt: recordedAt,
	})
	require.NoError(t, err)

	assert.Equal(t, recID, got.ID)
	assert.Equal(t, int64(10), got.FileSize)
	assert.Equal(t, []byte("opus-bytes"), got.Audio)
}

func TestRecordingClient_GetRecordingByTextID(t *testing.T) {
	t.Parallel()

	withRec, recID := uuid.New(), uuid.New()
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/recordings/by-text/" + withRec.String():
			writeEnvelope(w, http.StatusOK, map[string]any{"id": recID, "textId": withRec, "mimeType": "audio/wav"})
		case "/api/recordings/" + recID.String() + "/audio":
			w.Header().Set("Content-Type", "audio/wav")
			_, _ = w.Write([]byte("RIFF-bytes"))
		default:
			writeEnvelope(w, http.StatusOK, nil)
		}
	}))

	got, err := c.Recordings().GetRecordingByTextID(context.Background(), withRec)
	require.NoError(t, err)
	assert.Equal(t, recID, got.ID)
	assert.Equal(t, []byte("RIFF-bytes"), got.Audio)

	_, err = c.Recordings().GetRecordingByTextID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordingClient_PlaybackURL(t *testing.T) {
	t.Parallel()

	recID := uuid.New()
	handleID := uuid.NewString()
	var revoked atomic.Bool
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/recordings/"+recID.String()+"/handles":
			writeEnvelope(w, http.StatusCreated, map[string]any{
				"handle": "blob:recitation/" + handleID,
				"url":    "/api/handles/" + handleID,
			})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/handles/"+handleID:
			revoked.Store(true)
			writeEnvelope(w, http.StatusOK, map[string]string{"message": "handle revoked"})
		default:
			writeFailure(w, http.StatusNotFound, domain.KindNotFound, "no")
		}
	}))

	handle, url, err := c.Recordings().PlaybackURL(context.Background(), recID)
	require.NoError(t, err)
	assert.Equal(t, "blob:recitation/"+handleID, handle)
	assert.Contains(t, url, "/api/handles/"+handleID)

	require.NoError(t, c.Recordings().RevokePlayback(context.Background(), url))
	assert.True(t, revoked.Load())
}

func TestAPIError_UnknownCode(t *testing.T) {
	t.Parallel()

	err := newAPIError(http.StatusTooManyRequests, &errorBody{Code: "RATE_LIMITED", Message: "slow down"})
	assert.Equal(t, domain.KindInternal, domain.Kind(err))
	assert.False(t, errors.Is(err, domain.ErrStorage))
	assert.Contains(t, err.Error(), "RATE_LIMITED")
}

func TestClient_ForwardsRequestID(t *testing.T) {
	t.Parallel()

	var got string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Request-Id")
		writeEnvelope(w, http.StatusOK, []any{})
	}))

	ctx := ctxutil.WithRequestID(context.Background(), "req-42")
	_, err := c.Recordings().ListRecordings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "req-42", got)
}
