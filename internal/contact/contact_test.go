package contact

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chanDispatcher hands posted work to the test, which plays the frame loop.
type chanDispatcher chan func()

func (d chanDispatcher) Post(fn func()) { d <- fn }

type pendingCall struct {
	key   string
	delay float64
	fn    func()
}

type fakeTimers struct{ calls []pendingCall }

func (f *fakeTimers) After(key string, delay float64, fn func()) {
	f.calls = append(f.calls, pendingCall{key, delay, fn})
}

func filledForm(action string) *Form {
	f := NewForm(action, "post", []string{"name", "email", "message"})
	_ = f.Set("name", "Ada")
	_ = f.Set("email", "ada@example.com")
	_ = f.Set("message", "Hello")
	return f
}

func runSubmission(t *testing.T, handler http.HandlerFunc, action func(*httptest.Server) string) (*Form, *fakeTimers) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	loop := make(chanDispatcher, 1)
	timers := &fakeTimers{}
	s := NewSubmitter(srv.Client(), loop, timers, Options{Timeout: 2 * time.Second, ReenableDelay: 1.5})

	form := filledForm(action(srv))
	require.True(t, s.Submit(context.Background(), form))
	assert.False(t, form.SubmitEnabled)
	assert.Equal(t, LabelSending, form.SubmitLabel)
	assert.False(t, s.Submit(context.Background(), form), "no double submission")

	select {
	case fn := <-loop:
		fn()
	case <-time.After(5 * time.Second):
		t.Fatal("submission never completed")
	}
	return form, timers
}

func serverURL(srv *httptest.Server) string { return srv.URL }

func TestSubmitSuccess(t *testing.T) {
	var got map[string]string
	form, timers := runSubmission(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		got = map[string]string{
			"name":    r.FormValue("name"),
			"email":   r.FormValue("email"),
			"message": r.FormValue("message"),
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}, serverURL)

	assert.Equal(t, map[string]string{"name": "Ada", "email": "ada@example.com", "message": "Hello"}, got)
	assert.Equal(t, MessageSuccess, form.Status)
	assert.Equal(t, ToneSuccess, form.Tone)
	for _, f := range form.Fields {
		assert.Empty(t, f.Value, f.Name)
	}

	require.Len(t, timers.calls, 1)
	assert.Equal(t, 1.5, timers.calls[0].delay)
	assert.False(t, form.SubmitEnabled, "stays disabled until the delay elapses")
	timers.calls[0].fn()
	assert.True(t, form.SubmitEnabled)
	assert.Equal(t, LabelIdle, form.SubmitLabel)
}

func TestSubmitRejected(t *testing.T) {
	form, timers := runSubmission(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"errors":[{"message":"email is invalid"}]}`))
	}, serverURL)

	assert.Equal(t, MessageFailure, form.Status)
	assert.Equal(t, ToneError, form.Tone)
	assert.Equal(t, "Ada", form.Value("name"), "fields keep their values")
	assert.Equal(t, "Hello", form.Value("message"))

	require.Len(t, timers.calls, 1)
	timers.calls[0].fn()
	assert.True(t, form.SubmitEnabled)
}

func TestSubmitNetworkError(t *testing.T) {
	form, timers := runSubmission(t, func(w http.ResponseWriter, r *http.Request) {}, func(*httptest.Server) string {
		return "http://127.0.0.1:1/contact"
	})

	assert.Equal(t, MessageFailure, form.Status)
	assert.Equal(t, "ada@example.com", form.Value("email"))
	require.Len(t, timers.calls, 1)
	assert.Equal(t, reenableKey, timers.calls[0].key)
	timers.calls[0].fn()
	assert.True(t, form.SubmitEnabled)
	assert.Equal(t, LabelIdle, form.SubmitLabel)
}

func TestSendCollectsErrorMessages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":[{"message":"a"},{"message":""},{"message":"b"}]}`))
	}))
	defer srv.Close()

	s := NewSubmitter(srv.Client(), nil, nil, Options{})
	res := s.Send(context.Background(), srv.URL, http.MethodPost, nil)
	assert.False(t, res.OK())
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, []string{"a", "b"}, res.Messages)
}

func TestSendHonoursTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	s := NewSubmitter(srv.Client(), nil, nil, Options{Timeout: 50 * time.Millisecond})
	res := s.Send(context.Background(), srv.URL, http.MethodPost, nil)
	assert.Error(t, res.Err)
	assert.False(t, res.OK())
}

func TestFormEditing(t *testing.T) {
	f := NewForm("http://x", "", []string{"name", "email"})
	assert.Equal(t, "POST", f.Method)
	assert.Equal(t, -1, f.Focus)

	f.Type('x')
	assert.Empty(t, f.Value("name"), "nothing focused")

	f.FocusNext()
	for _, r := range "Zoë" {
		f.Type(r)
	}
	assert.Equal(t, "Zoë", f.Value("name"))
	f.Backspace()
	assert.Equal(t, "Zo", f.Value("name"))

	f.FocusNext()
	f.Type('@')
	f.FocusNext()
	assert.Equal(t, 0, f.Focus, "focus wraps")
	assert.Equal(t, "@", f.Value("email"))

	assert.Error(t, f.Set("phone", "1"))
	assert.Equal(t, "", f.Value("phone"))
	assert.Equal(t, "Zo", f.Values().Get("name"))

	f.Reset()
	assert.Empty(t, f.Value("name"))
	assert.Empty(t, f.Value("email"))
}
