package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"scrollscene/internal/utils"
)

var logger = utils.For("contact")

// reenableKey is the delayed-call slot that turns the submit control back on.
const reenableKey = "contact-submit"

// maxErrorBody bounds how much of a failed response is read for error messages.
const maxErrorBody = 64 << 10

// Dispatcher runs fn on the frame loop. frame.Mailbox satisfies it.
type Dispatcher interface {
	Post(fn func())
}

// Timers schedules fn after delay seconds on the frame loop, replacing any call
// pending under key. tween.Scheduler satisfies it.
type Timers interface {
	After(key string, delay float64, fn func())
}

type Options struct {
	Timeout       time.Duration
	ReenableDelay float64 // seconds after completion before the control is enabled
}

// Result is the outcome of one POST.
type Result struct {
	StatusCode int
	Err        error
	Messages   []string // errors[].message from a JSON failure body
}

func (r Result) OK() bool {
	return r.Err == nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// Submitter sends the form on a goroutine and hands the result back to the loop.
type Submitter struct {
	client   *http.Client
	dispatch Dispatcher
	timers   Timers
	opts     Options
}

func NewSubmitter(client *http.Client, d Dispatcher, t Timers, opts Options) *Submitter {
	if client == nil {
		client = http.DefaultClient
	}
	return &Submitter{client: client, dispatch: d, timers: t, opts: opts}
}

// Submit starts sending form unless a submission is already in flight. It returns
// whether a request was started. Must be called from the frame loop.
func (s *Submitter) Submit(ctx context.Context, form *Form) bool {
	if !form.SubmitEnabled {
		return false
	}
	form.SubmitEnabled = false
	form.SubmitLabel = LabelSending

	action, method, values := form.Action, form.Method, form.Values()
	go func() {
		res := s.Send(ctx, action, method, values)
		s.dispatch.Post(func() { s.complete(form, res) })
	}()
	return true
}

func (s *Submitter) complete(form *Form, res Result) {
	if res.OK() {
		logger.Info("Contact form sent (%d)", res.StatusCode)
		form.Status = MessageSuccess
		form.Tone = ToneSuccess
		form.Reset()
	} else {
		switch {
		case res.Err != nil:
			logger.Warn("Contact form failed: %v", res.Err)
		case len(res.Messages) > 0:
			logger.Warn("Contact form rejected (%d): %s", res.StatusCode, strings.Join(res.Messages, ", "))
		default:
			logger.Warn("Contact form rejected (%d)", res.StatusCode)
		}
		form.Status = MessageFailure
		form.Tone = ToneError
	}

	s.timers.After(reenableKey, s.opts.ReenableDelay, func() {
		form.SubmitLabel = LabelIdle
		form.SubmitEnabled = true
	})
}

// Send performs one POST of values as multipart form data. It never retries.
func (s *Submitter) Send(ctx context.Context, action, method string, values url.Values) Result {
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	body, contentType, err := encodeMultipart(values)
	if err != nil {
		return Result{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, method, action, body)
	if err != nil {
		return Result{Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return Result{Err: fmt.Errorf("post %s: %w", action, err)}
	}
	defer resp.Body.Close()

	res := Result{StatusCode: resp.StatusCode}
	if !res.OK() {
		res.Messages = errorMessages(io.LimitReader(resp.Body, maxErrorBody))
	}
	return res
}

func encodeMultipart(values url.Values) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, vals := range values {
		for _, v := range vals {
			if err := w.WriteField(key, v); err != nil {
				return nil, "", fmt.Errorf("encode field %s: %w", key, err)
			}
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("encode form: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

func errorMessages(r io.Reader) []string {
	var payload struct {
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil
	}
	var out []string
	for _, e := range payload.Errors {
		if e.Message != "" {
			out = append(out, e.Message)
		}
	}
	return out
}
