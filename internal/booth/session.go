package booth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/leca/ai-photobooth/internal/model"
)

// State is the booth session's position in the capture/transform flow.
type State int

const (
	// StateIdle: no current image.
	StateIdle State = iota
	// StateCaptured: an image is held and transform is armed.
	StateCaptured
	// StateTransforming: a transform is in flight; controls are gated.
	StateTransforming
	// StateTransformed: a result is held.
	StateTransformed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCaptured:
		return "captured"
	case StateTransforming:
		return "transforming"
	case StateTransformed:
		return "transformed"
	default:
		return "unknown"
	}
}

var (
	// ErrSourceNotReady: the capture source produced no image.
	ErrSourceNotReady = errors.New("camera not ready yet")
	// ErrUploadFailed: the uploaded file could not be read.
	ErrUploadFailed = errors.New("failed to read the uploaded file")
	// ErrNoImage: transform invoked with nothing to transform.
	ErrNoImage = errors.New("please capture or upload an image first")
	// ErrBusy: the action is gated while a transform is in flight.
	ErrBusy = errors.New("a transformation is already in progress")
)

// Transformer is the transform operation the session drives; satisfied by
// *Client.
type Transformer interface {
	Transform(ctx context.Context, image, prompt string) (*model.TransformResponse, error)
}

// Session is the capture/upload/transform state machine for one page
// load. It holds at most one current image and one current result, and is
// the only mutator of either. The reel poller is started when a transform
// begins and stopped when it settles.
//
// A Session mirrors a single-threaded UI event loop and is not safe for
// concurrent use.
type Session struct {
	client Transformer
	poller *Poller

	state  State
	prompt string
	image  string
	result *model.TransformResponse
	armed  bool
}

// NewSession creates an idle session. poller may be nil when no reel is
// attached.
func NewSession(client Transformer, poller *Poller) *Session {
	return &Session{client: client, poller: poller}
}

func (s *Session) State() State { return s.state }

// Image returns the current image data URL, if any.
func (s *Session) Image() string { return s.image }

// Result returns the current transform result, if any.
func (s *Session) Result() *model.TransformResponse { return s.result }

func (s *Session) Prompt() string { return s.prompt }

func (s *Session) SetPrompt(prompt string) { s.prompt = prompt }

// Capture takes a freshly captured image. It fails fast with
// ErrSourceNotReady when the source produced nothing, leaving the state
// unchanged. A new capture re-arms the transform control.
func (s *Session) Capture(image string) error {
	return s.setImage(image, ErrSourceNotReady)
}

// Upload takes the contents of an uploaded image file. Like Capture it
// re-arms the transform control.
func (s *Session) Upload(image string) error {
	return s.setImage(image, ErrUploadFailed)
}

func (s *Session) setImage(image string, emptyErr error) error {
	if s.state == StateTransforming {
		return ErrBusy
	}
	if image == "" {
		return emptyErr
	}
	s.image = image
	s.result = nil
	s.armed = true
	s.state = StateCaptured
	return nil
}

// Transform runs the current image through the transform pipeline. On
// success the session holds the result; on failure the image is retained
// but the transform control stays disarmed until a fresh capture, upload
// or retake. Once submitted, the transform runs to completion; only a
// second submission is prevented, not the in-flight one.
func (s *Session) Transform(ctx context.Context) (*model.TransformResponse, error) {
	if s.state == StateTransforming {
		return nil, ErrBusy
	}
	if s.image == "" || !s.armed {
		return nil, ErrNoImage
	}

	s.armed = false
	s.state = StateTransforming
	if s.poller != nil {
		s.poller.Start()
	}

	result, err := s.client.Transform(ctx, s.image, s.prompt)

	if s.poller != nil {
		s.poller.Stop()
	}
	if err != nil {
		s.state = StateCaptured
		return nil, err
	}
	s.result = result
	s.state = StateTransformed
	return result, nil
}

// ApplyStyle sets the prompt from a preset and, if an image is armed,
// immediately triggers the transform. With nothing to transform it
// reports the same validation error as a manual invocation.
func (s *Session) ApplyStyle(ctx context.Context, prompt string) (*model.TransformResponse, error) {
	s.prompt = prompt
	if s.image == "" || !s.armed || s.state == StateTransforming {
		return nil, ErrNoImage
	}
	return s.Transform(ctx)
}

// DownloadFilename names the saved copy of a transformed image after the
// moment it was downloaded.
func DownloadFilename(at time.Time) string {
	stamp := strings.NewReplacer(":", "-", ".", "-").Replace(at.UTC().Format("2006-01-02T15:04:05.000Z"))
	return "ai-transformed-photo-" + stamp + ".png"
}

// Retake clears the current image and result and returns to idle.
func (s *Session) Retake() error {
	if s.state == StateTransforming {
		return ErrBusy
	}
	s.image = ""
	s.result = nil
	s.armed = false
	s.state = StateIdle
	return nil
}
