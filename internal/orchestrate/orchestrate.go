// Package orchestrate drives one end-to-end generation: resolve the
// template, stream the text, then fetch the requested side-assets
// concurrently and merge everything into a single consolidated result.
package orchestrate

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"

	"github.com/sahayakai/sahayak/internal/catalog"
	"github.com/sahayakai/sahayak/internal/guard"
	"github.com/sahayakai/sahayak/internal/history"
	"github.com/sahayakai/sahayak/internal/image"
	"github.com/sahayakai/sahayak/internal/observe"
	"github.com/sahayakai/sahayak/internal/provider"
	"github.com/sahayakai/sahayak/internal/video"
)

// ErrSuperseded reports that a newer invocation replaced this one before it
// settled. Nothing was published and no history was written.
var ErrSuperseded = errors.New("invocation superseded by a newer one")

// errStopConsuming is returned from the fragment callback to stop a stream
// whose invocation has been superseded.
var errStopConsuming = errors.New("stop consuming fragments")

// Request describes one invocation: the chosen template, the user-supplied
// field values, and optional attachments. Built fresh per user action and
// never reused.
type Request struct {
	Template catalog.Template
	Values   catalog.Values
	Image    *provider.Attachment
	Audio    *provider.Attachment
}

// Result is the consolidated outcome of one invocation. Text only ever grows
// during streaming; ImageURI and ImageError are mutually exclusive once the
// image fetch settles.
type Result struct {
	TemplateID int
	Text       string
	ImageURI   string
	ImageError string
	Videos     []video.Suggestion
}

// Publisher receives progressive updates for the active invocation. A
// superseded invocation never publishes.
type Publisher interface {
	PublishPartial(res Result)
	PublishFinal(res Result, err error)
}

// NopPublisher discards all updates.
type NopPublisher struct{}

func (NopPublisher) PublishPartial(Result)      {}
func (NopPublisher) PublishFinal(Result, error) {}

// OfflineError replaces a raw transport failure when no network is available,
// so the user sees a connectivity hint instead of an upstream error dump.
type OfflineError struct {
	Err error
}

func (e *OfflineError) Error() string {
	return "You appear to be offline. Please check your internet connection and try again."
}

func (e *OfflineError) Unwrap() error {
	return e.Err
}

// Orchestrator owns the in-flight invocation state. Starting a new
// invocation supersedes the previous one: the old stream stops being
// consumed and its late side-asset results are discarded.
type Orchestrator struct {
	streamer provider.Streamer
	images   image.Generator
	videos   video.Searcher
	history  *history.Store
	guard    *guard.Guard
	obs      *observe.Observer
	pub      Publisher

	// offline is the connectivity probe; swapped out in tests.
	offline func() bool

	mu  sync.Mutex
	seq uint64
}

func New(s provider.Streamer, img image.Generator, vid video.Searcher, h *history.Store, g *guard.Guard, o *observe.Observer) *Orchestrator {
	return &Orchestrator{
		streamer: s,
		images:   img,
		videos:   vid,
		history:  h,
		guard:    g,
		obs:      o,
		pub:      NopPublisher{},
		offline:  detectOffline,
	}
}

func (o *Orchestrator) SetPublisher(p Publisher) {
	if p != nil {
		o.pub = p
	}
}

// Cancel supersedes the in-flight invocation, if any. The abandoned
// invocation stops consuming fragments and discards any late results.
func (o *Orchestrator) Cancel() {
	o.mu.Lock()
	o.seq++
	o.mu.Unlock()
}

func (o *Orchestrator) begin() uint64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seq++
	return o.seq
}

func (o *Orchestrator) active(token uint64) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return token == o.seq
}

// Run executes one invocation end to end and returns the consolidated
// result. A missing required input fails before any adapter is contacted.
// A stream failure returns the partial text alongside the error. A
// superseded invocation returns ErrSuperseded with an empty result.
func (o *Orchestrator) Run(ctx context.Context, req Request) (Result, error) {
	ctx, span := o.obs.Span(ctx, "orchestrate.Run")
	defer span.End()

	token := o.begin()
	res := Result{TemplateID: req.Template.ID}

	prompt, err := catalog.Resolve(req.Template, req.Values, req.Image != nil, req.Audio != nil)
	if err != nil {
		return res, err
	}

	if err := o.checkPolicy(prompt, req); err != nil {
		return res, err
	}

	o.obs.Log().Info().
		Int("template", req.Template.ID).
		Str("provider", o.streamer.Name()).
		Msg("starting generation")

	streamErr := o.streamer.Stream(ctx, provider.Request{
		Text:       prompt,
		Image:      req.Image,
		Audio:      req.Audio,
		LowLatency: req.Template.LowLatency,
	}, func(fragment string) error {
		if !o.active(token) {
			return errStopConsuming
		}
		res.Text += fragment
		o.pub.PublishPartial(res)
		return nil
	})

	if errors.Is(streamErr, errStopConsuming) {
		return Result{}, ErrSuperseded
	}
	if streamErr != nil {
		if o.offline() {
			streamErr = &OfflineError{Err: streamErr}
		}
		if o.active(token) {
			o.pub.PublishFinal(res, streamErr)
		}
		return res, streamErr
	}

	res.ImageURI, res.ImageError, res.Videos = o.fetchSideAssets(ctx, req)

	if !o.active(token) {
		return Result{}, ErrSuperseded
	}

	o.pub.PublishFinal(res, nil)

	if o.history != nil {
		o.history.Append(req.Template.ID, history.Entry{
			UserInput:          req.Values.Input,
			SecondaryUserInput: req.Values.SecondaryInput,
			Response:           res.Text,
			ImageURI:           res.ImageURI,
			ImageError:         res.ImageError,
			Videos:             res.Videos,
		})
	}

	return res, nil
}

func (o *Orchestrator) checkPolicy(prompt string, req Request) error {
	if o.guard == nil {
		return nil
	}
	if v := o.guard.CheckPrompt(prompt); v != nil {
		return fmt.Errorf("request blocked: %s", v.Message)
	}
	for _, att := range []*provider.Attachment{req.Image, req.Audio} {
		if att == nil {
			continue
		}
		if v := o.guard.CheckAttachment(att.MediaType, len(att.Data)); v != nil {
			return fmt.Errorf("request blocked: %s", v.Message)
		}
	}
	return nil
}

// fetchSideAssets runs the image and video fetches concurrently. Each
// settles independently; a failure in one never affects the other. Both are
// skipped when the template does not request them, when the user supplied no
// text to build a query from, or when the text service has no credential.
func (o *Orchestrator) fetchSideAssets(ctx context.Context, req Request) (imageURI, imageReason string, videos []video.Suggestion) {
	input := strings.TrimSpace(req.Values.Input)
	wantImage := req.Template.RequestsImage && input != "" && o.images != nil
	wantVideo := req.Template.RequestsVideo && input != "" && o.videos != nil

	if c, ok := o.streamer.(interface{ Configured() bool }); ok && !c.Configured() {
		return "", "", nil
	}
	if !wantImage && !wantVideo {
		return "", "", nil
	}

	language := req.Values.Language
	if language == "" {
		language = catalog.DefaultLanguage
	}

	var wg sync.WaitGroup
	if wantImage {
		wg.Add(1)
		go func() {
			defer wg.Done()
			uri, err := o.images.Generate(ctx, catalog.ImagePrompt(req.Template.ID, input, language))
			if err != nil {
				imageReason = imageFailureReason(err)
				return
			}
			imageURI = uri
		}()
	}
	if wantVideo {
		wg.Add(1)
		go func() {
			defer wg.Done()
			videos = o.videos.Search(ctx, input, catalog.SearchLanguageCode(language))
		}()
	}
	wg.Wait()

	return imageURI, imageReason, videos
}

func imageFailureReason(err error) string {
	var genErr *image.GenerationFailedError
	if errors.As(err, &genErr) {
		return genErr.Reason
	}
	return err.Error()
}

// detectOffline reports whether the host has no usable network address. It
// inspects local interfaces only and performs no network I/O.
func detectOffline() bool {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return false
	}
	for _, addr := range addrs {
		ipnet, ok := addr.(*net.IPNet)
		if ok && ipnet.IP.IsGlobalUnicast() {
			return false
		}
	}
	return true
}
