package orchestrate

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sahayakai/sahayak/internal/catalog"
	"github.com/sahayakai/sahayak/internal/guard"
	"github.com/sahayakai/sahayak/internal/history"
	"github.com/sahayakai/sahayak/internal/image"
	"github.com/sahayakai/sahayak/internal/observe"
	"github.com/sahayakai/sahayak/internal/provider"
	"github.com/sahayakai/sahayak/internal/video"
)

var testTemplate = catalog.Template{
	ID:            1,
	Title:         "Explainer",
	Pattern:       "Explain: {{input}}",
	InputLabel:    "Topic",
	RequestsImage: true,
	RequestsVideo: true,
}

// recordingPublisher captures every update; optionally triggers a callback
// after each partial to simulate user actions mid-stream.
type recordingPublisher struct {
	partials  []string
	finals    []Result
	finalErrs []error
	onPartial func(n int)
}

func (p *recordingPublisher) PublishPartial(res Result) {
	p.partials = append(p.partials, res.Text)
	if p.onPartial != nil {
		p.onPartial(len(p.partials))
	}
}

func (p *recordingPublisher) PublishFinal(res Result, err error) {
	p.finals = append(p.finals, res)
	p.finalErrs = append(p.finalErrs, err)
}

// unconfiguredStreamer degrades like a streamer missing its credential.
type unconfiguredStreamer struct {
	provider.StubStreamer
}

func (*unconfiguredStreamer) Configured() bool { return false }

func newTestOrchestrator(s provider.Streamer, img image.Generator, vid video.Searcher, h *history.Store) *Orchestrator {
	obs := observe.New(io.Discard, observe.Console, false)
	o := New(s, img, vid, h, guard.New(guard.DefaultPolicy), obs)
	o.offline = func() bool { return false }
	return o
}

func TestRun_MissingInputMakesNoNetworkCalls(t *testing.T) {
	stream := provider.NewStubStreamer("never emitted")
	img := &image.StubGenerator{URI: "IMG1"}
	vid := &video.StubSearcher{}
	o := newTestOrchestrator(stream, img, vid, nil)

	_, err := o.Run(context.Background(), Request{Template: testTemplate})

	var missing *catalog.MissingRequiredInputError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingRequiredInputError, got %v", err)
	}
	if missing.Field != "Topic" {
		t.Errorf("expected field %q, got %q", "Topic", missing.Field)
	}
	if len(stream.Requests) != 0 || img.Calls != 0 || vid.Calls != 0 {
		t.Errorf("expected zero adapter calls, got stream=%d image=%d video=%d",
			len(stream.Requests), img.Calls, vid.Calls)
	}
}

func TestRun_AccumulatesFragmentsInOrder(t *testing.T) {
	stream := provider.NewStubStreamer("a", "b", "c")
	pub := &recordingPublisher{}
	o := newTestOrchestrator(stream, nil, nil, nil)
	o.SetPublisher(pub)

	res, err := o.Run(context.Background(), Request{
		Template: testTemplate,
		Values:   catalog.Values{Input: "rainbows"},
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := []string{"a", "ab", "abc"}
	if len(pub.partials) != len(want) {
		t.Fatalf("expected %d partials, got %d", len(want), len(pub.partials))
	}
	for i, w := range want {
		if pub.partials[i] != w {
			t.Errorf("partial %d: expected %q, got %q", i, w, pub.partials[i])
		}
	}
	if res.Text != "abc" {
		t.Errorf("expected final text %q, got %q", "abc", res.Text)
	}
}

func TestRun_FullScenario(t *testing.T) {
	stream := provider.NewStubStreamer("Sun heats water. ", "It evaporates.")
	img := &image.StubGenerator{URI: "IMG1"}
	vid := &video.StubSearcher{Suggestions: []video.Suggestion{
		{Title: "Water Cycle", URL: "https://www.youtube.com/watch?v=wc1"},
	}}
	hist := history.NewStore(nil, observe.New(io.Discard, observe.Console, false))
	pub := &recordingPublisher{}
	o := newTestOrchestrator(stream, img, vid, hist)
	o.SetPublisher(pub)

	res, err := o.Run(context.Background(), Request{
		Template: testTemplate,
		Values:   catalog.Values{Input: "the water cycle"},
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if res.Text != "Sun heats water. It evaporates." {
		t.Errorf("unexpected text: %q", res.Text)
	}
	if res.ImageURI != "IMG1" || res.ImageError != "" {
		t.Errorf("expected image IMG1 with no error, got %q / %q", res.ImageURI, res.ImageError)
	}
	if len(res.Videos) != 1 || res.Videos[0].Title != "Water Cycle" {
		t.Errorf("unexpected videos: %+v", res.Videos)
	}

	entries := hist.List(testTemplate.ID)
	if len(entries) != 1 {
		t.Fatalf("expected exactly one history entry, got %d", len(entries))
	}
	if entries[0].Response != res.Text || entries[0].UserInput != "the water cycle" {
		t.Errorf("unexpected history entry: %+v", entries[0])
	}

	if len(pub.finals) != 1 || pub.finalErrs[0] != nil {
		t.Errorf("expected one clean final publish, got %d (err %v)", len(pub.finals), pub.finalErrs)
	}
}

func TestRun_ImageFailureDoesNotAffectVideos(t *testing.T) {
	reason := "The API returned no image. This might be due to a safety filter on the prompt."
	stream := provider.NewStubStreamer("text")
	img := &image.StubGenerator{Err: &image.GenerationFailedError{Reason: reason}}
	vid := &video.StubSearcher{Suggestions: []video.Suggestion{
		{Title: "Volcanoes", URL: "https://www.youtube.com/watch?v=v1"},
	}}
	o := newTestOrchestrator(stream, img, vid, nil)

	res, err := o.Run(context.Background(), Request{
		Template: testTemplate,
		Values:   catalog.Values{Input: "volcanoes"},
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if res.ImageURI != "" {
		t.Errorf("expected no image reference, got %q", res.ImageURI)
	}
	if res.ImageError != reason {
		t.Errorf("expected failure reason %q, got %q", reason, res.ImageError)
	}
	if len(res.Videos) != 1 {
		t.Errorf("expected video fetch unaffected, got %+v", res.Videos)
	}
}

func TestRun_StreamFailureKeepsPartialAndSkipsSideAssets(t *testing.T) {
	stream := provider.NewStubStreamer("partial ")
	stream.FinalErr = &provider.GenerationFailedError{Err: errors.New("503 from upstream")}
	img := &image.StubGenerator{URI: "IMG1"}
	vid := &video.StubSearcher{}
	hist := history.NewStore(nil, observe.New(io.Discard, observe.Console, false))
	pub := &recordingPublisher{}
	o := newTestOrchestrator(stream, img, vid, hist)
	o.SetPublisher(pub)

	res, err := o.Run(context.Background(), Request{
		Template: testTemplate,
		Values:   catalog.Values{Input: "topic"},
	})

	var genErr *provider.GenerationFailedError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationFailedError, got %v", err)
	}
	if res.Text != "partial " {
		t.Errorf("expected partial text preserved, got %q", res.Text)
	}
	if img.Calls != 0 || vid.Calls != 0 {
		t.Errorf("expected side-assets skipped, got image=%d video=%d", img.Calls, vid.Calls)
	}
	if len(hist.List(testTemplate.ID)) != 0 {
		t.Error("expected no history entry for a failed stream")
	}
	if len(pub.finals) != 1 || pub.finalErrs[0] == nil {
		t.Error("expected terminal publish carrying the error")
	}
}

func TestRun_MissingCredentialSkipsSideAssets(t *testing.T) {
	stream := &unconfiguredStreamer{
		StubStreamer: provider.StubStreamer{Fragments: []string{provider.ConfigurationErrorMessage}},
	}
	img := &image.StubGenerator{URI: "IMG1"}
	vid := &video.StubSearcher{}
	o := newTestOrchestrator(stream, img, vid, nil)

	res, err := o.Run(context.Background(), Request{
		Template: testTemplate,
		Values:   catalog.Values{Input: "topic"},
	})
	if err != nil {
		t.Fatalf("expected normal termination, got %v", err)
	}

	if res.Text != provider.ConfigurationErrorMessage {
		t.Errorf("expected configuration-error fragment, got %q", res.Text)
	}
	if img.Calls != 0 || vid.Calls != 0 {
		t.Errorf("expected no side-asset calls, got image=%d video=%d", img.Calls, vid.Calls)
	}
}

func TestRun_SupersededInvocationIsDiscarded(t *testing.T) {
	stream := provider.NewStubStreamer("one ", "two ", "three")
	hist := history.NewStore(nil, observe.New(io.Discard, observe.Console, false))
	o := newTestOrchestrator(stream, nil, nil, hist)

	pub := &recordingPublisher{}
	pub.onPartial = func(n int) {
		if n == 1 {
			o.Cancel()
		}
	}
	o.SetPublisher(pub)

	_, err := o.Run(context.Background(), Request{
		Template: testTemplate,
		Values:   catalog.Values{Input: "topic"},
	})
	if !errors.Is(err, ErrSuperseded) {
		t.Fatalf("expected ErrSuperseded, got %v", err)
	}

	if len(pub.partials) != 1 {
		t.Errorf("expected no partials applied after supersession, got %d", len(pub.partials))
	}
	if len(pub.finals) != 0 {
		t.Error("expected no terminal publish for an abandoned invocation")
	}
	if len(hist.List(testTemplate.ID)) != 0 {
		t.Error("expected no history entry for an abandoned invocation")
	}
}

func TestRun_OfflineWrapsStreamFailure(t *testing.T) {
	stream := provider.NewStubStreamer()
	stream.FinalErr = &provider.GenerationFailedError{Err: errors.New("dial tcp: no route to host")}
	o := newTestOrchestrator(stream, nil, nil, nil)
	o.offline = func() bool { return true }

	_, err := o.Run(context.Background(), Request{
		Template: testTemplate,
		Values:   catalog.Values{Input: "topic"},
	})

	var offline *OfflineError
	if !errors.As(err, &offline) {
		t.Fatalf("expected OfflineError, got %v", err)
	}
	var genErr *provider.GenerationFailedError
	if !errors.As(err, &genErr) {
		t.Error("expected the upstream failure preserved in the chain")
	}
}

func TestRun_GuardBlocksOversizedAttachment(t *testing.T) {
	stream := provider.NewStubStreamer("never")
	obs := observe.New(io.Discard, observe.Console, false)
	o := New(stream, nil, nil, nil, guard.New(guard.Policy{
		MaxAttachmentBytes: 4,
		AllowedMediaGlobs:  []string{"image/*"},
	}), obs)
	o.offline = func() bool { return false }

	_, err := o.Run(context.Background(), Request{
		Template: testTemplate,
		Values:   catalog.Values{Input: "topic"},
		Image:    &provider.Attachment{Data: []byte("too big"), MediaType: "image/png"},
	})
	if err == nil {
		t.Fatal("expected policy violation")
	}
	if len(stream.Requests) != 0 {
		t.Error("expected stream not opened for a blocked request")
	}
}
