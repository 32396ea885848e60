package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/sahayakai/sahayak/internal/catalog"
	"github.com/sahayakai/sahayak/internal/guard"
	"github.com/sahayakai/sahayak/internal/history"
	"github.com/sahayakai/sahayak/internal/image"
	"github.com/sahayakai/sahayak/internal/observe"
	"github.com/sahayakai/sahayak/internal/orchestrate"
	"github.com/sahayakai/sahayak/internal/provider"
	"github.com/sahayakai/sahayak/internal/speech"
	"github.com/sahayakai/sahayak/internal/store"
	"github.com/sahayakai/sahayak/internal/ui"
	"github.com/sahayakai/sahayak/internal/video"
)

type Runner struct {
	Observer *observe.Observer
	Store    store.Storage
	Streamer provider.Streamer
	Images   image.Generator
	Videos   video.Searcher
	UI       ui.UI

	TemplateID int
	PackPath   string
	ImagePath  string
	AudioPath  string
	Speak      bool
}

func NewRunner(obs *observe.Observer, s store.Storage, streamer provider.Streamer, images image.Generator, videos video.Searcher, u ui.UI) *Runner {
	if u == nil {
		u = ui.SilentUI{}
	}
	return &Runner{
		Observer: obs,
		Store:    s,
		Streamer: streamer,
		Images:   images,
		Videos:   videos,
		UI:       u,
	}
}

func (r *Runner) Run(ctx context.Context) error {
	r.UI.UpdateStatus("Loading catalog...")

	cat := catalog.Builtin()
	if r.PackPath != "" {
		pack, err := catalog.LoadPack(r.PackPath)
		if err != nil {
			r.Observer.Log().Error().Err(err).Str("path", r.PackPath).Msg("Failed to load template pack")
			return err
		}
		cat = cat.WithPack(pack)
	}

	tpl, ok := cat.ByID(r.TemplateID)
	if !ok {
		err := fmt.Errorf("no template with id %d", r.TemplateID)
		r.Observer.Log().Error().Err(err).Msg("Unknown template")
		return err
	}

	values := r.resolveValues(tpl)

	imgAtt, err := loadAttachment(r.ImagePath)
	if err != nil {
		r.Observer.Log().Error().Err(err).Msg("Failed to read image attachment")
		return err
	}
	audAtt, err := loadAttachment(r.AudioPath)
	if err != nil {
		r.Observer.Log().Error().Err(err).Msg("Failed to read audio attachment")
		return err
	}

	hist := history.NewStore(r.Store, r.Observer)
	orch := orchestrate.New(r.Streamer, r.Images, r.Videos, hist, guard.New(guard.DefaultPolicy), r.Observer)
	orch.SetPublisher(ui.Publisher{UI: r.UI})

	r.UI.UpdateStatus("Generating...")
	res, err := orch.Run(ctx, orchestrate.Request{
		Template: tpl,
		Values:   values,
		Image:    imgAtt,
		Audio:    audAtt,
	})
	if err != nil {
		r.Observer.Log().Error().Err(err).Msg("Generation failed")
		return err
	}

	r.saveFieldState(tpl.ID, values)

	if r.Speak && tpl.SupportsSpeechPlayback {
		r.speakResult(ctx, res.Text)
	}

	return nil
}

// resolveValues merges the command-line flags over the template's saved
// field state, so repeated runs keep prior inputs unless overridden.
func (r *Runner) resolveValues(tpl catalog.Template) catalog.Values {
	values := catalog.Values{}
	if payload, err := r.Store.LoadFieldState(tpl.ID); err == nil && len(payload) > 0 {
		if err := json.Unmarshal(payload, &values); err != nil {
			r.Observer.Log().Warn().Err(err).Int("template", tpl.ID).Msg("discarding unreadable field state")
			values = catalog.Values{}
		}
	}

	if inputText != "" {
		values.Input = inputText
	}
	if secondaryText != "" {
		values.SecondaryInput = secondaryText
	}
	if languageName != "" {
		values.Language = languageName
	}
	if questionCount > 0 {
		values.QuestionCount = questionCount
	}
	return values
}

func (r *Runner) saveFieldState(templateID int, values catalog.Values) {
	payload, err := json.Marshal(values)
	if err != nil {
		return
	}
	if err := r.Store.SaveFieldState(templateID, payload); err != nil {
		r.Observer.Log().Warn().Err(err).Int("template", templateID).Msg("could not save field state")
	}
}

func (r *Runner) speakResult(ctx context.Context, text string) {
	synth := speech.Detect(r.Observer)
	if !synth.Available() {
		r.UI.Log("Speech playback unavailable on this host.")
		return
	}
	r.UI.UpdateStatus("Speaking...")
	if err := synth.Speak(ctx, text); err != nil {
		r.Observer.Log().Warn().Err(err).Msg("speech playback failed")
	}
}

// loadAttachment reads a file and sniffs its media type, preferring the
// extension and falling back to content detection.
func loadAttachment(path string) (*provider.Attachment, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	mediaType := mime.TypeByExtension(filepath.Ext(path))
	if mediaType == "" {
		mediaType = http.DetectContentType(data)
	}

	return &provider.Attachment{Data: data, MediaType: mediaType}, nil
}
