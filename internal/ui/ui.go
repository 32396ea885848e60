package ui

import (
	"github.com/sahayakai/sahayak/internal/orchestrate"
	"github.com/sahayakai/sahayak/internal/video"
)

type UI interface {
	UpdateStatus(status string)
	SetText(text string)
	SetImage(uri string)
	SetImageError(reason string)
	SetVideos(suggestions []video.Suggestion)
	Log(msg string)
}

type SilentUI struct{}

func (s SilentUI) UpdateStatus(status string)               {}
func (s SilentUI) SetText(text string)                      {}
func (s SilentUI) SetImage(uri string)                      {}
func (s SilentUI) SetImageError(reason string)              {}
func (s SilentUI) SetVideos(suggestions []video.Suggestion) {}
func (s SilentUI) Log(msg string)                           {}

// Publisher adapts a UI to the orchestrator's observer interface.
type Publisher struct {
	UI UI
}

func (p Publisher) PublishPartial(res orchestrate.Result) {
	p.UI.SetText(res.Text)
}

func (p Publisher) PublishFinal(res orchestrate.Result, err error) {
	p.UI.SetText(res.Text)
	if err != nil {
		p.UI.UpdateStatus("Generation failed: " + err.Error())
		return
	}
	if res.ImageURI != "" {
		p.UI.SetImage(res.ImageURI)
	}
	if res.ImageError != "" {
		p.UI.SetImageError(res.ImageError)
	}
	if len(res.Videos) > 0 {
		p.UI.SetVideos(res.Videos)
	}
	p.UI.UpdateStatus("Done")
}
