// Package video suggests related videos for a topic. The adapter never
// raises: configuration absence, HTTP failures and parse failures all
// degrade to an empty list, logged internally.
package video

import (
	"context"

	"google.golang.org/api/option"
	youtube "google.golang.org/api/youtube/v3"

	"github.com/sahayakai/sahayak/internal/observe"
)

const defaultMaxResults = 3

// Suggestion is one suggested video, in upstream relevance order.
type Suggestion struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Searcher finds video suggestions for a query.
type Searcher interface {
	Search(ctx context.Context, query, languageCode string) []Suggestion
}

// YouTubeSearcher queries the YouTube Data API.
type YouTubeSearcher struct {
	svc        *youtube.Service
	maxResults int64
	obs        *observe.Observer
}

// NewYouTubeSearcher builds a searcher. An absent key is not an error; the
// searcher stays usable and every search returns an empty list.
func NewYouTubeSearcher(ctx context.Context, apiKey string, obs *observe.Observer) *YouTubeSearcher {
	s := &YouTubeSearcher{
		maxResults: defaultMaxResults,
		obs:        obs,
	}

	if apiKey == "" {
		obs.Log().Warn().Msg("YouTube API key is not configured, video suggestions will be unavailable")
		return s
	}

	svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		obs.Log().Warn().Err(err).Msg("failed to create YouTube client, video suggestions will be unavailable")
		return s
	}

	s.svc = svc
	return s
}

// Search returns up to maxResults suggestions in relevance order, or an
// empty list on any failure.
func (s *YouTubeSearcher) Search(ctx context.Context, query, languageCode string) []Suggestion {
	if s.svc == nil {
		return nil
	}

	call := s.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(s.maxResults).
		RelevanceLanguage(languageCode)

	resp, err := call.Context(ctx).Do()
	if err != nil {
		s.obs.Log().Warn().Err(err).Str("query", query).Msg("video search failed")
		return nil
	}

	var out []Suggestion
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		out = append(out, Suggestion{
			Title: item.Snippet.Title,
			URL:   "https://www.youtube.com/watch?v=" + item.Id.VideoId,
		})
		if len(out) == int(s.maxResults) {
			break
		}
	}
	return out
}

// StubSearcher returns a fixed suggestion list for testing.
type StubSearcher struct {
	Suggestions []Suggestion
	Calls       int
}

func (s *StubSearcher) Search(ctx context.Context, query, languageCode string) []Suggestion {
	s.Calls++
	return s.Suggestions
}
