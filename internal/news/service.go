package news

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Newsletter is the composed daily briefing.
type Newsletter struct {
	Date    string   `json:"date"`
	Summary string   `json:"summary"`
	Topics  []Topic  `json:"topics"`
	Term    Term     `json:"term"`
	Sources []string `json:"sources"`
}

// Topic is one newsletter section derived from a headline.
type Topic struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

type Service struct {
	Provider Provider
	Now      func() time.Time
}

func NewService(p Provider) *Service {
	return &Service{Provider: p, Now: time.Now}
}

func (s *Service) Headlines(ctx context.Context) ([]Article, error) {
	return s.Provider.GetHeadlines(ctx)
}

const newsletterTopics = 3

// ComposeNewsletter builds the daily briefing from the current headlines.
// Composition is a pure template over fetched content; when the fetch fails
// the whole newsletter fails rather than shipping invented market commentary.
func (s *Service) ComposeNewsletter(ctx context.Context) (Newsletter, error) {
	articles, err := s.Provider.GetHeadlines(ctx)
	if err != nil {
		return Newsletter{}, err
	}
	if len(articles) == 0 {
		return Newsletter{}, fmt.Errorf("%w: no headlines", ErrNewsUnavailable)
	}

	now := s.Now()
	n := newsletterTopics
	if n > len(articles) {
		n = len(articles)
	}

	titles := make([]string, 0, n)
	topics := make([]Topic, 0, n)
	sources := make([]string, 0, n)
	for _, a := range articles[:n] {
		titles = append(titles, a.Title)
		topics = append(topics, Topic{
			Title:   a.Title,
			Content: a.Description,
			Tags:    tagsFor(a),
		})
		if a.Source != "" {
			sources = append(sources, a.Source)
		}
	}

	return Newsletter{
		Date:    now.Format("2006-01-02"),
		Summary: "Today's market briefing: " + strings.Join(titles, " / "),
		Topics:  topics,
		Term:    TermOfTheDay(now),
		Sources: sources,
	}, nil
}

// tagsFor derives simple topic tags from the headline text.
func tagsFor(a Article) []string {
	text := strings.ToLower(a.Title + " " + a.Description)
	known := []string{"kospi", "rate", "fed", "crypto", "bond", "stock", "inflation", "earnings"}

	var tags []string
	for _, k := range known {
		if strings.Contains(text, k) {
			tags = append(tags, k)
		}
	}
	if len(tags) == 0 {
		tags = []string{"markets"}
	}
	return tags
}
