package news

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	articles []Article
	err      error
}

func (s *stubProvider) GetHeadlines(_ context.Context) ([]Article, error) {
	return s.articles, s.err
}

func fixedClock() time.Time {
	return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
}

func TestComposeNewsletter(t *testing.T) {
	articles := []Article{
		{Title: "KOSPI closes higher on chip rally", Description: "Semiconductor stocks led the gains.", Source: "Daily Finance"},
		{Title: "Fed holds rates steady", Description: "The central bank left its policy rate unchanged.", Source: "Wire"},
		{Title: "Bitcoin tops 70k", Description: "Crypto markets extended their run.", Source: "Coin Desk-ish"},
		{Title: "A fourth story", Description: "Should not make the cut.", Source: "Elsewhere"},
	}
	svc := NewService(&stubProvider{articles: articles})
	svc.Now = fixedClock

	nl, err := svc.ComposeNewsletter(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2025-06-01", nl.Date)
	require.Len(t, nl.Topics, 3)
	assert.Equal(t, "KOSPI closes higher on chip rally", nl.Topics[0].Title)
	assert.Contains(t, nl.Summary, "Fed holds rates steady")
	assert.NotContains(t, nl.Summary, "A fourth story")
	assert.Equal(t, []string{"Daily Finance", "Wire", "Coin Desk-ish"}, nl.Sources)
	assert.Equal(t, TermOfTheDay(fixedClock()), nl.Term)

	assert.Contains(t, nl.Topics[0].Tags, "kospi")
	assert.Contains(t, nl.Topics[1].Tags, "rate")
	assert.Contains(t, nl.Topics[2].Tags, "crypto")
}

func TestComposeNewsletter_FewerHeadlinesThanTopics(t *testing.T) {
	svc := NewService(&stubProvider{articles: []Article{
		{Title: "Lone headline", Description: "Nothing else happened today."},
	}})
	svc.Now = fixedClock

	nl, err := svc.ComposeNewsletter(context.Background())
	require.NoError(t, err)
	require.Len(t, nl.Topics, 1)
	assert.Equal(t, []string{"markets"}, nl.Topics[0].Tags)
}

func TestComposeNewsletter_NoHeadlines(t *testing.T) {
	svc := NewService(&stubProvider{})
	svc.Now = fixedClock

	_, err := svc.ComposeNewsletter(context.Background())
	assert.ErrorIs(t, err, ErrNewsUnavailable)
}

func TestComposeNewsletter_ProviderError(t *testing.T) {
	svc := NewService(&stubProvider{err: fmt.Errorf("%w: upstream status 503", ErrNewsUnavailable)})
	svc.Now = fixedClock

	_, err := svc.ComposeNewsletter(context.Background())
	assert.ErrorIs(t, err, ErrNewsUnavailable)
}

func TestTermOfTheDay_DeterministicPerDay(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	morning := TermOfTheDay(day.Add(9 * time.Hour))
	evening := TermOfTheDay(day.Add(21 * time.Hour))
	assert.Equal(t, morning, evening)

	next := TermOfTheDay(day.AddDate(0, 0, 1))
	assert.NotEqual(t, morning.Name, next.Name)
}

func TestHTTPProvider_GetHeadlines(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/headlines", r.URL.Path)
		fmt.Fprint(w, `{"articles":[{"title":"Markets rally","description":"Broad gains.","source":"Wire"}]}`)
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL)
	articles, err := p.GetHeadlines(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "Markets rally", articles[0].Title)
}

func TestHTTPProvider_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL)
	_, err := p.GetHeadlines(context.Background())
	assert.ErrorIs(t, err, ErrNewsUnavailable)
}
