package service

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"golang.org/x/net/html/charset"
)

// DefaultMaxEntries caps a feed when its source sets no limit.
const DefaultMaxEntries = 50

// nearDuplicateRatio is the normalized edit distance below which two titles
// are treated as the same story.
const nearDuplicateRatio = 0.15

// maxFeedBytes bounds the response body read from a feed server.
const maxFeedBytes = 4 << 20

// FeedSource is one configured RSS feed.
type FeedSource struct {
	ID         string
	Title      string
	URL        string
	MaxEntries int
}

// FeedEntry is one sanitized feed item.
type FeedEntry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	Summary   string    `json:"summary"`
	Published time.Time `json:"published"`
}

// FeedService fetches RSS 2.0 feeds and caches the last good result.
type FeedService struct {
	Client *http.Client
	Cache  StorageService
	Log    zerolog.Logger

	policy *bluemonday.Policy
}

func NewFeedService(client *http.Client, cache StorageService, log zerolog.Logger) *FeedService {
	if client == nil {
		client = http.DefaultClient
	}
	return &FeedService{
		Client: client,
		Cache:  cache,
		Log:    log,
		policy: bluemonday.StrictPolicy(),
	}
}

// FeedCacheKey is the storage key holding the cached entries of a feed.
func FeedCacheKey(feedID string) string {
	return "feed:" + feedID
}

// Fetch downloads src and returns its entries. When the download or parse
// fails, the cached entries are returned instead; the error is reported only
// when no cache exists.
func (s *FeedService) Fetch(ctx context.Context, src FeedSource) ([]FeedEntry, error) {
	entries, err := s.download(ctx, src)
	if err == nil {
		s.store(ctx, src.ID, entries)
		return entries, nil
	}
	s.Log.Warn().Err(err).Str("feed", src.ID).Msg("feed fetch failed; trying cache")
	cached, ok := s.cached(ctx, src.ID)
	if !ok {
		return nil, err
	}
	return cached, nil
}

func (s *FeedService) download(ctx context.Context, src FeedSource) ([]FeedEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("feed %s: %w", src.ID, err)
	}
	req.Header.Set("Accept", "application/rss+xml, application/xml;q=0.9, */*;q=0.1")
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed %s: %w", src.ID, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed %s: unexpected status %s", src.ID, resp.Status)
	}
	items, err := parseRSS(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, fmt.Errorf("feed %s: %w", src.ID, err)
	}
	limit := src.MaxEntries
	if limit <= 0 {
		limit = DefaultMaxEntries
	}
	return s.entries(items, limit), nil
}

func (s *FeedService) entries(items []rssItem, limit int) []FeedEntry {
	out := make([]FeedEntry, 0, min(len(items), limit))
	for _, it := range items {
		if len(out) == limit {
			break
		}
		title := s.clean(it.Title)
		if title == "" {
			continue
		}
		if isNearDuplicate(title, out) {
			continue
		}
		key := strings.TrimSpace(it.GUID)
		if key == "" {
			key = strings.TrimSpace(it.Link)
		}
		if key == "" {
			key = title
		}
		out = append(out, FeedEntry{
			ID:        uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String(),
			Title:     title,
			Link:      strings.TrimSpace(it.Link),
			Summary:   s.clean(it.Description),
			Published: parsePubDate(it.PubDate),
		})
	}
	return out
}

// clean strips markup and collapses whitespace.
func (s *FeedService) clean(in string) string {
	text := html.UnescapeString(s.policy.Sanitize(in))
	return strings.Join(strings.Fields(text), " ")
}

func (s *FeedService) store(ctx context.Context, feedID string, entries []FeedEntry) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return
	}
	if _, err := s.Cache.Set(ctx, FeedCacheKey(feedID), string(data)); err != nil {
		s.Log.Warn().Err(err).Str("feed", feedID).Msg("feed cache write failed")
	}
}

func (s *FeedService) cached(ctx context.Context, feedID string) ([]FeedEntry, bool) {
	if s.Cache == nil {
		return nil, false
	}
	raw, err := s.Cache.Get(ctx, FeedCacheKey(feedID))
	if err != nil || strings.TrimSpace(raw) == "" {
		return nil, false
	}
	var entries []FeedEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, false
	}
	return entries, true
}

func isNearDuplicate(title string, kept []FeedEntry) bool {
	folded := strings.ToLower(title)
	for _, e := range kept {
		other := strings.ToLower(e.Title)
		longest := max(utf8.RuneCountInString(folded), utf8.RuneCountInString(other))
		if longest == 0 {
			continue
		}
		d := levenshtein.ComputeDistance(folded, other)
		if float64(d)/float64(longest) < nearDuplicateRatio {
			return true
		}
	}
	return false
}

type rssDocument struct {
	XMLName xml.Name `xml:"rss"`
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	GUID        string `xml:"guid"`
	PubDate     string `xml:"pubDate"`
}

var errNotRSS = errors.New("not an RSS 2.0 document")

func parseRSS(r io.Reader) ([]rssItem, error) {
	var doc rssDocument
	dec := xml.NewDecoder(r)
	dec.Strict = false
	dec.CharsetReader = charset.NewReaderLabel
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errNotRSS
		}
		return nil, fmt.Errorf("%w: %v", errNotRSS, err)
	}
	return doc.Channel.Items, nil
}

var pubDateLayouts = []string{time.RFC1123Z, time.RFC1123, "Mon, 2 Jan 2006 15:04:05 -0700", time.RFC3339}

func parsePubDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range pubDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
