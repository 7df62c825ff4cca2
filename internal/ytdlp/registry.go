package ytdlp

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	goytdlp "github.com/lrstanley/go-ytdlp"
	"github.com/sirupsen/logrus"
)

const registryTimeout = 10 * time.Second

// SiteRegistry answers site-support queries from yt-dlp's extractor
// list. The list is fetched once, lazily; any failure is reported to the
// caller, which treats the registry as unavailable and stays permissive.
// The catch-all "generic" extractor is ignored so that unknown hosts are
// actually reported as unsupported.
type SiteRegistry struct {
	once  sync.Once
	names []string
	err   error
}

// NewSiteRegistry creates an empty registry; the extractor list loads on
// first use.
func NewSiteRegistry() *SiteRegistry {
	return &SiteRegistry{}
}

// IsSupported reports whether any yt-dlp extractor matches the host of
// rawURL. The match is best-effort by host label.
func (r *SiteRegistry) IsSupported(rawURL string) (bool, error) {
	r.once.Do(r.load)
	if r.err != nil {
		return false, r.err
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false, err
	}

	for _, label := range hostLabels(parsed.Host) {
		for _, name := range r.names {
			if name == label {
				return true, nil
			}
		}
	}
	return false, nil
}

func (r *SiteRegistry) load() {
	ctx, cancel := context.WithTimeout(context.Background(), registryTimeout)
	defer cancel()

	result, err := goytdlp.New().ListExtractors(ctx)
	if err != nil {
		r.err = err
		logrus.WithField("component", "ytdlp").WithError(err).
			Debug("extractor list unavailable, site checks permissive")
		return
	}

	for _, line := range strings.Split(result.Stdout, "\n") {
		name := strings.ToLower(strings.TrimSpace(line))
		if name == "" || name == "generic" {
			continue
		}
		// Extractor variants like "youtube:tab" share the site name.
		if idx := strings.IndexByte(name, ':'); idx > 0 {
			name = name[:idx]
		}
		r.names = append(r.names, name)
	}
}

// hostLabels returns the candidate site labels of a host: the full host
// without the www. prefix, plus each dot-separated label.
func hostLabels(host string) []string {
	host = strings.ToLower(host)
	if h, _, ok := strings.Cut(host, ":"); ok {
		host = h
	}
	host = strings.TrimPrefix(host, "www.")

	labels := []string{host}
	labels = append(labels, strings.Split(host, ".")...)
	return labels
}
