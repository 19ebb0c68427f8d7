package urlutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonical(t *testing.T) {
	tests := map[string]string{
		"":                                        "",
		"  https://KOSHA.or.kr/rss#top ":          "https://kosha.or.kr/rss",
		"HTTP://example.com:80/a?b=1#c":           "http://example.com/a?b=1",
		"https://example.com:443/":                "https://example.com/",
		"https://example.com:8443/feed":           "https://example.com:8443/feed",
		"https://[::1]:443/x":                     "https://[::1]/x",
		"%zz#frag":                                "%zz",
		"https://www.moel.go.kr/news/list.do?x=1": "https://www.moel.go.kr/news/list.do?x=1",
	}
	for in, want := range tests {
		require.Equal(t, want, Canonical(in), in)
	}
}

func TestIsHTTP(t *testing.T) {
	require.True(t, IsHTTP("https://kosha.or.kr/rss"))
	require.True(t, IsHTTP("HTTP://example.com"))
	require.False(t, IsHTTP("ftp://example.com"))
	require.False(t, IsHTTP("/relative/path"))
	require.False(t, IsHTTP("https://"))
	require.False(t, IsHTTP(""))
}
