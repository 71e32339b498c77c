package posts

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeComponent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello-world", "hello-world"},
		{"my post", "my%20post"},
		{"a&b=c?d#e/f", "a%26b%3Dc%3Fd%23e%2Ff"},
		{"keep!~*'()._-", "keep!~*'()._-"},
		{"100%", "100%25"},
		{"a+b", "a%2Bb"},
		{"中文", "%E4%B8%AD%E6%96%87"},
		{"", ""},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			require.Equal(t, tc.want, EncodeComponent(tc.in))
		})
	}
}

func TestEncodeComponent_RoundTrips(t *testing.T) {
	for _, s := range []string{"my post", "C++ & Go", "日本語 メモ", "50% off?", "a/b\\c"} {
		decoded, err := url.PathUnescape(EncodeComponent(s))
		require.NoError(t, err)
		require.Equal(t, s, decoded)
	}
}

func TestSlug(t *testing.T) {
	require.Equal(t, "hello-world", Slug("hello-world.md", false))
	require.Equal(t, "guide", Slug("guide.mdx", false))
	require.Equal(t, "v1.2-notes", Slug("v1.2-notes.md", false))
	require.Equal(t, "my%20post", Slug("my post.md", false))
}

func TestSlug_UnicodeNormalization(t *testing.T) {
	decomposed := "cafe\u0301.md"

	require.Equal(t, "cafe%CC%81", Slug(decomposed, false))
	require.Equal(t, "caf%C3%A9", Slug(decomposed, true))
}
