package htmlutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html/atom"
)

const fragment = `<footer id="footer" class="nav-footer">
	<a href="/" class="nav-home"><img src="/logo.png" alt="Logo"></a>
	<div><h5>Docs</h5><a href="/docs/why">Introduction</a></div>
	<a href="https://example.org" target="_blank" rel="noreferrer noopener"> Example </a>
	<a name="anchor-without-href">skip</a>
</footer>`

func TestFind(t *testing.T) {
	root, err := Parse(strings.NewReader(fragment))
	require.NoError(t, err)

	footer, ok := FindOne(root, WithIDEqual("footer"))
	require.True(t, ok)
	assert.Equal(t, "footer", footer.Data)

	home, ok := FindOne(root, WithClass("nav-home"))
	require.True(t, ok)
	img, ok := FindOne(home, WithTag(atom.Img))
	require.True(t, ok)
	src, _ := Attr(img, "src")
	assert.Equal(t, "/logo.png", src)

	_, ok = FindOne(root, WithIDEqual("missing"))
	assert.False(t, ok)

	assert.Len(t, FindAll(root, WithTag(atom.A)), 4)

	h5, ok := FindOne(root, WithTag(atom.H5))
	require.True(t, ok)
	assert.Equal(t, "Docs", Text(h5))
}

func TestLinks(t *testing.T) {
	root, err := Parse(strings.NewReader(fragment))
	require.NoError(t, err)

	links := Links(root)
	require.Len(t, links, 3)

	assert.Equal(t, Link{Href: "/"}, links[0])
	assert.Equal(t, Link{Href: "/docs/why", Text: "Introduction"}, links[1])
	assert.False(t, links[1].External())
	assert.False(t, links[1].OpensNewContext())

	assert.Equal(t, "Example", links[2].Text)
	assert.True(t, links[2].External())
	assert.True(t, links[2].OpensNewContext())
	assert.Equal(t, "noreferrer noopener", links[2].Rel)
}

func TestLink_External(t *testing.T) {
	tests := []struct {
		href string
		want bool
	}{
		{href: "https://github.com/phpseclib/phpseclib", want: true},
		{href: "http://phpseclib.sourceforge.net/", want: true},
		{href: "/site/docs/why", want: false},
		{href: "docs/why", want: false},
		{href: "mailto:someone@example.org", want: false},
		{href: "https:///no-host", want: false},
		{href: "%zz", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.href, func(t *testing.T) {
			assert.Equal(t, tt.want, Link{Href: tt.href}.External())
		})
	}
}
