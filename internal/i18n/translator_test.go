package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslator_T(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		locale string
		key    string
		want   string
	}{
		{name: "english", locale: English, key: "hero.title", want: "Find Local Jobs and Services"},
		{name: "bengali", locale: Bengali, key: "hero.getStarted", want: "শুরু করুন"},
		{name: "hindi", locale: Hindi, key: "explore", want: "खोजें"},
		{name: "missing key falls back to key", locale: Bengali, key: "no.such.key", want: "no.such.key"},
		{name: "unsupported locale falls back to key", locale: "fr", key: "hero.title", want: "hero.title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, New(tt.locale).T(tt.key))
		})
	}
}

func TestTranslator_ZeroValue(t *testing.T) {
	t.Parallel()
	var tr Translator
	assert.Equal(t, "cta.title", tr.T("cta.title"))
	assert.Empty(t, tr.Locale())
}

func TestHindiCatalog_DistinctDescriptions(t *testing.T) {
	t.Parallel()
	tr := New(Hindi)
	assert.Equal(t, "अपने आस-पास के अवसरों और कुशल पेशेवरों से जुड़ें", tr.T("hero.description"))
	assert.Equal(t, "हमारा प्लेटफॉर्म स्थानीय अवसरों से जुड़ना आसान बनाता है", tr.T("howItWorks.description"))
}

func TestCatalogs_SameKeys(t *testing.T) {
	t.Parallel()
	en := Catalog(English)
	require.NotEmpty(t, en)
	for _, loc := range []string{Bengali, Hindi} {
		other := Catalog(loc)
		assert.Len(t, other, len(en), "locale %s", loc)
		for key := range en {
			assert.Contains(t, other, key, "locale %s", loc)
		}
	}
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	t.Parallel()
	c := Catalog(English)
	c["hero.title"] = "changed"
	assert.Equal(t, "Find Local Jobs and Services", New(English).T("hero.title"))
	assert.Nil(t, Catalog("de"))
}

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{header: "bn-BD,bn;q=0.9,en;q=0.5", want: Bengali, ok: true},
		{header: "hi-IN", want: Hindi, ok: true},
		{header: "en-US,en;q=0.9", want: English, ok: true},
		{header: "fr-FR,hi;q=0.4", want: Hindi, ok: true},
		{header: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			t.Parallel()
			got, ok := Match(tt.header)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "bn", Normalize(" BN-bd "))
	assert.Equal(t, "hi", Normalize("hi_IN"))
	assert.Equal(t, "en", Normalize("en"))
	assert.Empty(t, Normalize("fr"))
	assert.Empty(t, Normalize(""))
}

func TestLocalesAndDisplayNames(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"en", "bn", "hi"}, Locales())
	assert.Equal(t, "বাংলা", DisplayName(Bengali))
	assert.Equal(t, "हिन्दी", DisplayName(Hindi))
	assert.Equal(t, "xx", DisplayName("xx"))
	assert.True(t, Supported(English))
	assert.False(t, Supported("EN"))
}
