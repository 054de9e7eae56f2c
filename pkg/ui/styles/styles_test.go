package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStylesLoad(t *testing.T) {
	require.NoError(t, LoadStylesFromData(embeddedStyles))

	for _, name := range requiredStyles {
		t.Run(name, func(t *testing.T) {
			_, ok := StyleRegistry[name]
			assert.True(t, ok, "style %s should be defined", name)
		})
	}
}

func TestStyleAttributes(t *testing.T) {
	require.NoError(t, LoadStylesFromData(embeddedStyles))

	assert.True(t, GetStyle("Success").GetBold())
	assert.True(t, GetStyle("FilePath").GetUnderline())
	assert.Equal(t, 1, GetStyle("Header").GetMarginBottom())
	assert.Equal(t, 1, GetStyle("Notice").GetPaddingLeft())
}

func TestLoadStylesFromDataInvalid(t *testing.T) {
	before := StyleRegistry
	err := LoadStylesFromData([]byte("styles: [unclosed"))
	require.Error(t, err)
	assert.Equal(t, len(before), len(StyleRegistry), "registry must survive a bad load")
}

func TestUnknownColorIsIgnored(t *testing.T) {
	style := buildStyle(StyleDef{Bold: true, Foreground: "nope"}, nil)
	assert.True(t, style.GetBold())
}

func TestGetStyleUnknown(t *testing.T) {
	assert.Equal(t, "plain", Render("DoesNotExist", "plain"))
}

func TestInitDefaultStyles(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, LoadStylesFromData(embeddedStyles)) })

	initDefaultStyles()
	assert.Len(t, StyleRegistry, len(requiredStyles))
}
