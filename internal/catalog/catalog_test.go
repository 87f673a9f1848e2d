package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SergeyBogomolovv/sms-order-service/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := catalog.Default()

	assert.True(t, c.HasService("tg"))
	assert.True(t, c.HasCountry("0"))
	assert.False(t, c.HasService("xx"))
	assert.False(t, c.HasCountry("999"))

	assert.Equal(t, "Telegram", c.ServiceName("tg"))
	assert.Equal(t, "Russia", c.CountryName("0"))
	assert.Len(t, c.Services(), 7)
	assert.Len(t, c.Countries(), 5)
}

func TestCatalog_NameFallback(t *testing.T) {
	c := catalog.Default()
	assert.Equal(t, "xx", c.ServiceName("xx"))
	assert.Equal(t, "999", c.CountryName("999"))
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	c := catalog.Default()

	services := c.Services()
	services["tg"] = "changed"
	delete(services, "wa")

	assert.Equal(t, "Telegram", c.ServiceName("tg"))
	assert.True(t, c.HasService("wa"))
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{
			name: "valid",
			data: "[services]\nab = \"Abc\"\n[countries]\n\"1\" = \"Ukraine\"\n",
		},
		{
			name:    "no countries",
			data:    "[services]\nab = \"Abc\"\n",
			wantErr: true,
		},
		{
			name:    "broken toml",
			data:    "[services\n",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := catalog.Parse([]byte(tc.data))
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Abc", c.ServiceName("ab"))
			assert.Equal(t, "Ukraine", c.CountryName("1"))
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte("[services]\nfb = \"Facebook\"\n[countries]\n\"16\" = \"United Kingdom\"\n"), 0o644))

	c, err := catalog.Load(path)
	require.NoError(t, err)
	assert.True(t, c.HasService("fb"))
	assert.False(t, c.HasService("tg"))

	c, err = catalog.Load("")
	require.NoError(t, err)
	assert.True(t, c.HasService("tg"))

	_, err = catalog.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
