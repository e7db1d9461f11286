package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, DefaultServerPort, cfg.ServerPort)
	assert.Equal(t, []string{"eng", "ara"}, cfg.OCRLanguages)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxFileSize)
	assert.Equal(t, 2.0, cfg.PDFRenderScale)
	assert.Equal(t, 2, cfg.UpscaleFactor)
	assert.Equal(t, 1.2, cfg.Contrast)
	assert.Equal(t, 128, cfg.Threshold)
	assert.Equal(t, 10, cfg.MinTextLength)
	assert.False(t, cfg.PreferPDFTextLayer)
	assert.True(t, cfg.DecodeBarcodes)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("VISASCAN_SERVER_PORT", "9090")
	t.Setenv("VISASCAN_OCR_LANGUAGES", "eng,fra")
	t.Setenv("VISASCAN_PREFER_PDF_TEXT_LAYER", "true")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, []string{"eng", "fra"}, cfg.OCRLanguages)
	assert.True(t, cfg.PreferPDFTextLayer)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("VISASCAN_MAX_FILE_SIZE", "0")

	_, err := load(viper.New())
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			OCRLanguages:    []string{"eng"},
			MaxFileSize:     1,
			PDFRenderScale:  1,
			MaxCanvasPixels: 1,
			UpscaleFactor:   1,
			Contrast:        1,
			Threshold:       128,
		}
	}

	assert.NoError(t, valid().Validate())

	c := valid()
	c.OCRLanguages = nil
	assert.Error(t, c.Validate())

	c = valid()
	c.Threshold = 300
	assert.Error(t, c.Validate())

	c = valid()
	c.UpscaleFactor = 0
	assert.Error(t, c.Validate())
}
