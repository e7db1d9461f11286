package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/Aashish23092/visa-document-scanner/logger"
)

// Defaults for the scan pipeline.
const (
	DefaultServerPort      = "8080"
	DefaultTessdataPrefix  = "/usr/share/tesseract-ocr/5/tessdata/"
	DefaultOCRLanguages    = "eng+ara"
	DefaultMaxFileSize     = 10 * 1024 * 1024 // 10 MiB
	DefaultPDFRenderScale  = 2.0
	DefaultUpscaleFactor   = 2
	DefaultContrast        = 1.2
	DefaultThreshold       = 128
	DefaultMinTextLength   = 10
	DefaultMaxCanvasPixels = 64 * 1024 * 1024
	envPrefix              = "VISASCAN"
)

type Config struct {
	ServerPort        string
	TesseractDataPath string
	OCRLanguages      []string
	MaxFileSize       int64

	PDFRenderScale  float64
	MaxCanvasPixels int64
	UpscaleFactor   int
	Contrast        float64
	Threshold       int
	MinTextLength   int

	PreferPDFTextLayer bool
	DecodeBarcodes     bool

	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

// LoadConfig reads configuration from VISASCAN_* environment variables.
func LoadConfig() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("server_port", DefaultServerPort)
	v.SetDefault("tessdata_prefix", DefaultTessdataPrefix)
	v.SetDefault("ocr_languages", DefaultOCRLanguages)
	v.SetDefault("max_file_size", DefaultMaxFileSize)
	v.SetDefault("pdf_render_scale", DefaultPDFRenderScale)
	v.SetDefault("max_canvas_pixels", DefaultMaxCanvasPixels)
	v.SetDefault("upscale_factor", DefaultUpscaleFactor)
	v.SetDefault("contrast", DefaultContrast)
	v.SetDefault("threshold", DefaultThreshold)
	v.SetDefault("min_text_length", DefaultMinTextLength)
	v.SetDefault("prefer_pdf_text_layer", false)
	v.SetDefault("decode_barcodes", true)

	logDefaults := logger.DefaultConfig()
	v.SetDefault("log_level", logDefaults.Level)
	v.SetDefault("log_format", logDefaults.Format)
	v.SetDefault("log_time_format", logDefaults.TimeFormat)
	v.SetDefault("log_output", logDefaults.Output)

	cfg := &Config{
		ServerPort:         v.GetString("server_port"),
		TesseractDataPath:  v.GetString("tessdata_prefix"),
		OCRLanguages:       splitLanguages(v.GetString("ocr_languages")),
		MaxFileSize:        v.GetInt64("max_file_size"),
		PDFRenderScale:     v.GetFloat64("pdf_render_scale"),
		MaxCanvasPixels:    v.GetInt64("max_canvas_pixels"),
		UpscaleFactor:      v.GetInt("upscale_factor"),
		Contrast:           v.GetFloat64("contrast"),
		Threshold:          v.GetInt("threshold"),
		MinTextLength:      v.GetInt("min_text_length"),
		PreferPDFTextLayer: v.GetBool("prefer_pdf_text_layer"),
		DecodeBarcodes:     v.GetBool("decode_barcodes"),
		LogLevel:           v.GetString("log_level"),
		LogFormat:          v.GetString("log_format"),
		LogTimeFormat:      v.GetString("log_time_format"),
		LogOutput:          v.GetString("log_output"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate rejects values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.MaxFileSize <= 0 {
		return fmt.Errorf("max_file_size must be positive, got %d", c.MaxFileSize)
	}
	if c.PDFRenderScale <= 0 {
		return fmt.Errorf("pdf_render_scale must be positive, got %v", c.PDFRenderScale)
	}
	if c.MaxCanvasPixels <= 0 {
		return fmt.Errorf("max_canvas_pixels must be positive, got %d", c.MaxCanvasPixels)
	}
	if c.UpscaleFactor < 1 {
		return fmt.Errorf("upscale_factor must be at least 1, got %d", c.UpscaleFactor)
	}
	if c.Contrast <= 0 {
		return fmt.Errorf("contrast must be positive, got %v", c.Contrast)
	}
	if c.Threshold < 0 || c.Threshold > 255 {
		return fmt.Errorf("threshold must be within 0..255, got %d", c.Threshold)
	}
	if c.MinTextLength < 0 {
		return fmt.Errorf("min_text_length must not be negative, got %d", c.MinTextLength)
	}
	if len(c.OCRLanguages) == 0 {
		return fmt.Errorf("ocr_languages must name at least one language")
	}
	return nil
}

// GetLoggerConfig returns the logging section of the configuration.
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

// splitLanguages accepts "eng+ara" or "eng,ara".
func splitLanguages(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '+' || r == ',' || r == ' '
	})
	langs := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			langs = append(langs, f)
		}
	}
	return langs
}
