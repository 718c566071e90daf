package cmd

import (
	"strings"

	"fortio.org/safecast"

	"github.com/msto63/textkit/foundation/core/config"
	mdwlog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/utils/stringx"
	"github.com/msto63/textkit/foundation/utils/timex"
)

// Config keys
const (
	keyLogLevel      = "log.level"
	keyLogFormat     = "log.format"
	keyLineSeparator = "format.line_separator"
	keyPrecision     = "format.precision"
	keyPadWidth      = "format.pad_width"
	keyGranularity   = "stamp.granularity"
	keyCasePolicy    = "case.policy"
	keyCharset       = "encoding.charset"
)

const (
	envPrefix = "TEXTX"
	appName   = "textx"

	defaultPrecision = 2
	defaultPadWidth  = 2
	maxPrecision     = 20
	maxPadWidth      = 64
)

var defaults = map[string]interface{}{
	"log": map[string]interface{}{
		"level":  "warn",
		"format": "text",
	},
	"format": map[string]interface{}{
		"line_separator": "platform",
		"precision":      defaultPrecision,
		"pad_width":      defaultPadWidth,
	},
	"stamp":    map[string]interface{}{"granularity": "millisecond"},
	"case":     map[string]interface{}{"policy": "sentence"},
	"encoding": map[string]interface{}{"charset": "UTF-8"},
}

var settingRules = config.ValidationRules{
	keyLineSeparator: {OneOf: []string{"lf", "crlf", "platform"}},
	keyPrecision:     {Type: "int", Min: config.IntPtr(0), Max: config.IntPtr(maxPrecision)},
	keyPadWidth:      {Type: "int", Min: config.IntPtr(0), Max: config.IntPtr(maxPadWidth)},
}

var lineSeparators = map[string]string{
	"lf":       "\n",
	"crlf":     "\r\n",
	"platform": stringx.LineSeparator,
}

// Settings are the effective values of one invocation
type Settings struct {
	Formatter   stringx.Formatter
	Precision   uint
	PadWidth    uint
	Granularity timex.Granularity
	CasePolicy  stringx.CasePolicy
	Charset     string
}

func defaultSettings() Settings {
	return Settings{
		Formatter:   stringx.DefaultFormatter(),
		Precision:   defaultPrecision,
		PadWidth:    defaultPadWidth,
		Granularity: timex.UpToMillisecond,
		CasePolicy:  stringx.CaseSentence,
		Charset:     "UTF-8",
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadWithOptions(path, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: envPrefix,
			Defaults:  defaults,
		})
	}

	opts := config.DefaultDiscoveryOptions(appName)
	opts.EnvPrefix = envPrefix
	opts.Defaults = defaults
	return config.Discover(opts)
}

// resolveSettings reads every setting from cfg. Values that fail
// validation or parsing are logged and replaced by their default.
func resolveSettings(cfg *config.Config, logger *mdwlog.Logger) Settings {
	s := defaultSettings()

	invalid := make(map[string]bool)
	result := cfg.Validate(settingRules)
	for i, key := range result.Keys {
		invalid[key] = true
		logger.Warn("config value ignored", mdwlog.Fields{"key": key, "reason": result.Errors[i]})
	}

	if !invalid[keyLineSeparator] {
		s.Formatter = stringx.Formatter{LineSeparator: lineSeparators[normalize(cfg.GetString(keyLineSeparator))]}
	}
	if !invalid[keyPrecision] {
		if p, err := safecast.Conv[uint](cfg.GetInt(keyPrecision, defaultPrecision)); err == nil {
			s.Precision = p
		}
	}
	if !invalid[keyPadWidth] {
		if w, err := safecast.Conv[uint](cfg.GetInt(keyPadWidth, defaultPadWidth)); err == nil {
			s.PadWidth = w
		}
	}

	if g, err := timex.ParseGranularity(cfg.GetString(keyGranularity)); err == nil {
		s.Granularity = g
	} else {
		logger.Warn("config value ignored", mdwlog.Fields{"key": keyGranularity, "reason": err.Error()})
	}

	if p, err := stringx.ParseCasePolicy(cfg.GetString(keyCasePolicy)); err == nil {
		s.CasePolicy = p
	} else {
		logger.Warn("config value ignored", mdwlog.Fields{"key": keyCasePolicy, "reason": err.Error()})
	}

	charset := cfg.GetString(keyCharset)
	if _, err := stringx.LookupEncoding(charset); err == nil {
		s.Charset = charset
	} else {
		logger.Warn("config value ignored", mdwlog.Fields{"key": keyCharset, "reason": err.Error()})
	}

	return s
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
