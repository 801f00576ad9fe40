package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/printflow/printflow/internal/flagx"
	"github.com/printflow/printflow/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "30m"
// or as integer nanoseconds.
type JsonConfig struct {
	ServerURL         string         `json:"server_url"`
	RequestTimeout    timex.Duration `json:"request_timeout"`
	InactivityTimeout timex.Duration `json:"inactivity_timeout"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c/-config flag. Absent file path means no overlay. Only fields present in
// the JSON override the current values.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.InactivityTimeout.Duration != 0 {
		cfg.InactivityTimeout = time.Duration(jc.InactivityTimeout.Duration)
	}
}
