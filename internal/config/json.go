package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON-friendly field
// types; durations accept both "30s"-style strings and nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Log struct {
		Console bool   `json:"console"`
		FileOut bool   `json:"file_out"`
		Dir     string `json:"dir"`
	} `json:"log,omitempty"`

	AccessLog struct {
		Console bool   `json:"console"`
		FileOut bool   `json:"file_out"`
		Dir     string `json:"dir"`
		Tag     string `json:"tag"`
	} `json:"access_log,omitempty"`

	Pipeline struct {
		Denylist    []string `json:"denylist"`
		ExemptPaths []string `json:"exempt_paths"`
		RPS         float64  `json:"rps"`
		Burst       int      `json:"burst"`
	} `json:"pipeline,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Log: Log{
			Console: jsonCfg.Log.Console,
			FileOut: jsonCfg.Log.FileOut,
			Dir:     jsonCfg.Log.Dir,
		},
		AccessLog: AccessLog{
			Console: jsonCfg.AccessLog.Console,
			FileOut: jsonCfg.AccessLog.FileOut,
			Dir:     jsonCfg.AccessLog.Dir,
			Tag:     jsonCfg.AccessLog.Tag,
		},
		Pipeline: Pipeline{
			Denylist:    jsonCfg.Pipeline.Denylist,
			ExemptPaths: jsonCfg.Pipeline.ExemptPaths,
			RPS:         jsonCfg.Pipeline.RPS,
			Burst:       jsonCfg.Pipeline.Burst,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
