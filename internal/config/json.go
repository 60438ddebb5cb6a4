package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and a
// string-friendly Duration type, so operators can keep credentials in a file
// instead of the environment.
type StructuredJSONConfig struct {
	QBO struct {
		ClientID       string   `json:"client_id"`
		ClientSecret   string   `json:"client_secret"`
		RefreshToken   string   `json:"refresh_token"`
		RealmID        string   `json:"realm_id"`
		Mode           string   `json:"mode"`
		TokenURL       string   `json:"token_url"`
		RevokeURL      string   `json:"revoke_url"`
		APIBaseURL     string   `json:"api_base_url"`
		RequestTimeout Duration `json:"request_timeout"`
		HistoryDB      string   `json:"history_db"`
	} `json:"qbo,omitempty"`

	Output struct {
		QuotesDir string `json:"quotes_dir"`
		AuditLog  string `json:"audit_log"`
	} `json:"output,omitempty"`
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
		QBO: QBO{
			ClientID:       jsonCfg.QBO.ClientID,
			ClientSecret:   jsonCfg.QBO.ClientSecret,
			RefreshToken:   jsonCfg.QBO.RefreshToken,
			RealmID:        jsonCfg.QBO.RealmID,
			Mode:           jsonCfg.QBO.Mode,
			TokenURL:       jsonCfg.QBO.TokenURL,
			RevokeURL:      jsonCfg.QBO.RevokeURL,
			APIBaseURL:     jsonCfg.QBO.APIBaseURL,
			RequestTimeout: time.Duration(jsonCfg.QBO.RequestTimeout),
			HistoryDB:      jsonCfg.QBO.HistoryDB,
		},
		Output: Output{
			QuotesDir: jsonCfg.Output.QuotesDir,
			AuditLog:  jsonCfg.Output.AuditLog,
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
