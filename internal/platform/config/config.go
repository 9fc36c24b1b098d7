package config

import (
	"os"
	"strings"
	"time"

	"sscs-bulk-scan/internal/domain"
)

// Config captures everything the server needs at start. Reference data
// and event ids are deployment configuration; the lookup tables themselves
// ship as injected defaults.
type Config struct {
	Addr string

	CCDBaseURL     string
	CaseTypeID     string
	PostcodeAPIURL string
	RedisURL       string

	// ReadyToListOffices is the allow-list of office codes whose cases are
	// created straight into the ready-to-list stage.
	ReadyToListOffices []string

	CaseEvent domain.CaseEvent

	AuditBuffer     int
	ShutdownTimeout time.Duration
}

// FromEnv builds the config from environment variables so main stays lean.
func FromEnv() Config {
	cfg := Config{
		Addr:            envOr("SSCS_ADDR", ":8080"),
		CCDBaseURL:      envOr("CCD_API_URL", "http://localhost:4452"),
		CaseTypeID:      envOr("CCD_CASE_TYPE_ID", "Benefit"),
		PostcodeAPIURL:  envOr("POSTCODE_API_URL", "https://api.postcodes.io"),
		RedisURL:        os.Getenv("REDIS_URL"),
		CaseEvent:       domain.DefaultCaseEvent(),
		AuditBuffer:     256,
		ShutdownTimeout: 10 * time.Second,
	}

	cfg.ReadyToListOffices = splitList(envOr("READY_TO_LIST_OFFICES", "1,Balham DRT,Birkenhead LM DRT"))

	if v := os.Getenv("EVENT_ID_CASE_CREATED"); v != "" {
		cfg.CaseEvent.CaseCreatedEventID = v
	}
	if v := os.Getenv("EVENT_ID_VALID_APPEAL_CREATED"); v != "" {
		cfg.CaseEvent.ValidAppealCreatedEventID = v
	}
	if v := os.Getenv("EVENT_ID_INCOMPLETE_APPLICATION"); v != "" {
		cfg.CaseEvent.IncompleteApplicationEventID = v
	}
	if v := os.Getenv("EVENT_ID_NON_COMPLIANT"); v != "" {
		cfg.CaseEvent.NonCompliantEventID = v
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitList parses a comma-separated list, trimming whitespace and
// dropping empties and duplicates while preserving order.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	seen := make(map[string]struct{}, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed == "" {
			continue
		}
		if _, dup := seen[trimmed]; dup {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
