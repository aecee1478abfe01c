package commands

import (
	"net"
	"time"
)

type EmailCheckResult struct {
	Email   string   `json:"email"`
	Valid   bool     `json:"valid"`
	Score   float64  `json:"confidence_score"`
	Checks  []string `json:"checks_run"`
	Passed  []string `json:"checks_passed"`
	Version int      `json:"version"`
}

type PhoneCheckResult struct {
	Phone               string  `json:"phone"`
	Valid               bool    `json:"valid"`
	Score               float64 `json:"confidence_score"`
	InternationalFormat string  `json:"international_format,omitempty"`
	CountryCode         string  `json:"country_code,omitempty"`
	LineType            string  `json:"line_type,omitempty"`
	Version             int     `json:"version"`
}

type CheckSettings struct {
	Format string
	CSV    csvOptions
	Check  checkOptions
	Phone  phoneOptions
}

type checkOptions struct {
	Resolver net.IP
	TTL      time.Duration
}

type phoneOptions struct {
	Regions []string
}

type csvOptions struct {
	skipRows uint64
	column   uint64
}
