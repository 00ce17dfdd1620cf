/*
 *  Copyright (c) 2026, Zhezkazgan University. All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 */

package config

import (
	"fmt"
	"sync"

	"github.com/kelseyhightower/envconfig"
)

// Server holds the configuration parameters for the application.
type Server struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"DEBUG"`

	// Server configurations
	Port string `envconfig:"PORT" default:"8080"`

	// Content store configurations
	Content Content `envconfig:"CONTENT"`

	// Admin authentication configurations
	Admin Admin `envconfig:"ADMIN"`

	// Public API cache configurations
	Cache Cache `envconfig:"CACHE"`

	// LLM upstream configurations
	LLM LLM `envconfig:"LLM"`

	// Social publishing configurations
	Telegram  Telegram  `envconfig:"TELEGRAM"`
	Instagram Instagram `envconfig:"INSTAGRAM"`

	// WebSocket configurations
	WebSocket WebSocket `envconfig:"WEBSOCKET"`

	// TLS configurations
	TLS TLS `envconfig:"TLS"`
}

// Content holds content store configuration
type Content struct {
	// DataDir is the writable directory holding one JSON file per resource.
	DataDir string `envconfig:"DATA_DIR" default:"./data/content"`
	// SeedDir contains the bundled YAML documents written on first boot.
	SeedDir string `envconfig:"SEED_DIR" default:"./resources/seed"`
	// Locales is the set of supported translation catalog locales.
	Locales []string `envconfig:"LOCALES" default:"en,ru,kk"`
}

// Admin holds admin authentication configuration.
// At least one of Password or PasswordHash must be provided; the hash form is a
// bcrypt digest and takes precedence when both are set.
type Admin struct {
	Password     string `envconfig:"PASSWORD" default:""`
	PasswordHash string `envconfig:"PASSWORD_HASH" default:""`
	// SessionSecret signs the session token (HS256).
	SessionSecret string `envconfig:"SESSION_SECRET" default:"change-me-in-production"`
	// SessionTTL is the session lifetime in hours.
	SessionTTL int `envconfig:"SESSION_TTL_HOURS" default:"8"`
	// CookieSecure marks the session cookie Secure; disable for plain-HTTP local runs.
	CookieSecure bool `envconfig:"COOKIE_SECURE" default:"true"`
}

// Cache holds public API cache hint configuration
type Cache struct {
	MaxAge int `envconfig:"MAX_AGE" default:"300"` // seconds
}

// LLM holds upstream LLM proxy configuration
type LLM struct {
	BaseURL string `envconfig:"BASE_URL" default:"https://api.openai.com/v1"`
	APIKey  string `envconfig:"API_KEY" default:""`
	Model   string `envconfig:"MODEL" default:"gpt-4o-mini"`
	Timeout int    `envconfig:"TIMEOUT" default:"30"` // seconds
	Retries int    `envconfig:"RETRIES" default:"2"`
}

// Telegram holds Telegram Bot API publishing configuration
type Telegram struct {
	BotToken string `envconfig:"BOT_TOKEN" default:""`
	ChatID   string `envconfig:"CHAT_ID" default:""`
	Timeout  int    `envconfig:"TIMEOUT" default:"15"` // seconds
}

// Instagram holds Instagram Graph API publishing configuration
type Instagram struct {
	AccessToken string `envconfig:"ACCESS_TOKEN" default:""`
	AccountID   string `envconfig:"ACCOUNT_ID" default:""`
	Timeout     int    `envconfig:"TIMEOUT" default:"30"` // seconds
}

// WebSocket holds admin change-feed configuration
type WebSocket struct {
	MaxConnections int `envconfig:"WS_MAX_CONNECTIONS" default:"50"`
}

// TLS holds TLS certificate configuration
type TLS struct {
	Enabled bool   `envconfig:"ENABLED" default:"false"`
	CertDir string `envconfig:"CERT_DIR" default:"./data/certs"`
}

// package-level variable and mutex for thread safety
var (
	processOnce     sync.Once
	settingInstance *Server
)

// GetConfig initializes and returns a singleton instance of the Server config.
// It uses sync.Once to ensure that the initialization logic is executed only once,
// making it safe for concurrent use. If there is an error during the initialization,
// the function will panic.
func GetConfig() *Server {
	var err error
	processOnce.Do(func() {
		settingInstance = &Server{}
		err = envconfig.Process("", settingInstance)
		if err == nil {
			err = validateAdminConfig(&settingInstance.Admin)
		}
	})
	if err != nil {
		panic(err)
	}
	return settingInstance
}

// validateAdminConfig ensures the admin credential contract is satisfied.
// The admin password and signing secret come from the environment and are never
// stored in the repository.
func validateAdminConfig(cfg *Admin) error {
	if cfg.Password == "" && cfg.PasswordHash == "" {
		return fmt.Errorf("admin authentication is not configured: set ADMIN_PASSWORD or ADMIN_PASSWORD_HASH")
	}

	if cfg.SessionSecret == "" {
		return fmt.Errorf("ADMIN_SESSION_SECRET must not be empty")
	}

	if cfg.SessionTTL <= 0 {
		return fmt.Errorf("ADMIN_SESSION_TTL_HOURS must be positive, got %d", cfg.SessionTTL)
	}

	return nil
}
