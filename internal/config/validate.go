package config

import (
	"errors"
	"fmt"
	"net"
	"regexp"
	"strings"
)

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	// Validate server configuration
	if c.App.Server.Addr == "" {
		return errors.New("server address cannot be empty")
	}

	// Validate address format and port
	if _, err := net.ResolveTCPAddr("tcp", c.App.Server.Addr); err != nil {
		return fmt.Errorf("invalid server address: %v", err)
	}

	// Validate upload configuration
	if len(c.App.Upload.AllowedExts) == 0 {
		return errors.New("upload allowed_exts cannot be empty")
	}
	for _, ext := range c.App.Upload.AllowedExts {
		if ext == "" || !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("upload allowed_exts entries must start with a dot, got %q", ext)
		}
	}
	if c.App.Upload.MaxMB <= 0 {
		return errors.New("upload max_mb must be positive")
	}
	if c.App.Upload.MinTextLen < 0 {
		return errors.New("upload min_text_len cannot be negative")
	}
	if c.App.Upload.PreviewLen <= 0 {
		return errors.New("upload preview_len must be positive")
	}

	// Validate LLM configuration
	if c.App.LLM.Endpoint == "" {
		return errors.New("llm endpoint cannot be empty")
	}
	if c.App.LLM.Model == "" {
		return errors.New("llm model cannot be empty")
	}

	// Validate cache configuration
	if c.App.Cache.Path == "" {
		return errors.New("cache path cannot be empty")
	}

	// Validate archive configuration
	if c.App.Archive.Enabled {
		if c.App.Archive.Endpoint == "" {
			return errors.New("archive endpoint cannot be empty when archive is enabled")
		}
		if c.App.Archive.AccessKey == "" {
			return errors.New("archive access key cannot be empty when archive is enabled")
		}
		if c.App.Archive.SecretKey == "" {
			return errors.New("archive secret key cannot be empty when archive is enabled")
		}
		if c.App.Archive.Bucket == "" {
			return errors.New("archive bucket cannot be empty when archive is enabled")
		}
		if !isValidBucketName(c.App.Archive.Bucket) {
			return fmt.Errorf("invalid archive bucket name: %s", c.App.Archive.Bucket)
		}
	}

	return nil
}

// isValidBucketName checks if a bucket name is valid according to MinIO/S3 rules
func isValidBucketName(name string) bool {
	if len(name) < 3 || len(name) > 63 {
		return false
	}
	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") {
		return false
	}
	if strings.Contains(name, "..") {
		return false
	}
	if !regexp.MustCompile(`^[a-z0-9][a-z0-9.-]*[a-z0-9]$`).MatchString(name) {
		return false
	}
	return true
}
