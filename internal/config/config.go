package config

import (
	"net/http"
	"time"
)

type DBConfig struct {
	Username string
	Password string
	Host     string
	Port     string
	DBName   string
	SSLMode  string
}

type ServerConfig struct {
	Port           string
	Handler        http.Handler
	MaxHeaderBytes int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

// StorageConfig points at an S3-compatible bucket holding post images and avatars.
type StorageConfig struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
}

type AppConfig struct {
	PageSize     int
	LoginURL     string
	ClientOrigin string
	AccessSecret []byte
}
