package main

import (
	"time"

	"github.com/GMartinho/star-wars-api/pkg/logger"
)

type ApiConfigJson struct {
	LoggerConf   logger.LoggerConfigJson     `json:"logger"`
	RestConf     ApiClientRestConfigJson     `json:"rest"`
	DatabaseConf ApiClientDatabaseConfigJson `json:"database"`
	SwapiConf    SwapiConfigJson             `json:"swapi"`
	CorsConf     CorsConfigJson              `json:"cors"`
}

func (acj ApiConfigJson) ConvertToDomain() ApiConfig {
	return ApiConfig{
		LoggerConf:   acj.LoggerConf.ConvertToDomain(),
		RestConf:     acj.RestConf.ConvertToDomain(),
		DatabaseConf: acj.DatabaseConf.ConvertToDomain(),
		SwapiConf:    acj.SwapiConf.ConvertToDomain(),
		CorsConf:     acj.CorsConf.ConvertToDomain(),
	}
}

type ApiConfig struct {
	LoggerConf   logger.LoggerConfig
	RestConf     ApiClientRestConfig
	DatabaseConf ApiClientDatabaseConfig
	SwapiConf    SwapiConfig
	CorsConf     CorsConfig
}

func (ac ApiConfig) GetLoggerConfig() logger.LoggerConfig {
	return ac.LoggerConf
}

func (ac ApiConfig) GetRestApiPort() uint16 {
	return ac.RestConf.Port
}

func (ac ApiConfig) GetDatabaseConnectionString() string {
	return ac.DatabaseConf.ConnectionString
}

type ApiClientRestConfigJson struct {
	Port uint16 `json:"port"`
}

type ApiClientRestConfig struct {
	Port uint16
}

func (acrcj ApiClientRestConfigJson) ConvertToDomain() ApiClientRestConfig {
	return ApiClientRestConfig{
		Port: acrcj.Port,
	}
}

type ApiClientDatabaseConfigJson struct {
	ConnectionString string `json:"connection_string"`
}

type ApiClientDatabaseConfig struct {
	ConnectionString string
}

func (acdcj ApiClientDatabaseConfigJson) ConvertToDomain() ApiClientDatabaseConfig {
	return ApiClientDatabaseConfig{
		ConnectionString: acdcj.ConnectionString,
	}
}

type SwapiConfigJson struct {
	BaseURL        string `json:"base_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

type SwapiConfig struct {
	BaseURL string
	Timeout time.Duration
}

func (scj SwapiConfigJson) ConvertToDomain() SwapiConfig {
	return SwapiConfig{
		BaseURL: scj.BaseURL,
		Timeout: time.Duration(scj.TimeoutSeconds) * time.Second,
	}
}

type CorsConfigJson struct {
	AllowOrigin string `json:"allow_origin"`
}

type CorsConfig struct {
	AllowOrigin string
}

func (ccj CorsConfigJson) ConvertToDomain() CorsConfig {
	return CorsConfig{
		AllowOrigin: ccj.AllowOrigin,
	}
}
