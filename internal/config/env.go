package config

import (
	"github.com/JaimeStill/scaffold/pkg/database"
	"github.com/JaimeStill/scaffold/pkg/logging"
	"github.com/JaimeStill/scaffold/pkg/middleware"
	"github.com/JaimeStill/scaffold/pkg/openapi"
	"github.com/JaimeStill/scaffold/pkg/pagination"
)

var databaseEnv = &database.Env{
	Host:            "DATABASE_HOST",
	Port:            "DATABASE_PORT",
	Name:            "DATABASE_NAME",
	User:            "DATABASE_USER",
	Password:        "DATABASE_PASSWORD",
	MaxOpenConns:    "DATABASE_MAX_OPEN_CONNS",
	MaxIdleConns:    "DATABASE_MAX_IDLE_CONNS",
	ConnMaxLifetime: "DATABASE_CONN_MAX_LIFETIME",
	ConnTimeout:     "DATABASE_CONN_TIMEOUT",
	SSLMode:         "DATABASE_SSLMODE",
	AutoMigrate:     "DATABASE_AUTO_MIGRATE",
}

var loggingEnv = &logging.Env{
	Level:  "LOGGING_LEVEL",
	Format: "LOGGING_FORMAT",
	Source: "LOGGING_SOURCE",
}

var corsEnv = &middleware.CORSEnv{
	Enabled:          "CORS_ENABLED",
	Origins:          "CORS_ORIGINS",
	AllowedMethods:   "CORS_ALLOWED_METHODS",
	AllowedHeaders:   "CORS_ALLOWED_HEADERS",
	AllowCredentials: "CORS_ALLOW_CREDENTIALS",
	MaxAge:           "CORS_MAX_AGE",
}

var openAPIEnv = &openapi.ConfigEnv{
	Title:       "OPENAPI_TITLE",
	Description: "OPENAPI_DESCRIPTION",
	Servers:     "OPENAPI_SERVERS",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "PAGINATION_MAX_PAGE_SIZE",
}
