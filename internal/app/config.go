package app

import (
	"strings"

	"github.com/yungbote/ethos-backend/internal/platform/envutil"
)

type Config struct {
	Host        string
	Port        int
	ServiceName string
	Environment string
	Version     string

	StaticDir    string
	AllowOrigins []string

	AnalysisModel string
	GraderModel   string

	MetricsAddr string
}

func LoadConfig() Config {
	return Config{
		Host:          envutil.String("HOST", "0.0.0.0"),
		Port:          envutil.Int("PORT", 8080),
		ServiceName:   envutil.String("SERVICE_NAME", "ethos-backend"),
		Environment:   envutil.String("ENVIRONMENT", "development"),
		Version:       version,
		StaticDir:     envutil.String("STATIC_DIR", "./static"),
		AllowOrigins:  splitOrigins(envutil.String("CORS_ALLOW_ORIGINS", "")),
		AnalysisModel: envutil.String("ANTHROPIC_MODEL", "claude-3-haiku-20240307"),
		GraderModel:   envutil.String("ANTHROPIC_GRADER_MODEL", "claude-3-opus-20240229"),
		MetricsAddr:   envutil.String("METRICS_ADDR", ""),
	}
}

func splitOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
