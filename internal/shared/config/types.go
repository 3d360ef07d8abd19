package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	// Secret verifies tokens issued by the external identity provider.
	// The platform never issues or refreshes credentials itself.
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

type AuthConfig struct {
	JWT JWTConfig `mapstructure:"jwt"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

// ComplianceConfig carries the covenant evaluation policy constants.
// These are tunable without code changes.
type ComplianceConfig struct {
	// WarningMargin is the normalized distance-to-threshold fraction below
	// which a compliant covenant is reported as warning.
	WarningMargin float64 `mapstructure:"warning_margin"`
	// HighSeverityBufferPct and MediumSeverityBufferPct are the buffer
	// percentage cut points for warning alert severity.
	HighSeverityBufferPct   float64 `mapstructure:"high_severity_buffer_pct"`
	MediumSeverityBufferPct float64 `mapstructure:"medium_severity_buffer_pct"`
	// StableSlopeEpsilon is the trend slope magnitude below which the
	// metric history is considered stable.
	StableSlopeEpsilon float64 `mapstructure:"stable_slope_epsilon"`
	// PeriodsPerYear converts the per-period trend slope into a
	// days-to-breach estimate. Quarterly reporting by default.
	PeriodsPerYear int `mapstructure:"periods_per_year"`
}

// EscalationConfig governs the unacknowledged-alert escalation sweep.
type EscalationConfig struct {
	// AgeThresholdMinutes is how long a new alert may sit unacknowledged
	// before it becomes eligible for escalation.
	AgeThresholdMinutes int `mapstructure:"age_threshold_minutes"`
	// SweepIntervalMinutes is how often the worker scans for eligible alerts.
	SweepIntervalMinutes int `mapstructure:"sweep_interval_minutes"`
	// CooldownMinutes is the redis dedup window for alert generation per
	// covenant and alert type.
	CooldownMinutes int `mapstructure:"cooldown_minutes"`
	// NotifyEmails receive escalation notifications.
	NotifyEmails []string `mapstructure:"notify_emails"`
}

func (e *EscalationConfig) AgeThreshold() time.Duration {
	return time.Duration(e.AgeThresholdMinutes) * time.Minute
}

func (e *EscalationConfig) SweepInterval() time.Duration {
	return time.Duration(e.SweepIntervalMinutes) * time.Minute
}

// SummarizerConfig points at the external risk narrative service.
type SummarizerConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	APIKey         string `mapstructure:"api_key"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	Enabled        bool   `mapstructure:"enabled"`
}

func (s *SummarizerConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}
