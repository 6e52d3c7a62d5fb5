package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultCurrency           = "GHS"
	defaultCartTTL            = 7 * 24 * time.Hour
	defaultStaleOrderAge      = 48 * time.Hour
)

// defaultFallbackFee is charged when a region has no delivery rule.
var defaultFallbackFee = decimal.NewFromInt(50)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		// AllowOrigins lists the storefront web origins. Empty allows any
		// origin without credentials, so the cart cookie is not sent cross-site.
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Storage selects the persistence driver: "postgres" (default) or "memory" for local demos.
	Storage StorageConfig `json:"storage" yaml:"storage"`

	Migrations *MigrationsConfig `json:"migrations" yaml:"migrations"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Cart CartConfig `json:"cart" yaml:"cart"`

	Delivery DeliveryConfig `json:"delivery" yaml:"delivery"`

	Payments PaymentsConfig `json:"payments" yaml:"payments"`

	Notification NotificationConfig `json:"notification" yaml:"notification"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for order event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Kafka *KafkaConfig `json:"kafka" yaml:"kafka"`

	Outbox OutboxConfig `json:"outbox" yaml:"outbox"`

	// QRCode configuration for bank-transfer payment codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Store StoreConfig `json:"store" yaml:"store"`

	Janitor JanitorConfig `json:"janitor" yaml:"janitor"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

type StorageConfig struct {
	Driver string `json:"driver" yaml:"driver"`
	// SlowQueryThreshold marks queries logged as slow. Zero uses the default.
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
	// PoolWaitWarnThreshold is the per-interval pool wait that escalates to a warning.
	PoolWaitWarnThreshold time.Duration `json:"poolWaitWarnThreshold" yaml:"poolWaitWarnThreshold"`
}

// MigrationsConfig controls schema migrations at startup.
type MigrationsConfig struct {
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// RedisConfig defines the cart cache connection.
type RedisConfig struct {
	Addr      string `json:"addr" yaml:"addr"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

type CartConfig struct {
	// TTL is how long a cart lives after creation before the janitor reclaims it.
	TTL time.Duration `json:"ttl" yaml:"ttl"`
	// CacheTTL is the base TTL of cached cart lines; a random jitter is added on write.
	CacheTTL time.Duration `json:"cacheTtl" yaml:"cacheTtl"`
	// CookieSecure marks the anonymous cart cookie as Secure.
	CookieSecure bool `json:"cookieSecure" yaml:"cookieSecure"`
}

type DeliveryConfig struct {
	FallbackFee decimal.Decimal `json:"fallbackFee" yaml:"fallbackFee"`
}

// PaymentsConfig selects the payment provider and holds its credentials.
type PaymentsConfig struct {
	// Provider is "HUBTEL" or "FLUTTERWAVE"
	Provider string `json:"provider" yaml:"provider"`
	Currency string `json:"currency" yaml:"currency"`
	// AppURL is the public base URL used to build webhook callback and return URLs.
	AppURL string `json:"appUrl" yaml:"appUrl"`

	Hubtel      HubtelConfig      `json:"hubtel" yaml:"hubtel"`
	Flutterwave FlutterwaveConfig `json:"flutterwave" yaml:"flutterwave"`

	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

type HubtelConfig struct {
	BaseURL         string `json:"baseUrl" yaml:"baseUrl"`
	StatusURL       string `json:"statusUrl" yaml:"statusUrl"`
	ClientID        string `json:"clientId" yaml:"clientId"`
	ClientSecret    string `json:"clientSecret" yaml:"clientSecret"`
	MerchantAccount string `json:"merchantAccount" yaml:"merchantAccount"`
	WebhookSecret   string `json:"webhookSecret" yaml:"webhookSecret"`
}

type FlutterwaveConfig struct {
	BaseURL       string `json:"baseUrl" yaml:"baseUrl"`
	PublicKey     string `json:"publicKey" yaml:"publicKey"`
	SecretKey     string `json:"secretKey" yaml:"secretKey"`
	WebhookSecret string `json:"webhookSecret" yaml:"webhookSecret"`
	LogoURL       string `json:"logoUrl" yaml:"logoUrl"`
}

type NotificationConfig struct {
	SMTP SMTPConfig `json:"smtp" yaml:"smtp"`
	SMS  SMSConfig  `json:"sms" yaml:"sms"`
}

type SMTPConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	User     string `json:"user" yaml:"user"`
	Password string `json:"password" yaml:"password"`
	From     string `json:"from" yaml:"from"`
}

type SMSConfig struct {
	BaseURL  string        `json:"baseUrl" yaml:"baseUrl"`
	APIKey   string        `json:"apiKey" yaml:"apiKey"`
	SenderID string        `json:"senderId" yaml:"senderId"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines the order event transport
type PubSubConfig struct {
	// Provider type: "local" for local HTTP push, "google" for Google Pub/Sub, "kafka" for Kafka
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

type KafkaConfig struct {
	Brokers      []string      `json:"brokers" yaml:"brokers"`
	Topic        string        `json:"topic" yaml:"topic"`
	BatchTimeout time.Duration `json:"batchTimeout" yaml:"batchTimeout"`
	WriteTimeout time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
}

type OutboxConfig struct {
	Enabled      bool          `json:"enabled" yaml:"enabled"`
	PollInterval time.Duration `json:"pollInterval" yaml:"pollInterval"`
	BatchSize    int           `json:"batchSize" yaml:"batchSize"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// StoreConfig holds storefront identity used in customer-facing messages.
type StoreConfig struct {
	Name          string `json:"name" yaml:"name"`
	BankName      string `json:"bankName" yaml:"bankName"`
	AccountName   string `json:"accountName" yaml:"accountName"`
	AccountNumber string `json:"accountNumber" yaml:"accountNumber"`
}

type JanitorConfig struct {
	StaleOrderAge time.Duration `json:"staleOrderAge" yaml:"staleOrderAge"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Env keys are aligned with the YAML tree, e.g. PAYMENTS_HUBTEL_CLIENTID -> payments.hubtel.clientId
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
				stringToDecimalHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = "postgres"
	}
	if cfg.Payments.Provider == "" {
		cfg.Payments.Provider = "HUBTEL"
	}
	cfg.Payments.Provider = strings.ToUpper(cfg.Payments.Provider)
	if cfg.Payments.Currency == "" {
		cfg.Payments.Currency = defaultCurrency
	}
	if cfg.Payments.Timeout <= 0 {
		cfg.Payments.Timeout = 30 * time.Second
	}
	if cfg.Cart.TTL <= 0 {
		cfg.Cart.TTL = defaultCartTTL
	}
	if cfg.Cart.CacheTTL <= 0 {
		cfg.Cart.CacheTTL = 10 * time.Minute
	}
	if cfg.Delivery.FallbackFee.IsZero() {
		cfg.Delivery.FallbackFee = defaultFallbackFee
	}
	if cfg.Outbox.PollInterval <= 0 {
		cfg.Outbox.PollInterval = 2 * time.Second
	}
	if cfg.Outbox.BatchSize <= 0 {
		cfg.Outbox.BatchSize = 100
	}
	if cfg.Janitor.StaleOrderAge <= 0 {
		cfg.Janitor.StaleOrderAge = defaultStaleOrderAge
	}
	if cfg.Store.Name == "" {
		cfg.Store.Name = "Intact Ghana"
	}
}

// stringToDecimalHookFunc decodes YAML numbers and env strings into decimal.Decimal.
func stringToDecimalHookFunc() mapstructure.DecodeHookFuncType {
	decimalType := reflect.TypeOf(decimal.Decimal{})

	return func(_ reflect.Type, to reflect.Type, data any) (any, error) {
		if to != decimalType {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			if strings.TrimSpace(v) == "" {
				return decimal.Zero, nil
			}

			return decimal.NewFromString(v)
		case int:
			return decimal.NewFromInt(int64(v)), nil
		case int64:
			return decimal.NewFromInt(v), nil
		case float64:
			return decimal.NewFromFloat(v), nil
		default:
			return data, nil
		}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
