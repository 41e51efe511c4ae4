package postgres

import (
	"context"
	"net"
	"net/url"
	"time"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/rainbow-minter/common/errs"
	"github.com/gaze-network/rainbow-minter/pkg/logger"
	"github.com/gaze-network/rainbow-minter/pkg/logger/slogx"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	pgxslog "github.com/mcosta74/pgx-slog"
)

const (
	// the ledger is written by a single run goroutine
	DefaultMaxConns       = 4
	DefaultMinConns       = 0
	DefaultLogLevel       = tracelog.LogLevelError
	DefaultConnectTimeout = 10 * time.Second
	ApplicationName       = "rainbow-minter"
)

type Config struct {
	Host     string `mapstructure:"host"`     // Default is 127.0.0.1
	Port     string `mapstructure:"port"`     // Default is 5432
	User     string `mapstructure:"user"`     // Default is empty
	Password string `mapstructure:"password"` // Default is empty
	DBName   string `mapstructure:"db_name"`  // Default is postgres
	SSLMode  string `mapstructure:"ssl_mode"` // Default is prefer
	URL      string `mapstructure:"url"`      // If URL is provided, other fields are ignored

	MaxConns       int32         `mapstructure:"max_conns"`       // Default is 4
	MinConns       int32         `mapstructure:"min_conns"`       // Default is 0
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"` // Default is 10s

	Debug bool `mapstructure:"debug"`
}

// NewPool connects to the database and pings it within the connect timeout.
func NewPool(ctx context.Context, conf Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(conf.ConnString())
	if err != nil {
		return nil, errors.Wrapf(errs.InvalidArgument, "failed to parse postgres config: %v", err)
	}
	poolConfig.MaxConns = utils.Default(conf.MaxConns, DefaultMaxConns)
	poolConfig.MinConns = utils.Default(conf.MinConns, DefaultMinConns)
	poolConfig.ConnConfig.Tracer = conf.QueryTracer()

	ctx, cancel := context.WithTimeout(ctx, utils.Default(conf.ConnectTimeout, DefaultConnectTimeout))
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create a new connection pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrapf(err, "failed to connect to %s", conf.Redacted())
	}

	logger.DebugContext(ctx, "Connected to postgres", slogx.String("database", conf.Redacted()))
	return pool, nil
}

// ConnString returns URL when set, otherwise a postgres:// URL built from the other fields.
func (conf Config) ConnString() string {
	if conf.URL != "" {
		return conf.URL
	}
	return conf.connURL().String()
}

// Redacted is ConnString with the password masked.
func (conf Config) Redacted() string {
	if conf.URL != "" {
		u, err := url.Parse(conf.URL)
		if err != nil {
			return "<invalid url>"
		}
		return u.Redacted()
	}
	return conf.connURL().Redacted()
}

func (conf Config) connURL() *url.URL {
	u := &url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(utils.Default(conf.Host, "127.0.0.1"), utils.Default(conf.Port, "5432")),
		Path:   "/" + utils.Default(conf.DBName, "postgres"),
	}
	switch {
	case conf.User != "" && conf.Password != "":
		u.User = url.UserPassword(conf.User, conf.Password)
	case conf.User != "":
		u.User = url.User(conf.User)
	}
	u.RawQuery = url.Values{
		"sslmode":          {utils.Default(conf.SSLMode, "prefer")},
		"application_name": {ApplicationName},
	}.Encode()
	return u
}

func (conf Config) QueryTracer() pgx.QueryTracer {
	loglevel := DefaultLogLevel
	if conf.Debug {
		loglevel = tracelog.LogLevelTrace
	}
	return &tracelog.TraceLog{
		Logger:   pgxslog.NewLogger(logger.With(slogx.String("package", "postgres"))),
		LogLevel: loglevel,
	}
}
