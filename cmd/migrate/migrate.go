package migrate

import (
	"fmt"
	"net/url"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/rainbow-minter/internal/config"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/pflag"
)

const (
	minterMigrationSource = "modules/minter/database/postgresql/migrations"
	minterMigrationTable  = "minter_schema_migrations"
)

var supportedDrivers = map[string]struct{}{
	"postgres":   {},
	"postgresql": {},
}

// moduleOptions selects the module migrations to apply.
type moduleOptions struct {
	DatabaseURL  string
	Minter       bool
	MinterSource string
}

func (o *moduleOptions) bindFlags(flags *pflag.FlagSet, direction string) {
	flags.BoolVar(&o.Minter, "minter", false, fmt.Sprintf("Apply mint ledger %s migrations", direction))
	flags.StringVar(&o.MinterSource, "minter-source", minterMigrationSource, "Path to mint ledger migrations directory.")
	flags.StringVar(&o.DatabaseURL, "database", "", "Database url to run migration on. Default is the mint ledger postgres config.")
}

func (o *moduleOptions) databaseURL() (*url.URL, error) {
	raw := o.DatabaseURL
	if raw == "" {
		raw = config.Load().Mint.Ledger.Postgres.ConnString()
	}
	databaseURL, err := url.Parse(raw)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse database URL")
	}
	if _, ok := supportedDrivers[databaseURL.Scheme]; !ok {
		return nil, errors.Errorf("unsupported database driver: %s", databaseURL.Scheme)
	}
	return databaseURL, nil
}

func cloneURLWithQuery(u *url.URL, newQuery url.Values) *url.URL {
	clone := *u
	query := clone.Query()
	for key, values := range newQuery {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	clone.RawQuery = query.Encode()
	return &clone
}

// steps applies n migrations of a module, all of them when n is 0. A negative n goes down.
func steps(module string, sourcePath string, migrationTable string, databaseURL *url.URL, n int, down bool) error {
	newDatabaseURL := cloneURLWithQuery(databaseURL, url.Values{"x-migrations-table": {migrationTable}})
	m, err := migrate.New("file://"+sourcePath, newDatabaseURL.String())
	if err != nil {
		return errors.Wrap(err, "failed to create Migrate instance")
	}
	defer m.Close()
	m.Log = &consoleLogger{
		prefix: fmt.Sprintf("[%s] ", module),
	}

	direction := "up"
	if down {
		direction = "down"
	}
	switch {
	case n == 0 && down:
		m.Log.Printf("Applying down migrations...\n")
		err = m.Down()
	case n == 0:
		m.Log.Printf("Applying up migrations...\n")
		err = m.Up()
	case down:
		m.Log.Printf("Applying %d down migrations...\n", n)
		err = m.Steps(-n)
	default:
		m.Log.Printf("Applying %d up migrations...\n", n)
		err = m.Steps(n)
	}
	if err != nil {
		if !errors.Is(err, migrate.ErrNoChange) {
			return errors.Wrapf(err, "failed to apply %s %s migrations", module, direction)
		}
		m.Log.Printf("No %s migrations to apply\n", direction)
	}
	return nil
}
