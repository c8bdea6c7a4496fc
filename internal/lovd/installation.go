package lovd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/vk/geneloader/internal/ctxlog"
	"gopkg.in/ini.v1"
)

// ErrNoDatabase is returned when the configuration file lacks usable
// database settings.
var ErrNoDatabase = errors.New("no database configured")

// Database holds the [database] section of an LOVD configuration file.
type Database struct {
	Driver      string
	Hostname    string
	Username    string
	Password    string
	Name        string
	TablePrefix string
}

// DSN renders the connection string for the configured driver.
func (d Database) DSN() string {
	if d.Driver != "mysql" {
		return d.Name
	}
	host := d.Hostname
	if host == "" {
		host = "localhost"
	}
	if _, _, err := net.SplitHostPort(host); err != nil {
		host = net.JoinHostPort(host, "3306")
	}
	return fmt.Sprintf("%s:%s@tcp(%s)/%s", d.Username, d.Password, host, d.Name)
}

// RedactedDSN is DSN with the password masked, for logging.
func (d Database) RedactedDSN() string {
	if d.Password != "" {
		d.Password = "xxxxx"
	}
	return d.DSN()
}

// Table returns the full name of an LOVD table, e.g. "genes" -> "lovd_genes".
func (d Database) Table(name string) string {
	if d.TablePrefix == "" {
		return name
	}
	return d.TablePrefix + "_" + name
}

// Installation is a resolved LOVD installation.
type Installation struct {
	// Root is the directory holding the configuration file.
	Root       string
	ConfigFile string
	Database   Database
}

// Bootstrapper turns a verified installation path into an Installation.
type Bootstrapper struct {
	fsys   afero.Fs
	marker string
}

// NewBootstrapper creates a Bootstrapper reading the configuration file named
// marker from fsys.
func NewBootstrapper(fsys afero.Fs, marker string) *Bootstrapper {
	return &Bootstrapper{fsys: fsys, marker: marker}
}

// Bootstrap reads the configuration file inside root.
func (b *Bootstrapper) Bootstrap(ctx context.Context, root string) (*Installation, error) {
	logger := ctxlog.FromContext(ctx)
	path := filepath.Join(root, b.marker)
	logger.Debug("Reading LOVD configuration.", "path", path)

	data, err := afero.ReadFile(b.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read LOVD configuration: %w", err)
	}

	db, err := parseDatabase(data)
	if err != nil {
		return nil, fmt.Errorf("invalid LOVD configuration %s: %w", path, err)
	}
	logger.Debug("LOVD configuration loaded.", "driver", db.Driver, "database", db.Name, "table_prefix", db.TablePrefix)

	return &Installation{Root: root, ConfigFile: path, Database: db}, nil
}

// parseDatabase extracts the [database] section. The file starts with a PHP
// guard line that is not valid INI and is skipped.
func parseDatabase(data []byte) (Database, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		SkipUnrecognizableLines: true,
		IgnoreInlineComment:     true,
	}, data)
	if err != nil {
		return Database{}, err
	}

	sec, err := cfg.GetSection("database")
	if err != nil {
		return Database{}, ErrNoDatabase
	}

	db := Database{
		Driver:      strings.ToLower(sec.Key("driver").MustString("mysql")),
		Hostname:    sec.Key("hostname").String(),
		Username:    sec.Key("username").String(),
		Password:    sec.Key("password").String(),
		Name:        sec.Key("database").String(),
		TablePrefix: sec.Key("table_prefix").MustString("lovd"),
	}
	if db.Name == "" {
		return Database{}, fmt.Errorf("%w: database name is empty", ErrNoDatabase)
	}
	return db, nil
}
