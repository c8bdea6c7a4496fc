// Package lovd bootstraps access to an LOVD installation. It reads the
// installation's configuration file and exposes the database settings that
// later stages use to connect. No connection is opened here.
package lovd
