// Package uploaders provides summarize.Uploader implementations for external
// storage of summary tables.
package uploaders

import (
	"time"

	"github.com/gocql/gocql"
	"github.com/pkg/errors"

	"github.com/JongHoB/mqsim-summary/pkg/conf"
	"github.com/JongHoB/mqsim-summary/pkg/metrics"
	"github.com/JongHoB/mqsim-summary/pkg/summarize"
)

// CassandraConfig encodes the settings for connecting to the database.
type CassandraConfig struct {
	Address           string
	Username          string
	Password          string
	ConnectionTimeout time.Duration
}

// DefaultCassandraConfig returns a setup which uses a Cassandra cluster
// running on localhost without authentication.
func DefaultCassandraConfig() CassandraConfig {
	return CassandraConfig{
		Address:           "127.0.0.1",
		Username:          "",
		Password:          "",
		ConnectionTimeout: 5 * time.Second,
	}
}

// CassandraConfigFromFlags applies the Cassandra settings from the command
// line flags and environment variables.
func CassandraConfigFromFlags() CassandraConfig {
	return CassandraConfig{
		Address:           conf.CassandraAddress.Value(),
		Username:          conf.CassandraUsername.Value(),
		Password:          conf.CassandraPassword.Value(),
		ConnectionTimeout: conf.CassandraConnectionTimeout.Value(),
	}
}

// Cassandra uploads summary rows into the mqsim.summary table, one row per
// record, keyed by the run ID.
type Cassandra struct {
	config  CassandraConfig
	session *gocql.Session
}

// NewCassandra returns the Cassandra uploader. Connect() still needs to be
// called to get an active session.
func NewCassandra(config CassandraConfig) *Cassandra {
	return &Cassandra{config: config}
}

// Connect creates a session to the Cassandra cluster and bootstraps the
// keyspace and summary table. This function should only be called once.
func (c *Cassandra) Connect() error {
	cluster := gocql.NewCluster(c.config.Address)
	cluster.Consistency = gocql.LocalOne
	cluster.SerialConsistency = gocql.LocalSerial
	cluster.ProtoVersion = 4
	cluster.Timeout = c.config.ConnectionTimeout

	if c.config.Username != "" && c.config.Password != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: c.config.Username,
			Password: c.config.Password,
		}
	}

	session, err := cluster.CreateSession()
	if err != nil {
		return errors.Wrap(err, "creating gocql session failed")
	}
	c.session = session

	if err := session.Query("CREATE KEYSPACE IF NOT EXISTS mqsim WITH REPLICATION = {'class': 'SimpleStrategy', 'replication_factor': 1};").Exec(); err != nil {
		return errors.Wrap(err, "creating mqsim keyspace failed")
	}

	if err := session.Query("CREATE TABLE IF NOT EXISTS mqsim.summary (run_id text, exp_name text, time timestamp, fields map<text,text>, PRIMARY KEY ((run_id), exp_name));").Exec(); err != nil {
		return errors.Wrap(err, "creating mqsim.summary table failed")
	}

	return nil
}

// SendSummary implements summarize.Uploader. Nil cells are not stored; the
// stored field map mirrors the non-blank cells of the CSV artifact.
func (c *Cassandra) SendSummary(runID string, summary *summarize.Summary) error {
	for _, record := range summary.Records() {
		fields := map[string]string{}
		for name, value := range record.Fields {
			if value == nil {
				continue
			}
			fields[name] = metrics.FormatValue(value)
		}

		err := c.session.Query(
			`INSERT INTO mqsim.summary (run_id, exp_name, time, fields) VALUES (?, ?, ?, ?)`,
			runID, record.Identity.ExpName, time.Now(), fields,
		).Exec()
		if err != nil {
			return errors.Wrapf(err, "storing summary row for %q failed", record.Identity.ExpName)
		}
	}
	return nil
}
