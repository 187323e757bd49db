package conf

import "time"

// CassandraAddress represents cassandra address flag.
var CassandraAddress = NewStringFlag("cassandra_addr", "Address of Cassandra DB endpoint", "127.0.0.1")

// CassandraUsername holds the user name which will be presented when connecting to the cluster.
var CassandraUsername = NewStringFlag("cassandra_username", "The user name which will be presented when connecting to the cluster", "")

// CassandraPassword holds the password which will be presented when connecting to the cluster.
var CassandraPassword = NewStringFlag("cassandra_password", "The password which will be presented when connecting to the cluster", "")

// CassandraConnectionTimeout encodes the connection timeout of the database.
var CassandraConnectionTimeout = NewDurationFlag("cassandra_timeout", "Timeout of communication with Cassandra cluster", 5*time.Second)
