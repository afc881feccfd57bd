package cassandra

import (
	"github.com/gocql/gocql"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func getClusterConfig(ip string, keyspace string) *gocql.ClusterConfig {
	cluster := gocql.NewCluster(ip)
	cluster.Keyspace = keyspace
	cluster.ProtoVersion = 4
	cluster.Consistency = gocql.All
	return cluster
}

// Connection has a session field which can be used to interact with cassandra.
type Connection struct {
	session  *gocql.Session
	keyspace string
}

func newConnection(session *gocql.Session, keyspace string) *Connection {
	return &Connection{session: session, keyspace: keyspace}
}

// CassandraSession returns current Cassandra session that can be used to interact with indices.
func (cassandraConfig *Connection) CassandraSession() *gocql.Session {
	return cassandraConfig.session
}

// Keyspace returns keyspace the session was opened for.
func (cassandraConfig *Connection) Keyspace() string {
	return cassandraConfig.keyspace
}

// CreateConfigWithSession creates Cassandra config with prepared session.
func CreateConfigWithSession(ip string, keyspace string) (*Connection, error) {
	if ip == "" {
		return nil, errors.New("cassandra address is empty")
	}
	if keyspace == "" {
		return nil, errors.New("cassandra keyspace is empty")
	}

	logrus.Debugf("Connecting to cassandra at %s (keyspace %q)", ip, keyspace)
	cluster := getClusterConfig(ip, keyspace)
	session, err := cluster.CreateSession()
	if err != nil {
		return nil, errors.Wrapf(err, "could not connect to cassandra at %s", ip)
	}
	return newConnection(session, keyspace), nil
}

// CloseSession closes current Cassandra session.
func (cassandraConfig *Connection) CloseSession() error {
	if cassandraConfig.session == nil || cassandraConfig.session.Closed() {
		return errors.New("session already closed")
	}
	cassandraConfig.session.Close()
	return nil
}
