package cassandra

import (
	"time"

	"github.com/pkg/errors"
)

const metricsQuery = `SELECT ns, ver, host, time, boolval, doubleval, labels, strval, tags, valtype FROM metrics
	WHERE tags CONTAINS ? ALLOW FILTERING`

// GetValuesForGivenExperiment returns list of Metrics structs based on experiment ID.
func (cassandraConfig *Connection) GetValuesForGivenExperiment(experimentID string) ([]*Metrics, error) {
	if experimentID == "" {
		return nil, errors.New("experiment ID is empty")
	}

	metricsList := []*Metrics{}
	// We look for following values for each Metric.
	var doubleval float64
	var namespace, host, strval, valtype string
	var version int
	var time time.Time
	var boolval bool

	session := cassandraConfig.CassandraSession()
	iter := session.Query(metricsQuery, experimentID).Iter()

	for {
		// Scan reuses collections, so fresh ones are needed for every row.
		labels := []string{}
		tags := make(map[string]string)
		if !iter.Scan(&namespace, &version, &host, &time, &boolval, &doubleval, &labels, &strval, &tags, &valtype) {
			break
		}
		metric := NewMetrics(namespace, version, host, time, boolval, doubleval, labels, strval, tags, valtype)
		metricsList = append(metricsList, metric)
	}

	if err := iter.Close(); err != nil {
		return nil, errors.Wrapf(err, "could not read metrics of experiment %q", experimentID)
	}
	return metricsList, nil
}
