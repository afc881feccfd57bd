package reader

import (
	"github.com/paramcomp/paramcomp/pkg/cassandra"
	"github.com/paramcomp/paramcomp/pkg/grid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultMissing is stored when no metric matches an assignment.
const DefaultMissing = "-"

// MetricsSource returns all metrics tagged with the experiment ID.
type MetricsSource interface {
	GetValuesForGivenExperiment(experimentID string) ([]*cassandra.Metrics, error)
}

// Metrics reads results recorded by an experiment.
// A metric belongs to an assignment when its tags contain every parameter with its value.
type Metrics struct {
	source     MetricsSource
	experiment string
	metric     string
	precision  int
	missing    string

	loaded   []*cassandra.Metrics
	isLoaded bool
}

// NewMetrics prepares a metrics reader for metrics whose namespace ends with metric.
func NewMetrics(source MetricsSource, experiment, metric string, precision int) (*Metrics, error) {
	if source == nil {
		return nil, &grid.InvalidCollaboratorError{Collaborator: "metrics source", Reason: "source is nil"}
	}
	if experiment == "" {
		return nil, errors.New("experiment ID is empty")
	}
	if precision < NoPrecision {
		return nil, errors.Errorf("precision has to be %d or more, got %d", NoPrecision, precision)
	}
	return &Metrics{
		source:     source,
		experiment: experiment,
		metric:     metric,
		precision:  precision,
		missing:    DefaultMissing,
	}, nil
}

// SetMissing changes the text stored for assignments without metrics.
func (m *Metrics) SetMissing(missing string) {
	m.missing = missing
}

func (m *Metrics) load() error {
	if m.isLoaded {
		return nil
	}
	metrics, err := m.source.GetValuesForGivenExperiment(m.experiment)
	if err != nil {
		return errors.Wrapf(err, "could not load metrics of experiment %q", m.experiment)
	}
	logrus.Debugf("Loaded %d metrics of experiment %q", len(metrics), m.experiment)
	m.loaded = metrics
	m.isLoaded = true
	return nil
}

// Read summarizes values of matching metrics.
func (m *Metrics) Read(params grid.Params) (interface{}, error) {
	if err := m.load(); err != nil {
		return nil, err
	}

	tags := params.Map()
	values := []float64{}
	for _, metric := range m.loaded {
		if metric.IsDouble() && metric.HasNamespaceSuffix(m.metric) && metric.HasTags(tags) {
			values = append(values, metric.Doubleval())
		}
	}

	if len(values) == 0 {
		logrus.Debugf("No %q metrics for %v", m.metric, tags)
		return m.missing, nil
	}
	return summarize(values, m.precision)
}
