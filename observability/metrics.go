package observability

import (
	"os"
	"phish-lab/domain"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"
	"github.com/shirou/gopsutil/process"
)

const namespace = "phish_lab"

// TrainingMetrics holds the gauges describing one training run. Each run owns
// its registry, so the exported textfile never carries another run's values.
type TrainingMetrics struct {
	registry       *prometheus.Registry
	samples        *prometheus.GaugeVec
	vocabularySize prometheus.Gauge
	accuracy       prometheus.Gauge
	stageDuration  *prometheus.GaugeVec
	residentMemory prometheus.Gauge
	completedAt    prometheus.Gauge
}

func NewTrainingMetrics() *TrainingMetrics {
	m := &TrainingMetrics{
		registry: prometheus.NewRegistry(),
		samples: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "samples",
			Help:      "Number of samples per split and class",
		}, []string{"split", "class"}),
		vocabularySize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "vocabulary_size",
			Help:      "Number of distinct tokens learned from the training split",
		}),
		accuracy: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "test_accuracy",
			Help:      "Fraction of test samples classified correctly",
		}),
		stageDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Wall time spent in each pipeline stage",
		}, []string{"stage"}),
		residentMemory: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "resident_memory_bytes",
			Help:      "Resident set size of the trainer process",
		}),
		completedAt: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_completed_timestamp_seconds",
			Help:      "Unix time of the last successful training run",
		}),
	}
	m.registry.MustRegister(
		m.samples,
		m.vocabularySize,
		m.accuracy,
		m.stageDuration,
		m.residentMemory,
		m.completedAt,
	)
	return m
}

func (m *TrainingMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveSamples records the class balance of one split.
func (m *TrainingMetrics) ObserveSamples(split string, samples []domain.Sample) {
	counts := lo.CountValuesBy(samples, func(s domain.Sample) domain.Label {
		return s.Label
	})
	for _, label := range []domain.Label{domain.Legitimate, domain.Phishing} {
		m.samples.WithLabelValues(split, label.String()).Set(float64(counts[label]))
	}
}

func (m *TrainingMetrics) SetVocabularySize(size int) {
	m.vocabularySize.Set(float64(size))
}

func (m *TrainingMetrics) SetAccuracy(accuracy float64) {
	m.accuracy.Set(accuracy)
}

func (m *TrainingMetrics) ObserveStage(stage string, elapsed time.Duration) {
	m.stageDuration.WithLabelValues(stage).Set(elapsed.Seconds())
}

func (m *TrainingMetrics) MarkCompleted(at time.Time) {
	m.completedAt.Set(float64(at.Unix()))
}

// SampleProcessMemory reads the current RSS of this process.
func (m *TrainingMetrics) SampleProcessMemory() error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}
	info, err := p.MemoryInfo()
	if err != nil {
		return err
	}
	m.residentMemory.Set(float64(info.RSS))
	return nil
}

// WriteTextfile exports every gauge in the node_exporter textfile format.
func (m *TrainingMetrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
