package metrics

import "github.com/prometheus/client_golang/prometheus"

// Classification agrupa os contadores do classificador de esportes.
// Os métodos têm a assinatura dos hooks OnClassified / OnLookup.
type Classification struct {
	Classified *prometheus.CounterVec // sport, source
	Lookups    *prometheus.CounterVec // outcome
}

func NewClassification(reg prometheus.Registerer) *Classification {
	m := &Classification{
		Classified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sport_classifications_total",
			Help: "classificações por esporte e origem (remote|local)",
		}, []string{"sport", "source"}),
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sportsdb_lookups_total",
			Help: "consultas ao provedor de times por resultado",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.Classified, m.Lookups)
	return m
}

func (m *Classification) ObserveClassified(sport, source string) {
	m.Classified.WithLabelValues(sport, source).Inc()
}

func (m *Classification) ObserveLookup(outcome string) {
	m.Lookups.WithLabelValues(outcome).Inc()
}

// Import agrupa os contadores do worker de importação
type Import struct {
	Consumed  prometheus.Counter
	Persisted prometheus.Counter
	Errors    *prometheus.CounterVec // stage
}

func NewImport(reg prometheus.Registerer) *Import {
	m := &Import{
		Consumed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bet_import_messages_consumed_total",
			Help: "mensagens bet_imported consumidas",
		}),
		Persisted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bet_import_persisted_total",
			Help: "apostas com esporte gravado no ledger",
		}),
		Errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bet_import_errors_total",
			Help: "erros por estágio",
		}, []string{"stage"}),
	}
	reg.MustRegister(m.Consumed, m.Persisted, m.Errors)
	return m
}

func (m *Import) ObserveConsumed()          { m.Consumed.Inc() }
func (m *Import) ObservePersisted()         { m.Persisted.Inc() }
func (m *Import) ObserveError(stage string) { m.Errors.WithLabelValues(stage).Inc() }
