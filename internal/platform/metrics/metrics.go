package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los contadores Prometheus de la aplicación.
// Usa un registry propio para poder crear instancias independientes
// (cada test levanta su propio router sin chocar con el registry global).
type Metrics struct {
	registry *prometheus.Registry

	AnimalsCreated     prometheus.Counter
	StatusUpdates      prometheus.Counter
	AdoptionsCompleted prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		AnimalsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "adopet_animals_created_total",
			Help: "Total de animales registrados para adopción",
		}),
		StatusUpdates: factory.NewCounter(prometheus.CounterOpts{
			Name: "adopet_animal_status_updates_total",
			Help: "Total de cambios de status aplicados",
		}),
		AdoptionsCompleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "adopet_adoptions_completed_total",
			Help: "Total de animales que pasaron a status adopted",
		}),
	}
}

// Handler expone el endpoint /metrics para scraping.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
