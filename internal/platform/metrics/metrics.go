package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics of the syncer.
type Metrics struct {
	listingsFound   prometheus.Counter
	listingsNew     prometheus.Counter
	listingsSkipped prometheus.Counter
	imagesUploaded  prometheus.Counter
	errorsTotal     *prometheus.CounterVec
}

// New returns Metrics registered on the default registry.
func New() *Metrics {
	return &Metrics{
		listingsFound: promauto.NewCounter(prometheus.CounterOpts{
			Name: "syncer_listings_found_total",
			Help: "The total number of candidate listings discovered",
		}),
		listingsNew: promauto.NewCounter(prometheus.CounterOpts{
			Name: "syncer_listings_new_total",
			Help: "The total number of new listings persisted",
		}),
		listingsSkipped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "syncer_listings_skipped_total",
			Help: "The total number of listings skipped as known duplicates",
		}),
		imagesUploaded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "syncer_images_uploaded_total",
			Help: "The total number of standardized images uploaded",
		}),
		errorsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "syncer_errors_total",
			Help: "The total number of recovered errors",
		}, []string{"type"}),
	}
}

// IncFound counts one discovered candidate.
func (m *Metrics) IncFound() { m.listingsFound.Inc() }

// IncNew counts one persisted listing.
func (m *Metrics) IncNew() { m.listingsNew.Inc() }

// IncSkipped counts one suppressed duplicate.
func (m *Metrics) IncSkipped() { m.listingsSkipped.Inc() }

// AddImagesUploaded counts uploaded images.
func (m *Metrics) AddImagesUploaded(count int) { m.imagesUploaded.Add(float64(count)) }

// IncError counts one recovered error of the provided type.
func (m *Metrics) IncError(errType string) { m.errorsTotal.WithLabelValues(errType).Inc() }

// Handler returns the http handler exposing the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
