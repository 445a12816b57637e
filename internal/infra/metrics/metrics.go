// Package metrics exposes booking counters to Prometheus.
package metrics

import (
	"strconv"
	"sync"

	"lane-booking/internal/domain/reservation"
	"lane-booking/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "lane_booking"

type Recorder struct {
	bookingRows      *prometheus.CounterVec
	bookings         *prometheus.CounterVec
	capacityConflict prometheus.Counter
	transitions      *prometheus.CounterVec
	paymentLinks     *prometheus.CounterVec
}

var (
	once     sync.Once
	recorder *Recorder
)

func newRecorder() *Recorder {
	return &Recorder{
		bookings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bookings_committed_total",
				Help:      "Composite bookings committed, by actor.",
			},
			[]string{"actor"},
		),
		bookingRows: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reservation_rows_created_total",
				Help:      "Reservation rows created by committed bookings, by actor.",
			},
			[]string{"actor"},
		),
		capacityConflict: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "capacity_conflicts_total",
				Help:      "Bookings aborted because an hour ran out of lanes.",
			},
		),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reservation_transitions_total",
				Help:      "Reservation status transitions, by target status.",
			},
			[]string{"status"},
		),
		paymentLinks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payment_links_total",
				Help:      "Payment link requests, by outcome.",
			},
			[]string{"ok"},
		),
	}
}

func (r *Recorder) collectors() []prometheus.Collector {
	return []prometheus.Collector{r.bookings, r.bookingRows, r.capacityConflict, r.transitions, r.paymentLinks}
}

// Register registers the recorder with the default registry (idempotent).
func Register() *Recorder {
	once.Do(func() {
		recorder = newRecorder()
		prometheus.MustRegister(recorder.collectors()...)
	})
	return recorder
}

// NewRecorder registers a fresh recorder on reg; used by tests with private registries.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := newRecorder()
	reg.MustRegister(r.collectors()...)
	return r
}

func (r *Recorder) BookingCommitted(actor shared.ActorKind, rows int) {
	r.bookings.WithLabelValues(string(actor)).Inc()
	r.bookingRows.WithLabelValues(string(actor)).Add(float64(rows))
}

func (r *Recorder) CapacityConflict() {
	r.capacityConflict.Inc()
}

func (r *Recorder) Transition(to reservation.Status) {
	r.transitions.WithLabelValues(to.String()).Inc()
}

func (r *Recorder) PaymentLink(ok bool) {
	r.paymentLinks.WithLabelValues(strconv.FormatBool(ok)).Inc()
}
