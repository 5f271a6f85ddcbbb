package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder exposes seat ledger activity as Prometheus collectors.
type Recorder struct {
	lockRequests    *prometheus.CounterVec
	seatsLocked     prometheus.Counter
	bookingRequests *prometheus.CounterVec
	seatsBooked     prometheus.Counter
	locksExpired    prometheus.Counter
	duration        *prometheus.HistogramVec
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		lockRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "seat_lock_requests_total",
			Help: "Lock requests by outcome",
		}, []string{"outcome"}),
		seatsLocked: factory.NewCounter(prometheus.CounterOpts{
			Name: "seats_locked_total",
			Help: "Seats placed on hold",
		}),
		bookingRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_requests_total",
			Help: "Booking requests by outcome",
		}, []string{"outcome"}),
		seatsBooked: factory.NewCounter(prometheus.CounterOpts{
			Name: "seats_booked_total",
			Help: "Seats sold through confirmed bookings",
		}),
		locksExpired: factory.NewCounter(prometheus.CounterOpts{
			Name: "seat_locks_expired_total",
			Help: "Holds released by lazy expiry",
		}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "seat_operation_duration_seconds",
			Help:    "Latency of seat ledger operations",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"operation"}),
	}
}

func (r *Recorder) ObserveLock(outcome string, seats int) {
	r.lockRequests.WithLabelValues(outcome).Inc()
	if outcome == "ok" {
		r.seatsLocked.Add(float64(seats))
	}
}

func (r *Recorder) ObserveBooking(outcome string, seats int) {
	r.bookingRequests.WithLabelValues(outcome).Inc()
	if outcome == "ok" {
		r.seatsBooked.Add(float64(seats))
	}
}

func (r *Recorder) ObserveExpired(released int) {
	r.locksExpired.Add(float64(released))
}

func (r *Recorder) ObserveDuration(operation string, elapsed time.Duration) {
	r.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}
