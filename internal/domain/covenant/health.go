package covenant

import (
	"fmt"
	"time"

	vo "covena/internal/domain/covenant/valueobjects"
)

// Health is the latest evaluated compliance state for a covenant. It is
// superseded, not historized, on every recomputation; the previous status
// must be read before overwrite so a transition can be detected.
type Health struct {
	covenantID     uint
	contractID     uint
	bankID         uint
	status         vo.HealthStatus
	trend          vo.TrendDirection
	bufferPct      float64
	currentValue   float64
	daysToBreach   *float64
	metricHistory  []float64
	lastCalculated time.Time
}

func NewHealth(
	covenantID uint,
	contractID uint,
	bankID uint,
	status vo.HealthStatus,
	trend vo.TrendDirection,
	bufferPct float64,
	currentValue float64,
	daysToBreach *float64,
) (*Health, error) {
	if covenantID == 0 {
		return nil, fmt.Errorf("covenant ID is required")
	}
	if contractID == 0 {
		return nil, fmt.Errorf("contract ID is required")
	}
	if bankID == 0 {
		return nil, fmt.Errorf("bank ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid health status")
	}
	if !trend.IsValid() {
		return nil, fmt.Errorf("invalid trend direction")
	}

	return &Health{
		covenantID:     covenantID,
		contractID:     contractID,
		bankID:         bankID,
		status:         status,
		trend:          trend,
		bufferPct:      bufferPct,
		currentValue:   currentValue,
		daysToBreach:   daysToBreach,
		lastCalculated: time.Now(),
	}, nil
}

func ReconstructHealth(
	covenantID uint,
	contractID uint,
	bankID uint,
	status vo.HealthStatus,
	trend vo.TrendDirection,
	bufferPct float64,
	currentValue float64,
	daysToBreach *float64,
	lastCalculated time.Time,
) (*Health, error) {
	if covenantID == 0 {
		return nil, fmt.Errorf("covenant ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid health status")
	}
	if !trend.IsValid() {
		return nil, fmt.Errorf("invalid trend direction")
	}

	return &Health{
		covenantID:     covenantID,
		contractID:     contractID,
		bankID:         bankID,
		status:         status,
		trend:          trend,
		bufferPct:      bufferPct,
		currentValue:   currentValue,
		daysToBreach:   daysToBreach,
		lastCalculated: lastCalculated,
	}, nil
}

func (h *Health) CovenantID() uint            { return h.covenantID }
func (h *Health) ContractID() uint            { return h.contractID }
func (h *Health) BankID() uint                { return h.bankID }
func (h *Health) Status() vo.HealthStatus     { return h.status }
func (h *Health) Trend() vo.TrendDirection    { return h.trend }
func (h *Health) BufferPct() float64          { return h.bufferPct }
func (h *Health) CurrentValue() float64       { return h.currentValue }
func (h *Health) LastCalculated() time.Time   { return h.lastCalculated }

// MetricHistory returns the evaluation window that produced the stored
// values, oldest first. May be empty for rows written before history capture.
func (h *Health) MetricHistory() []float64 { return h.metricHistory }

// AttachHistory records the metric window used for this evaluation.
func (h *Health) AttachHistory(values []float64) {
	h.metricHistory = values
}

// DaysToBreach returns the linear-trend estimate of days until the threshold
// is crossed, or nil when no estimate applies.
func (h *Health) DaysToBreach() *float64 {
	if h.daysToBreach == nil {
		return nil
	}
	v := *h.daysToBreach
	return &v
}
